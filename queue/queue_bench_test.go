package queue

import "testing"

func generateData(n int) []int {
	data := make([]int, n)
	for i := 0; i < n; i++ {
		data[i] = i
	}
	return data
}

func BenchmarkEnqueue(b *testing.B) {
	data := generateData(10000)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q := NewQueue[int]()
		for _, v := range data {
			q.Enqueue(v)
		}
	}
}

func BenchmarkDequeue(b *testing.B) {
	data := generateData(10000)
	q := NewQueue[int]()
	for _, v := range data {
		q.Enqueue(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := 0; j < len(data); j++ {
			_, _ = q.Dequeue()
		}
		for _, v := range data {
			q.Enqueue(v)
		}
	}
}
