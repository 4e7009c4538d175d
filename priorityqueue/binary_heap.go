/*
Package priorityqueue provides a generic binary heap, used by three
datrie.Trie query methods (StartsWith, Permute, Query) to produce one
deterministic output order, ascending lexicographic. Each method collects
raw hits in whatever order its traversal visits them, then calls Sort on a
heap built with an ascending string comparator. Match does not use it and
keeps the order in which its scan finds the words.

The type parameter T must satisfy constraints.Ordered (supports <, >
operators) when using NewBinaryHeap, or any type when a custom comparator
is supplied via NewBinaryHeapWithComparator.

Key Features:
  - Add: insert a new element while maintaining the heap property (O(log n)).
  - Peek: retrieve the root (highest-priority) element without removing it (O(1)).
  - Poll: remove and return the root element, re-heapifying the structure (O(log n)).
  - IsEmpty: check if the heap is empty (O(1)).
  - Size: return the number of elements in the heap (O(1)).
  - Clear: remove all elements from the heap (O(1)).
  - Sort: return all elements, ordered by the comparator, without mutating the heap.

Algorithm Notes:
  - Binary Heap is stored in a slice.
  - Parent and child relationships:
    parent index = (k-1)/2
    left child = 2*k + 1, right child = 2*k + 2
  - Swim operation: Moves a newly added element up until the heap property is restored.
  - RemoveAt operation: Replaces the removed element with the last element, then sinks it down.

A BinaryHeap is not safe for concurrent use.
*/
package priorityqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// BinaryHeap is a generic binary heap implementation.
//
// It supports both min-heap and max-heap behavior depending on the comparator
// function provided during construction.
//
// Internally, the heap is stored as a slice representing a complete binary tree.
//
// Array-based heap indexing rules:
//   - Root element: index 0
//   - For a node at index i:
//     Left child: 2*i + 1
//     Right child: 2*i + 2
//     Parent: (i - 1) / 2
type BinaryHeap[T any] struct {
	data []T               // slice storing heap elements
	cmp  func(a, b T) bool // comparator defining heap ordering
}

// NewBinaryHeap creates a new BinaryHeap instance using the natural ordering of T.
//
// By default, this creates a `max-heap`, where the element with the largest value
// is at the root. It uses the built-in comparison operators of T (constraints.Ordered).
//
// Notes:
//   - For numeric types (int, float, etc.), the largest value will have the highest priority.
//   - For strings, lexicographically larger strings will have higher priority.
//   - For min-heap behavior, you can either:
//   - Provide negative values for numeric types, or
//   - Use NewBinaryHeapWithComparator with a custom comparator.
func NewBinaryHeap[T constraints.Ordered]() *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp: func(a, b T) bool {
			return a > b
		},
	}
}

// NewBinaryHeapWithComparator creates and returns a new empty BinaryHeap
// with a custom comparator function.
//
// cmp should return true if element a has higher priority than b, which
// allows defining min-heaps, max-heaps, or custom orderings over any T.
func NewBinaryHeapWithComparator[T any](cmp func(a, b T) bool) *BinaryHeap[T] {
	return &BinaryHeap[T]{
		data: make([]T, 0),
		cmp:  cmp,
	}
}

// IsEmpty checks whether the heap contains any elements.
func (bh *BinaryHeap[T]) IsEmpty() bool {
	return len(bh.data) == 0
}

// Clear removes all elements from the heap.
func (bh *BinaryHeap[T]) Clear() {
	bh.data = nil
}

// Size returns the number of elements currently stored in the heap.
func (bh *BinaryHeap[T]) Size() int {
	return len(bh.data)
}

// Peek returns the root element of the heap without removing it.
func (bh *BinaryHeap[T]) Peek() (T, error) {
	var zero T
	if len(bh.data) == 0 {
		return zero, errors.New("heap empty")
	}
	return bh.data[0], nil
}

// Poll removes and returns the root element of the heap.
//
// Complexity: O(log n) due to re-heapification
func (bh *BinaryHeap[T]) Poll() (T, error) {
	var zero T
	if len(bh.data) == 0 {
		return zero, errors.New("heap empty")
	}
	return bh.removeAt(0) // we can only remove the root
}

// removeAt removes the element at index k from the heap and returns it.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) removeAt(k int) (T, error) {
	size := len(bh.data)
	if size == 0 {
		var zero T
		return zero, errors.New("heap empty")
	}
	removed := bh.data[k]
	last := bh.data[size-1]
	bh.data[k] = last
	bh.data = bh.data[:size-1]

	parent := k
	child := 2*parent + 1
	for child < len(bh.data) {
		if child+1 < len(bh.data) && bh.cmp(bh.data[child+1], bh.data[child]) {
			child = child + 1
		}
		if bh.cmp(bh.data[child], bh.data[parent]) {
			bh.swap(child, parent)
			parent = child
			child = 2*parent + 1
		} else {
			break
		}
	}

	return removed, nil
}

// Add inserts a new element into the heap and restores the heap property.
//
// Complexity: O(log n)
func (bh *BinaryHeap[T]) Add(val T) {
	bh.data = append(bh.data, val)
	idxOfLastElem := len(bh.data) - 1
	bh.swim(idxOfLastElem)
}

func (bh *BinaryHeap[T]) swap(i, j int) {
	bh.data[i], bh.data[j] = bh.data[j], bh.data[i]
}

func (bh *BinaryHeap[T]) swim(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if bh.cmp(bh.data[k], bh.data[parent]) {
			bh.swap(k, parent)
			k = parent
		} else {
			break
		}
	}
}

// Sort returns a slice of all elements in the heap in order according to
// the heap's comparator. The original heap remains intact.
//
// Complexity: O(n log n)
func (bh *BinaryHeap[T]) Sort() []T {
	size := len(bh.data)
	copyHeap := make([]T, size)
	copy(copyHeap, bh.data)

	result := make([]T, 0, size)
	tempHeap := &BinaryHeap[T]{
		data: copyHeap,
		cmp:  bh.cmp,
	}

	for i := 0; i < size; i++ {
		v, _ := tempHeap.Poll()
		result = append(result, v)
	}
	return result
}
