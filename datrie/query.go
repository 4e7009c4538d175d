package datrie

import (
	"strings"

	"github.com/kestrelcode/datrie/deque"
	"github.com/kestrelcode/datrie/priorityqueue"
	"github.com/kestrelcode/datrie/queue"
	"github.com/kestrelcode/datrie/set"
	"github.com/kestrelcode/datrie/stack"
)

// composeWord appends the symbols of tail (skipping the trailing
// endmarker, if any) to prefix, producing the full word a leaf reached
// via prefix represents.
func (t *Trie) composeWord(prefix string, tail []int32) string {
	if len(tail) == 0 {
		return prefix
	}
	buf := make([]byte, 0, len(prefix)+len(tail))
	buf = append(buf, prefix...)
	for _, off := range tail {
		if ch, ok := t.alpha.CharFromOffset(off); ok {
			buf = append(buf, ch)
		}
	}
	return string(buf)
}

// sortWords returns words ordered ascending, via the shared binary heap
// wiring (spec.md §4.8 leaves output order "unspecified but deterministic"
// for startsWith, permute, and query; lexicographic ascending is the
// order this module picks for all three).
func sortWords(words []string) []string {
	h := priorityqueue.NewBinaryHeapWithComparator(func(a, b string) bool {
		return a < b
	})
	for _, w := range words {
		h.Add(w)
	}
	return h.Sort()
}

// Contains reports whether w has been inserted. Returns an error if w
// contains a byte outside the configured alphabet.
func (t *Trie) Contains(w string) (bool, error) {
	offsets, err := t.alpha.Encode(w)
	if err != nil {
		return false, err
	}

	cur := root
	i := 0
	for i < len(offsets) && t.base.Get(cur) > 0 {
		next := t.base.Get(cur) + offsets[i]
		if next >= t.daSize() || t.check.Get(next) != cur {
			return false, nil
		}
		cur = next
		i++
	}
	if i == len(offsets) {
		return true, nil
	}
	if t.base.Get(cur) >= 0 {
		return false, nil
	}
	pos := -t.base.Get(cur)
	T, isNull, ok := t.tail.Get(pos)
	if !ok {
		return false, nil
	}
	if isNull {
		T = nil
	}
	return equalOffsets(offsets[i:], T), nil
}

// StartsWith returns every stored word beginning with prefix, ascending
// lexicographically. Returns an error if prefix contains a byte outside
// the configured alphabet.
func (t *Trie) StartsWith(prefix string) ([]string, error) {
	pOffsets, err := t.alpha.EncodeRaw(prefix)
	if err != nil {
		return nil, err
	}

	cur := root
	i := 0
	for i < len(pOffsets) && t.base.Get(cur) > 0 {
		next := t.base.Get(cur) + pOffsets[i]
		if next >= t.daSize() || t.check.Get(next) != cur {
			return nil, nil
		}
		cur = next
		i++
	}

	if i < len(pOffsets) {
		// Prefix runs out in the middle of a leaf's tail: at most one word
		// can possibly match, if the leaf's tail starts with what's left.
		if t.base.Get(cur) >= 0 {
			return nil, nil
		}
		pos := -t.base.Get(cur)
		T, isNull, ok := t.tail.Get(pos)
		if !ok {
			return nil, nil
		}
		if isNull {
			T = nil
		}
		remain := pOffsets[i:]
		if len(remain) > len(T) {
			return nil, nil
		}
		for k, c := range remain {
			if T[k] != c {
				return nil, nil
			}
		}
		return []string{t.composeWord(prefix[:i], T)}, nil
	}

	type frame struct {
		node int32
		path string
	}
	var results []string
	q := queue.NewQueue[frame]()
	q.Enqueue(frame{node: cur, path: prefix})
	end := t.alpha.End()
	for !q.IsEmpty() {
		f, err := q.Dequeue()
		if err != nil {
			break
		}
		base := t.base.Get(f.node)
		if base < 0 {
			pos := -base
			T, isNull, ok := t.tail.Get(pos)
			if ok {
				if isNull {
					T = nil
				}
				results = append(results, t.composeWord(f.path, T))
			}
			continue
		}
		if base == 0 {
			continue
		}
		for c := int32(1); c <= end; c++ {
			next := base + c
			if next >= t.daSize() || t.check.Get(next) != f.node {
				continue
			}
			path := f.path
			if ch, ok := t.alpha.CharFromOffset(c); ok {
				path = f.path + string(ch)
			}
			q.Enqueue(frame{node: next, path: path})
		}
	}
	return sortWords(results), nil
}

// Words returns every stored word, ascending lexicographically.
func (t *Trie) Words() ([]string, error) {
	return t.StartsWith("")
}

// Match scans text left to right and returns every stored word
// appearing as a substring, in the order each match is found (the
// position it starts at, then the position it ends at). Unlike
// StartsWith, Permute, and Query, this ordering is mandated by spec.md
// §6 rather than left to this module's discretion, so Match does not
// route its output through sortWords.
func (t *Trie) Match(text string) ([]string, error) {
	var results []string
	for start := 0; start < len(text); start++ {
		cur := root
		j := start
		for {
			base := t.base.Get(cur)
			if base > 0 {
				endPos := base + t.alpha.End()
				if endPos < t.daSize() && t.check.Get(endPos) == cur {
					results = append(results, text[start:j])
				}
			} else if base < 0 {
				pos := -base
				T, isNull, ok := t.tail.Get(pos)
				if ok {
					if isNull {
						T = nil
					}
					word := t.composeWord("", T)
					if strings.HasPrefix(text[j:], word) {
						results = append(results, text[start:j]+word)
					}
				}
				break
			} else {
				break
			}
			if j >= len(text) {
				break
			}
			off, err := t.alpha.Offset(text[j])
			if err != nil {
				break
			}
			next := base + off
			if next >= t.daSize() || t.check.Get(next) != cur {
				break
			}
			cur = next
			j++
		}
	}
	return results, nil
}

// subMultiset reports whether every non-endmarker offset in T is
// available, with enough multiplicity, among remaining's current
// contents. remaining is rotated through but left unchanged.
func (t *Trie) subMultiset(T []int32, remaining *deque.Deque[int32]) bool {
	need := map[int32]int{}
	for _, off := range T {
		if off == t.alpha.End() {
			continue
		}
		need[off]++
	}
	if len(need) == 0 {
		return true
	}
	n := remaining.Size()
	have := map[int32]int{}
	for i := 0; i < n; i++ {
		val, _ := remaining.PollFirst()
		have[val]++
		remaining.OfferLast(val)
	}
	for off, count := range need {
		if have[off] < count {
			return false
		}
	}
	return true
}

// permuteChildren tries every distinct offset currently available in
// remaining that has an edge from node, recursing with that offset
// removed for the duration of the call and restored on the way back out
// (spec.md §4.8 permute).
func (t *Trie) permuteChildren(node int32, remaining *deque.Deque[int32], path string, results *[]string) {
	tried := set.NewUnorderedSet[int32]()
	n := remaining.Size()
	for i := 0; i < n; i++ {
		val, _ := remaining.PollFirst()
		if tried.Contain(val) {
			remaining.OfferLast(val)
			continue
		}
		tried.Insert(val)

		base := t.base.Get(node)
		next := base + val
		if next < t.daSize() && t.check.Get(next) == node {
			childPath := path
			if ch, ok := t.alpha.CharFromOffset(val); ok {
				childPath = path + string(ch)
			}
			t.permuteRec(next, childPath, remaining, results)
		}
		remaining.OfferLast(val)
	}
}

func (t *Trie) permuteRec(node int32, path string, remaining *deque.Deque[int32], results *[]string) {
	base := t.base.Get(node)
	if base < 0 {
		pos := -base
		T, isNull, ok := t.tail.Get(pos)
		if ok {
			if isNull {
				T = nil
			}
			if t.subMultiset(T, remaining) {
				*results = append(*results, t.composeWord(path, T))
			}
		}
		return
	}
	if base == 0 {
		return
	}
	// A word that ends here hangs off the endmarker edge, which consumes
	// no letter.
	if next := base + t.alpha.End(); next < t.daSize() && t.check.Get(next) == node {
		t.permuteRec(next, path, remaining, results)
	}
	t.permuteChildren(node, remaining, path, results)
}

// Permute returns every stored word that can be spelled using each byte
// of letters at most as many times as it appears in letters, ascending
// lexicographically. Returns an error if letters contains a byte outside
// the configured alphabet.
func (t *Trie) Permute(letters string) ([]string, error) {
	offsets := make([]int32, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		off, err := t.alpha.Offset(letters[i])
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, off)
	}

	remaining := deque.NewDeque[int32]()
	for _, off := range offsets {
		remaining.OfferLast(off)
	}

	var results []string
	t.permuteRec(root, "", remaining, &results)
	return sortWords(results), nil
}

// qFrame is one pending node in Query's explicit DFS stack.
type qFrame struct {
	node int32
	path string
	pos  int
}

// Query returns every stored word matching expr, where '?' matches any
// single symbol (never the endmarker) and every other byte must match
// literally; the result word's length must equal len(expr) exactly.
// Returns an error if expr contains a byte outside the configured
// alphabet (other than '?').
func (t *Trie) Query(expr string) ([]string, error) {
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' {
			continue
		}
		if _, err := t.alpha.Offset(expr[i]); err != nil {
			return nil, err
		}
	}

	var results []string
	st := stack.NewStack[qFrame]()
	st.Push(qFrame{node: root, path: "", pos: 0})
	alphaSize := int32(t.alpha.Size())

	for !st.IsEmpty() {
		f, err := st.Pop()
		if err != nil {
			break
		}
		base := t.base.Get(f.node)

		if base < 0 {
			pos := -base
			T, isNull, ok := t.tail.Get(pos)
			if !ok {
				continue
			}
			if isNull {
				T = nil
			}
			word := t.composeWord(f.path, T)
			if len(word) != len(expr) {
				continue
			}
			match := true
			for k := f.pos; k < len(expr); k++ {
				if expr[k] != '?' && expr[k] != word[k] {
					match = false
					break
				}
			}
			if match {
				results = append(results, word)
			}
			continue
		}
		if base == 0 {
			continue
		}

		if f.pos >= len(expr) {
			// No literal positions left to satisfy; only a word ending
			// exactly here (via the endmarker edge) can still match.
			next := base + t.alpha.End()
			if next < t.daSize() && t.check.Get(next) == f.node {
				st.Push(qFrame{node: next, path: f.path, pos: f.pos})
			}
			continue
		}

		ch := expr[f.pos]
		if ch == '?' {
			for c := int32(1); c <= alphaSize; c++ {
				next := base + c
				if next >= t.daSize() || t.check.Get(next) != f.node {
					continue
				}
				letter, _ := t.alpha.CharFromOffset(c)
				st.Push(qFrame{node: next, path: f.path + string(letter), pos: f.pos + 1})
			}
			continue
		}

		off, err := t.alpha.Offset(ch)
		if err != nil {
			continue
		}
		next := base + off
		if next >= t.daSize() || t.check.Get(next) != f.node {
			continue
		}
		st.Push(qFrame{node: next, path: f.path + string(ch), pos: f.pos + 1})
	}
	return sortWords(results), nil
}

// TrimToSize truncates BASE and CHECK to DA_SIZE and drops any free-slot
// entries beyond it, releasing physically allocated but logically
// out-of-trie space (spec.md §5). Safe to call at any point; a later
// Insert simply grows the arrays again as needed.
func (t *Trie) TrimToSize() {
	size := t.daSize()
	t.base.Truncate(size)
	t.check.Truncate(size)
	for _, f := range t.free.Ascending() {
		if f >= size {
			t.free.Remove(f)
		}
	}
}
