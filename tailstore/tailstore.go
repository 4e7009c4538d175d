/*
Package tailstore holds the suffix strings a DATrie's leaves point at.

A leaf node n with BASE[n] < 0 points at tail position p = -BASE[n]; the
entry at p is the remaining characters of the inserted key (including the
endmarker), collapsing a long non-branching chain of trie edges into a
single stored string (spec.md §3, §4.6).

A tail entry is either a non-empty string whose last rune is the
endmarker, or the sentinel "null" meaning the node's incoming edge was
itself labelled by the endmarker and the word is exactly the path walked
so far (§4.6).

Algorithm Notes:
  - Position 0 is unused, matching BASE/CHECK's own reserved index 0.
  - Growable by append, same doubling discipline as intvec and as the
    teacher repo's queue.Queue.increaseSize.
*/
package tailstore

// entry is one tail slot: either a concrete suffix or the null sentinel.
type entry struct {
	suffix []int32
	isNull bool
	valid  bool // false only for the reserved position 0 and never-written holes
}

// Store is the ordered sequence of tail suffixes, indexed from 1.
type Store struct {
	entries []entry
}

// New returns an empty Store with position 0 reserved and unused.
func New() *Store {
	return &Store{entries: []entry{{}}}
}

// Append adds a new tail entry (a concrete offset suffix, or the null
// sentinel if suffix is empty) and returns its 1-based position.
func (s *Store) Append(suffix []int32) int32 {
	s.entries = append(s.entries, makeEntry(suffix))
	return int32(len(s.entries) - 1)
}

// Overwrite replaces the entry at an existing 1-based position.
func (s *Store) Overwrite(pos int32, suffix []int32) {
	s.entries[pos] = makeEntry(suffix)
}

func makeEntry(suffix []int32) entry {
	if len(suffix) == 0 {
		return entry{isNull: true, valid: true}
	}
	cp := make([]int32, len(suffix))
	copy(cp, suffix)
	return entry{suffix: cp, valid: true}
}

// Get returns the suffix stored at pos (nil for the null sentinel) and
// whether the position holds a defined (non-hole) entry.
func (s *Store) Get(pos int32) (suffix []int32, isNull bool, ok bool) {
	if pos <= 0 || int(pos) >= len(s.entries) {
		return nil, false, false
	}
	e := s.entries[pos]
	return e.suffix, e.isNull, e.valid
}

// Len returns the number of allocated slots, including the reserved slot
// 0 and any never-written holes below the highest appended position.
func (s *Store) Len() int {
	return len(s.entries)
}
