/*
Package intvec provides a growable sequence of 32-bit signed integers.

This is the "dynamic integer-vector container" spec.md declares out of
scope and assumes trivially available: an ordered sequence of int32
supporting append, indexed get/set, and truncation. BASE and CHECK (the two
parallel arrays that encode a double-array trie's topology) are each one
of these.

Algorithm Notes:
  - Backed by a plain Go slice; Grow extends it with zero-valued entries,
    doubling capacity when the backing array must reallocate, following
    the same doubling discipline as the teacher repo's stack and queue
    packages (see stack.Stack.increaseSize, queue.Queue.increaseSize).
  - No internal synchronization: a DATrie is single-threaded by
    construction (spec.md §5), and adding a mutex here would only mask
    that every mutation must already be externally serialized.
*/
package intvec

// Vec is a growable sequence of int32.
type Vec struct {
	data []int32
}

// New returns an empty Vec.
func New() *Vec {
	return &Vec{}
}

// Len returns the number of elements currently stored.
func (v *Vec) Len() int {
	return len(v.data)
}

// Get returns the element at i. Panics if i is out of range; callers in
// this module never index past Len after Grow, so this mirrors a slice's
// own out-of-range panic rather than adding a redundant error return.
func (v *Vec) Get(i int32) int32 {
	return v.data[i]
}

// Set overwrites the element at i. Panics if i is out of range.
func (v *Vec) Set(i int32, val int32) {
	v.data[i] = val
}

// Append adds val to the end of the sequence and returns its new index.
func (v *Vec) Append(val int32) int32 {
	v.data = append(v.data, val)
	return int32(len(v.data) - 1)
}

// Grow extends the sequence with zero values until Len() > limit, i.e.
// index "limit" is guaranteed valid afterwards. A no-op if already large
// enough. Returns the indices newly created, in ascending order, so
// callers that track a free-slot index can register them.
func (v *Vec) Grow(limit int32) []int32 {
	var added []int32
	for int32(len(v.data)) <= limit {
		v.data = append(v.data, 0)
		added = append(added, int32(len(v.data)-1))
	}
	return added
}

// Truncate shrinks the sequence to exactly n elements. A no-op if n >=
// Len(). Used by TrimToSize (spec.md §5) to drop physically allocated but
// logically out-of-trie tail space after construction.
func (v *Vec) Truncate(n int32) {
	if int(n) < len(v.data) {
		v.data = v.data[:n]
	}
}

// Slice returns the backing elements as a plain slice. The returned slice
// aliases internal storage and must be treated as read-only by the
// caller.
func (v *Vec) Slice() []int32 {
	return v.data
}
