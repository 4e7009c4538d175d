package datrie

// minMax returns the smallest and largest value in a non-empty offset set.
func minMax(offsets []int32) (min, max int32) {
	min, max = offsets[0], offsets[0]
	for _, c := range offsets[1:] {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return min, max
}

// fitsAt reports whether base q can host every offset in offsets without
// colliding with an existing occupant, i.e. CHECK[q+c] = 0 for all c.
func (t *Trie) fitsAt(q int32, offsets []int32) bool {
	for _, c := range offsets {
		if t.check.Get(q+c) != 0 {
			return false
		}
	}
	return true
}

// xCheck finds the smallest base q > 0 such that q+c is free for every
// offset c in offsets, growing the arrays when the currently known free
// slots are exhausted (spec.md §4.3).
func (t *Trie) xCheck(offsets []int32) int32 {
	m, M := minMax(offsets)
	examined := 0
	for {
		candidates := t.free.Ascending()
		if examined >= len(candidates) {
			// No known free slot works; append a fresh block sized to fit
			// the whole offset range and use it directly. When the arrays
			// are still shorter than m, the block starts at base 1 instead,
			// which still places every q+c past the old end.
			oldSize := int32(t.base.Len())
			q := oldSize - m
			if q < 1 {
				q = 1
			}
			t.ensureReachable(q + M)
			if q <= 0 {
				panic("datrie: xCheck found no valid base (internal consistency violation)")
			}
			return q
		}
		f := candidates[examined]
		q := f - m
		if q <= 0 {
			examined++
			continue
		}
		limit := q + M
		if limit >= int32(t.base.Len()) {
			t.ensureReachable(limit)
			// Array grew; the free-slot snapshot may have gained new
			// members past what we've already examined. Retry the same
			// candidate now that there's room to check it.
			continue
		}
		if t.fitsAt(q, offsets) {
			return q
		}
		examined++
	}
}

// modify relocates h's children (whose offsets are origOffsets, computed
// before any mutation) to a newly found base, freeing up the offset
// addOffset at h's current base for the caller to use. current is the
// node the caller is really tracking; if it happens to be one of h's
// children, modify returns its new position (spec.md §4.4).
func (t *Trie) modify(current, h, addOffset int32, origOffsets []int32) int32 {
	oldBase := t.base.Get(h)
	var target []int32
	if addOffset != 0 {
		target = make([]int32, 0, len(origOffsets)+1)
		target = append(target, origOffsets...)
		target = append(target, addOffset)
	} else {
		target = origOffsets
	}
	newBase := t.xCheck(target)
	t.setBase(h, newBase)

	if len(origOffsets) == 0 {
		return current
	}

	end := t.alpha.End()
	for _, c := range origOffsets {
		oldNode := oldBase + c
		newNode := newBase + c

		childBase := t.base.Get(oldNode)
		t.setBase(newNode, childBase)
		t.setCheck(newNode, h)

		if childBase > 0 {
			// oldNode's own children point back at it via CHECK; they
			// must now point at newNode instead.
			t.ensureReachable(childBase + end)
			for k := int32(1); k <= end; k++ {
				if t.check.Get(childBase+k) == oldNode {
					t.setCheck(childBase+k, newNode)
				}
			}
		}

		if current == oldNode {
			current = newNode
		}

		t.setBase(oldNode, 0)
		t.setCheck(oldNode, 0)
	}
	return current
}

// insertStringInTail creates (or overwrites) the leaf reached by
// following s[0] as an edge from fromNode, storing s[1:] as its tail (or
// the null sentinel if len(s) == 1). replacePos == 0 appends a new tail
// slot; otherwise the existing slot |replacePos| is overwritten
// (spec.md §4.7).
func (t *Trie) insertStringInTail(fromNode int32, s []int32, replacePos int32) {
	edge := s[0]
	leaf := t.base.Get(fromNode) + edge
	t.ensureReachable(leaf)
	t.setCheck(leaf, fromNode)

	content := s[1:]
	var pos int32
	if replacePos == 0 {
		pos = t.tail.Append(content)
	} else {
		pos = replacePos
		t.tail.Overwrite(pos, content)
	}
	t.setBase(leaf, -pos)
}

// Insert adds w to the trie. A no-op (not an error) if w is already
// present. Returns an error if w contains a byte outside the configured
// alphabet.
func (t *Trie) Insert(w string) error {
	offsets, err := t.alpha.Encode(w)
	if err != nil {
		return err
	}

	cur := root
	i := 0
	for i < len(offsets) {
		if t.base.Get(cur) <= 0 {
			break
		}
		next := t.base.Get(cur) + offsets[i]
		t.ensureReachable(next)
		if next >= t.daSize() || t.check.Get(next) != cur {
			t.aInsert(cur, offsets, i)
			return nil
		}
		cur = next
		i++
	}
	if i == len(offsets) {
		return nil // already present
	}
	t.bInsert(cur, offsets, i)
	return nil
}

// aInsert handles divergence at a branching node: offsets[i] has no edge
// from cur yet, either because the target slot is unoccupied or because
// it belongs to some other node k's subtree (spec.md §4.5 step 3).
func (t *Trie) aInsert(cur int32, offsets []int32, i int) {
	ch := offsets[i]
	next := t.base.Get(cur) + ch
	t.ensureReachable(next)

	if t.check.Get(next) == 0 {
		t.insertStringInTail(cur, offsets[i:], 0)
		t.wordCount++
		return
	}

	k := t.check.Get(next)
	childrenOfCur := t.childOffsets(cur)
	childrenOfK := t.childOffsets(k)

	// Smaller-family-wins: relocate whichever of cur or k has fewer
	// children to move.
	if len(childrenOfCur)+1 < len(childrenOfK) {
		cur = t.modify(cur, cur, ch, childrenOfCur)
	} else {
		cur = t.modify(cur, k, 0, childrenOfK)
	}

	t.insertStringInTail(cur, offsets[i:], 0)
	t.wordCount++
}

// bInsert handles divergence inside a leaf's tail: cur is a leaf
// (BASE[cur] < 0) and offsets[i:] is the unconsumed remainder of the key
// being inserted (spec.md §4.5 step 4).
func (t *Trie) bInsert(cur int32, offsets []int32, i int) {
	R := offsets[i:]
	oldPos := -t.base.Get(cur)
	T, isNull, _ := t.tail.Get(oldPos)
	if isNull {
		T = nil
	}
	if equalOffsets(R, T) {
		return // already present
	}

	p := 0
	for p < len(R) && p < len(T) && R[p] == T[p] {
		p++
	}

	// Walk the shared prefix P as a chain of single-child branching
	// nodes, one xCheck call per character.
	for idx := 0; idx < p; idx++ {
		c := R[idx]
		newBase := t.xCheck([]int32{c})
		t.setBase(cur, newBase)
		next := newBase + c
		t.ensureReachable(next)
		t.setCheck(next, cur)
		cur = next
	}

	rSuf := R[p:]
	tSuf := T[p:]

	var splitOffsets []int32
	if len(rSuf) > 0 {
		splitOffsets = append(splitOffsets, rSuf[0])
	}
	if len(tSuf) > 0 {
		splitOffsets = append(splitOffsets, tSuf[0])
	}
	newBase := t.xCheck(splitOffsets)
	t.setBase(cur, newBase)

	if len(tSuf) > 0 {
		t.insertStringInTail(cur, tSuf, oldPos)
	}
	if len(rSuf) > 0 {
		t.insertStringInTail(cur, rSuf, 0)
	}
	t.wordCount++
}
