/*
Package datrie implements Aoe's double-array trie with tail compression: a
compact, construction-time-mutable trie where each node's transitions are
encoded in two parallel int32 arrays (BASE, CHECK) instead of per-node
child maps, and long non-branching suffix chains collapse into a single
stored tail entry instead of a chain of single-child nodes.

A Trie wires together four narrower collaborators, each its own package:
alphabet (symbol <-> offset mapping), intvec (the BASE/CHECK backing
storage), tailstore (suffix storage for leaves), and freeset (the ordered
index of unused double-array slots that the relocation search walks).

A Trie is single-threaded: no method takes a lock, and Insert must not run
concurrently with any other method, including read-only queries.
*/
package datrie

import (
	"github.com/kestrelcode/datrie/alphabet"
	"github.com/kestrelcode/datrie/freeset"
	"github.com/kestrelcode/datrie/intvec"
	"github.com/kestrelcode/datrie/tailstore"
)

// root is the fixed index of the trie's root node. Index 0 is never used.
const root int32 = 1

// Trie is a double-array trie with tail compression over a fixed
// alphabet. The zero value is not usable; construct with New.
type Trie struct {
	alpha alphabet.Alphabet
	base  *intvec.Vec
	check *intvec.Vec
	tail  *tailstore.Store
	free  *freeset.Set

	wordCount int
}

// New returns an empty Trie accepting the given alphabet size, anchored
// at 'a' (ASCII lower case) as alphabet.New does. Returns an error if
// size is not positive.
func New(size int) (*Trie, error) {
	alpha, err := alphabet.New(size)
	if err != nil {
		return nil, err
	}
	t := &Trie{
		alpha: alpha,
		base:  intvec.New(),
		check: intvec.New(),
		tail:  tailstore.New(),
		free:  freeset.New(),
	}
	t.base.Grow(root)
	t.check.Grow(root)
	// BASE[root] := root's own base (1); this also bumps DA_SIZE to 2 via
	// setBase's side effect, since CHECK[1] is overloaded to hold it.
	t.setBase(root, 1)
	return t, nil
}

// daSize returns DA_SIZE, the exclusive upper bound of indices considered
// "inside the trie". It is stored overloaded in CHECK[1] (spec.md §3),
// since index 1 (the root) never needs a real CHECK value.
func (t *Trie) daSize() int32 {
	return t.check.Get(root)
}

// Len returns the number of distinct words currently stored.
func (t *Trie) Len() int {
	return t.wordCount
}

// IsEmpty reports whether the trie holds no words.
func (t *Trie) IsEmpty() bool {
	return t.wordCount == 0
}

// ensureReachable grows BASE and CHECK, if needed, so that index limit is
// valid, and registers every newly created index (other than 0 and the
// root) as free.
func (t *Trie) ensureReachable(limit int32) {
	added := t.base.Grow(limit)
	t.check.Grow(limit)
	for _, idx := range added {
		if idx >= 2 {
			t.free.Add(idx)
		}
	}
}

// setBase writes BASE[i] and maintains the free-slot index and DA_SIZE
// accordingly (spec.md §4.2): a zero value frees the slot, a non-zero
// value claims it and extends DA_SIZE to cover i if needed.
func (t *Trie) setBase(i, v int32) {
	t.base.Set(i, v)
	if i >= 2 {
		if v == 0 {
			t.free.Add(i)
		} else {
			t.free.Remove(i)
		}
	}
	if v != 0 {
		if next := i + 1; next > t.check.Get(root) {
			t.check.Set(root, next)
		}
	}
}

// setCheck writes CHECK[i] and maintains the free-slot index
// symmetrically. Index 1 is the root and never a free-slot candidate;
// CHECK[1] holds DA_SIZE, written directly by setBase instead.
func (t *Trie) setCheck(i, v int32) {
	t.check.Set(i, v)
	if i < 2 {
		return
	}
	if v == 0 {
		t.free.Add(i)
	} else {
		t.free.Remove(i)
	}
}

// childOffsets returns the offsets c in [1, A+1] for which n has an
// existing child, i.e. BASE[n]+c < DA_SIZE and CHECK[BASE[n]+c] = n.
func (t *Trie) childOffsets(n int32) []int32 {
	base := t.base.Get(n)
	if base <= 0 {
		return nil
	}
	var out []int32
	end := t.alpha.End()
	size := int32(t.check.Len())
	da := t.daSize()
	for c := int32(1); c <= end; c++ {
		pos := base + c
		if pos >= size || pos >= da {
			continue
		}
		if t.check.Get(pos) == n {
			out = append(out, c)
		}
	}
	return out
}

// equalOffsets reports whether two offset sequences hold the same values
// in the same order; nil and an empty slice compare equal.
func equalOffsets(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
