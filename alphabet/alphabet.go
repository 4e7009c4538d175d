/*
Package alphabet maps the fixed symbol set a DATrie accepts onto the small
contiguous range of integer offsets the double array indexes children by.

The alphabet is a contiguous run of A symbols (default 26, one English
case) plus one distinguished endmarker appended to every inserted key so
that no stored key is a prefix of another. Symbols map to offsets in
[1, A+1]; offset 0 is reserved and never assigned to a real symbol.

Use Cases:
  - Translating an inserted word's bytes into the offsets the double array
    indexes children by, one offset per BASE/CHECK transition.
  - Reconstructing the original bytes of a word from a walked path of
    offsets (used by StartsWith, Match, Permute, and Query to compose the
    words they emit).
*/
package alphabet

import "fmt"

// reservedOffset is offset 0, which no symbol (and not the endmarker)
// ever maps to.
const reservedOffset = 0

// Alphabet fixes the symbol range [firstLetter, firstLetter+Size) accepted
// by a DATrie and the offsets its symbols (plus the endmarker) map to.
type Alphabet struct {
	size        int
	firstLetter byte
}

// New returns an Alphabet of the given size anchored at 'a' (ASCII lower
// case), matching spec's default of 26 English letters when size == 26.
// Returns an error if size is not positive.
func New(size int) (Alphabet, error) {
	if size <= 0 {
		return Alphabet{}, fmt.Errorf("alphabet: size must be positive, got %d", size)
	}
	return Alphabet{size: size, firstLetter: 'a'}, nil
}

// Size returns the number of non-endmarker symbols this alphabet accepts.
func (a Alphabet) Size() int {
	return a.size
}

// End returns the endmarker offset, A+1.
func (a Alphabet) End() int32 {
	return int32(a.size + 1)
}

// Offset maps a byte of an inserted word to its double-array offset.
// Returns an error if ch falls outside the configured symbol range; the
// recommended (§7) choice is to reject rather than produce an undefined
// offset.
func (a Alphabet) Offset(ch byte) (int32, error) {
	if ch < a.firstLetter || int(ch-a.firstLetter) >= a.size {
		return 0, fmt.Errorf("alphabet: symbol %q outside configured range", ch)
	}
	return int32(ch-a.firstLetter) + 1, nil
}

// MustOffset panics on an out-of-range symbol. Reserved for callers that
// have already validated the symbol (e.g. iterating 1..A to enumerate
// every real symbol in ascending order).
func (a Alphabet) MustOffset(ch byte) int32 {
	off, err := a.Offset(ch)
	if err != nil {
		panic(err)
	}
	return off
}

// CharFromOffset is the inverse of Offset: given a child offset in
// [1, A+1], returns the symbol it represents, or ok=false for the
// endmarker (offset A+1) or for offset 0 (unused).
func (a Alphabet) CharFromOffset(k int32) (ch byte, ok bool) {
	if k <= reservedOffset || k > a.End() {
		return 0, false
	}
	if k == a.End() {
		return 0, false
	}
	return a.firstLetter + byte(k-1), true
}

// OffsetsInOrder returns every real-symbol offset (excluding the
// endmarker) from 1 to A, ascending. The datrie query routines do not
// call it; they loop over the same offset range directly.
func (a Alphabet) OffsetsInOrder() []int32 {
	out := make([]int32, a.size)
	for i := range out {
		out[i] = int32(i + 1)
	}
	return out
}

// Encode appends the endmarker to w and maps every byte (the word's bytes
// plus the endmarker) to its offset. Returns an error and no partial
// result if any byte of w falls outside the alphabet.
func (a Alphabet) Encode(w string) ([]int32, error) {
	out := make([]int32, len(w)+1)
	for i := 0; i < len(w); i++ {
		off, err := a.Offset(w[i])
		if err != nil {
			return nil, err
		}
		out[i] = off
	}
	out[len(w)] = a.End()
	return out, nil
}

// EncodeRaw maps every byte of w to its offset without appending the
// endmarker. Used for prefix lookups (startsWith), where w names a
// position in the trie rather than a complete stored key.
func (a Alphabet) EncodeRaw(w string) ([]int32, error) {
	out := make([]int32, len(w))
	for i := 0; i < len(w); i++ {
		off, err := a.Offset(w[i])
		if err != nil {
			return nil, err
		}
		out[i] = off
	}
	return out, nil
}
