// Package bitset implements an arbitrary-width bit vector backed by
// []uint64 words.
//
// What:
//
//   - BitSet: a fixed-width vector of bits with boolean algebra
//     (And/Or/Xor/AndNot/Not), whole-set shifts, and population
//     queries (OnesCount, LeadingZeros, TrailingZeros).
//
// Why:
//
//   - Compact visited/occupancy masks for simulation days where a
//     map[...]bool would dominate the runtime.
//
// All binary operations require operands of equal width.
// Complexity: every operation is O(width/64).
package bitset

import (
	"math/bits"
	"strings"
)

const wordWidth = 64

// BitSet is a vector of width bits. Bit 0 is the least significant bit
// of the first word. The zero value is an empty, zero-width set.
type BitSet struct {
	words []uint64
	width int
}

// Zeros returns a set of width bits, all cleared.
func Zeros(width int) *BitSet {
	return &BitSet{width: width, words: make([]uint64, 1+width/wordWidth)}
}

// Ones returns a set of width bits, all set.
func Ones(width int) *BitSet {
	s := Zeros(width)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.clearUnused()

	return s
}

// Width returns the number of bits in the set.
func (s *BitSet) Width() int { return s.width }

// Get returns the bit at index. index must be < Width.
func (s *BitSet) Get(index int) bool {
	return s.words[index/wordWidth]&(1<<(index%wordWidth)) != 0
}

// Set writes the bit at index. index must be < Width.
func (s *BitSet) Set(index int, bit bool) {
	if bit {
		s.words[index/wordWidth] |= 1 << (index % wordWidth)
	} else {
		s.words[index/wordWidth] &^= 1 << (index % wordWidth)
	}
}

// Clone returns an independent copy of s.
func (s *BitSet) Clone() *BitSet {
	out := &BitSet{width: s.width, words: make([]uint64, len(s.words))}
	copy(out.words, s.words)

	return out
}

// And returns s & o. Widths must match.
func (s *BitSet) And(o *BitSet) *BitSet { return s.binary(o, func(a, b uint64) uint64 { return a & b }) }

// Or returns s | o. Widths must match.
func (s *BitSet) Or(o *BitSet) *BitSet { return s.binary(o, func(a, b uint64) uint64 { return a | b }) }

// Xor returns s ^ o. Widths must match.
func (s *BitSet) Xor(o *BitSet) *BitSet { return s.binary(o, func(a, b uint64) uint64 { return a ^ b }) }

// AndNot returns s &^ o. Widths must match.
func (s *BitSet) AndNot(o *BitSet) *BitSet {
	return s.binary(o, func(a, b uint64) uint64 { return a &^ b })
}

// Not returns the bitwise complement of s.
func (s *BitSet) Not() *BitSet {
	out := s.Clone()
	for i := range out.words {
		out.words[i] = ^out.words[i]
	}
	out.clearUnused()

	return out
}

// ShiftLeft returns s shifted toward higher bit indexes by n.
// Bits shifted past Width are discarded.
func (s *BitSet) ShiftLeft(n int) *BitSet {
	skip, shift := n/wordWidth, uint(n%wordWidth)
	out := Zeros(s.width)
	for i := len(out.words) - 1; i >= 0; i-- {
		if i-skip < 0 {
			break
		}
		out.words[i] = s.words[i-skip] << shift
		if shift > 0 && i-skip-1 >= 0 {
			out.words[i] |= s.words[i-skip-1] >> (wordWidth - shift)
		}
	}
	out.clearUnused()

	return out
}

// ShiftRight returns s shifted toward lower bit indexes by n.
func (s *BitSet) ShiftRight(n int) *BitSet {
	skip, shift := n/wordWidth, uint(n%wordWidth)
	out := Zeros(s.width)
	for i := 0; i < len(out.words); i++ {
		if i+skip >= len(s.words) {
			break
		}
		out.words[i] = s.words[i+skip] >> shift
		if shift > 0 && i+skip+1 < len(s.words) {
			out.words[i] |= s.words[i+skip+1] << (wordWidth - shift)
		}
	}

	return out
}

// AllZeros reports whether every bit is cleared.
func (s *BitSet) AllZeros() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// OnesCount returns the number of set bits.
func (s *BitSet) OnesCount() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// ZerosCount returns the number of cleared bits.
func (s *BitSet) ZerosCount() int { return s.width - s.OnesCount() }

// LeadingZeros returns the number of cleared bits above the highest set
// bit, or Width when the set is all zeros.
func (s *BitSet) LeadingZeros() int {
	for i := len(s.words) - 1; i >= 0; i-- {
		if s.words[i] == 0 {
			continue
		}
		top := i*wordWidth + (wordWidth - bits.LeadingZeros64(s.words[i])) - 1

		return s.width - 1 - top
	}

	return s.width
}

// TrailingZeros returns the number of cleared bits below the lowest set
// bit, or Width when the set is all zeros.
func (s *BitSet) TrailingZeros() int {
	for i, w := range s.words {
		if w != 0 {
			return i*wordWidth + bits.TrailingZeros64(w)
		}
	}

	return s.width
}

// String renders the set most significant bit first.
func (s *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(s.width)
	for i := s.width - 1; i >= 0; i-- {
		if s.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// binary applies op word-wise. Widths must match; violations panic the
// same way an out-of-range slice index would.
func (s *BitSet) binary(o *BitSet, op func(a, b uint64) uint64) *BitSet {
	if s.width != o.width {
		panic("bitset: width mismatch")
	}
	out := Zeros(s.width)
	for i := range s.words {
		out.words[i] = op(s.words[i], o.words[i])
	}

	return out
}

// clearUnused forces the bits above Width to zero.
func (s *BitSet) clearUnused() {
	rem := s.width % wordWidth
	s.words[len(s.words)-1] &= ^(^uint64(0) << rem)
}
