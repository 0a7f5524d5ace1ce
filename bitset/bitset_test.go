package bitset_test

import (
	"testing"

	"github.com/katalvlaran/advent/bitset"
	"github.com/stretchr/testify/assert"
)

// TestZerosOnes covers construction and population counts across the
// 64-bit word boundary.
func TestZerosOnes(t *testing.T) {
	for _, width := range []int{1, 63, 64, 65, 130} {
		z := bitset.Zeros(width)
		assert.Equal(t, width, z.Width())
		assert.True(t, z.AllZeros())
		assert.Equal(t, 0, z.OnesCount())

		o := bitset.Ones(width)
		assert.Equal(t, width, o.OnesCount(), "width %d", width)
		assert.Equal(t, 0, o.ZerosCount())
		assert.False(t, o.AllZeros())
	}
}

// TestSetGet flips individual bits on both sides of a word boundary.
func TestSetGet(t *testing.T) {
	s := bitset.Zeros(130)
	for _, idx := range []int{0, 63, 64, 129} {
		s.Set(idx, true)
		assert.True(t, s.Get(idx), "bit %d", idx)
	}
	assert.Equal(t, 4, s.OnesCount())

	s.Set(64, false)
	assert.False(t, s.Get(64))
	assert.Equal(t, 3, s.OnesCount())
}

// TestBooleanAlgebra checks And/Or/Xor/AndNot/Not on a small set.
func TestBooleanAlgebra(t *testing.T) {
	a := bitset.Zeros(8)
	b := bitset.Zeros(8)
	a.Set(1, true)
	a.Set(3, true)
	b.Set(3, true)
	b.Set(5, true)

	assert.Equal(t, "00001010", a.String())
	assert.Equal(t, "00001000", a.And(b).String())
	assert.Equal(t, "00101010", a.Or(b).String())
	assert.Equal(t, "00100010", a.Xor(b).String())
	assert.Equal(t, "00000010", a.AndNot(b).String())
	assert.Equal(t, "11110101", a.Not().String())
}

// TestShifts exercises shifts within and across words.
func TestShifts(t *testing.T) {
	s := bitset.Zeros(130)
	s.Set(0, true)
	s.Set(70, true)

	l := s.ShiftLeft(3)
	assert.True(t, l.Get(3))
	assert.True(t, l.Get(73))
	assert.Equal(t, 2, l.OnesCount())

	r := s.ShiftRight(7)
	assert.True(t, r.Get(63))
	assert.Equal(t, 1, r.OnesCount(), "bit 0 shifted out")

	// Shifting past the width discards bits.
	assert.Equal(t, 0, s.ShiftLeft(131).OnesCount())

	// Whole-word shift (multiple of 64).
	w := s.ShiftLeft(64)
	assert.True(t, w.Get(64))
	assert.Equal(t, 1, w.OnesCount(), "bit 70 lands past the width and is discarded")
}

// TestLeadingTrailingZeros checks both empty and populated sets.
func TestLeadingTrailingZeros(t *testing.T) {
	s := bitset.Zeros(130)
	assert.Equal(t, 130, s.LeadingZeros())
	assert.Equal(t, 130, s.TrailingZeros())

	s.Set(5, true)
	s.Set(100, true)
	assert.Equal(t, 130-1-100, s.LeadingZeros())
	assert.Equal(t, 5, s.TrailingZeros())
}

// TestClone ensures independence of the copy.
func TestClone(t *testing.T) {
	s := bitset.Zeros(10)
	s.Set(2, true)

	c := s.Clone()
	c.Set(2, false)
	assert.True(t, s.Get(2))
	assert.False(t, c.Get(2))
}
