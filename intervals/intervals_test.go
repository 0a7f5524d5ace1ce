package intervals_test

import (
	"testing"

	"github.com/katalvlaran/advent/intervals"
	"github.com/stretchr/testify/assert"
)

// TestSpanOps covers overlap, union and intersection of single spans.
func TestSpanOps(t *testing.T) {
	a := intervals.Span{Lo: 0, Hi: 4}
	b := intervals.Span{Lo: 3, Hi: 8}
	c := intervals.Span{Lo: 6, Hi: 7}

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))

	u, ok := a.Union(b)
	assert.True(t, ok)
	assert.Equal(t, intervals.Span{Lo: 0, Hi: 8}, u)

	_, ok = a.Union(c)
	assert.False(t, ok)

	x, ok := a.Intersect(b)
	assert.True(t, ok)
	assert.Equal(t, intervals.Span{Lo: 3, Hi: 4}, x)

	assert.Equal(t, 5, a.Len())
}

// TestSetAdd exercises fusing on the left, right, middle and across gaps.
func TestSetAdd(t *testing.T) {
	var s intervals.Set
	s.Add(intervals.Span{Lo: 0, Hi: 2})
	s.Add(intervals.Span{Lo: 6, Hi: 8})
	assert.Equal(t, 2, s.Disjoint())
	assert.Equal(t, 6, s.Len())

	// Touching overlap fuses with the left span only.
	s.Add(intervals.Span{Lo: 2, Hi: 3})
	assert.Equal(t, 2, s.Disjoint())
	assert.Equal(t, []intervals.Span{{Lo: 0, Hi: 3}, {Lo: 6, Hi: 8}}, s.Spans())

	// Bridging span fuses everything into one.
	s.Add(intervals.Span{Lo: 3, Hi: 7})
	assert.Equal(t, 1, s.Disjoint())
	assert.Equal(t, 9, s.Len())
}

// TestSetContains checks membership across span boundaries.
func TestSetContains(t *testing.T) {
	var s intervals.Set
	s.Add(intervals.Span{Lo: -3, Hi: -1})
	s.Add(intervals.Span{Lo: 5, Hi: 5})

	assert.True(t, s.Contains(-2))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(6))
}

// TestSetIntersect intersects two multi-span sets.
func TestSetIntersect(t *testing.T) {
	var a, b intervals.Set
	a.Add(intervals.Span{Lo: 0, Hi: 5})
	a.Add(intervals.Span{Lo: 10, Hi: 15})
	b.Add(intervals.Span{Lo: 4, Hi: 11})
	b.Add(intervals.Span{Lo: 14, Hi: 20})

	got := a.Intersect(&b)
	assert.Equal(t, []intervals.Span{{Lo: 4, Hi: 5}, {Lo: 10, Hi: 11}, {Lo: 14, Hi: 15}}, got.Spans())
}
