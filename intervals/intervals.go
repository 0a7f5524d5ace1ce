// Package intervals implements inclusive integer intervals and ordered
// unions of disjoint intervals.
//
// What:
//
//   - Span: the inclusive interval [Lo, Hi] over integers.
//   - Set: a union of disjoint Spans kept ordered left to right; adding
//     a Span fuses it with every Span it touches.
//
// Why:
//
//   - Sensor coverage rows (2022 day 15): how many cells of a row are
//     covered, and where the single gap is.
//
// Complexity:
//
//   - Set.Add:       O(n) worst case (binary search + one splice).
//   - Set.Contains:  O(log n).
//   - Set.Intersect: O(n + m).
package intervals

import "sort"

// Span is the inclusive integer interval [Lo, Hi].
type Span struct {
	Lo, Hi int
}

// Len returns the number of integers covered by s.
func (s Span) Len() int { return s.Hi - s.Lo + 1 }

// Overlaps reports whether s and o share at least one integer.
func (s Span) Overlaps(o Span) bool { return !(o.Hi < s.Lo || o.Lo > s.Hi) }

// Union returns the single interval covering both spans,
// or false when they do not overlap.
func (s Span) Union(o Span) (Span, bool) {
	if !s.Overlaps(o) {
		return Span{}, false
	}

	return Span{Lo: min(s.Lo, o.Lo), Hi: max(s.Hi, o.Hi)}, true
}

// Intersect returns the interval common to both spans,
// or false when they do not overlap.
func (s Span) Intersect(o Span) (Span, bool) {
	if !s.Overlaps(o) {
		return Span{}, false
	}

	return Span{Lo: max(s.Lo, o.Lo), Hi: min(s.Hi, o.Hi)}, true
}

// Set is a union of disjoint spans, ordered from left to right.
// The zero value is an empty set ready for use.
type Set struct {
	spans []Span
}

// Add inserts sp, fusing it with every existing span it overlaps.
func (t *Set) Add(sp Span) {
	// First span not strictly left of sp.
	start := sort.Search(len(t.spans), func(i int) bool {
		return t.spans[i].Hi >= sp.Lo
	})
	// First span strictly right of sp, fusing along the way.
	end := start
	fused := sp
	for end < len(t.spans) && fused.Overlaps(t.spans[end]) {
		fused, _ = fused.Union(t.spans[end])
		end++
	}

	tail := append([]Span{fused}, t.spans[end:]...)
	t.spans = append(t.spans[:start], tail...)
}

// Len returns the total number of integers covered.
func (t *Set) Len() int {
	total := 0
	for _, sp := range t.spans {
		total += sp.Len()
	}

	return total
}

// Disjoint returns how many disjoint spans the set currently holds.
func (t *Set) Disjoint() int { return len(t.spans) }

// Contains reports whether x lies in one of the spans.
func (t *Set) Contains(x int) bool {
	i := sort.Search(len(t.spans), func(i int) bool {
		return t.spans[i].Hi >= x
	})

	return i < len(t.spans) && t.spans[i].Lo <= x
}

// Spans returns a copy of the underlying disjoint spans, left to right.
func (t *Set) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)

	return out
}

// Intersect returns the set covering exactly the integers present in
// both t and o.
func (t *Set) Intersect(o *Set) *Set {
	var out Set
	i, j := 0, 0
	for i < len(t.spans) && j < len(o.spans) {
		if common, ok := t.spans[i].Intersect(o.spans[j]); ok {
			out.spans = append(out.spans, common)
		}
		// Advance whichever span ends first.
		if t.spans[i].Hi < o.spans[j].Hi {
			i++
		} else {
			j++
		}
	}

	return &out
}
