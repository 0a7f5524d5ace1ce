package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day04 — Camp Cleanup. Each line pairs two section ranges. Part A
// counts the pairs where one range contains the other, part B the pairs
// that overlap at all.
func Day04(lines []string) (puzzle.Solution, error) {
	contained, overlapping := 0, 0
	pairs := 0
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		nums := scan.Numbers(ln)
		if len(nums) != 4 {
			return puzzle.Solution{}, fmt.Errorf("%w: pair %q", puzzle.ErrBadInput, ln)
		}
		left := intervals.Span{Lo: nums[0], Hi: nums[1]}
		right := intervals.Span{Lo: nums[2], Hi: nums[3]}
		if left.Lo > left.Hi || right.Lo > right.Hi {
			return puzzle.Solution{}, fmt.Errorf("%w: pair %q", puzzle.ErrBadInput, ln)
		}

		if d04Contains(left, right) || d04Contains(right, left) {
			contained++
		}
		if left.Overlaps(right) {
			overlapping++
		}
		pairs++
	}
	if pairs == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no pairs", puzzle.ErrBadInput)
	}

	return puzzle.Solution{PartA: contained, PartB: overlapping}, nil
}

func d04Contains(outer, inner intervals.Span) bool {
	return inner.Lo >= outer.Lo && inner.Hi <= outer.Hi
}
