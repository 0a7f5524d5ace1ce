package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day02 — Red-Nosed Reports. A report is safe when its levels are
// strictly monotonic with steps of 1..3. Part A counts safe reports;
// part B tolerates the removal of one level (the Problem Dampener).
func Day02(lines []string) (puzzle.Solution, error) {
	safe, dampened := 0, 0
	for _, ln := range lines {
		levels := scan.Numbers(ln)
		if len(levels) == 0 {
			return puzzle.Solution{}, fmt.Errorf("%w: no levels in %q", puzzle.ErrBadInput, ln)
		}

		if d02Safe(levels, -1) {
			safe++
			dampened++
			continue
		}
		for skip := range levels {
			if d02Safe(levels, skip) {
				dampened++
				break
			}
		}
	}

	return puzzle.Solution{PartA: safe, PartB: dampened}, nil
}

// d02Safe reports whether levels (with index skip removed, skip<0 for
// none) are strictly monotonic with steps of magnitude 1..3.
func d02Safe(levels []int, skip int) bool {
	prev, increasing := 0, false
	seen := 0
	for i, v := range levels {
		if i == skip {
			continue
		}
		seen++
		if seen == 1 {
			prev = v
			continue
		}

		delta := v - prev
		if delta < 0 {
			delta = -delta
		}
		up := v > prev
		if seen == 2 {
			increasing = up
		}
		if delta < 1 || delta > 3 || up != increasing {
			return false
		}
		prev = v
	}

	return true
}
