// Package scan extracts numbers and line blocks from puzzle input.
//
// Most day inputs are noisy rows where only the digit runs matter
// ("Sensor at x=2, y=18: ..."). Numbers and SignedNumbers pull every
// number out of such a row, ignoring all other characters;
// FixedNumbers additionally enforces an exact count. Blocks splits an
// input file into its blank-line separated sections.
package scan

import (
	"errors"
	"fmt"
)

// ErrBadCount indicates a row did not contain the expected number count.
var ErrBadCount = errors.New("scan: unexpected number count in row")

// Numbers returns every unsigned number in line, in order.
// All non-digit characters act as separators.
// Complexity: O(len(line)).
func Numbers(line string) []int {
	var out []int
	cur, in := 0, false
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b >= '0' && b <= '9' {
			cur = cur*10 + int(b-'0')
			in = true
			continue
		}
		if in {
			out = append(out, cur)
			cur, in = 0, false
		}
	}
	if in {
		out = append(out, cur)
	}

	return out
}

// SignedNumbers behaves like Numbers but honors a '-' immediately
// preceding a digit run.
func SignedNumbers(line string) []int {
	var out []int
	cur, in := 0, false
	neg := false
	for i := 0; i < len(line); i++ {
		b := line[i]
		switch {
		case b >= '0' && b <= '9':
			if !in {
				neg = i > 0 && line[i-1] == '-'
			}
			cur = cur*10 + int(b-'0')
			in = true
		case in:
			if neg {
				cur = -cur
			}
			out = append(out, cur)
			cur, in, neg = 0, false, false
		}
	}
	if in {
		if neg {
			cur = -cur
		}
		out = append(out, cur)
	}

	return out
}

// FixedNumbers returns the unsigned numbers of line, requiring exactly n
// of them. Returns ErrBadCount otherwise.
func FixedNumbers(line string, n int) ([]int, error) {
	nums := Numbers(line)
	if len(nums) != n {
		return nil, fmt.Errorf("%w: got %d, want %d in %q", ErrBadCount, len(nums), n, line)
	}

	return nums, nil
}

// Blocks splits lines into blank-line separated sections.
// Empty sections (consecutive blank lines) are dropped.
func Blocks(lines []string) [][]string {
	var out [][]string
	var cur []string
	for _, ln := range lines {
		if ln == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, ln)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}
