package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day07 — Bridge Repair. Sum the test values of equations solvable with
// + and * applied left to right; part B adds digit concatenation.
func Day07(lines []string) (puzzle.Solution, error) {
	sumPlain, sumConcat := 0, 0
	for _, ln := range lines {
		nums := scan.Numbers(ln)
		if len(nums) < 2 {
			return puzzle.Solution{}, fmt.Errorf("%w: equation %q", puzzle.ErrBadInput, ln)
		}
		value, operands := nums[0], nums[1:]

		if d07Solvable(value, operands[0], operands[1:], false) {
			sumPlain += value
			sumConcat += value
			continue
		}
		if d07Solvable(value, operands[0], operands[1:], true) {
			sumConcat += value
		}
	}

	return puzzle.Solution{PartA: sumPlain, PartB: sumConcat}, nil
}

// d07Solvable tries every operator combination left to right.
// acc is the value accumulated so far; rest the remaining operands.
func d07Solvable(value, acc int, rest []int, allowConcat bool) bool {
	if len(rest) == 0 {
		return acc == value
	}
	if acc > value {
		// All operators grow the accumulator.
		return false
	}

	next := rest[0]

	return d07Solvable(value, acc+next, rest[1:], allowConcat) ||
		d07Solvable(value, acc*next, rest[1:], allowConcat) ||
		(allowConcat && d07Solvable(value, d07Concat(acc, next), rest[1:], allowConcat))
}

// d07Concat glues the decimal digits of b after a: 12 ∘ 345 = 12345.
func d07Concat(a, b int) int {
	shift := 10
	for shift <= b {
		shift *= 10
	}

	return a*shift + b
}
