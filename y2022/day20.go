package y2022

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/puzzle"
)

// d20Key is the decryption key applied before the full mixing rounds.
const d20Key = 811589153

// Day20 — Grove Positioning System. The encrypted file is a circular
// list of numbers; mixing moves each number forward by its own value,
// in the original order. Part A mixes once; part B multiplies every
// number by the decryption key first and mixes ten times. Both answers
// sum the values 1000, 2000 and 3000 places after the zero.
func Day20(lines []string) (puzzle.Solution, error) {
	values := make([]int, 0, len(lines))
	zero := -1
	for _, line := range lines {
		v, err := strconv.Atoi(line)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("%w: number %q", puzzle.ErrBadInput, line)
		}
		if v == 0 {
			zero = len(values)
		}
		values = append(values, v)
	}
	if zero < 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no zero in the file", puzzle.ErrBadInput)
	}
	if len(values) < 2 {
		return puzzle.Solution{}, fmt.Errorf("%w: %d numbers", puzzle.ErrBadInput, len(values))
	}

	keyed := make([]int, len(values))
	for i, v := range values {
		keyed[i] = v * d20Key
	}

	return puzzle.Solution{
		PartA: d20Coordinates(values, zero, 1),
		PartB: d20Coordinates(keyed, zero, 10),
	}, nil
}

// d20Coordinates mixes the file the given number of rounds and sums
// the three grove coordinates. order tracks where each original index
// currently sits; moves wrap modulo n-1 as the moving number itself
// does not count.
func d20Coordinates(values []int, zero, rounds int) int {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for round := 0; round < rounds; round++ {
		for i, v := range values {
			pos := 0
			for order[pos] != i {
				pos++
			}
			next := (pos + v) % (n - 1)
			if next < 0 {
				next += n - 1
			}

			order = append(order[:pos], order[pos+1:]...)
			order = append(order, 0)
			copy(order[next+1:], order[next:])
			order[next] = i
		}
	}

	pos := 0
	for order[pos] != zero {
		pos++
	}

	sum := 0
	for _, offset := range [3]int{1000, 2000, 3000} {
		sum += values[order[(pos+offset)%n]]
	}

	return sum
}
