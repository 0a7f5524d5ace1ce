package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
)

// Day02 — Rock Paper Scissors. Each round scores the shape played plus
// the outcome. Part A reads the second column as our shape, part B as
// the required outcome.
func Day02(lines []string) (puzzle.Solution, error) {
	scoreA, scoreB := 0, 0
	rounds := 0
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		if len(ln) != 3 || ln[0] < 'A' || ln[0] > 'C' || ln[1] != ' ' || ln[2] < 'X' || ln[2] > 'Z' {
			return puzzle.Solution{}, fmt.Errorf("%w: round %q", puzzle.ErrBadInput, ln)
		}
		them := int(ln[0] - 'A') // 0 rock, 1 paper, 2 scissors
		col := int(ln[2] - 'X')

		// Second column as our shape: outcome from the shape gap.
		scoreA += col + 1 + 3*((col-them+4)%3)

		// Second column as the outcome: shape from the demanded result.
		shape := (them + col + 2) % 3
		scoreB += shape + 1 + 3*col

		rounds++
	}
	if rounds == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no rounds", puzzle.ErrBadInput)
	}

	return puzzle.Solution{PartA: scoreA, PartB: scoreB}, nil
}
