package y2022

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day01 — Calorie Counting. Blank lines separate the elves' snack
// lists. Part A is the largest calorie total, part B the sum of the top
// three.
func Day01(lines []string) (puzzle.Solution, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no elves", puzzle.ErrBadInput)
	}

	elves := make([]int, 0, len(blocks))
	for _, block := range blocks {
		total := 0
		for _, ln := range block {
			n, err := scan.FixedNumbers(ln, 1)
			if err != nil {
				return puzzle.Solution{}, fmt.Errorf("calories %q: %w", ln, err)
			}
			total += n[0]
		}
		elves = append(elves, total)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(elves)))

	top3 := 0
	for i := 0; i < 3 && i < len(elves); i++ {
		top3 += elves[i]
	}

	return puzzle.Solution{PartA: elves[0], PartB: top3}, nil
}
