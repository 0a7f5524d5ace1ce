package y2024

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d05Rule is one "X|Y" ordering rule: X must be printed before Y.
type d05Rule struct {
	before, after int
}

// Day05 — Print Queue. Part A sums the middle page of every update
// already respecting the ordering rules; part B re-orders the broken
// updates by the rules and sums their middle pages.
func Day05(lines []string) (puzzle.Solution, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) != 2 {
		return puzzle.Solution{}, fmt.Errorf("%w: want rules and updates blocks, got %d", puzzle.ErrBadInput, len(blocks))
	}

	order := make(map[d05Rule]bool, len(blocks[0]))
	for _, ln := range blocks[0] {
		pair, err := scan.FixedNumbers(ln, 2)
		if err != nil {
			return puzzle.Solution{}, fmt.Errorf("%w: rule %q", puzzle.ErrBadInput, ln)
		}
		order[d05Rule{before: pair[0], after: pair[1]}] = true
	}

	sumOrdered, sumFixed := 0, 0
	for _, ln := range blocks[1] {
		pages := scan.Numbers(ln)
		if len(pages) == 0 {
			return puzzle.Solution{}, fmt.Errorf("%w: empty update %q", puzzle.ErrBadInput, ln)
		}

		if d05Ordered(pages, order) {
			sumOrdered += pages[len(pages)/2]
			continue
		}

		// The rules form a total order among the pages of one update.
		sort.SliceStable(pages, func(i, j int) bool {
			return order[d05Rule{before: pages[i], after: pages[j]}]
		})
		sumFixed += pages[len(pages)/2]
	}

	return puzzle.Solution{PartA: sumOrdered, PartB: sumFixed}, nil
}

// d05Ordered reports whether no page pair of the update violates a rule.
func d05Ordered(pages []int, order map[d05Rule]bool) bool {
	for i, p := range pages {
		for _, q := range pages[i+1:] {
			if order[d05Rule{before: q, after: p}] {
				return false
			}
		}
	}

	return true
}
