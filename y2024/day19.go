package y2024

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day19 — Linen Layout. Towel patterns compose into striped designs.
// Part A counts the designs that can be made at all; part B sums the
// number of distinct compositions per design, memoized on the design
// suffix.
func Day19(lines []string) (puzzle.Solution, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) != 2 {
		return puzzle.Solution{}, fmt.Errorf("%w: want patterns and designs", puzzle.ErrBadInput)
	}
	patterns := strings.Split(blocks[0][0], ", ")
	designs := blocks[1]

	solvable, ways := 0, 0
	memo := make(map[string]int)
	for _, design := range designs {
		n := d19Ways(memo, design, patterns)
		if n > 0 {
			solvable++
		}
		ways += n
	}

	return puzzle.Solution{PartA: solvable, PartB: ways}, nil
}

// d19Ways counts the compositions of design from patterns. The memo is
// shared across designs: common suffixes resolve once.
func d19Ways(memo map[string]int, design string, patterns []string) int {
	if design == "" {
		return 1
	}
	if n, ok := memo[design]; ok {
		return n
	}

	total := 0
	for _, pat := range patterns {
		if strings.HasPrefix(design, pat) {
			total += d19Ways(memo, design[len(pat):], patterns)
		}
	}
	memo[design] = total

	return total
}
