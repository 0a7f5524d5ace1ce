package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d25Heights are the five pin column heights of a key or lock.
type d25Heights [5]int

// Day25 — Code Chronicle. Keys and locks are five-column height
// profiles cut from 7-row schematics. Part A counts the key/lock pairs
// whose columns never overlap; day 25 has no part B.
func Day25(lines []string) (puzzle.Solution, error) {
	var keys, locks []d25Heights
	for _, block := range scan.Blocks(lines) {
		if len(block) != 7 {
			return puzzle.Solution{}, fmt.Errorf("%w: schematic of %d rows", puzzle.ErrBadInput, len(block))
		}
		heights, err := d25Profile(block)
		if err != nil {
			return puzzle.Solution{}, err
		}
		switch block[0] {
		case "#####":
			locks = append(locks, heights)
		case ".....":
			keys = append(keys, heights)
		default:
			return puzzle.Solution{}, fmt.Errorf("%w: schematic head %q", puzzle.ErrBadInput, block[0])
		}
	}
	if len(keys) == 0 && len(locks) == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no schematics", puzzle.ErrBadInput)
	}

	fits := 0
	for _, key := range keys {
		for _, lock := range locks {
			if d25Fit(key, lock) {
				fits++
			}
		}
	}

	return puzzle.Solution{PartA: fits}, nil
}

// d25Profile counts the filled cells per column of the 5 middle rows;
// the all-# and all-. border rows carry no information.
func d25Profile(block []string) (d25Heights, error) {
	var heights d25Heights
	for _, row := range block[1:6] {
		if len(row) != 5 {
			return heights, fmt.Errorf("%w: schematic row %q", puzzle.ErrBadInput, row)
		}
		for i := 0; i < 5; i++ {
			switch row[i] {
			case '#':
				heights[i]++
			case '.':
			default:
				return heights, fmt.Errorf("%w: schematic row %q", puzzle.ErrBadInput, row)
			}
		}
	}

	return heights, nil
}

// d25Fit reports whether a key slides into a lock without any column
// overflowing the 5 available spaces.
func d25Fit(key, lock d25Heights) bool {
	for i := range key {
		if key[i]+lock[i] > 5 {
			return false
		}
	}

	return true
}
