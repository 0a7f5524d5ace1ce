package y2023

import "github.com/katalvlaran/advent/puzzle"

// Year returns the 2023 day registry.
func Year() puzzle.Year {
	return puzzle.Year{
		Label: 2023,
		Days: map[int]puzzle.SolveFunc{
			2:  Day02,
			3:  Day03,
			10: Day10,
		},
	}
}
