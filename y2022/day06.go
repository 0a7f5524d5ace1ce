package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
)

// Day06 — Tuning Trouble. The datastream marker is the first window of
// distinct characters: 4 wide for the packet (part A), 14 for the
// message (part B). Answers are the index just past the marker.
func Day06(lines []string) (puzzle.Solution, error) {
	if len(lines) == 0 || lines[0] == "" {
		return puzzle.Solution{}, fmt.Errorf("%w: empty datastream", puzzle.ErrBadInput)
	}

	packet, err := d06Marker(lines[0], 4)
	if err != nil {
		return puzzle.Solution{}, err
	}
	message, err := d06Marker(lines[0], 14)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: packet, PartB: message}, nil
}

// d06Marker finds the first run of width distinct characters, tracking
// per-letter counts over a sliding window.
func d06Marker(stream string, width int) (int, error) {
	var counts [26]int
	distinct := 0
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: stream byte %q", puzzle.ErrBadInput, c)
		}
		if counts[c-'a'] == 0 {
			distinct++
		}
		counts[c-'a']++

		if i >= width {
			out := stream[i-width] - 'a'
			counts[out]--
			if counts[out] == 0 {
				distinct--
			}
		}
		if distinct == width {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: no marker of width %d", puzzle.ErrNoAnswer, width)
}
