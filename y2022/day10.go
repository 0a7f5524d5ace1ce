package y2022

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// CRT geometry.
const (
	d10Cols = 40
	d10Rows = 6
)

// Day10 — Cathode-Ray Tube. The X register drives a 3-pixel sprite.
// Part A sums the signal strengths at cycles 20, 60, ..., 220; part B
// renders the 40×6 screen, returned as text with '#' for lit pixels.
func Day10(lines []string) (puzzle.Solution, error) {
	xs, err := d10Trace(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	strengths := 0
	for c := 20; c <= 220 && c <= len(xs); c += d10Cols {
		strengths += c * xs[c-1]
	}

	var screen strings.Builder
	for i := 0; i < d10Rows*d10Cols && i < len(xs); i++ {
		crt := i % d10Cols
		if crt == 0 && i > 0 {
			screen.WriteByte('\n')
		}
		if crt >= xs[i]-1 && crt <= xs[i]+1 {
			screen.WriteByte('#')
		} else {
			screen.WriteByte('.')
		}
	}

	return puzzle.Solution{PartA: strengths, TextB: screen.String()}, nil
}

// d10Trace returns the X register value during every cycle.
func d10Trace(lines []string) ([]int, error) {
	xs := make([]int, 0, 256)
	x := 1
	for _, ln := range lines {
		switch {
		case ln == "":
		case ln == "noop":
			xs = append(xs, x)
		case strings.HasPrefix(ln, "addx "):
			v, err := strconv.Atoi(ln[len("addx "):])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", puzzle.ErrBadInput, ln)
			}
			xs = append(xs, x, x)
			x += v
		default:
			return nil, fmt.Errorf("%w: instruction %q", puzzle.ErrBadInput, ln)
		}
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no instructions", puzzle.ErrBadInput)
	}

	return xs, nil
}
