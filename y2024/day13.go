package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d13Correction is the prize offset revealed in part B.
const d13Correction = 10_000_000_000_000

// d13Machine is one claw machine: two button displacements and the
// prize location.
type d13Machine struct {
	ax, ay int
	bx, by int
	px, py int
}

// Day13 — Claw Contraption. Each machine is a 2×2 linear system; a
// prize is winnable only when the integer solution exists. A presses
// cost 3 tokens, B presses 1. Part A caps presses at 100; part B moves
// every prize by 10^13.
func Day13(lines []string) (puzzle.Solution, error) {
	machines, err := d13Machines(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	tokens, corrected := 0, 0
	for _, m := range machines {
		if a, b, ok := m.solve(0); ok && a <= 100 && b <= 100 {
			tokens += 3*a + b
		}
		if a, b, ok := m.solve(d13Correction); ok {
			corrected += 3*a + b
		}
	}

	return puzzle.Solution{PartA: tokens, PartB: corrected}, nil
}

// solve returns the unique non-negative press counts hitting the prize
// (shifted by offset), or false when no integer solution exists.
func (m d13Machine) solve(offset int) (a, b int, ok bool) {
	px, py := m.px+offset, m.py+offset

	den := m.ay*m.bx - m.by*m.ax
	if den == 0 {
		return 0, 0, false
	}
	numA := py*m.bx - m.by*px
	numB := px*m.ay - m.ax*py
	if numA%den != 0 || numB%den != 0 {
		return 0, 0, false
	}

	a, b = numA/den, numB/den
	if a < 0 || b < 0 {
		return 0, 0, false
	}

	return a, b, true
}

// d13Machines parses blank-line separated machine definitions.
func d13Machines(lines []string) ([]d13Machine, error) {
	var out []d13Machine
	for _, block := range scan.Blocks(lines) {
		if len(block) != 3 {
			return nil, fmt.Errorf("%w: machine block of %d lines", puzzle.ErrBadInput, len(block))
		}
		a, errA := scan.FixedNumbers(block[0], 2)
		b, errB := scan.FixedNumbers(block[1], 2)
		p, errP := scan.FixedNumbers(block[2], 2)
		if errA != nil || errB != nil || errP != nil {
			return nil, fmt.Errorf("%w: machine %q", puzzle.ErrBadInput, block[0])
		}
		out = append(out, d13Machine{
			ax: a[0], ay: a[1],
			bx: b[0], by: b[1],
			px: p[0], py: p[1],
		})
	}

	return out, nil
}
