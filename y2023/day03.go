package y2023

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// d03Part is one number in the schematic: its value and the cell span
// it occupies.
type d03Part struct {
	value int
	row   int
	from  int // first column
	to    int // last column, inclusive
}

// Day03 — Gear Ratios. Numbers in the engine schematic count when they
// touch a symbol (part A); a '*' touching exactly two numbers is a gear
// whose ratio is their product (part B).
func Day03(lines []string) (puzzle.Solution, error) {
	plan, err := grids.Parse(lines, d03Cell, func(t byte) byte { return t })
	if err != nil {
		return puzzle.Solution{}, err
	}

	parts := d03Parts(plan)

	sum := 0
	for _, p := range parts {
		if d03Touches(plan, p, func(c byte) bool { return c != '.' && !d03Digit(c) }) {
			sum += p.value
		}
	}

	// Gather the two-part gears. Each '*' collects the parts whose
	// spans reach its neighbourhood.
	ratios := 0
	plan.Each(func(g grids.Point, c byte) {
		if c != '*' {
			return
		}
		product, touching := 1, 0
		for _, p := range parts {
			if p.row >= g.Y-1 && p.row <= g.Y+1 && p.from <= g.X+1 && p.to >= g.X-1 {
				product *= p.value
				touching++
			}
		}
		if touching == 2 {
			ratios += product
		}
	})

	return puzzle.Solution{PartA: sum, PartB: ratios}, nil
}

func d03Cell(c byte) (byte, error) {
	if c == ' ' {
		return 0, fmt.Errorf("%w: blank cell", grids.ErrBadCharacter)
	}

	return c, nil
}

func d03Digit(c byte) bool { return c >= '0' && c <= '9' }

// d03Parts extracts the horizontal digit runs of the schematic.
func d03Parts(plan *grids.Grid[byte]) []d03Part {
	var parts []d03Part
	for y := 0; y < plan.Height(); y++ {
		for x := 0; x < plan.Width(); {
			if !d03Digit(plan.At(grids.Pt(x, y))) {
				x++
				continue
			}
			p := d03Part{row: y, from: x}
			for x < plan.Width() && d03Digit(plan.At(grids.Pt(x, y))) {
				p.value = p.value*10 + int(plan.At(grids.Pt(x, y))-'0')
				x++
			}
			p.to = x - 1
			parts = append(parts, p)
		}
	}

	return parts
}

// d03Touches reports whether any cell bordering the part span matches.
func d03Touches(plan *grids.Grid[byte], p d03Part, match func(c byte) bool) bool {
	for y := p.row - 1; y <= p.row+1; y++ {
		for x := p.from - 1; x <= p.to+1; x++ {
			if c, ok := plan.TryAt(grids.Pt(x, y)); ok && match(c) {
				return true
			}
		}
	}

	return false
}
