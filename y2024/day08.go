package y2024

import (
	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Day08 — Resonant Collinearity. Antennas of equal frequency create
// antinodes: part A at the two points twice as far from one antenna as
// from the other, part B at every grid point on the antenna line.
func Day08(lines []string) (puzzle.Solution, error) {
	g, err := grids.Parse(lines,
		func(b byte) (byte, error) { return b, nil },
		func(c byte) byte { return c })
	if err != nil {
		return puzzle.Solution{}, err
	}

	antennas := map[byte][]grids.Point{}
	g.Each(func(p grids.Point, c byte) {
		if c != '.' && c != ' ' {
			antennas[c] = append(antennas[c], p)
		}
	})

	paired := make(map[grids.Point]bool)
	harmonic := make(map[grids.Point]bool)
	for _, points := range antennas {
		for i, a := range points {
			for _, b := range points[i+1:] {
				step := b.Sub(a)

				// Part A: the two points beyond each antenna.
				for _, n := range []grids.Point{b.Add(step), a.Sub(step)} {
					if g.InBounds(n) {
						paired[n] = true
					}
				}
				// Part B: every grid point on the line, antennas included.
				for p := a; g.InBounds(p); p = p.Sub(step) {
					harmonic[p] = true
				}
				for p := b; g.InBounds(p); p = p.Add(step) {
					harmonic[p] = true
				}
			}
		}
	}

	return puzzle.Solution{PartA: len(paired), PartB: len(harmonic)}, nil
}
