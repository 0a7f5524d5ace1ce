package y2024

import (
	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// d04Vectors are the eight rays to scan for XMAS: the four axes, each
// forward and backward.
var d04Vectors = [8]grids.Point{
	{X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: -1, Y: -1},
	{X: -1, Y: 1}, {X: 1, Y: -1},
}

// Day04 — Ceres Search. Part A counts every straight-line occurrence of
// "XMAS"; part B counts X-shaped MAS crossings.
func Day04(lines []string) (puzzle.Solution, error) {
	g, err := grids.Parse(lines,
		func(b byte) (byte, error) { return b, nil },
		func(c byte) byte { return c })
	if err != nil {
		return puzzle.Solution{}, err
	}

	words, crosses := 0, 0
	g.Each(func(p grids.Point, c byte) {
		if c == 'X' {
			for _, v := range d04Vectors {
				if d04Word(g, p, v) {
					words++
				}
			}
		}
		if c == 'A' && d04Cross(g, p) {
			crosses++
		}
	})

	return puzzle.Solution{PartA: words, PartB: crosses}, nil
}

// d04Word reports whether "XMAS" starts at p along vector v.
func d04Word(g *grids.Grid[byte], p grids.Point, v grids.Point) bool {
	for _, want := range []byte("XMAS") {
		c, ok := g.TryAt(p)
		if !ok || c != want {
			return false
		}
		p = p.Add(v)
	}

	return true
}

// d04Cross reports whether the A at p is the center of two crossing MAS
// diagonals.
func d04Cross(g *grids.Grid[byte], p grids.Point) bool {
	diag := func(a, b grids.Point) bool {
		ca, oka := g.TryAt(p.Add(a))
		cb, okb := g.TryAt(p.Add(b))

		return oka && okb &&
			((ca == 'M' && cb == 'S') || (ca == 'S' && cb == 'M'))
	}

	return diag(grids.Pt(-1, -1), grids.Pt(1, 1)) && diag(grids.Pt(1, -1), grids.Pt(-1, 1))
}
