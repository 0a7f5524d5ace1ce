package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Day10 — Hoof It. Trails climb from height 0 to 9 in unit steps.
// Part A sums, over all trailheads, the number of distinct summits
// reachable; part B sums the number of distinct trails.
func Day10(lines []string) (puzzle.Solution, error) {
	g, err := grids.Parse(lines,
		func(b byte) (int8, error) {
			if b < '0' || b > '9' {
				return 0, fmt.Errorf("not a height")
			}

			return int8(b - '0'), nil
		},
		func(c int8) byte { return byte(c) + '0' })
	if err != nil {
		return puzzle.Solution{}, err
	}

	// ratings[i] = number of distinct trails from cell i up to a summit.
	// Processing heights downward makes every dependency already final.
	ratings := make([]int, g.Area())
	// summits[i] = set of summit indexes reachable from cell i.
	summits := make([]map[int]bool, g.Area())

	for height := int8(9); height >= 0; height-- {
		g.Each(func(p grids.Point, c int8) {
			if c != height {
				return
			}
			idx := g.Index(p)
			if height == 9 {
				ratings[idx] = 1
				summits[idx] = map[int]bool{idx: true}

				return
			}
			summits[idx] = map[int]bool{}
			for _, d := range grids.Dirs {
				n := p.Next(d)
				if up, ok := g.TryAt(n); ok && up == height+1 {
					ni := g.Index(n)
					ratings[idx] += ratings[ni]
					for s := range summits[ni] {
						summits[idx][s] = true
					}
				}
			}
		})
	}

	score, rating := 0, 0
	g.Each(func(p grids.Point, c int8) {
		if c == 0 {
			score += len(summits[g.Index(p)])
			rating += ratings[g.Index(p)]
		}
	})

	return puzzle.Solution{PartA: score, PartB: rating}, nil
}
