package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// d12Fence identifies one fence segment: the plot it guards and the
// direction it faces.
type d12Fence struct {
	at  grids.Point
	dir grids.Dir
}

// Day12 — Garden Groups. Flood-fill each plant region. Part A prices a
// region as area × perimeter; part B as area × number of straight fence
// sides.
func Day12(lines []string) (puzzle.Solution, error) {
	g, err := grids.Parse(lines,
		func(b byte) (byte, error) {
			if b < 'A' || b > 'Z' {
				return 0, fmt.Errorf("not a plant")
			}

			return b, nil
		},
		func(c byte) byte { return c })
	if err != nil {
		return puzzle.Solution{}, err
	}

	visited := make([]bool, g.Area())
	price, discounted := 0, 0
	g.Each(func(p grids.Point, _ byte) {
		if visited[g.Index(p)] {
			return
		}
		area, fences := d12Region(g, p, visited)
		price += area * len(fences)
		discounted += area * d12Sides(fences)
	})

	return puzzle.Solution{PartA: price, PartB: discounted}, nil
}

// d12Region flood-fills the region containing start and returns its
// area and the set of its fence segments.
func d12Region(g *grids.Grid[byte], start grids.Point, visited []bool) (area int, fences map[d12Fence]bool) {
	plant := g.At(start)
	fences = map[d12Fence]bool{}
	stack := []grids.Point{start}
	visited[g.Index(start)] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++

		for _, d := range grids.Dirs {
			n := p.Next(d)
			c, inside := g.TryAt(n)
			if !inside || c != plant {
				fences[d12Fence{at: p, dir: d}] = true
				continue
			}
			if !visited[g.Index(n)] {
				visited[g.Index(n)] = true
				stack = append(stack, n)
			}
		}
	}

	return area, fences
}

// d12Sides counts straight fence runs: a segment starts a new side when
// no same-facing fence guards the plot left of it (horizontal fences)
// or above it (vertical fences).
func d12Sides(fences map[d12Fence]bool) int {
	sides := 0
	for f := range fences {
		prev := grids.Left
		if f.dir == grids.Left || f.dir == grids.Right {
			prev = grids.Up
		}
		if !fences[d12Fence{at: f.at.Next(prev), dir: f.dir}] {
			sides++
		}
	}

	return sides
}
