package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Day06 — Guard Gallivant. Part A counts the cells the guard patrols
// before leaving the lab; part B counts the positions where one extra
// obstruction traps the patrol in a loop.
func Day06(lines []string) (puzzle.Solution, error) {
	lab, err := grids.Parse(lines,
		func(b byte) (byte, error) {
			switch b {
			case '.', '#', '^':
				return b, nil
			default:
				return 0, fmt.Errorf("unknown lab cell")
			}
		},
		func(c byte) byte { return c })
	if err != nil {
		return puzzle.Solution{}, err
	}

	start, ok := lab.Find(func(c byte) bool { return c == '^' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no guard in lab", puzzle.ErrBadInput)
	}
	lab.Set(start, '.')

	visited, _ := d06Patrol(lab, start)

	// Only cells of the original route can deflect the guard.
	loops := 0
	for idx, mask := range visited {
		p := lab.Coordinate(idx)
		if mask == 0 || p == start {
			continue
		}
		lab.Set(p, '#')
		if _, looped := d06Patrol(lab, start); looped {
			loops++
		}
		lab.Set(p, '.')
	}

	count := 0
	for _, mask := range visited {
		if mask != 0 {
			count++
		}
	}

	return puzzle.Solution{PartA: count, PartB: loops}, nil
}

// d06Patrol walks the guard from start facing up until it exits the lab
// or revisits a position with the same heading (a loop). It returns the
// per-cell direction masks of the walk and whether it looped.
func d06Patrol(lab *grids.Grid[byte], start grids.Point) (visited []uint8, looped bool) {
	visited = make([]uint8, lab.Area())
	pos, dir := start, grids.Up
	visited[lab.Index(pos)] = 1 << uint(dir)

	for {
		next := pos.Next(dir)
		c, inside := lab.TryAt(next)
		if !inside {
			return visited, false
		}
		if c == '#' {
			dir = dir.Right()
		} else {
			pos = next
		}

		bit := uint8(1) << uint(dir)
		idx := lab.Index(pos)
		if visited[idx]&bit != 0 {
			return visited, true
		}
		visited[idx] |= bit
	}
}
