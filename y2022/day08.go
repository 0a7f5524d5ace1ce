package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Day08 — Treetop Tree House. Part A counts the trees visible from
// outside the forest along the four axes; part B maximizes the scenic
// score, the product of the four viewing distances.
func Day08(lines []string) (puzzle.Solution, error) {
	forest, err := grids.Parse(lines, d08Height, func(t int8) byte { return byte('0' + t) })
	if err != nil {
		return puzzle.Solution{}, err
	}

	visible := make([]bool, forest.Area())
	for _, dir := range grids.Dirs {
		d08Sweep(forest, dir, visible)
	}
	count := 0
	for _, v := range visible {
		if v {
			count++
		}
	}

	best := 0
	forest.Each(func(p grids.Point, h int8) {
		score := 1
		for _, dir := range grids.Dirs {
			score *= d08Viewing(forest, p, dir)
		}
		if score > best {
			best = score
		}
	})

	return puzzle.Solution{PartA: count, PartB: best}, nil
}

func d08Height(c byte) (int8, error) {
	if c < '0' || c > '9' {
		return 0, fmt.Errorf("%w: %q", grids.ErrBadCharacter, c)
	}

	return int8(c - '0'), nil
}

// d08Sweep walks every lane of the forest against dir and marks the
// running-maximum trees as visible from that edge.
func d08Sweep(forest *grids.Grid[int8], dir grids.Dir, visible []bool) {
	lanes := forest.Width()
	if dir == grids.Left || dir == grids.Right {
		lanes = forest.Height()
	}

	for lane := 0; lane < lanes; lane++ {
		var at grids.Point
		switch dir {
		case grids.Down:
			at = grids.Pt(lane, 0)
		case grids.Up:
			at = grids.Pt(lane, forest.Height()-1)
		case grids.Right:
			at = grids.Pt(0, lane)
		default:
			at = grids.Pt(forest.Width()-1, lane)
		}

		top := int8(-1)
		for forest.InBounds(at) {
			if h := forest.At(at); h > top {
				top = h
				visible[forest.Index(at)] = true
			}
			at = at.Next(dir)
		}
	}
}

// d08Viewing is the distance seen from p towards dir: up to and
// including the first tree at least as tall.
func d08Viewing(forest *grids.Grid[int8], p grids.Point, dir grids.Dir) int {
	own := forest.At(p)
	distance := 0
	for at := p.Next(dir); ; at = at.Next(dir) {
		h, ok := forest.TryAt(at)
		if !ok {
			return distance
		}
		distance++
		if h >= own {
			return distance
		}
	}
}
