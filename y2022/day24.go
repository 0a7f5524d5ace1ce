package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Blizzard flags of one valley cell; a cell may carry several.
const (
	d24Up = 1 << iota
	d24Down
	d24Left
	d24Right
	d24Wall
)

// d24Moves are the five choices per minute: wait or step.
var d24Moves = [5]grids.Point{
	grids.Pt(0, 0),
	grids.Pt(0, -1), grids.Pt(0, 1), grids.Pt(-1, 0), grids.Pt(1, 0),
}

// Day24 — Blizzard Basin. A walled valley full of blizzards that wrap
// around; each minute the blizzards move and so can we, into any cell
// momentarily free. Part A is the fastest crossing from entry to exit.
// Part B crosses, goes back for the snacks, and crosses again.
func Day24(lines []string) (puzzle.Solution, error) {
	valley, err := grids.Parse(lines, d24Cell, d24Char)
	if err != nil {
		return puzzle.Solution{}, err
	}
	if valley.Width() < 3 || valley.Height() < 3 {
		return puzzle.Solution{}, fmt.Errorf("%w: valley %dx%d", puzzle.ErrBadInput, valley.Width(), valley.Height())
	}

	entry := grids.Pt(1, 0)
	exit := grids.Pt(valley.Width()-2, valley.Height()-1)
	if valley.At(entry) != 0 || valley.At(exit) != 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: blocked entry or exit", puzzle.ErrBadInput)
	}

	go1, valley, err := d24Cross(valley, entry, exit)
	if err != nil {
		return puzzle.Solution{}, err
	}
	back, valley, err := d24Cross(valley, exit, entry)
	if err != nil {
		return puzzle.Solution{}, err
	}
	go2, _, err := d24Cross(valley, entry, exit)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: go1, PartB: go1 + back + go2}, nil
}

func d24Cell(b byte) (byte, error) {
	switch b {
	case '.':
		return 0, nil
	case '#':
		return d24Wall, nil
	case '^':
		return d24Up, nil
	case 'v':
		return d24Down, nil
	case '<':
		return d24Left, nil
	case '>':
		return d24Right, nil
	default:
		return 0, fmt.Errorf("not a valley tile: %q", b)
	}
}

func d24Char(c byte) byte {
	switch c {
	case 0:
		return '.'
	case d24Wall:
		return '#'
	case d24Up:
		return '^'
	case d24Down:
		return 'v'
	case d24Left:
		return '<'
	case d24Right:
		return '>'
	default:
		return '*'
	}
}

// d24Blow advances every blizzard one cell, wrapping inside the walls.
func d24Blow(valley *grids.Grid[byte]) *grids.Grid[byte] {
	next := grids.New[byte](valley.Width(), valley.Height(), d24Char)
	wrap := func(v, lo, hi int) int {
		switch {
		case v < lo:
			return hi
		case v > hi:
			return lo
		}

		return v
	}

	valley.Each(func(p grids.Point, c byte) {
		if c&d24Wall != 0 {
			next.Set(p, next.At(p)|d24Wall)
			return
		}
		for _, bz := range [4]struct {
			flag byte
			d    grids.Point
		}{
			{d24Up, grids.Pt(0, -1)},
			{d24Down, grids.Pt(0, 1)},
			{d24Left, grids.Pt(-1, 0)},
			{d24Right, grids.Pt(1, 0)},
		} {
			if c&bz.flag == 0 {
				continue
			}
			to := p.Add(bz.d)
			to = grids.Pt(wrap(to.X, 1, valley.Width()-2), wrap(to.Y, 1, valley.Height()-2))
			next.Set(to, next.At(to)|bz.flag)
		}
	})

	return next
}

// d24Cross finds the fastest path from one opening to the other: a
// breadth-first search over positions, one blizzard step per minute.
// Returns the minute count and the valley state on arrival, so the
// next leg continues from the right blizzard phase.
func d24Cross(valley *grids.Grid[byte], from, to grids.Point) (int, *grids.Grid[byte], error) {
	frontier := map[grids.Point]bool{from: true}
	for minute := 1; minute <= valley.Area()*4; minute++ {
		valley = d24Blow(valley)

		next := make(map[grids.Point]bool, len(frontier)*2)
		for at := range frontier {
			for _, mv := range d24Moves {
				cand := at.Add(mv)
				if !valley.InBounds(cand) || valley.At(cand) != 0 {
					continue
				}
				if cand == to {
					return minute, valley, nil
				}
				next[cand] = true
			}
		}
		if len(next) == 0 {
			return 0, nil, fmt.Errorf("%w: snowed in", puzzle.ErrNoAnswer)
		}
		frontier = next
	}

	return 0, nil, fmt.Errorf("%w: no path through the blizzards", puzzle.ErrNoAnswer)
}
