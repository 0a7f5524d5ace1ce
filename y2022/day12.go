package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Day12 — Hill Climbing Algorithm. Height map of letters 'a'..'z' with
// the start marked 'S' (height 'a') and the summit 'E' (height 'z');
// each step may climb at most one unit. Part A is the fewest steps from
// the start to the summit, part B the fewest from any 'a' cell.
//
// A single breadth-first walk from the summit answers both parts when
// the climb rule is reversed: it settles every cell at its distance to
// the summit.
func Day12(lines []string) (puzzle.Solution, error) {
	hill, err := grids.Parse(lines, func(b byte) (byte, error) {
		switch {
		case b == 'S' || b == 'E' || (b >= 'a' && b <= 'z'):
			return b, nil
		default:
			return 0, fmt.Errorf("not a height: %q", b)
		}
	}, func(t byte) byte { return t })
	if err != nil {
		return puzzle.Solution{}, err
	}

	start, ok := hill.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no start", puzzle.ErrBadInput)
	}
	summit, ok := hill.Find(func(b byte) bool { return b == 'E' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no summit", puzzle.ErrBadInput)
	}
	hill.Set(start, 'a')
	hill.Set(summit, 'z')

	fromStart, fromLowest := -1, -1
	hill.WalkCheapest(summit, func(p grids.Point) []grids.Move {
		moves := make([]grids.Move, 0, 4)
		for _, dir := range grids.Dirs {
			// Walking downhill from the summit, so the climb limit
			// applies to the neighbour looking back at us.
			next := p.Next(dir)
			if h, ok := hill.TryAt(next); ok && int(h) >= int(hill.At(p))-1 {
				moves = append(moves, grids.Move{To: next, Cost: 1})
			}
		}

		return moves
	}, func(p grids.Point, h byte, cost int) bool {
		if h == 'a' && fromLowest < 0 {
			fromLowest = cost
		}
		if p == start {
			fromStart = cost
		}

		return fromStart < 0 || fromLowest < 0
	})

	if fromStart < 0 || fromLowest < 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: summit unreachable", puzzle.ErrNoAnswer)
	}

	return puzzle.Solution{PartA: fromStart, PartB: fromLowest}, nil
}
