package y2024

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Memory space dimensions and part A prefix from the puzzle statement.
const (
	d18Side   = 71
	d18Prefix = 1024
)

// Day18 — RAM Run. Bytes corrupt a 71×71 memory grid one per
// nanosecond. Part A is the shortest exit path after the first 1024
// bytes; part B reports the first byte that seals the exit off, found
// by binary search and encoded as a text answer "x,y".
func Day18(lines []string) (puzzle.Solution, error) {
	return d18Solve(lines, d18Side, d18Prefix)
}

func d18Solve(lines []string, side, prefix int) (puzzle.Solution, error) {
	bytes, err := d18Bytes(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}
	if prefix > len(bytes) {
		return puzzle.Solution{}, fmt.Errorf("%w: only %d bytes", puzzle.ErrBadInput, len(bytes))
	}

	steps, ok := d18Escape(bytes[:prefix], side)
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: exit blocked early", puzzle.ErrNoAnswer)
	}

	// First count of fallen bytes with no path left. Reachability is
	// monotone in the prefix length, so binary search applies.
	blocked := prefix + sort.Search(len(bytes)-prefix, func(i int) bool {
		_, open := d18Escape(bytes[:prefix+i+1], side)
		return !open
	})
	if blocked == len(bytes) {
		return puzzle.Solution{}, fmt.Errorf("%w: exit never blocked", puzzle.ErrNoAnswer)
	}
	culprit := bytes[blocked]

	return puzzle.Solution{
		PartA: steps,
		TextB: fmt.Sprintf("%d,%d", culprit.X, culprit.Y),
	}, nil
}

// d18Bytes parses the "x,y" rows.
func d18Bytes(lines []string) ([]grids.Point, error) {
	out := make([]grids.Point, 0, len(lines))
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		nums, err := scan.FixedNumbers(ln, 2)
		if err != nil {
			return nil, fmt.Errorf("byte %q: %w", ln, err)
		}
		out = append(out, grids.Pt(nums[0], nums[1]))
	}

	return out, nil
}

// d18Escape walks from the top-left to the bottom-right corner of the
// side×side grid avoiding fallen bytes, returning the step count.
func d18Escape(fallen []grids.Point, side int) (int, bool) {
	space := grids.New[byte](side, side, func(t byte) byte { return t })
	for _, p := range fallen {
		space.Set(p, '#')
	}

	exit := grids.Pt(side-1, side-1)
	adjacency := func(p grids.Point) []grids.Move {
		moves := make([]grids.Move, 0, 4)
		for _, dir := range grids.Dirs {
			next := p.Next(dir)
			if t, ok := space.TryAt(next); ok && t != '#' {
				moves = append(moves, grids.Move{To: next, Cost: 1})
			}
		}
		return moves
	}

	steps, found := 0, false
	space.WalkCheapest(grids.Pt(0, 0), adjacency, func(p grids.Point, _ byte, cost int) bool {
		if p == exit {
			steps, found = cost, true
			return false
		}
		return true
	})

	return steps, found
}
