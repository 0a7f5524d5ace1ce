package y2023

import (
	"fmt"

	"github.com/katalvlaran/advent/bitset"
	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// Day10 — Pipe Maze. A closed pipe loop runs through the field from S.
// Part A is the distance to the farthest loop tile (half the loop
// length); part B counts the tiles enclosed by the loop, by scanning
// each row and flipping an inside flag on every north-connecting pipe.
func Day10(lines []string) (puzzle.Solution, error) {
	maze, err := grids.Parse(lines, d10Pipe, func(t byte) byte { return t })
	if err != nil {
		return puzzle.Solution{}, err
	}
	start, ok := maze.Find(func(t byte) bool { return t == 'S' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no start", puzzle.ErrBadInput)
	}

	for _, dir := range grids.Dirs {
		trail, lastDir, found := d10Trace(maze, start, dir)
		if !found {
			continue
		}

		// Put the real pipe shape under the S so the row scan sees it.
		maze.Set(start, d10StartShape(dir, lastDir))

		return puzzle.Solution{
			PartA: trail.OnesCount() / 2,
			PartB: d10Enclosed(maze, trail),
		}, nil
	}

	return puzzle.Solution{}, fmt.Errorf("%w: no pipe loop through start", puzzle.ErrNoAnswer)
}

func d10Pipe(c byte) (byte, error) {
	switch c {
	case '.', 'S', '|', '-', 'L', 'J', 'F', '7':
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", grids.ErrBadCharacter, c)
}

// d10Trace follows the pipes from start in the given direction until
// the loop closes. It returns the loop tiles as a row-major bit mask
// and the direction of the final step back into start.
func d10Trace(maze *grids.Grid[byte], start grids.Point, dir grids.Dir) (*bitset.BitSet, grids.Dir, bool) {
	trail := bitset.Zeros(maze.Area())
	at := start
	for {
		at = at.Next(dir)
		pipe, ok := maze.TryAt(at)
		if !ok {
			return nil, 0, false
		}
		trail.Set(maze.Index(at), true)
		if pipe == 'S' {
			return trail, dir, true
		}

		dir, ok = d10Turn(dir, pipe)
		if !ok {
			return nil, 0, false
		}
	}
}

// d10Turn gives the outgoing direction when entering a pipe while
// moving in dir. ok is false when the pipe has no matching connection.
func d10Turn(dir grids.Dir, pipe byte) (grids.Dir, bool) {
	switch {
	case pipe == '|' && (dir == grids.Up || dir == grids.Down):
		return dir, true
	case pipe == '-' && (dir == grids.Left || dir == grids.Right):
		return dir, true
	case pipe == 'L' && dir == grids.Down:
		return grids.Right, true
	case pipe == 'L' && dir == grids.Left:
		return grids.Up, true
	case pipe == 'J' && dir == grids.Down:
		return grids.Left, true
	case pipe == 'J' && dir == grids.Right:
		return grids.Up, true
	case pipe == 'F' && dir == grids.Up:
		return grids.Right, true
	case pipe == 'F' && dir == grids.Left:
		return grids.Down, true
	case pipe == '7' && dir == grids.Up:
		return grids.Left, true
	case pipe == '7' && dir == grids.Right:
		return grids.Down, true
	}

	return 0, false
}

// d10StartShape recovers the pipe hidden under the S from the loop's
// first direction and the direction of the final step into the start.
func d10StartShape(first, last grids.Dir) byte {
	connects := func(d grids.Dir) bool { return first == d || last.Reverse() == d }
	switch {
	case connects(grids.Up) && connects(grids.Down):
		return '|'
	case connects(grids.Up) && connects(grids.Right):
		return 'L'
	case connects(grids.Up) && connects(grids.Left):
		return 'J'
	case connects(grids.Down) && connects(grids.Right):
		return 'F'
	case connects(grids.Down) && connects(grids.Left):
		return '7'
	default:
		return '-'
	}
}

// d10Enclosed counts the tiles strictly inside the loop. Crossing a
// pipe with a north connection flips the inside flag, which handles
// both plain '|' walls and corner pairs like F--J.
func d10Enclosed(maze *grids.Grid[byte], trail *bitset.BitSet) int {
	enclosed := 0
	for y := 0; y < maze.Height(); y++ {
		inside := false
		for x := 0; x < maze.Width(); x++ {
			p := grids.Pt(x, y)
			if trail.Get(maze.Index(p)) {
				switch maze.At(p) {
				case '|', 'L', 'J':
					inside = !inside
				}
			} else if inside {
				enclosed++
			}
		}
	}

	return enclosed
}
