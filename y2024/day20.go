package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

const d20Threshold = 100

// Day20 — Race Condition. The racetrack is a single corridor; a cheat
// jumps through walls for a bounded number of picoseconds. Part A
// counts the cheats of length 2 saving at least 100 ps, part B the
// cheats of length up to 20.
func Day20(lines []string) (puzzle.Solution, error) {
	return d20Solve(lines, d20Threshold)
}

func d20Solve(lines []string, minSaved int) (puzzle.Solution, error) {
	track, err := grids.Parse(lines, d20Tile, func(t byte) byte { return t })
	if err != nil {
		return puzzle.Solution{}, err
	}
	start, ok := track.Find(func(t byte) bool { return t == 'S' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no start", puzzle.ErrBadInput)
	}

	times, err := d20Times(track, start)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartA: d20Cheats(track, times, minSaved, 2),
		PartB: d20Cheats(track, times, minSaved, 20),
	}, nil
}

func d20Tile(c byte) (byte, error) {
	switch c {
	case '.', '#', 'S', 'E':
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", grids.ErrBadCharacter, c)
}

// d20Times records the arrival time of every corridor tile by following
// the single path from S to E. -1 marks walls.
func d20Times(track *grids.Grid[byte], start grids.Point) ([]int, error) {
	times := make([]int, track.Area())
	for i := range times {
		times[i] = -1
	}
	times[track.Index(start)] = 0

	at, t := start, 0
	for track.At(at) != 'E' {
		moved := false
		for _, dir := range grids.Dirs {
			next := at.Next(dir)
			c, ok := track.TryAt(next)
			if !ok || c == '#' || times[track.Index(next)] >= 0 {
				continue
			}
			t++
			times[track.Index(next)] = t
			at = next
			moved = true
			break
		}
		if !moved {
			return nil, fmt.Errorf("%w: track dead-ends before E", puzzle.ErrBadInput)
		}
	}

	return times, nil
}

// d20Cheats counts wall jumps of Manhattan length at most rule that
// save at least minSaved picoseconds. A cheat is keyed by its entry and
// exit tiles, so each pair counts once.
func d20Cheats(track *grids.Grid[byte], times []int, minSaved, rule int) int {
	count := 0
	track.Each(func(p grids.Point, c byte) {
		if c == '#' {
			return
		}
		from := times[track.Index(p)]
		for dy := -rule; dy <= rule; dy++ {
			span := rule - abs(dy)
			for dx := -span; dx <= span; dx++ {
				q := p.Add(grids.Pt(dx, dy))
				if t, ok := track.TryAt(q); !ok || t == '#' {
					continue
				}
				to := times[track.Index(q)]
				if to <= from {
					continue
				}
				if to-from-(abs(dx)+abs(dy)) >= minSaved {
					count++
				}
			}
		}
	})

	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
