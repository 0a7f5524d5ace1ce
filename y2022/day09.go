package y2022

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day09 — Rope Bridge. Knots follow the head under the Planck-rope
// rule: a knot two cells away snaps one step towards its leader,
// diagonally when off-axis. Part A tracks the tail of a 2-knot rope,
// part B of a 10-knot rope; both count the cells the tail visits.
func Day09(lines []string) (puzzle.Solution, error) {
	short := make([]grids.Point, 2)
	long := make([]grids.Point, 10)
	shortSeen := map[grids.Point]bool{{}: true}
	longSeen := map[grids.Point]bool{{}: true}

	moved := 0
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		dir, steps, err := d09Move(ln)
		if err != nil {
			return puzzle.Solution{}, err
		}
		for s := 0; s < steps; s++ {
			d09Step(short, dir, shortSeen)
			d09Step(long, dir, longSeen)
		}
		moved++
	}
	if moved == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no moves", puzzle.ErrBadInput)
	}

	return puzzle.Solution{PartA: len(shortSeen), PartB: len(longSeen)}, nil
}

func d09Move(line string) (grids.Dir, int, error) {
	letter, count, ok := strings.Cut(line, " ")
	nums := scan.Numbers(count)
	if !ok || len(nums) != 1 {
		return 0, 0, fmt.Errorf("%w: move %q", puzzle.ErrBadInput, line)
	}
	switch letter {
	case "U":
		return grids.Up, nums[0], nil
	case "D":
		return grids.Down, nums[0], nil
	case "L":
		return grids.Left, nums[0], nil
	case "R":
		return grids.Right, nums[0], nil
	}

	return 0, 0, fmt.Errorf("%w: move %q", puzzle.ErrBadInput, line)
}

// d09Step advances the head one cell and drags the rest of the rope,
// recording the tail's position.
func d09Step(rope []grids.Point, dir grids.Dir, seen map[grids.Point]bool) {
	rope[0] = rope[0].Next(dir)
	for i := 1; i < len(rope); i++ {
		rope[i] = d09Follow(rope[i-1], rope[i])
	}
	seen[rope[len(rope)-1]] = true
}

// d09Follow snaps a knot one cell towards its leader when they are no
// longer touching.
func d09Follow(head, knot grids.Point) grids.Point {
	d := head.Sub(knot)
	if d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1 {
		return knot
	}

	return knot.Add(grids.Pt(d09Sign(d.X), d09Sign(d.Y)))
}

func d09Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}
