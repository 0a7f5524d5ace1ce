package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Restroom dimensions given by the puzzle statement.
const (
	d14Width  = 101
	d14Height = 103
)

// d14Robot is one restroom robot: position and per-second velocity.
type d14Robot struct {
	pos, vel grids.Point
}

// Day14 — Restroom Redoubt. Robots move on a wrapping grid. Part A is
// the four-quadrant safety factor after 100 seconds; part B the first
// second the swarm clusters into the Christmas tree picture, detected
// by the safety factor collapsing when robots stop being scattered.
func Day14(lines []string) (puzzle.Solution, error) {
	robots, err := d14Robots(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	after100 := d14Step(robots, 100, d14Width, d14Height)

	return puzzle.Solution{
		PartA: d14SafetyFactor(after100, d14Width, d14Height),
		PartB: d14FindTree(robots, d14Width, d14Height),
	}, nil
}

// d14Robots parses "p=x,y v=dx,dy" rows.
func d14Robots(lines []string) ([]d14Robot, error) {
	out := make([]d14Robot, 0, len(lines))
	for _, ln := range lines {
		nums := scan.SignedNumbers(ln)
		if len(nums) != 4 {
			return nil, fmt.Errorf("%w: robot %q", puzzle.ErrBadInput, ln)
		}
		out = append(out, d14Robot{
			pos: grids.Pt(nums[0], nums[1]),
			vel: grids.Pt(nums[2], nums[3]),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no robots", puzzle.ErrBadInput)
	}

	return out, nil
}

// d14Step returns the swarm advanced by seconds steps on the wrapping
// w×h grid.
func d14Step(robots []d14Robot, seconds, w, h int) []d14Robot {
	out := make([]d14Robot, len(robots))
	for i, r := range robots {
		out[i] = r
		out[i].pos = grids.Pt(
			d14Wrap(r.pos.X+r.vel.X*seconds, w),
			d14Wrap(r.pos.Y+r.vel.Y*seconds, h),
		)
	}

	return out
}

// d14Wrap folds x into [0, n).
func d14Wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}

	return x
}

// d14SafetyFactor multiplies the robot counts of the four quadrants,
// ignoring robots on the middle row and column.
func d14SafetyFactor(robots []d14Robot, w, h int) int {
	quadW, quadH := (w+1)/2, (h+1)/2
	var quads [4]int
	for _, r := range robots {
		if (r.pos.X+1)%quadW == 0 || (r.pos.Y+1)%quadH == 0 {
			continue
		}
		quads[(r.pos.Y/quadH)*2+r.pos.X/quadW]++
	}

	return quads[0] * quads[1] * quads[2] * quads[3]
}

// d14FindTree steps one second at a time until the safety factor drops
// under 45% of its starting value: the picture concentrates the swarm
// into one quadrant's worth of space, emptying the others.
func d14FindTree(robots []d14Robot, w, h int) int {
	threshold := d14SafetyFactor(robots, w, h) * 45 / 100
	swarm := robots
	for second := 1; ; second++ {
		swarm = d14Step(swarm, 1, w, h)
		if d14SafetyFactor(swarm, w, h) < threshold {
			return second
		}
	}
}
