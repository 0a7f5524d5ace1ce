package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

const (
	d14Air  = byte('.')
	d14Rock = byte('#')
	d14Sand = byte('o')
)

// d14Source is the column the sand is poured from.
const d14Source = 500

// Day14 — Regolith Reservoir. Rock paths outline a cave and sand pours
// from x=500, falling down, then down-left, then down-right. Part A
// counts grains that come to rest before sand starts falling into the
// void below the lowest rock. Part B adds an infinite floor two rows
// below and counts grains until the source itself is plugged.
func Day14(lines []string) (puzzle.Solution, error) {
	cave, source, err := d14Cave(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}
	floor := cave.Clone()

	return puzzle.Solution{
		PartA: d14Pour(cave, source, false),
		PartB: d14Pour(floor, source, true),
	}, nil
}

// d14Cave rasterizes the rock paths. The grid is two rows taller than
// the lowest rock and widened by its own height on both sides, so the
// part-B sand pyramid always fits; the returned point is the source.
func d14Cave(lines []string) (*grids.Grid[byte], grids.Point, error) {
	paths := make([][]grids.Point, 0, len(lines))
	minX, maxX, maxY := d14Source, d14Source, 0
	for _, line := range lines {
		nums := scan.Numbers(line)
		if len(nums) == 0 || len(nums)%2 != 0 {
			return nil, grids.Point{}, fmt.Errorf("%w: path %q", puzzle.ErrBadInput, line)
		}
		path := make([]grids.Point, 0, len(nums)/2)
		for i := 0; i < len(nums); i += 2 {
			p := grids.Pt(nums[i], nums[i+1])
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
			path = append(path, p)
		}
		paths = append(paths, path)
	}

	height := maxY + 3
	minX -= height
	cave := grids.New[byte](maxX-minX+1+height, height, func(t byte) byte { return t })
	cave.Each(func(p grids.Point, _ byte) { cave.Set(p, d14Air) })

	for _, path := range paths {
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
				for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
					cave.Set(grids.Pt(x-minX, y), d14Rock)
				}
			}
		}
	}

	return cave, grids.Pt(d14Source-minX, 0), nil
}

// d14Pour drops sand until it overflows and returns the number of
// grains at rest. The trail stack holds the falling grain's trajectory
// with the grain itself on top, so after a grain settles and is popped
// the next one resumes from its predecessor; the whole pour is linear
// in the cave area.
func d14Pour(cave *grids.Grid[byte], source grids.Point, floored bool) int {
	floor := cave.Height() - 1
	trail := []grids.Point{source}

	count := 0
	for len(trail) > 0 {
		p := trail[len(trail)-1]

		settled := true
		for _, dx := range [3]int{0, -1, 1} {
			next := grids.Pt(p.X+dx, p.Y+1)
			if floored && next.Y == floor {
				continue
			}
			if !cave.InBounds(next) {
				// Into the void: every grain after this one
				// follows the same trajectory.
				return count
			}
			if cave.At(next) == d14Air {
				trail = append(trail, next)
				settled = false
				break
			}
		}
		if settled {
			cave.Set(p, d14Sand)
			count++
			trail = trail[:len(trail)-1]
		}
	}

	return count
}
