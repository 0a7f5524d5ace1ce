package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d18Cube is a 1×1×1 lava droplet coordinate.
type d18Cube [3]int

// d18Dirs are the six face neighbours of a cube.
var d18Dirs = [6]d18Cube{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func (c d18Cube) add(d d18Cube) d18Cube {
	return d18Cube{c[0] + d[0], c[1] + d[1], c[2] + d[2]}
}

// Day18 — Boiling Boulders. Lava droplets are unit cubes in space.
// Part A counts every cube face not touching another cube. Part B
// counts only the faces reachable from outside, flooding the air
// around the droplet to skip interior pockets.
func Day18(lines []string) (puzzle.Solution, error) {
	cubes, err := d18Cubes(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	free := 0
	for cube := range cubes {
		for _, dir := range d18Dirs {
			if !cubes[cube.add(dir)] {
				free++
			}
		}
	}

	return puzzle.Solution{PartA: free, PartB: d18Exterior(cubes)}, nil
}

func d18Cubes(lines []string) (map[d18Cube]bool, error) {
	cubes := make(map[d18Cube]bool, len(lines))
	for _, line := range lines {
		nums, err := scan.FixedNumbers(line, 3)
		if err != nil {
			return nil, fmt.Errorf("droplet %q: %w", line, err)
		}
		cubes[d18Cube{nums[0], nums[1], nums[2]}] = true
	}
	if len(cubes) == 0 {
		return nil, fmt.Errorf("%w: no droplets", puzzle.ErrBadInput)
	}

	return cubes, nil
}

// d18Exterior floods the air in a one-cube margin around the droplet's
// bounding box and counts every lava face the flood bumps into.
func d18Exterior(cubes map[d18Cube]bool) int {
	var lo, hi d18Cube
	first := true
	for cube := range cubes {
		for a := 0; a < 3; a++ {
			if first || cube[a] < lo[a] {
				lo[a] = cube[a]
			}
			if first || cube[a] > hi[a] {
				hi[a] = cube[a]
			}
		}
		first = false
	}
	for a := 0; a < 3; a++ {
		lo[a]--
		hi[a]++
	}

	start := lo
	outside := map[d18Cube]bool{start: true}
	queue := []d18Cube{start}
	faces := 0
	for len(queue) > 0 {
		air := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, dir := range d18Dirs {
			next := air.add(dir)
			if cubes[next] {
				faces++
				continue
			}
			inBox := true
			for a := 0; a < 3; a++ {
				inBox = inBox && next[a] >= lo[a] && next[a] <= hi[a]
			}
			if !inBox || outside[next] {
				continue
			}
			outside[next] = true
			queue = append(queue, next)
		}
	}

	return faces
}
