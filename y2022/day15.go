package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/intervals"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d15Tuning is the x multiplier of the tuning frequency.
const d15Tuning = 4000000

// d15Pair is one sensor with its closest beacon.
type d15Pair struct {
	sensor grids.Point
	beacon grids.Point
}

// Day15 — Beacon Exclusion Zone. Each sensor rules out every cell
// within the Manhattan distance of its closest beacon. Part A counts
// the ruled-out cells of row 2000000, beacons excepted. Part B finds
// the single uncovered cell in the 4000000×4000000 square and returns
// its tuning frequency x*4000000+y.
func Day15(lines []string) (puzzle.Solution, error) {
	return d15Solve(lines, 2000000, d15Tuning)
}

func d15Solve(lines []string, row, search int) (puzzle.Solution, error) {
	pairs, err := d15Pairs(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	covered := d15Row(pairs, row)
	beacons := make(map[int]bool)
	for _, pair := range pairs {
		if pair.beacon.Y == row && covered.Contains(pair.beacon.X) {
			beacons[pair.beacon.X] = true
		}
	}
	partA := covered.Len() - len(beacons)

	partB, err := d15Frequency(pairs, search)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: partA, PartB: partB}, nil
}

func d15Pairs(lines []string) ([]d15Pair, error) {
	pairs := make([]d15Pair, 0, len(lines))
	for _, line := range lines {
		nums := scan.SignedNumbers(line)
		if len(nums) != 4 {
			return nil, fmt.Errorf("%w: sensor %q", puzzle.ErrBadInput, line)
		}
		pairs = append(pairs, d15Pair{
			sensor: grids.Pt(nums[0], nums[1]),
			beacon: grids.Pt(nums[2], nums[3]),
		})
	}

	return pairs, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// d15Row returns the union of the row cells each sensor rules out.
func d15Row(pairs []d15Pair, row int) *intervals.Set {
	var set intervals.Set
	for _, pair := range pairs {
		radius := abs(pair.beacon.X-pair.sensor.X) + abs(pair.beacon.Y-pair.sensor.Y)
		half := radius - abs(pair.sensor.Y-row)
		if half < 0 {
			continue
		}
		set.Add(intervals.Span{Lo: pair.sensor.X - half, Hi: pair.sensor.X + half})
	}

	return &set
}

// d15Frequency scans rows 0..search for the one whose coverage splits
// around a single-cell gap: the distress beacon.
func d15Frequency(pairs []d15Pair, search int) (int, error) {
	for y := 0; y <= search; y++ {
		covered := d15Row(pairs, y)
		if covered.Disjoint() != 2 {
			continue
		}
		spans := covered.Spans()
		if spans[0].Hi+2 == spans[1].Lo {
			return (spans[0].Hi+1)*d15Tuning + y, nil
		}
	}

	return 0, fmt.Errorf("%w: no uncovered cell", puzzle.ErrNoAnswer)
}
