package y2024

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day01 — Historian Hysteria. Part A pairs the two location lists in
// sorted order and sums the distances; part B sums each left value
// weighted by its occurrence count in the right list.
func Day01(lines []string) (puzzle.Solution, error) {
	left, right, err := d01Lists(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartA: d01TotalDistance(left, right),
		PartB: d01Similarity(left, right),
	}, nil
}

// d01Lists splits each row "NNN   MMM" into the two location lists.
func d01Lists(lines []string) (left, right []int, err error) {
	for _, ln := range lines {
		pair, err := scan.FixedNumbers(ln, 2)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", puzzle.ErrBadInput, err)
		}
		left = append(left, pair[0])
		right = append(right, pair[1])
	}

	return left, right, nil
}

func d01TotalDistance(left, right []int) int {
	l := append([]int(nil), left...)
	r := append([]int(nil), right...)
	sort.Ints(l)
	sort.Ints(r)

	total := 0
	for i := range l {
		d := l[i] - r[i]
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total
}

func d01Similarity(left, right []int) int {
	count := make(map[int]int, len(right))
	for _, v := range right {
		count[v]++
	}

	score := 0
	for _, v := range left {
		score += v * count[v]
	}

	return score
}
