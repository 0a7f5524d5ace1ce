package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day11 — Plutonian Pebbles. Each blink rewrites every stone: 0 → 1,
// even digit count → split in half, otherwise ×2024. Stones never
// interact, so only the multiset of values matters. Part A counts
// stones after 25 blinks, part B after 75.
func Day11(lines []string) (puzzle.Solution, error) {
	if len(lines) == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no stones", puzzle.ErrBadInput)
	}

	stones := map[int]int{}
	for _, v := range scan.Numbers(lines[0]) {
		stones[v]++
	}
	if len(stones) == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no stones", puzzle.ErrBadInput)
	}

	for blink := 0; blink < 25; blink++ {
		stones = d11Blink(stones)
	}
	after25 := d11Count(stones)

	for blink := 25; blink < 75; blink++ {
		stones = d11Blink(stones)
	}

	return puzzle.Solution{PartA: after25, PartB: d11Count(stones)}, nil
}

// d11Blink applies one rewrite round to the stone multiset.
func d11Blink(stones map[int]int) map[int]int {
	out := make(map[int]int, len(stones)*2)
	for v, n := range stones {
		switch {
		case v == 0:
			out[1] += n
		default:
			if digits := d11Digits(v); digits%2 == 0 {
				shift := 1
				for i := 0; i < digits/2; i++ {
					shift *= 10
				}
				out[v/shift] += n
				out[v%shift] += n
			} else {
				out[v*2024] += n
			}
		}
	}

	return out
}

// d11Digits returns the decimal digit count of v (v >= 0).
func d11Digits(v int) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}

	return n
}

func d11Count(stones map[int]int) int {
	total := 0
	for _, n := range stones {
		total += n
	}

	return total
}
