package y2022

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/advent/puzzle"
)

// Day03 — Rucksack Reorganization. Items are one-hot encoded into a
// uint64 (bits 0..25 for a..z, 26..51 for A..Z), so shared items drop
// out of simple intersections. Part A intersects each rucksack's two
// halves; part B each group of three rucksacks.
func Day03(lines []string) (puzzle.Solution, error) {
	var rows []string
	for _, ln := range lines {
		if ln != "" {
			rows = append(rows, ln)
		}
	}
	if len(rows) == 0 || len(rows)%3 != 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: want groups of three rucksacks", puzzle.ErrBadInput)
	}

	halves := 0
	for _, row := range rows {
		if len(row)%2 != 0 {
			return puzzle.Solution{}, fmt.Errorf("%w: odd rucksack %q", puzzle.ErrBadInput, row)
		}
		left, err := d03Items(row[:len(row)/2])
		if err != nil {
			return puzzle.Solution{}, err
		}
		right, err := d03Items(row[len(row)/2:])
		if err != nil {
			return puzzle.Solution{}, err
		}
		p, err := d03Priority(left & right)
		if err != nil {
			return puzzle.Solution{}, err
		}
		halves += p
	}

	badges := 0
	for i := 0; i < len(rows); i += 3 {
		a, err := d03Items(rows[i])
		if err != nil {
			return puzzle.Solution{}, err
		}
		b, err := d03Items(rows[i+1])
		if err != nil {
			return puzzle.Solution{}, err
		}
		c, err := d03Items(rows[i+2])
		if err != nil {
			return puzzle.Solution{}, err
		}
		p, err := d03Priority(a & b & c)
		if err != nil {
			return puzzle.Solution{}, err
		}
		badges += p
	}

	return puzzle.Solution{PartA: halves, PartB: badges}, nil
}

// d03Items one-hot encodes a rucksack compartment.
func d03Items(row string) (uint64, error) {
	var items uint64
	for i := 0; i < len(row); i++ {
		switch c := row[i]; {
		case c >= 'a' && c <= 'z':
			items |= 1 << (c - 'a')
		case c >= 'A' && c <= 'Z':
			items |= 1 << (c - 'A' + 26)
		default:
			return 0, fmt.Errorf("%w: item %q", puzzle.ErrBadInput, c)
		}
	}

	return items, nil
}

// d03Priority maps a single shared item back to its priority 1..52.
func d03Priority(common uint64) (int, error) {
	if bits.OnesCount64(common) != 1 {
		return 0, fmt.Errorf("%w: %d shared items", puzzle.ErrBadInput, bits.OnesCount64(common))
	}

	return bits.TrailingZeros64(common) + 1, nil
}
