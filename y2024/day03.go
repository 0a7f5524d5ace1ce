package y2024

import (
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Day03 — Mull It Over. Scan corrupted memory for valid mul(X,Y)
// instructions; part B additionally honors do() / don't() toggles.
func Day03(lines []string) (puzzle.Solution, error) {
	memory := strings.Join(lines, "\n")

	sumAll := 0
	sumActive := 0
	active := true
	for i := 0; i < len(memory); i++ {
		rest := memory[i:]
		switch {
		case strings.HasPrefix(rest, "do()"):
			active = true
		case strings.HasPrefix(rest, "don't()"):
			active = false
		case strings.HasPrefix(rest, "mul("):
			product, width := d03Mul(rest[len("mul("):])
			if width == 0 {
				continue
			}
			sumAll += product
			if active {
				sumActive += product
			}
			i += len("mul(") + width - 1
		}
	}

	return puzzle.Solution{PartA: sumAll, PartB: sumActive}, nil
}

// d03Mul parses "X,Y)" at the start of s, with X and Y of 1..3 digits.
// Returns the product and the number of bytes consumed, or 0,0 when the
// pattern does not match.
func d03Mul(s string) (product, width int) {
	x, i := d03Number(s, 0)
	if i < 0 || i >= len(s) || s[i] != ',' {
		return 0, 0
	}
	y, j := d03Number(s, i+1)
	if j < 0 || j >= len(s) || s[j] != ')' {
		return 0, 0
	}

	return x * y, j + 1
}

// d03Number reads 1..3 digits of s starting at from.
// Returns the value and the index after the digits, or -1 on mismatch.
func d03Number(s string, from int) (value, next int) {
	n := 0
	i := from
	for ; i < len(s) && i < from+3; i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if i == from {
		return 0, -1
	}

	return n, i
}
