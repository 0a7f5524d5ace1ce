package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

const (
	d22Steps = 2000
	// Four price changes, each in -9..9, packed base 19.
	d22Sequences = 19 * 19 * 19 * 19
)

// Day22 — Monkey Market. Each buyer evolves a pseudo-random secret 2000
// times. Part A sums the final secrets; part B finds the
// four-price-change sequence earning the most bananas when every buyer
// sells at its first occurrence.
func Day22(lines []string) (puzzle.Solution, error) {
	seeds, err := d22Seeds(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	// Flat arrays beat maps here: only 19^4 sequences exist. seen
	// holds the last buyer to touch a sequence, so each buyer sells a
	// given sequence at most once.
	earnings := make([]int, d22Sequences)
	seen := make([]int, d22Sequences)
	for i := range seen {
		seen[i] = -1
	}

	sum, best := 0, 0
	for id, seed := range seeds {
		secret := seed
		window := 0
		for step := 0; step < d22Steps; step++ {
			next := d22Step(secret)
			change := next%10 - secret%10
			secret = next

			window = (window*19 + change + 9) % d22Sequences
			if step < 3 {
				continue
			}
			if seen[window] != id {
				seen[window] = id
				earnings[window] += next % 10
				if earnings[window] > best {
					best = earnings[window]
				}
			}
		}
		sum += secret
	}

	return puzzle.Solution{PartA: sum, PartB: best}, nil
}

func d22Seeds(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		n, err := scan.FixedNumbers(ln, 1)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", ln, err)
		}
		out = append(out, n[0])
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no seeds", puzzle.ErrBadInput)
	}

	return out, nil
}

// d22Step is one round of the market's mix-and-prune generator.
func d22Step(secret int) int {
	const prune = 16777216 - 1
	secret = (secret ^ secret<<6) & prune
	secret = (secret ^ secret>>5) & prune

	return (secret ^ secret<<11) & prune
}
