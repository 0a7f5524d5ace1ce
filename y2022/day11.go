package y2022

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d11Monkey is one monkey: held items, the worry operation, and the
// divisibility routing test.
type d11Monkey struct {
	items    []int
	operand  int // ignored when square
	multiply bool
	square   bool
	div      int
	onTrue   int
	onFalse  int
	activity int
}

// Day11 — Monkey in the Middle. Monkeys inspect and throw items by
// worry level. Part A plays 20 rounds with worry divided by 3; part B
// 10000 rounds with worry reduced modulo the product of all the
// divisibility tests, which preserves every routing decision. Both
// answers multiply the two highest inspection counts.
func Day11(lines []string) (puzzle.Solution, error) {
	troopA, err := d11Monkeys(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}
	troopB, err := d11Monkeys(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartA: d11Dance(troopA, 20, true),
		PartB: d11Dance(troopB, 10000, false),
	}, nil
}

func d11Monkeys(lines []string) ([]*d11Monkey, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) < 2 {
		return nil, fmt.Errorf("%w: want at least two monkeys", puzzle.ErrBadInput)
	}

	troop := make([]*d11Monkey, 0, len(blocks))
	for _, block := range blocks {
		if len(block) != 6 {
			return nil, fmt.Errorf("%w: monkey of %d lines", puzzle.ErrBadInput, len(block))
		}
		m := &d11Monkey{items: scan.Numbers(block[1])}

		op := block[2]
		switch {
		case strings.HasSuffix(op, "old * old"):
			m.square = true
		case strings.Contains(op, "old * "):
			m.multiply = true
			m.operand = scan.Numbers(op)[0]
		case strings.Contains(op, "old + "):
			m.operand = scan.Numbers(op)[0]
		default:
			return nil, fmt.Errorf("%w: operation %q", puzzle.ErrBadInput, op)
		}

		for i, dst := range []*int{&m.div, &m.onTrue, &m.onFalse} {
			n, err := scan.FixedNumbers(block[3+i], 1)
			if err != nil {
				return nil, fmt.Errorf("monkey rule %q: %w", block[3+i], err)
			}
			*dst = n[0]
		}
		troop = append(troop, m)
	}
	for _, m := range troop {
		if m.onTrue >= len(troop) || m.onFalse >= len(troop) || m.div == 0 {
			return nil, fmt.Errorf("%w: bad throw target", puzzle.ErrBadInput)
		}
	}

	return troop, nil
}

// d11Dance plays the rounds and returns the monkey-business level.
func d11Dance(troop []*d11Monkey, rounds int, calm bool) int {
	// Wrap worries modulo the product of all tests; each monkey's
	// decision only depends on its residue.
	wrap := 1
	for _, m := range troop {
		wrap *= m.div
	}

	for round := 0; round < rounds; round++ {
		for _, m := range troop {
			for _, item := range m.items {
				m.activity++
				worry := m.inspect(item)
				if calm {
					worry /= 3
				}
				worry %= wrap

				target := m.onFalse
				if worry%m.div == 0 {
					target = m.onTrue
				}
				troop[target].items = append(troop[target].items, worry)
			}
			m.items = m.items[:0]
		}
	}

	counts := make([]int, len(troop))
	for i, m := range troop {
		counts[i] = m.activity
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	return counts[0] * counts[1]
}

func (m *d11Monkey) inspect(item int) int {
	switch {
	case m.square:
		return item * item
	case m.multiply:
		return item * m.operand
	default:
		return item + m.operand
	}
}
