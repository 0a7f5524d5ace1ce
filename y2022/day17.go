package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
)

// d17Rock is one rock shape: its rows bottom-up, each row a bitmask of
// the occupied columns relative to the rock's left edge, plus its width.
type d17Rock struct {
	rows  []byte
	width int
}

// The five rocks, in falling order.
var d17Rocks = [5]d17Rock{
	{rows: []byte{0b1111}, width: 4},
	{rows: []byte{0b010, 0b111, 0b010}, width: 3},
	{rows: []byte{0b111, 0b100, 0b100}, width: 3},
	{rows: []byte{0b1, 0b1, 0b1, 0b1}, width: 1},
	{rows: []byte{0b11, 0b11}, width: 2},
}

// d17Key fingerprints the chamber after a rock settles: the next rock,
// the jet position, and the top eight rows of the stack.
type d17Key struct {
	rock int
	jet  int
	top  uint64
}

// Day17 — Pyroclastic Flow. Five rock shapes fall in a 7-wide chamber,
// pushed sideways by a jet pattern that loops forever. Part A is the
// stack height after 2022 rocks, part B after 1000000000000; the second
// one relies on the rock/jet/surface state eventually cycling.
func Day17(lines []string) (puzzle.Solution, error) {
	if len(lines) == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no jet pattern", puzzle.ErrBadInput)
	}

	partA, err := d17Height(lines[0], 2022)
	if err != nil {
		return puzzle.Solution{}, err
	}
	partB, err := d17Height(lines[0], 1000000000000)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: partA, PartB: partB}, nil
}

// d17Chamber holds the settled rows, bit x of a row is column x.
type d17Chamber struct {
	rows []byte
	top  int
}

func (c *d17Chamber) row(y int) byte {
	if y < len(c.rows) {
		return c.rows[y]
	}

	return 0
}

// collides reports whether rock at column x, bottom row y overlaps the
// walls or the settled rows.
func (c *d17Chamber) collides(rock d17Rock, x, y int) bool {
	if x < 0 || x+rock.width > 7 || y < 0 {
		return true
	}
	for i, r := range rock.rows {
		if c.row(y+i)&(r<<x) != 0 {
			return true
		}
	}

	return false
}

func (c *d17Chamber) settle(rock d17Rock, x, y int) {
	for y+len(rock.rows) > len(c.rows) {
		c.rows = append(c.rows, 0)
	}
	for i, r := range rock.rows {
		c.rows[y+i] |= r << x
	}
	if y+len(rock.rows) > c.top {
		c.top = y + len(rock.rows)
	}
}

// fingerprint packs the top eight rows into one word.
func (c *d17Chamber) fingerprint() uint64 {
	enc := uint64(0)
	for y := max(0, c.top-8); y < c.top; y++ {
		enc = enc<<8 | uint64(c.rows[y])
	}

	return enc
}

// d17Height drops target rocks and returns the stack height. Once the
// same (next rock, jet position, surface) state repeats, the rocks in
// between form a cycle and all its full repetitions are skipped at once.
func d17Height(jets string, target int) (int, error) {
	for i := 0; i < len(jets); i++ {
		if jets[i] != '<' && jets[i] != '>' {
			return 0, fmt.Errorf("%w: jet %q", puzzle.ErrBadInput, jets[i])
		}
	}

	type visit struct {
		count  int
		height int
	}
	seen := make(map[d17Key]visit)

	var chamber d17Chamber
	jet := 0
	skipped := 0
	for count := 0; count < target; count++ {
		rock := d17Rocks[count%5]
		x, y := 2, chamber.top+3
		for {
			dx := 1
			if jets[jet] == '<' {
				dx = -1
			}
			jet = (jet + 1) % len(jets)
			if !chamber.collides(rock, x+dx, y) {
				x += dx
			}
			if chamber.collides(rock, x, y-1) {
				chamber.settle(rock, x, y)
				break
			}
			y--
		}

		if skipped > 0 {
			continue
		}
		key := d17Key{rock: (count + 1) % 5, jet: jet, top: chamber.fingerprint()}
		if prev, ok := seen[key]; ok {
			cycleLen := count - prev.count
			cycleHeight := chamber.top - prev.height
			cycles := (target - 1 - count) / cycleLen
			skipped = cycles * cycleHeight
			count += cycles * cycleLen
			continue
		}
		seen[key] = visit{count: count, height: chamber.top}
	}

	return chamber.top + skipped, nil
}
