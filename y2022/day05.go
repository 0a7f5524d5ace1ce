package y2022

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Day05 — Supply Stacks. The header draws the initial crate stacks, the
// body lists the crane moves. Part A moves crates one at a time
// (reversing each batch), part B moves the batch in one grab. Both
// answers are the top crate of every stack, as text.
func Day05(lines []string) (puzzle.Solution, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) != 2 {
		return puzzle.Solution{}, fmt.Errorf("%w: want stacks and moves", puzzle.ErrBadInput)
	}

	one, err := d05Stacks(blocks[0])
	if err != nil {
		return puzzle.Solution{}, err
	}
	batch, err := d05Stacks(blocks[0])
	if err != nil {
		return puzzle.Solution{}, err
	}

	for _, ln := range blocks[1] {
		amount, from, to, err := d05Move(ln, len(one))
		if err != nil {
			return puzzle.Solution{}, err
		}

		// Crate Mover 9000 reverses the batch, 9001 keeps its order.
		grabbed := batch[from][len(batch[from])-amount:]
		batch[from] = batch[from][:len(batch[from])-amount]
		batch[to] = append(batch[to], grabbed...)

		for i := 0; i < amount; i++ {
			top := one[from][len(one[from])-1]
			one[from] = one[from][:len(one[from])-1]
			one[to] = append(one[to], top)
		}
	}

	return puzzle.Solution{TextA: d05Tops(one), TextB: d05Tops(batch)}, nil
}

// d05Stacks reads the crate drawing. The last header line numbers the
// stacks; crate letters sit at columns 1, 5, 9, ...
func d05Stacks(header []string) ([][]byte, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: no crate drawing", puzzle.ErrBadInput)
	}
	labels := scan.Numbers(header[len(header)-1])
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no stack labels", puzzle.ErrBadInput)
	}

	stacks := make([][]byte, len(labels))
	for row := len(header) - 2; row >= 0; row-- {
		for i := range stacks {
			col := i*4 + 1
			if col >= len(header[row]) {
				continue
			}
			if c := header[row][col]; c >= 'A' && c <= 'Z' {
				stacks[i] = append(stacks[i], c)
			}
		}
	}

	return stacks, nil
}

// d05Move parses "move N from A to B" into zero-based stack indices.
func d05Move(line string, stacks int) (amount, from, to int, err error) {
	nums := scan.Numbers(line)
	if !strings.HasPrefix(line, "move ") || len(nums) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: move %q", puzzle.ErrBadInput, line)
	}
	amount, from, to = nums[0], nums[1]-1, nums[2]-1
	if from < 0 || from >= stacks || to < 0 || to >= stacks || amount < 0 {
		return 0, 0, 0, fmt.Errorf("%w: move %q", puzzle.ErrBadInput, line)
	}

	return amount, from, to, nil
}

// d05Tops reads the topmost crate of each stack.
func d05Tops(stacks [][]byte) string {
	var b strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			b.WriteByte(s[len(s)-1])
		}
	}

	return b.String()
}
