package y2024

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// The eight opcodes of the 3-bit machine.
const (
	d17Adv = 0
	d17Bxl = 1
	d17Bst = 2
	d17Jnz = 3
	d17Bxc = 4
	d17Out = 5
	d17Bdv = 6
	d17Cdv = 7
)

// d17Machine is the 3-bit computer: registers A, B, C, an instruction
// pointer and the program tape of 3-bit values.
type d17Machine struct {
	a, b, c int
	ip      int
	program []int
}

// Day17 — Chronospatial Computer. Part A runs the program and joins its
// output with commas (a text answer). Part B finds the smallest A that
// makes the program print itself, built 3 bits at a time with
// backtracking from the last program digit.
func Day17(lines []string) (puzzle.Solution, error) {
	m, err := d17Parse(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	run := *m
	out := make([]string, 0, 16)
	for {
		v, ok := run.step()
		if !ok {
			break
		}
		out = append(out, strconv.Itoa(v))
	}

	quine, err := m.findQuine()
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		TextA: strings.Join(out, ","),
		PartB: quine,
	}, nil
}

// d17Parse reads the three register lines, skips the blank, and loads
// the program tape.
func d17Parse(lines []string) (*d17Machine, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) != 2 || len(blocks[0]) != 3 || len(blocks[1]) != 1 {
		return nil, fmt.Errorf("%w: want registers and program", puzzle.ErrBadInput)
	}

	regs := make([]int, 0, 3)
	for _, ln := range blocks[0] {
		n, err := scan.FixedNumbers(ln, 1)
		if err != nil {
			return nil, fmt.Errorf("register %q: %w", ln, err)
		}
		regs = append(regs, n[0])
	}

	program := scan.Numbers(blocks[1][0])
	if len(program) == 0 || len(program)%2 != 0 {
		return nil, fmt.Errorf("%w: program %q", puzzle.ErrBadInput, blocks[1][0])
	}
	for _, v := range program {
		if v < 0 || v > 7 {
			return nil, fmt.Errorf("%w: opcode %d", puzzle.ErrBadInput, v)
		}
	}

	return &d17Machine{a: regs[0], b: regs[1], c: regs[2], program: program}, nil
}

// step executes instructions until the next out, returning its value.
// ok is false once the instruction pointer runs off the tape.
func (m *d17Machine) step() (int, bool) {
	for m.ip+1 < len(m.program) {
		ins, op := m.program[m.ip], m.program[m.ip+1]
		m.ip += 2

		switch ins {
		case d17Adv:
			m.a >>= m.combo(op)
		case d17Bxl:
			m.b ^= op
		case d17Bst:
			m.b = m.combo(op) & 7
		case d17Jnz:
			if m.a != 0 {
				m.ip = op
			}
		case d17Bxc:
			m.b ^= m.c
		case d17Out:
			return m.combo(op) & 7, true
		case d17Bdv:
			m.b = m.a >> m.combo(op)
		case d17Cdv:
			m.c = m.a >> m.combo(op)
		}
	}

	return 0, false
}

// combo maps a combo operand code to its value. Operand 7 never appears
// in valid programs.
func (m *d17Machine) combo(op int) int {
	switch op {
	case 4:
		return m.a
	case 5:
		return m.b
	case 6:
		return m.c
	}

	return op
}

// firstOutput resets the machine with register A set to a and runs it
// until the first out instruction fires.
func (m *d17Machine) firstOutput(a int) (int, bool) {
	m.a, m.b, m.c, m.ip = a, 0, 0, 0

	return m.step()
}

// findQuine searches for the smallest A whose output replicates the
// program. The tape is consumed one digit per loop iteration with A
// shifted right by 3, so A is assembled 3 bits at a time starting from
// the last digit, backtracking over earlier choices on dead ends.
func (m *d17Machine) findQuine() (int, error) {
	n := len(m.program)
	a := 0
	step := 0
	next := 0
	for {
		found := false
		for tribble := next; tribble < 8; tribble++ {
			candidate := a<<3 | tribble
			if v, ok := m.firstOutput(candidate); ok && v == m.program[n-step-1] {
				a = candidate
				found = true
				break
			}
		}

		if found {
			if step == n-1 {
				return a, nil
			}
			step++
			next = 0
			continue
		}

		// Dead end: pop the last tribble and resume after it.
		for {
			if step == 0 {
				return 0, fmt.Errorf("%w: no quine register value", puzzle.ErrNoAnswer)
			}
			step--
			next = a&7 + 1
			a >>= 3
			if next < 8 {
				break
			}
		}
	}
}
