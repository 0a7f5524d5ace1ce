package y2024

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/graphs"
	"github.com/katalvlaran/advent/puzzle"
)

// d24Gate is one wire of the circuit: either a fixed input value or a
// boolean operation on two other wires.
type d24Gate struct {
	op   string // "AND", "OR", "XOR"; empty for an input value
	a, b string
	val  bool
}

// d24Circuit maps output wire names to their gates.
type d24Circuit map[string]d24Gate

// Day24 — Crossed Wires. Part A evaluates the gate circuit in
// topological order and reads the number off the z wires. Part B
// assumes the circuit is a ripple-carry adder with four swapped output
// pairs, walks it stage by stage against the full-adder shape, and
// reports the swapped wire names sorted and comma-joined.
func Day24(lines []string) (puzzle.Solution, error) {
	circuit, err := d24Parse(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	z, err := d24Compute(circuit)
	if err != nil {
		return puzzle.Solution{}, err
	}
	swapped, err := d24Repairs(circuit)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: z, TextB: swapped}, nil
}

func d24Parse(lines []string) (d24Circuit, error) {
	circuit := make(d24Circuit)
	inputs := true
	for _, ln := range lines {
		switch {
		case ln == "":
			inputs = false
		case inputs:
			name, value, ok := strings.Cut(ln, ": ")
			if !ok || (value != "0" && value != "1") {
				return nil, fmt.Errorf("%w: input %q", puzzle.ErrBadInput, ln)
			}
			circuit[name] = d24Gate{val: value == "1"}
		default:
			fields := strings.Fields(ln)
			if len(fields) != 5 || fields[3] != "->" {
				return nil, fmt.Errorf("%w: gate %q", puzzle.ErrBadInput, ln)
			}
			op := fields[1]
			if op != "AND" && op != "OR" && op != "XOR" {
				return nil, fmt.Errorf("%w: operation %q", puzzle.ErrBadInput, op)
			}
			circuit[fields[4]] = d24Gate{op: op, a: fields[0], b: fields[2]}
		}
	}
	if len(circuit) == 0 {
		return nil, fmt.Errorf("%w: no gates", puzzle.ErrBadInput)
	}

	return circuit, nil
}

// d24Compute evaluates every wire once, in dependency order, and packs
// the z wires into an integer with z00 as least significant bit.
func d24Compute(circuit d24Circuit) (int, error) {
	order, err := graphs.TopoSort(circuit, func(g d24Gate) []string {
		if g.op == "" {
			return nil
		}
		return []string{g.a, g.b}
	})
	if err != nil {
		return 0, fmt.Errorf("circuit: %w", err)
	}

	values := make(map[string]bool, len(circuit))
	z := 0
	for _, name := range order {
		g := circuit[name]
		var v bool
		switch g.op {
		case "":
			v = g.val
		case "AND":
			v = values[g.a] && values[g.b]
		case "OR":
			v = values[g.a] || values[g.b]
		case "XOR":
			v = values[g.a] != values[g.b]
		}
		values[name] = v

		if v && name[0] == 'z' {
			offset, err := strconv.Atoi(name[1:])
			if err != nil {
				return 0, fmt.Errorf("%w: wire %q", puzzle.ErrBadInput, name)
			}
			z |= 1 << offset
		}
	}

	return z, nil
}

// d24Wire builds an input wire name such as x03 or z12.
func d24Wire(prefix byte, bit int) string {
	return fmt.Sprintf("%c%02d", prefix, bit)
}

// d24Find returns the wire driven by the given operation, accepting its
// inputs in either order.
func d24Find(circuit d24Circuit, op, a, b string) (string, bool) {
	for name, g := range circuit {
		if g.op == op && ((g.a == a && g.b == b) || (g.a == b && g.b == a)) {
			return name, true
		}
	}

	return "", false
}

// d24FindPartial locates a gate of the same operation sharing one input
// and returns the mismatched wire pair, which is the swap to undo.
func d24FindPartial(circuit d24Circuit, op, a, b string) ([2]string, bool) {
	for _, g := range circuit {
		if g.op != op {
			continue
		}
		switch {
		case g.a == a:
			return [2]string{g.b, b}, true
		case g.b == a:
			return [2]string{g.a, b}, true
		case g.a == b:
			return [2]string{g.b, a}, true
		case g.b == b:
			return [2]string{g.a, a}, true
		}
	}

	return [2]string{}, false
}

// d24CheckStage verifies one full-adder stage:
//
//	x ──┬── AND ─(4)──────────────────────────┬── OR ─(2)── carry out
//	    ├── XOR ─(1)──┬── XOR ─(3)── z (sum)  │
//	y ──┘             ├── AND ─(5)────────────┘
//	carry in ─(2)─────┘
//
// The five numbered wires are the ones eligible for a swap. The carry
// is advanced to the stage's carry-out wire on success.
func d24CheckStage(circuit d24Circuit, stage int, carry *string) ([2]string, bool, error) {
	x, y := d24Wire('x', stage), d24Wire('y', stage)
	xorXY, ok := d24Find(circuit, "XOR", x, y)
	if !ok {
		return [2]string{}, false, fmt.Errorf("%w: no XOR for bit %d", puzzle.ErrBadInput, stage)
	}
	andXY, ok := d24Find(circuit, "AND", x, y)
	if !ok {
		return [2]string{}, false, fmt.Errorf("%w: no AND for bit %d", puzzle.ErrBadInput, stage)
	}

	carryAnd, ok := d24Find(circuit, "AND", xorXY, *carry)
	if !ok {
		swap, found := d24FindPartial(circuit, "AND", xorXY, *carry)
		if !found {
			return [2]string{}, false, fmt.Errorf("%w: adder shape lost at bit %d", puzzle.ErrBadInput, stage)
		}
		return swap, true, nil
	}

	z, ok := d24Find(circuit, "XOR", *carry, xorXY)
	if !ok {
		return [2]string{}, false, fmt.Errorf("%w: no sum for bit %d", puzzle.ErrBadInput, stage)
	}
	if want := d24Wire('z', stage); z != want {
		return [2]string{z, want}, true, nil
	}

	carryOut, ok := d24Find(circuit, "OR", carryAnd, andXY)
	if !ok {
		swap, found := d24FindPartial(circuit, "OR", carryAnd, andXY)
		if !found {
			return [2]string{}, false, fmt.Errorf("%w: adder shape lost at bit %d", puzzle.ErrBadInput, stage)
		}
		return swap, true, nil
	}
	*carry = carryOut

	return [2]string{}, false, nil
}

// d24Repairs finds the swapped output pairs of the adder and returns
// the involved wire names sorted and comma-joined.
func d24Repairs(circuit d24Circuit) (string, error) {
	bits := 0
	for name := range circuit {
		if name[0] == 'x' {
			bits++
		}
	}
	carry, ok := d24Find(circuit, "AND", d24Wire('x', 0), d24Wire('y', 0))
	if !ok {
		return "", fmt.Errorf("%w: no half adder for bit 0", puzzle.ErrBadInput)
	}

	var wrong []string
	for stage := 1; stage < bits-1; stage++ {
		swap, found, err := d24CheckStage(circuit, stage, &carry)
		if err != nil {
			return "", err
		}
		if !found {
			continue
		}

		wrong = append(wrong, swap[0], swap[1])
		circuit[swap[0]], circuit[swap[1]] = circuit[swap[1]], circuit[swap[0]]

		// The patched stage must verify cleanly now.
		if again, still, err := d24CheckStage(circuit, stage, &carry); err != nil || still {
			return "", fmt.Errorf("%w: swap %v did not repair bit %d", puzzle.ErrBadInput, again, stage)
		}
	}
	sort.Strings(wrong)

	return strings.Join(wrong, ","), nil
}
