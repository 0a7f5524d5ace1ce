package y2022

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d13Value is one element of a packet: either a number or a list.
type d13Value struct {
	num    int
	list   []d13Value
	isList bool
}

// Day13 — Distress Signal. Packets are nested lists of numbers with a
// recursive ordering rule; a lone number compares against a list as a
// one-element list. Part A sums the one-based indexes of the pairs
// already in order. Part B sorts all packets together with the divider
// packets [[2]] and [[6]] and multiplies the dividers' positions.
func Day13(lines []string) (puzzle.Solution, error) {
	pairs := scan.Blocks(lines)

	sum := 0
	packets := make([]d13Value, 0, 2*len(pairs)+2)
	for idx, pair := range pairs {
		if len(pair) != 2 {
			return puzzle.Solution{}, fmt.Errorf("%w: pair of %d packets", puzzle.ErrBadInput, len(pair))
		}
		left, err := d13Parse(pair[0])
		if err != nil {
			return puzzle.Solution{}, err
		}
		right, err := d13Parse(pair[1])
		if err != nil {
			return puzzle.Solution{}, err
		}
		if d13Compare(left, right) < 0 {
			sum += idx + 1
		}
		packets = append(packets, left, right)
	}

	divA := d13Divider(2)
	divB := d13Divider(6)
	packets = append(packets, divA, divB)
	sort.Slice(packets, func(i, j int) bool {
		return d13Compare(packets[i], packets[j]) < 0
	})

	key := 1
	for i, p := range packets {
		if d13Compare(p, divA) == 0 || d13Compare(p, divB) == 0 {
			key *= i + 1
		}
	}

	return puzzle.Solution{PartA: sum, PartB: key}, nil
}

func d13Divider(n int) d13Value {
	inner := d13Value{list: []d13Value{{num: n}}, isList: true}

	return d13Value{list: []d13Value{inner}, isList: true}
}

// d13Parse reads one packet. The outermost value is always a list.
func d13Parse(line string) (d13Value, error) {
	v, rest, err := d13ParseValue(line)
	if err != nil {
		return d13Value{}, fmt.Errorf("packet %q: %w", line, err)
	}
	if rest != "" || !v.isList {
		return d13Value{}, fmt.Errorf("%w: packet %q", puzzle.ErrBadInput, line)
	}

	return v, nil
}

func d13ParseValue(s string) (d13Value, string, error) {
	if s == "" {
		return d13Value{}, "", fmt.Errorf("%w: truncated packet", puzzle.ErrBadInput)
	}

	if s[0] != '[' {
		n := 0
		i := 0
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			n = n*10 + int(s[i]-'0')
		}
		if i == 0 {
			return d13Value{}, "", fmt.Errorf("%w: byte %q", puzzle.ErrBadInput, s[0])
		}

		return d13Value{num: n}, s[i:], nil
	}

	v := d13Value{isList: true}
	s = s[1:]
	for {
		if s == "" {
			return d13Value{}, "", fmt.Errorf("%w: unclosed list", puzzle.ErrBadInput)
		}
		if s[0] == ']' {
			return v, s[1:], nil
		}
		if s[0] == ',' {
			s = s[1:]
			continue
		}

		item, rest, err := d13ParseValue(s)
		if err != nil {
			return d13Value{}, "", err
		}
		v.list = append(v.list, item)
		s = rest
	}
}

// d13Compare orders two packet values: negative when a comes first,
// zero when equal.
func d13Compare(a, b d13Value) int {
	switch {
	case !a.isList && !b.isList:
		return a.num - b.num
	case !a.isList:
		return d13Compare(d13Value{list: []d13Value{a}, isList: true}, b)
	case !b.isList:
		return d13Compare(a, d13Value{list: []d13Value{b}, isList: true})
	}

	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := d13Compare(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}

	return len(a.list) - len(b.list)
}
