package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

// d23Checks lists, per proposal direction, the three cells that must be
// free, first entry being the destination. The order rotates each round.
var d23Checks = [4][3]grids.Point{
	{grids.Pt(0, -1), grids.Pt(-1, -1), grids.Pt(1, -1)}, // north
	{grids.Pt(0, 1), grids.Pt(-1, 1), grids.Pt(1, 1)},    // south
	{grids.Pt(-1, 0), grids.Pt(-1, -1), grids.Pt(-1, 1)}, // west
	{grids.Pt(1, 0), grids.Pt(1, -1), grids.Pt(1, 1)},    // east
}

// Day23 — Unstable Diffusion. Elves spread out over an infinite field:
// each round, every elf with a neighbour proposes the first free
// direction of a rotating north/south/west/east list, and proposals
// aimed at the same cell cancel. Part A counts the empty cells in the
// elves' bounding rectangle after 10 rounds; part B is the number of
// the first round in which nobody moves.
func Day23(lines []string) (puzzle.Solution, error) {
	elves, err := d23Elves(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	partA := 0
	partB := 0
	for round := 0; ; round++ {
		if round == 10 {
			partA = d23Empty(elves)
		}
		if !d23Round(elves, round) {
			partB = round + 1
			break
		}
	}
	if partB <= 10 {
		partA = d23Empty(elves)
	}

	return puzzle.Solution{PartA: partA, PartB: partB}, nil
}

func d23Elves(lines []string) (map[grids.Point]bool, error) {
	elves := make(map[grids.Point]bool)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				elves[grids.Pt(x, y)] = true
			case '.':
			default:
				return nil, fmt.Errorf("%w: field byte %q", puzzle.ErrBadInput, line[x])
			}
		}
	}
	if len(elves) == 0 {
		return nil, fmt.Errorf("%w: no elves", puzzle.ErrBadInput)
	}

	return elves, nil
}

// d23Round plays one round in place and reports whether any elf moved.
// round selects the first proposal direction to consider.
func d23Round(elves map[grids.Point]bool, round int) bool {
	proposals := make(map[grids.Point]grids.Point, len(elves))
	claimed := make(map[grids.Point]int, len(elves))

	for elf := range elves {
		crowded := false
		for dy := -1; dy <= 1 && !crowded; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && elves[elf.Add(grids.Pt(dx, dy))] {
					crowded = true
					break
				}
			}
		}
		if !crowded {
			continue
		}

		for i := 0; i < 4; i++ {
			checks := d23Checks[(round+i)%4]
			free := true
			for _, d := range checks {
				free = free && !elves[elf.Add(d)]
			}
			if free {
				to := elf.Add(checks[0])
				proposals[elf] = to
				claimed[to]++
				break
			}
		}
	}

	moved := false
	for elf, to := range proposals {
		if claimed[to] != 1 {
			continue
		}
		delete(elves, elf)
		elves[to] = true
		moved = true
	}

	return moved
}

// d23Empty counts the free cells of the elves' bounding rectangle.
func d23Empty(elves map[grids.Point]bool) int {
	var lo, hi grids.Point
	first := true
	for elf := range elves {
		if first {
			lo, hi = elf, elf
			first = false
			continue
		}
		lo = grids.Pt(min(lo.X, elf.X), min(lo.Y, elf.Y))
		hi = grids.Pt(max(hi.X, elf.X), max(hi.Y, elf.Y))
	}

	return (hi.X-lo.X+1)*(hi.Y-lo.Y+1) - len(elves)
}
