package y2023

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// The bag holds at most this many cubes of each color.
const (
	d02Red   = 12
	d02Green = 13
	d02Blue  = 14
)

// d02Draw is the cube counts revealed in one handful.
type d02Draw struct {
	red, green, blue int
}

// Day02 — Cube Conundrum. Each game reveals handfuls of colored cubes
// from a bag. Part A sums the IDs of games possible with 12 red,
// 13 green and 14 blue cubes; part B sums the power (red·green·blue)
// of each game's minimal bag.
func Day02(lines []string) (puzzle.Solution, error) {
	possible, power := 0, 0
	for _, line := range lines {
		id, draws, err := d02Game(line)
		if err != nil {
			return puzzle.Solution{}, err
		}

		var need d02Draw
		for _, d := range draws {
			need.red = max(need.red, d.red)
			need.green = max(need.green, d.green)
			need.blue = max(need.blue, d.blue)
		}

		if need.red <= d02Red && need.green <= d02Green && need.blue <= d02Blue {
			possible += id
		}
		power += need.red * need.green * need.blue
	}

	return puzzle.Solution{PartA: possible, PartB: power}, nil
}

// d02Game parses "Game N: 3 blue, 4 red; 1 red, 2 green" into the game
// ID and its per-handful draws.
func d02Game(line string) (int, []d02Draw, error) {
	head, tail, found := strings.Cut(line, ":")
	if !found {
		return 0, nil, fmt.Errorf("%w: game %q", puzzle.ErrBadInput, line)
	}
	id, err := scan.FixedNumbers(head, 1)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: game %q", puzzle.ErrBadInput, line)
	}

	handfuls := strings.Split(tail, ";")
	draws := make([]d02Draw, 0, len(handfuls))
	for _, handful := range handfuls {
		var d d02Draw
		for _, cube := range strings.Split(handful, ",") {
			n, err := scan.FixedNumbers(cube, 1)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: cubes %q", puzzle.ErrBadInput, cube)
			}
			switch {
			case strings.HasSuffix(cube, "red"):
				d.red += n[0]
			case strings.HasSuffix(cube, "green"):
				d.green += n[0]
			case strings.HasSuffix(cube, "blue"):
				d.blue += n[0]
			default:
				return 0, nil, fmt.Errorf("%w: cubes %q", puzzle.ErrBadInput, cube)
			}
		}
		draws = append(draws, d)
	}

	return id[0], draws, nil
}
