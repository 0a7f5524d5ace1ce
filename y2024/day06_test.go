package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d06Example = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestDay06_Example(t *testing.T) {
	sol, err := y2024.Day06(asLines(d06Example))
	require.NoError(t, err)
	require.Equal(t, 41, sol.PartA)
	require.Equal(t, 6, sol.PartB)
}
