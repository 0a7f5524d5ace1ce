package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d22Sample = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
`

func TestDay22(t *testing.T) {
	got, err := y2022.Day22(asLines(d22Sample))
	require.NoError(t, err)
	require.Equal(t, 6032, got.PartA)
	require.Equal(t, 5031, got.PartB)
}

func TestDay22BadInput(t *testing.T) {
	_, err := y2022.Day22(asLines("..#\n#..\n\n1R2\n"))
	require.Error(t, err)

	_, err = y2022.Day22(asLines(d22Sample + "\nextra\n"))
	require.Error(t, err)
}
