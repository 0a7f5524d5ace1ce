package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d10Example = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

func TestDay10_Example(t *testing.T) {
	sol, err := y2024.Day10(asLines(d10Example))
	require.NoError(t, err)
	require.Equal(t, 36, sol.PartA)
	require.Equal(t, 81, sol.PartB)
}
