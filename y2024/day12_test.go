package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d12Example = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`

func TestDay12_Example(t *testing.T) {
	sol, err := y2024.Day12(asLines(d12Example))
	require.NoError(t, err)
	require.Equal(t, 1930, sol.PartA)
	require.Equal(t, 1206, sol.PartB)
}

// TestDay12_SideShapes covers the E-shape and the inner-diagonal case.
func TestDay12_SideShapes(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  int
	}{
		{"Small", []string{"AAAA", "BBCD", "BBCC", "EEEC"}, 80},
		{"EShape", []string{"EEEEE", "EXXXX", "EEEEE", "EXXXX", "EEEEE"}, 236},
		{"Diagonal", []string{"AAAAAA", "AAABBA", "AAABBA", "ABBAAA", "ABBAAA", "AAAAAA"}, 368},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := y2024.Day12(tc.lines)
			require.NoError(t, err)
			require.Equal(t, tc.want, sol.PartB)
		})
	}
}
