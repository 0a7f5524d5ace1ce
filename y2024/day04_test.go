package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d04Example = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

func TestDay04_Example(t *testing.T) {
	sol, err := y2024.Day04(asLines(d04Example))
	require.NoError(t, err)
	require.Equal(t, 18, sol.PartA)
	require.Equal(t, 9, sol.PartB)
}
