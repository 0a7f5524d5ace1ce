package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d07Example = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
`

func TestDay07_Example(t *testing.T) {
	sol, err := y2024.Day07(asLines(d07Example))
	require.NoError(t, err)
	require.Equal(t, 3749, sol.PartA)
	require.Equal(t, 11387, sol.PartB)
}
