package y2024_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

// asLines turns an embedded example into the solver's input shape.
func asLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

const d01Example = `3   4
4   3
2   5
1   3
3   9
3   3
`

func TestDay01_Example(t *testing.T) {
	sol, err := y2024.Day01(asLines(d01Example))
	require.NoError(t, err)
	require.Equal(t, 11, sol.PartA)
	require.Equal(t, 31, sol.PartB)
}
