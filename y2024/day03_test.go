package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

func TestDay03_Example(t *testing.T) {
	partA := `xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))`
	partB := `xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))`

	sol, err := y2024.Day03([]string{partA})
	require.NoError(t, err)
	require.Equal(t, 161, sol.PartA)

	sol, err = y2024.Day03([]string{partB})
	require.NoError(t, err)
	require.Equal(t, 48, sol.PartB)
}
