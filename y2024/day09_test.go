package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

func TestDay09_Example(t *testing.T) {
	sol, err := y2024.Day09([]string{"2333133121414131402"})
	require.NoError(t, err)
	require.Equal(t, 1928, sol.PartA)
	require.Equal(t, 2858, sol.PartB)
}
