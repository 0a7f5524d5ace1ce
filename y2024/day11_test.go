package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

func TestDay11_Example(t *testing.T) {
	sol, err := y2024.Day11([]string{"125 17"})
	require.NoError(t, err)
	require.Equal(t, 55312, sol.PartA)
}
