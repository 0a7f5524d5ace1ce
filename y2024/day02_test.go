package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d02Example = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func TestDay02_Example(t *testing.T) {
	sol, err := y2024.Day02(asLines(d02Example))
	require.NoError(t, err)
	require.Equal(t, 2, sol.PartA)
	require.Equal(t, 4, sol.PartB)
}
