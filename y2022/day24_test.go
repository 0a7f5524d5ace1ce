package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d24Sample = `#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
`

func TestDay24(t *testing.T) {
	got, err := y2022.Day24(asLines(d24Sample))
	require.NoError(t, err)
	require.Equal(t, 18, got.PartA)
	require.Equal(t, 54, got.PartB)
}

func TestDay24BadInput(t *testing.T) {
	_, err := y2022.Day24(asLines("#.##\n#xx#\n##.#\n"))
	require.Error(t, err)

	_, err = y2022.Day24(asLines("#.\n.#\n"))
	require.Error(t, err)
}
