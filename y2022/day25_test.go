package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d25Sample = `1=-0-2
12111
2=0=
21
2=01
111
20012
112
1=-1=
1-12
12
1=
122
`

func TestDay25(t *testing.T) {
	got, err := y2022.Day25(asLines(d25Sample))
	require.NoError(t, err)
	require.Equal(t, "2=-1=0", got.A())
	require.Equal(t, 0, got.PartB)
}

func TestDay25BadInput(t *testing.T) {
	_, err := y2022.Day25(asLines("12a1\n"))
	require.Error(t, err)
}
