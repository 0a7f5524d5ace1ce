package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d05Sample = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestDay05_Sample(t *testing.T) {
	got, err := y2022.Day05(asLines(d05Sample))
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got.TextA)
	assert.Equal(t, "MCD", got.TextB)
}

func TestDay05_BadMove(t *testing.T) {
	_, err := y2022.Day05([]string{"[A]", " 1 ", "", "move 1 from 4 to 1"})
	assert.Error(t, err)
}
