package y2023_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2023"
)

const d10Loop = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

const d10Enclosed4 = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const d10Enclosed8 = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

func TestDay10_FarthestPoint(t *testing.T) {
	got, err := y2023.Day10(asLines(d10Loop))
	require.NoError(t, err)
	assert.Equal(t, 8, got.PartA)
}

func TestDay10_EnclosedSmall(t *testing.T) {
	got, err := y2023.Day10(asLines(d10Enclosed4))
	require.NoError(t, err)
	assert.Equal(t, 4, got.PartB)
}

func TestDay10_EnclosedLarge(t *testing.T) {
	got, err := y2023.Day10(asLines(d10Enclosed8))
	require.NoError(t, err)
	assert.Equal(t, 8, got.PartB)
}

func TestDay10_NoLoop(t *testing.T) {
	_, err := y2023.Day10([]string{"S--", "..."})
	assert.Error(t, err)
}
