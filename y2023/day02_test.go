package y2023_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2023"
)

const d02Sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestDay02(t *testing.T) {
	got, err := y2023.Day02(asLines(d02Sample))
	require.NoError(t, err)
	require.Equal(t, 8, got.PartA)
	require.Equal(t, 2286, got.PartB)
}

func TestDay02BadInput(t *testing.T) {
	_, err := y2023.Day02(asLines("Game 1; 3 blue\n"))
	require.Error(t, err)

	_, err = y2023.Day02(asLines("Game 1: 3 yellow\n"))
	require.Error(t, err)
}
