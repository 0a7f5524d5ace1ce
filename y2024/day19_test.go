package y2024_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2024"
)

const d19Sample = `r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
`

func TestDay19_Sample(t *testing.T) {
	got, err := y2024.Day19(asLines(d19Sample))
	require.NoError(t, err)
	assert.Equal(t, 6, got.PartA)
	assert.Equal(t, 16, got.PartB)
}

func TestDay19_MissingDesigns(t *testing.T) {
	_, err := y2024.Day19([]string{"r, wr, b"})
	assert.Error(t, err)
}
