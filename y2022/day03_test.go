package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d03Sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestDay03_Sample(t *testing.T) {
	got, err := y2022.Day03(asLines(d03Sample))
	require.NoError(t, err)
	assert.Equal(t, 157, got.PartA)
	assert.Equal(t, 70, got.PartB)
}

func TestDay03_RaggedGroup(t *testing.T) {
	_, err := y2022.Day03([]string{"abcabd", "abab"})
	assert.Error(t, err)
}
