package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

func TestDay02_Sample(t *testing.T) {
	got, err := y2022.Day02([]string{"A Y", "B X", "C Z"})
	require.NoError(t, err)
	assert.Equal(t, 15, got.PartA)
	assert.Equal(t, 12, got.PartB)
}

func TestDay02_BadRound(t *testing.T) {
	_, err := y2022.Day02([]string{"A D"})
	assert.Error(t, err)
}
