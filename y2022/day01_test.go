package y2022_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

func asLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

const d01Sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestDay01_Sample(t *testing.T) {
	got, err := y2022.Day01(asLines(d01Sample))
	require.NoError(t, err)
	assert.Equal(t, 24000, got.PartA)
	assert.Equal(t, 45000, got.PartB)
}

func TestDay01_FewerThanThreeElves(t *testing.T) {
	got, err := y2022.Day01([]string{"5", "", "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, got.PartA)
	assert.Equal(t, 12, got.PartB)
}

func TestDay01_BadCalories(t *testing.T) {
	_, err := y2022.Day01([]string{"12 34"})
	assert.Error(t, err)
}
