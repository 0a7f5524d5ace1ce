package y2024

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The two published examples target one part each.

func TestDay22_SecretSums(t *testing.T) {
	got, err := Day22([]string{"1", "10", "100", "2024"})
	require.NoError(t, err)
	assert.Equal(t, 37327623, got.PartA)
}

func TestDay22_BestSequence(t *testing.T) {
	got, err := Day22([]string{"1", "2", "3", "2024"})
	require.NoError(t, err)
	assert.Equal(t, 23, got.PartB)
}

func TestDay22_StepChain(t *testing.T) {
	want := []int{15887950, 16495136, 527345, 704524, 1553684}
	secret := 123
	for _, next := range want {
		secret = d22Step(secret)
		assert.Equal(t, next, secret)
	}
}

func TestDay22_NoSeeds(t *testing.T) {
	_, err := Day22(nil)
	assert.Error(t, err)
}
