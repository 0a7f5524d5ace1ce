package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

func TestDay06_Sample(t *testing.T) {
	got, err := y2022.Day06([]string{"mjqjpqmgbljsphdztnvjfqwrcgsmlb"})
	require.NoError(t, err)
	assert.Equal(t, 7, got.PartA)
	assert.Equal(t, 19, got.PartB)
}

func TestDay06_MorePackets(t *testing.T) {
	cases := map[string]int{
		"bvwbjplbgvbhsrlpgdmjqwftvncz":   5,
		"nppdvjthqldpwncqszvftbrmjlhg":   6,
		"nznrnfrfntjfmvfwmzdfjlvtqnbhcp": 10,
		"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw": 11,
	}
	for stream, want := range cases {
		got, err := y2022.Day06([]string{stream})
		require.NoError(t, err)
		assert.Equal(t, want, got.PartA, stream)
	}
}

func TestDay06_NoMarker(t *testing.T) {
	_, err := y2022.Day06([]string{"aaaaaaaa"})
	assert.Error(t, err)
}
