package y2022

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const d15Sample = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

func TestDay15(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(d15Sample, "\n"), "\n")

	got, err := d15Solve(lines, 10, 20)
	require.NoError(t, err)
	require.Equal(t, 26, got.PartA)
	require.Equal(t, 56000011, got.PartB)
}

func TestDay15BadInput(t *testing.T) {
	_, err := d15Solve([]string{"Sensor at x=2, y=18"}, 10, 20)
	require.Error(t, err)
}
