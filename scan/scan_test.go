package scan_test

import (
	"testing"

	"github.com/katalvlaran/advent/scan"
	"github.com/stretchr/testify/assert"
)

// TestNumbers extracts unsigned digit runs from noisy rows.
func TestNumbers(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []int
	}{
		{"Empty", "", nil},
		{"NoDigits", "abc-,:", nil},
		{"Single", "42", []int{42}},
		{"Sensor", "Sensor at x=2, y=18: closest beacon is at x=-2, y=15", []int{2, 18, 2, 15}},
		{"TrailingNumber", "p=0,4 v=3", []int{0, 4, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan.Numbers(tc.line))
		})
	}
}

// TestSignedNumbers honors a '-' glued to a digit run.
func TestSignedNumbers(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []int
	}{
		{"Negative", "x=-2, y=15", []int{-2, 15}},
		{"Velocity", "p=9,5 v=-3,-3", []int{9, 5, -3, -3}},
		{"DashAsSeparator", "2-4,6-8", []int{2, -4, 6, -8}},
		{"LoneMinus", "- 7", []int{7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scan.SignedNumbers(tc.line))
		})
	}
}

// TestFixedNumbers enforces exact counts.
func TestFixedNumbers(t *testing.T) {
	nums, err := scan.FixedNumbers("3,4", 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, nums)

	_, err = scan.FixedNumbers("3,4", 3)
	assert.ErrorIs(t, err, scan.ErrBadCount)
}

// TestBlocks splits on blank lines and drops empty sections.
func TestBlocks(t *testing.T) {
	in := []string{"a", "b", "", "", "c", ""}
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, scan.Blocks(in))

	assert.Nil(t, scan.Blocks(nil))
	assert.Nil(t, scan.Blocks([]string{"", ""}))
}
