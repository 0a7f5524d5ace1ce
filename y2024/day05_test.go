package y2024_test

import (
	"testing"

	"github.com/katalvlaran/advent/y2024"
	"github.com/stretchr/testify/require"
)

const d05Example = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestDay05_Example(t *testing.T) {
	sol, err := y2024.Day05(asLines(d05Example))
	require.NoError(t, err)
	require.Equal(t, 143, sol.PartA)
	require.Equal(t, 123, sol.PartB)
}
