package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d11Sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestDay11(t *testing.T) {
	got, err := y2022.Day11(asLines(d11Sample))
	require.NoError(t, err)
	require.Equal(t, 10605, got.PartA)
	require.Equal(t, 2713310158, got.PartB)
}

func TestDay11BadInput(t *testing.T) {
	_, err := y2022.Day11(asLines("Monkey 0:\n  Starting items: 1\n"))
	require.Error(t, err)
}
