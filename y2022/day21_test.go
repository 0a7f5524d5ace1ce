package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d21Sample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
`

func TestDay21(t *testing.T) {
	got, err := y2022.Day21(asLines(d21Sample))
	require.NoError(t, err)
	require.Equal(t, 152, got.PartA)
	require.Equal(t, 301, got.PartB)
}

func TestDay21BadInput(t *testing.T) {
	_, err := y2022.Day21(asLines("root: a % b\na: 1\nb: 2\n"))
	require.Error(t, err)

	_, err = y2022.Day21(asLines("a: b + c\nb: 1\nc: 2\n"))
	require.Error(t, err)
}
