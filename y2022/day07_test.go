package y2022_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/y2022"
)

const d07Sample = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestDay07_Sample(t *testing.T) {
	got, err := y2022.Day07(asLines(d07Sample))
	require.NoError(t, err)
	assert.Equal(t, 95437, got.PartA)
	assert.Equal(t, 24933642, got.PartB)
}

func TestDay07_CdAboveRoot(t *testing.T) {
	_, err := y2022.Day07([]string{"$ cd /", "$ cd ..", "$ cd .."})
	assert.Error(t, err)
}
