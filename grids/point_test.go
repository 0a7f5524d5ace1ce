package grids_test

import (
	"testing"

	"github.com/katalvlaran/advent/grids"
	"github.com/stretchr/testify/assert"
)

// TestPointArithmetic covers Add/Sub/Mul/Manhattan.
func TestPointArithmetic(t *testing.T) {
	p := grids.Pt(2, -1)
	q := grids.Pt(-3, 4)

	assert.Equal(t, grids.Pt(-1, 3), p.Add(q))
	assert.Equal(t, grids.Pt(5, -5), p.Sub(q))
	assert.Equal(t, grids.Pt(4, -2), p.Mul(2))
	assert.Equal(t, 10, p.Manhattan(q))
}

// TestDirSteps checks the unit increment of each direction.
func TestDirSteps(t *testing.T) {
	steps := map[grids.Dir]grids.Point{
		grids.Up:    grids.Pt(0, -1),
		grids.Down:  grids.Pt(0, 1),
		grids.Left:  grids.Pt(-1, 0),
		grids.Right: grids.Pt(1, 0),
	}
	for d, want := range steps {
		assert.Equal(t, want, d.Step(), "step of %v", d)
		assert.Equal(t, want, grids.Pt(0, 0).Next(d))
	}
}

// TestDirTurns verifies the quarter-turn cycle in both directions.
func TestDirTurns(t *testing.T) {
	for _, d := range grids.Dirs {
		assert.Equal(t, d, d.Right().Right().Right().Right(), "four rights from %v", d)
		assert.Equal(t, d, d.Right().Left(), "right then left from %v", d)
		assert.Equal(t, d.Reverse(), d.Right().Right(), "reverse of %v", d)
	}
	assert.Equal(t, grids.Right, grids.Up.Right())
	assert.Equal(t, grids.Left, grids.Up.Left())
}
