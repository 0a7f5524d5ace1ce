package y2024

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The published example runs on an 11×7 restroom, so this test drives
// the unexported helpers directly with the small dimensions.

const d14Sample = `p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3`

func TestDay14_SampleSafetyFactor(t *testing.T) {
	robots, err := d14Robots(strings.Split(d14Sample, "\n"))
	require.NoError(t, err)

	after := d14Step(robots, 100, 11, 7)
	assert.Equal(t, 12, d14SafetyFactor(after, 11, 7))
}

func TestDay14_Wrap(t *testing.T) {
	assert.Equal(t, 3, d14Wrap(14, 11))
	assert.Equal(t, 9, d14Wrap(-2, 11))
	assert.Equal(t, 0, d14Wrap(22, 11))
}

func TestDay14_BadRow(t *testing.T) {
	_, err := d14Robots([]string{"p=1,2 v=3"})
	assert.Error(t, err)
}
