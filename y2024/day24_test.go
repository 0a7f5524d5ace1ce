package y2024

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The published example is a toy circuit, not an adder, so it exercises
// the evaluation half only. The repair half gets a hand-built 3-bit
// adder with one swapped output pair.

const d24Sample = `x00: 1
x01: 1
x02: 1
y00: 0
y01: 1
y02: 0

x00 AND y00 -> z00
x01 XOR y01 -> z01
x02 OR y02 -> z02`

const d24Adder = `x00: 1
x01: 0
x02: 1
y00: 1
y01: 1
y02: 0

x00 XOR y00 -> z00
x00 AND y00 -> c00
x01 XOR y01 -> s01
x01 AND y01 -> a01
s01 AND c00 -> b01
s01 XOR c00 -> c01
b01 OR a01 -> z01
x02 XOR y02 -> s02
x02 AND y02 -> a02
s02 AND c01 -> b02
s02 XOR c01 -> z02
b02 OR a02 -> z03
`

func TestDay24_ComputeSample(t *testing.T) {
	circuit, err := d24Parse(strings.Split(d24Sample, "\n"))
	require.NoError(t, err)

	z, err := d24Compute(circuit)
	require.NoError(t, err)
	assert.Equal(t, 4, z)
}

func TestDay24_RepairSwappedAdder(t *testing.T) {
	circuit, err := d24Parse(strings.Split(d24Adder, "\n"))
	require.NoError(t, err)

	swapped, err := d24Repairs(circuit)
	require.NoError(t, err)
	assert.Equal(t, "c01,z01", swapped)

	// The patched circuit really adds: 5 + 3 = 8.
	z, err := d24Compute(circuit)
	require.NoError(t, err)
	assert.Equal(t, 8, z)
}

func TestDay24_BadGate(t *testing.T) {
	_, err := d24Parse([]string{"x00: 1", "", "x00 NAND y00 -> z00"})
	assert.Error(t, err)
}
