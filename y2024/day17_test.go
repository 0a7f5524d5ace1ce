package y2024

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The two published examples exercise different halves: the first
// program has no quine register value, the second is built for it.

const d17RunSample = `Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0`

const d17QuineSample = `Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0`

func TestDay17_RunProgram(t *testing.T) {
	m, err := d17Parse(strings.Split(d17RunSample, "\n"))
	require.NoError(t, err)

	var out []string
	for {
		v, ok := m.step()
		if !ok {
			break
		}
		out = append(out, string(byte('0'+v)))
	}
	assert.Equal(t, "4,6,3,5,6,3,5,2,1,0", strings.Join(out, ","))
}

func TestDay17_FindQuine(t *testing.T) {
	m, err := d17Parse(strings.Split(d17QuineSample, "\n"))
	require.NoError(t, err)

	a, err := m.findQuine()
	require.NoError(t, err)
	assert.Equal(t, 117440, a)

	// The found register value really replicates the tape.
	program := append([]int(nil), m.program...)
	var echo []int
	m.a, m.b, m.c, m.ip = a, 0, 0, 0
	for {
		v, ok := m.step()
		if !ok {
			break
		}
		echo = append(echo, v)
	}
	assert.Equal(t, program, echo)
}

func TestDay17_BadProgram(t *testing.T) {
	_, err := d17Parse([]string{"Register A: 1", "Register B: 0", "Register C: 0", "", "Program: 9,1"})
	assert.Error(t, err)
}
