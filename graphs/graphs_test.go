package graphs_test

import (
	"testing"

	"github.com/katalvlaran/advent/graphs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllPairDistances_Line checks distances along a weighted path graph.
func TestAllPairDistances_Line(t *testing.T) {
	// 0 -1- 1 -2- 2, undirected.
	arcs := map[int][]graphs.Arc{
		0: {{To: 1, Weight: 1}},
		1: {{To: 0, Weight: 1}, {To: 2, Weight: 2}},
		2: {{To: 1, Weight: 2}},
	}
	dist := graphs.AllPairDistances(3, func(n int) []graphs.Arc { return arcs[n] })

	assert.Equal(t, 0, dist[1][1])
	assert.Equal(t, 1, dist[0][1])
	assert.Equal(t, 3, dist[0][2])
	assert.Equal(t, 3, dist[2][0])
}

// TestAllPairDistances_Unreachable keeps disconnected pairs at Unreachable.
func TestAllPairDistances_Unreachable(t *testing.T) {
	dist := graphs.AllPairDistances(2, func(int) []graphs.Arc { return nil })

	assert.Equal(t, graphs.Unreachable, dist[0][1])
	assert.Equal(t, 0, dist[0][0])
}

// TestAllPairDistances_ShorterVia prefers an indirect cheaper route.
func TestAllPairDistances_ShorterVia(t *testing.T) {
	arcs := map[int][]graphs.Arc{
		0: {{To: 2, Weight: 10}, {To: 1, Weight: 1}},
		1: {{To: 2, Weight: 1}},
	}
	dist := graphs.AllPairDistances(3, func(n int) []graphs.Arc { return arcs[n] })

	assert.Equal(t, 2, dist[0][2])
}

// TestTopoSort orders successors after all their predecessors.
func TestTopoSort(t *testing.T) {
	// c depends on a and b; d depends on c.
	deps := map[string][]string{
		"a": nil,
		"b": nil,
		"c": {"a", "b"},
		"d": {"c"},
	}
	order, err := graphs.TopoSort(deps, func(item []string) []string { return item })
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	for id, before := range deps {
		for _, dep := range before {
			assert.Less(t, pos[dep], pos[id], "%s must precede %s", dep, id)
		}
	}
}

// TestTopoSort_ExternalTerminals tolerates dependencies absent from the map.
func TestTopoSort_ExternalTerminals(t *testing.T) {
	deps := map[string][]string{
		"z": {"x00", "y00"}, // inputs, not items themselves
	}
	order, err := graphs.TopoSort(deps, func(item []string) []string { return item })
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, order)
}

// TestTopoSort_Cycle reports ErrCycle.
func TestTopoSort_Cycle(t *testing.T) {
	deps := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}
	_, err := graphs.TopoSort(deps, func(item []string) []string { return item })
	assert.ErrorIs(t, err, graphs.ErrCycle)
}
