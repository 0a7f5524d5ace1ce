// Package graphs carries the two graph primitives the day solvers share:
// all-pair shortest distances over an implicit adjacency function, and a
// generic topological sort.
//
// What:
//
//   - AllPairDistances: Floyd–Warshall on a graph given as an adjacency
//     function over node indexes; Unreachable marks missing paths.
//   - TopoSort: iterative depth-first topological order of a dependency
//     map, predecessors before successors.
//
// Why:
//
//   - Valve networks (2022 day 16) need the full distance matrix before
//     the search over opening orders.
//   - Wire circuits (2024 day 24) must be evaluated in dependency order.
//
// Complexity:
//
//   - AllPairDistances: O(n³) time, O(n²) memory.
//   - TopoSort:         O(V + E) time, O(V) memory.
package graphs

import "errors"

// Unreachable marks node pairs with no connecting path.
const Unreachable = int(^uint(0) >> 1)

// ErrCycle indicates the dependency relation is not acyclic.
var ErrCycle = errors.New("graphs: cycle detected")

// Arc is one outgoing edge of a node: the target index and the weight.
type Arc struct {
	To     int
	Weight int
}

// AllPairDistances returns the n×n matrix of shortest distances between
// all node pairs of the graph implicitly described by adjacency, using
// the Floyd–Warshall recurrence with saturating addition.
// adjacency must return the outgoing arcs of the given node index.
// Complexity: O(n³) time, O(n²) memory.
func AllPairDistances(n int, adjacency func(node int) []Arc) [][]int {
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = Unreachable
		}
		dist[i][i] = 0
		for _, arc := range adjacency(i) {
			if arc.Weight < dist[i][arc.To] {
				dist[i][arc.To] = arc.Weight
			}
		}
	}

	// Fixed k → i → j order for deterministic accumulation.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == Unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == Unreachable {
					continue
				}
				if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}

	return dist
}

// TopoSort returns the identifiers of items in an order where every
// identifier appears after all identifiers returned by before(id).
// Returns ErrCycle if the dependency relation is cyclic.
//
// The traversal is an iterative DFS with a three-color state map, so
// arbitrarily deep dependency chains do not grow the call stack.
func TopoSort[I comparable, T any](items map[I]T, before func(item T) []I) ([]I, error) {
	const (
		white = iota // unvisited
		gray         // on the stack
		black        // done
	)

	state := make(map[I]int, len(items))
	order := make([]I, 0, len(items))
	var stack []I

	for root := range items {
		if state[root] != white {
			continue
		}
		stack = append(stack, root)

		for len(stack) > 0 {
			id := stack[len(stack)-1]
			item, known := items[id]
			if !known || state[id] == black {
				// Dependencies outside the map are terminals.
				stack = stack[:len(stack)-1]
				if known {
					continue
				}
				state[id] = black
				continue
			}

			if state[id] == gray {
				// Second visit: all predecessors settled.
				stack = stack[:len(stack)-1]
				state[id] = black
				order = append(order, id)
				continue
			}

			state[id] = gray
			for _, dep := range before(item) {
				switch state[dep] {
				case white:
					stack = append(stack, dep)
				case gray:
					return nil, ErrCycle
				}
			}
		}
	}

	return order, nil
}
