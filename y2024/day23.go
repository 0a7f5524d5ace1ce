package y2024

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// d23Graph is the LAN as adjacency sets keyed by computer name.
type d23Graph map[string]map[string]bool

// Day23 — LAN Party. Part A counts the connected triples containing a
// computer whose name starts with 't'; part B encodes the largest
// clique, sorted by name and comma-joined, as the party password.
func Day23(lines []string) (puzzle.Solution, error) {
	graph, err := d23Parse(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartA: d23Triples(graph),
		TextB: strings.Join(d23MaxClique(graph), ","),
	}, nil
}

func d23Parse(lines []string) (d23Graph, error) {
	graph := make(d23Graph)
	link := func(a, b string) {
		if graph[a] == nil {
			graph[a] = make(map[string]bool)
		}
		graph[a][b] = true
	}
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		a, b, ok := strings.Cut(ln, "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("%w: connection %q", puzzle.ErrBadInput, ln)
		}
		link(a, b)
		link(b, a)
	}
	if len(graph) == 0 {
		return nil, fmt.Errorf("%w: no connections", puzzle.ErrBadInput)
	}

	return graph, nil
}

// d23Triples counts the distinct connected triples with a 't' machine.
// Ordering the three names avoids counting a triple more than once.
func d23Triples(graph d23Graph) int {
	count := 0
	for a, peers := range graph {
		for b := range peers {
			if b <= a {
				continue
			}
			for c := range peers {
				if c <= b || !graph[b][c] {
					continue
				}
				if a[0] == 't' || b[0] == 't' || c[0] == 't' {
					count++
				}
			}
		}
	}

	return count
}

// d23MaxClique greedily grows a clique around every edge, which is
// enough on the puzzle's sparse graph, and returns the largest one
// sorted by name.
func d23MaxClique(graph d23Graph) []string {
	var best []string
	processed := make(map[string]bool)

	for node, peers := range graph {
		processed[node] = true
		if 1+len(peers) < len(best) {
			continue
		}

		for peer := range peers {
			if processed[peer] {
				continue
			}
			clique := d23Expand(graph, processed, []string{node, peer}, node)
			if len(clique) > len(best) {
				best = clique
			}
		}
	}
	sort.Strings(best)

	return best
}

// d23Expand adds every unprocessed neighbour of from that is connected
// to the whole clique.
func d23Expand(graph d23Graph, processed map[string]bool, clique []string, from string) []string {
	for n := range graph[from] {
		if processed[n] {
			continue
		}
		fits := true
		for _, member := range clique {
			if !graph[n][member] {
				fits = false
				break
			}
		}
		if fits {
			clique = append(clique, n)
		}
	}

	return clique
}
