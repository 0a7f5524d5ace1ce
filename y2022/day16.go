package y2022

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/advent/graphs"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// d16Valve is one valve of the network: its flow rate and the valves
// its tunnels lead to.
type d16Valve struct {
	name  string
	flow  int
	edges []string
}

// d16State is one node of the opening-order search.
type d16State struct {
	valve    int
	pressure int
	timeLeft int
	toOpen   uint64
}

// Day16 — Proboscidea Volcanium. Valves with flow rates sit in a
// tunnel network; opening a valve takes a minute and releases its rate
// for every remaining minute. Part A is the most pressure one actor
// can release in 30 minutes. Part B gives 26 minutes to two actors
// working disjoint valve sets.
//
// The search is a branch and bound over opening orders on the all-pair
// distance matrix: a branch is cut when an optimistic completion bound
// cannot beat the best sequence found so far.
func Day16(lines []string) (puzzle.Solution, error) {
	valves, start, err := d16Valves(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}
	dist, err := d16Distances(valves)
	if err != nil {
		return puzzle.Solution{}, err
	}

	flowing := 0
	toOpen := uint64(0)
	for i, v := range valves {
		if v.flow > 0 {
			flowing++
			toOpen |= 1 << i
		}
	}

	// Part A: track one global maximum.
	best := 0
	d16Search(d16State{valve: start, timeLeft: 30, toOpen: toOpen}, valves, dist,
		func(_ uint64, pressure int) int {
			best = max(best, pressure)

			return best
		})

	// Part B: track the best score per set of valves left closed, then
	// pair up sequences whose opened sets do not overlap.
	mask := toOpen
	scores := make([]int, 1<<flowing)
	d16Search(d16State{valve: start, timeLeft: 26, toOpen: toOpen}, valves, dist,
		func(closed uint64, pressure int) int {
			if pressure > scores[closed] {
				scores[closed] = pressure
			}

			return scores[closed]
		})

	return puzzle.Solution{PartA: best, PartB: d16BestDuo(scores, mask)}, nil
}

// d16Valves parses the network. Valves are sorted by descending flow so
// the flowing ones occupy the low bit indexes; the returned index is
// the starting valve AA.
func d16Valves(lines []string) ([]d16Valve, int, error) {
	valves := make([]d16Valve, 0, len(lines))
	for _, line := range lines {
		names := d16Names(line)
		nums := scan.Numbers(line)
		if len(names) < 2 || len(nums) != 1 {
			return nil, 0, fmt.Errorf("%w: valve %q", puzzle.ErrBadInput, line)
		}
		valves = append(valves, d16Valve{name: names[0], flow: nums[0], edges: names[1:]})
	}

	sort.Slice(valves, func(i, j int) bool {
		if valves[i].flow != valves[j].flow {
			return valves[i].flow > valves[j].flow
		}

		return valves[i].name < valves[j].name
	})
	if len(valves) > 64 {
		return nil, 0, fmt.Errorf("%w: %d valves", puzzle.ErrBadInput, len(valves))
	}

	for i, v := range valves {
		if v.name == "AA" {
			return valves, i, nil
		}
	}

	return nil, 0, fmt.Errorf("%w: no valve AA", puzzle.ErrBadInput)
}

// d16Names extracts the uppercase valve names of a row, in order.
func d16Names(line string) []string {
	var names []string
	for i := 0; i+1 < len(line); i++ {
		if line[i] >= 'A' && line[i] <= 'Z' && line[i+1] >= 'A' && line[i+1] <= 'Z' {
			names = append(names, line[i:i+2])
			i++
		}
	}

	return names
}

// d16Distances is the minute cost of moving between every valve pair.
func d16Distances(valves []d16Valve) ([][]int, error) {
	index := make(map[string]int, len(valves))
	for i, v := range valves {
		index[v.name] = i
	}
	for _, v := range valves {
		for _, e := range v.edges {
			if _, ok := index[e]; !ok {
				return nil, fmt.Errorf("%w: tunnel to unknown valve %q", puzzle.ErrBadInput, e)
			}
		}
	}

	return graphs.AllPairDistances(len(valves), func(node int) []graphs.Arc {
		arcs := make([]graphs.Arc, 0, len(valves[node].edges))
		for _, e := range valves[node].edges {
			arcs = append(arcs, graphs.Arc{To: index[e], Weight: 1})
		}

		return arcs
	}), nil
}

// d16Search explores opening sequences depth first. record is called
// with every reached state's still-closed set and total pressure, and
// returns the best known score for cutting hopeless branches.
func d16Search(start d16State, valves []d16Valve, dist [][]int, record func(closed uint64, pressure int) int) {
	stack := []d16State{start}
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for closed := state.toOpen; closed != 0; closed &= closed - 1 {
			target := bits.TrailingZeros64(closed)
			needed := dist[state.valve][target] + 1
			if needed >= state.timeLeft {
				continue
			}

			timeLeft := state.timeLeft - needed
			next := d16State{
				valve:    target,
				pressure: state.pressure + valves[target].flow*timeLeft,
				timeLeft: timeLeft,
				toOpen:   state.toOpen &^ (1 << target),
			}

			bestSoFar := record(next.toOpen, next.pressure)
			if next.toOpen != 0 && d16Bound(next, valves, dist) > bestSoFar {
				stack = append(stack, next)
			}
		}
	}
}

// d16Bound is an optimistic completion estimate: every remaining valve
// is assumed reachable in as few minutes as the closest one, and they
// are opened from the strongest flow down.
func d16Bound(state d16State, valves []d16Valve, dist [][]int) int {
	nearest := graphs.Unreachable
	for closed := state.toOpen; closed != 0; closed &= closed - 1 {
		nearest = min(nearest, dist[state.valve][bits.TrailingZeros64(closed)])
	}

	needed := nearest + 1
	for closed := state.toOpen; closed != 0; closed &= closed - 1 {
		if state.timeLeft <= needed {
			break
		}
		state.timeLeft -= needed
		state.pressure += valves[bits.TrailingZeros64(closed)].flow * state.timeLeft
	}

	return state.pressure
}

// d16BestDuo finds the best sum of two sequence scores whose opened
// valve sets are disjoint.
func d16BestDuo(scores []int, mask uint64) int {
	type seq struct {
		closed uint64
		score  int
	}
	sorted := make([]seq, 0, len(scores))
	for closed, score := range scores {
		sorted = append(sorted, seq{closed: uint64(closed), score: score})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].score > sorted[j].score })

	best := 0
	for _, one := range sorted {
		if 2*one.score <= best {
			break
		}
		for _, two := range sorted {
			if one.score+two.score <= best {
				break
			}
			// Disjoint opened sets: every flowing valve stays closed
			// on at least one side.
			if ^one.closed & ^two.closed & mask == 0 {
				best = one.score + two.score
				break
			}
		}
	}

	return best
}
