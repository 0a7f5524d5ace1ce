package y2024

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
)

const (
	d16TurnCost = 1000
	d16Infinity = int(^uint(0) >> 1)
)

// d16State is a maze position plus the reindeer's heading, flattened
// to tile-index*4 + direction for the distance tables.
type d16State struct {
	at   grids.Point
	dir  grids.Dir
	cost int
}

type d16Queue []d16State

func (q d16Queue) Len() int            { return len(q) }
func (q d16Queue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q d16Queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *d16Queue) Push(x interface{}) { *q = append(*q, x.(d16State)) }
func (q *d16Queue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// Day16 — Reindeer Maze. A reindeer races from S to E, paying 1 per
// step forward and 1000 per quarter turn. Part A is the cheapest score;
// part B counts the tiles lying on at least one cheapest route.
func Day16(lines []string) (puzzle.Solution, error) {
	maze, err := grids.Parse(lines, d16Tile, func(t byte) byte { return t })
	if err != nil {
		return puzzle.Solution{}, err
	}
	start, ok := maze.Find(func(t byte) bool { return t == 'S' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no start", puzzle.ErrBadInput)
	}
	end, ok := maze.Find(func(t byte) bool { return t == 'E' })
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no end", puzzle.ErrBadInput)
	}

	// Distances from the start facing east, and from the end in every
	// heading walking the maze backwards.
	fromStart := d16Dijkstra(maze, []d16State{{at: start, dir: grids.Right}}, false)
	ends := make([]d16State, 0, 4)
	for _, dir := range grids.Dirs {
		ends = append(ends, d16State{at: end, dir: dir})
	}
	fromEnd := d16Dijkstra(maze, ends, true)

	best := d16Infinity
	for _, dir := range grids.Dirs {
		if d := fromStart[maze.Index(end)*4+int(dir)]; d < best {
			best = d
		}
	}
	if best == d16Infinity {
		return puzzle.Solution{}, fmt.Errorf("%w: end unreachable", puzzle.ErrBadInput)
	}

	// A tile sits on a cheapest route when the two half-distances of
	// some heading add up to the optimum.
	onRoute := 0
	maze.Each(func(p grids.Point, t byte) {
		if t == '#' {
			return
		}
		for _, dir := range grids.Dirs {
			idx := maze.Index(p)*4 + int(dir)
			if fromStart[idx] != d16Infinity && fromEnd[idx] != d16Infinity &&
				fromStart[idx]+fromEnd[idx] == best {
				onRoute++
				return
			}
		}
	})

	return puzzle.Solution{PartA: best, PartB: onRoute}, nil
}

func d16Tile(c byte) (byte, error) {
	switch c {
	case '.', '#', 'S', 'E':
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", grids.ErrBadCharacter, c)
}

// d16Dijkstra returns the cheapest cost to every (tile, heading) state
// from the given sources. With backward set, forward steps are taken
// against the heading, which reverses every edge of the race graph.
func d16Dijkstra(maze *grids.Grid[byte], sources []d16State, backward bool) []int {
	dist := make([]int, maze.Area()*4)
	for i := range dist {
		dist[i] = d16Infinity
	}

	queue := make(d16Queue, 0, len(sources))
	for _, s := range sources {
		dist[maze.Index(s.at)*4+int(s.dir)] = 0
		queue = append(queue, s)
	}
	heap.Init(&queue)

	for queue.Len() > 0 {
		cur := heap.Pop(&queue).(d16State)
		idx := maze.Index(cur.at)*4 + int(cur.dir)
		if cur.cost > dist[idx] {
			continue
		}

		step := cur.dir
		if backward {
			step = cur.dir.Reverse()
		}
		next := cur.at.Next(step)
		if t, ok := maze.TryAt(next); ok && t != '#' {
			d16Relax(dist, &queue, d16State{at: next, dir: cur.dir, cost: cur.cost + 1}, maze)
		}
		d16Relax(dist, &queue, d16State{at: cur.at, dir: cur.dir.Left(), cost: cur.cost + d16TurnCost}, maze)
		d16Relax(dist, &queue, d16State{at: cur.at, dir: cur.dir.Right(), cost: cur.cost + d16TurnCost}, maze)
	}

	return dist
}

func d16Relax(dist []int, queue *d16Queue, s d16State, maze *grids.Grid[byte]) {
	idx := maze.Index(s.at)*4 + int(s.dir)
	if s.cost < dist[idx] {
		dist[idx] = s.cost
		heap.Push(queue, s)
	}
}
