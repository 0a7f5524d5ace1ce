package grids

import "container/heap"

// Move is one admissible step out of a cell, with its traversal cost.
type Move struct {
	To   Point
	Cost int
}

// walkItem pairs a coordinate with its accumulated cost.
type walkItem struct {
	at   Point
	cost int
}

// walkQueue is a min-heap of walkItem ordered by cost.
type walkQueue []walkItem

func (q walkQueue) Len() int            { return len(q) }
func (q walkQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q walkQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *walkQueue) Push(x interface{}) { *q = append(*q, x.(walkItem)) }
func (q *walkQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}

// WalkCheapest visits grid cells in increasing cost order, starting at
// from with cost 0. adjacency lists the admissible moves out of a cell;
// visit receives each settled cell with its cell value and cost, and may
// return false to stop the walk early.
//
// Each cell is settled at most once; with non-negative move costs the
// cost reported for a cell is the cheapest one (Dijkstra). With all
// costs equal to 1 this degenerates to a plain BFS.
//
// Complexity: O(W×H×d log(W×H)), d = moves per cell.
func (g *Grid[T]) WalkCheapest(from Point, adjacency func(p Point) []Move, visit func(p Point, c T, cost int) bool) {
	settled := make([]bool, len(g.cells))
	pq := walkQueue{{at: from, cost: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(walkItem)
		idx := g.Index(it.at)
		if settled[idx] {
			continue
		}
		settled[idx] = true

		if !visit(it.at, g.cells[idx], it.cost) {
			return
		}
		for _, mv := range adjacency(it.at) {
			if !g.InBounds(mv.To) || settled[g.Index(mv.To)] {
				continue
			}
			heap.Push(&pq, walkItem{at: mv.To, cost: it.cost + mv.Cost})
		}
	}
}
