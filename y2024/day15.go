package y2024

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Warehouse tiles. Wide boxes occupy a left and a right half.
const (
	d15Empty = byte('.')
	d15Box   = byte('O')
	d15Robot = byte('@')
	d15Wall  = byte('#')
	d15Left  = byte('[')
	d15Right = byte(']')
)

// d15Warehouse is the robot-and-boxes floor plan shared by both parts.
type d15Warehouse struct {
	area  *grids.Grid[byte]
	robot grids.Point
}

// Day15 — Warehouse Woes. A robot shoves boxes around following a move
// tape; part A scores the small warehouse, part B the same warehouse
// stretched twice as wide, where boxes span two tiles and push in trees.
func Day15(lines []string) (puzzle.Solution, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) != 2 {
		return puzzle.Solution{}, fmt.Errorf("%w: want map and moves", puzzle.ErrBadInput)
	}
	moves, err := d15Moves(blocks[1])
	if err != nil {
		return puzzle.Solution{}, err
	}

	small, err := d15Parse(blocks[0], false)
	if err != nil {
		return puzzle.Solution{}, err
	}
	wide, err := d15Parse(blocks[0], true)
	if err != nil {
		return puzzle.Solution{}, err
	}

	for _, dir := range moves {
		small.push(dir)
		wide.pushWide(dir)
	}

	return puzzle.Solution{
		PartA: small.locationSum(d15Box),
		PartB: wide.locationSum(d15Left),
	}, nil
}

// d15Parse builds the warehouse, doubling every column when wide is set:
// walls and floor duplicate, a box becomes "[]", the robot keeps its
// left cell.
func d15Parse(lines []string, wide bool) (*d15Warehouse, error) {
	dec := func(c byte) (byte, error) {
		switch c {
		case d15Empty, d15Box, d15Robot, d15Wall:
			return c, nil
		}
		return 0, fmt.Errorf("%w: %q", grids.ErrBadCharacter, c)
	}
	area, err := grids.Parse(lines, dec, func(t byte) byte { return t })
	if err != nil {
		return nil, err
	}

	if wide {
		stretched := grids.New[byte](area.Width()*2, area.Height(), func(t byte) byte { return t })
		area.Each(func(p grids.Point, t byte) {
			left, right := t, t
			switch t {
			case d15Box:
				left, right = d15Left, d15Right
			case d15Robot:
				right = d15Empty
			}
			stretched.Set(grids.Pt(p.X*2, p.Y), left)
			stretched.Set(grids.Pt(p.X*2+1, p.Y), right)
		})
		area = stretched
	}

	robot, ok := area.Find(func(t byte) bool { return t == d15Robot })
	if !ok {
		return nil, fmt.Errorf("%w: no robot", puzzle.ErrBadInput)
	}

	return &d15Warehouse{area: area, robot: robot}, nil
}

// d15Moves flattens the move tape, which may span several lines.
func d15Moves(lines []string) ([]grids.Dir, error) {
	var out []grids.Dir
	for _, ln := range lines {
		for i := 0; i < len(ln); i++ {
			switch ln[i] {
			case '^':
				out = append(out, grids.Up)
			case 'v':
				out = append(out, grids.Down)
			case '<':
				out = append(out, grids.Left)
			case '>':
				out = append(out, grids.Right)
			default:
				return nil, fmt.Errorf("%w: move %q", puzzle.ErrBadInput, ln[i])
			}
		}
	}

	return out, nil
}

// push moves the robot one step, shifting a run of narrow boxes into
// the first empty tile behind them. A wall blocks the whole move.
func (w *d15Warehouse) push(dir grids.Dir) {
	scan := w.robot
	for {
		switch w.area.At(scan) {
		case d15Wall:
			return
		case d15Empty:
			adjacent := w.robot.Next(dir)
			if scan != adjacent {
				w.area.Set(scan, d15Box)
			}
			w.area.Set(w.robot, d15Empty)
			w.area.Set(adjacent, d15Robot)
			w.robot = adjacent
			return
		}
		scan = scan.Next(dir)
	}
}

// pushWide moves the robot in the doubled warehouse. Horizontal moves
// shift a contiguous run of half-tiles; vertical moves gather the whole
// tree of touching boxes first and abort if any of them meets a wall.
func (w *d15Warehouse) pushWide(dir grids.Dir) {
	if dir == grids.Left || dir == grids.Right {
		w.pushRow(dir)
		return
	}

	boxes, ok := w.collectColumn(dir)
	if !ok {
		return
	}

	// Farthest boxes move first so nothing is overwritten.
	sort.Slice(boxes, func(i, j int) bool {
		if dir == grids.Down {
			return boxes[i].Y > boxes[j].Y
		}
		return boxes[i].Y < boxes[j].Y
	})
	for _, p := range boxes {
		w.area.Set(p.Next(dir), w.area.At(p))
		w.area.Set(p, d15Empty)
	}

	w.area.Set(w.robot, d15Empty)
	w.robot = w.robot.Next(dir)
	w.area.Set(w.robot, d15Robot)
}

// pushRow shifts the robot and any abutting half-tiles one step left or
// right, up to the first empty tile.
func (w *d15Warehouse) pushRow(dir grids.Dir) {
	scan := w.robot
	for {
		switch w.area.At(scan) {
		case d15Wall:
			return
		case d15Empty:
			for scan != w.robot {
				prev := scan.Next(dir.Reverse())
				w.area.Set(scan, w.area.At(prev))
				scan = prev
			}
			w.area.Set(w.robot, d15Empty)
			w.robot = w.robot.Next(dir)
			return
		}
		scan = scan.Next(dir)
	}
}

// collectColumn gathers every half-tile that would move with the robot
// in a vertical push. Returns ok=false when a wall blocks any of them.
func (w *d15Warehouse) collectColumn(dir grids.Dir) ([]grids.Point, bool) {
	seen := make(map[grids.Point]bool)
	queue := []grids.Point{w.robot.Next(dir)}
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		switch w.area.At(p) {
		case d15Empty:
		case d15Wall:
			return nil, false
		case d15Left:
			if !seen[p] {
				seen[p] = true
				seen[p.Next(grids.Right)] = true
				queue = append(queue, p.Next(dir), p.Next(dir).Next(grids.Right))
			}
		case d15Right:
			if !seen[p] {
				seen[p] = true
				seen[p.Next(grids.Left)] = true
				queue = append(queue, p.Next(dir), p.Next(dir).Next(grids.Left))
			}
		}
	}

	boxes := make([]grids.Point, 0, len(seen))
	for p := range seen {
		boxes = append(boxes, p)
	}

	return boxes, true
}

// locationSum adds 100*y+x over every tile equal to box; part B scores
// only the left half of each wide box.
func (w *d15Warehouse) locationSum(box byte) int {
	sum := 0
	w.area.Each(func(p grids.Point, t byte) {
		if t == box {
			sum += p.Y*100 + p.X
		}
	})

	return sum
}
