package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

const (
	d22Void = byte(' ')
	d22Open = byte('.')
	d22Wall = byte('#')
)

// d22Turn is one path instruction: steps > 0 for a straight move,
// otherwise a turn by 'L' or 'R'.
type d22Turn struct {
	steps int
	turn  byte
}

// Day22 — Monkey Map. A board with void gaps is walked by a path of
// step counts and turns, and the final row, column and facing form a
// password. Part A wraps flat: stepping off the board continues on the
// opposite side of the row or column. Part B folds the board into a
// cube and walks its surface.
func Day22(lines []string) (puzzle.Solution, error) {
	board, err := grids.Parse(lines, func(b byte) (byte, error) {
		switch b {
		case d22Void, d22Open, d22Wall:
			return b, nil
		default:
			return 0, fmt.Errorf("not a board tile: %q", b)
		}
	}, func(t byte) byte { return t })
	if err != nil {
		return puzzle.Solution{}, err
	}
	path, err := d22Path(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	flat, err := d22WalkFlat(board, path)
	if err != nil {
		return puzzle.Solution{}, err
	}
	cube, err := d22WalkCube(board, path)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: flat, PartB: cube}, nil
}

// d22Path decodes the instruction line following the board.
func d22Path(lines []string) ([]d22Turn, error) {
	blocks := scan.Blocks(lines)
	if len(blocks) != 2 || len(blocks[1]) != 1 {
		return nil, fmt.Errorf("%w: want a board and one path line", puzzle.ErrBadInput)
	}

	var path []d22Turn
	steps := 0
	pending := false
	for _, b := range []byte(blocks[1][0]) {
		switch {
		case b >= '0' && b <= '9':
			steps = steps*10 + int(b-'0')
			pending = true
		case b == 'L' || b == 'R':
			if pending {
				path = append(path, d22Turn{steps: steps})
				steps, pending = 0, false
			}
			path = append(path, d22Turn{turn: b})
		default:
			return nil, fmt.Errorf("%w: path byte %q", puzzle.ErrBadInput, b)
		}
	}
	if pending {
		path = append(path, d22Turn{steps: steps})
	}

	return path, nil
}

func d22Start(board *grids.Grid[byte]) (grids.Point, error) {
	for x := 0; x < board.Width(); x++ {
		if board.At(grids.Pt(x, 0)) == d22Open {
			return grids.Pt(x, 0), nil
		}
	}

	return grids.Point{}, fmt.Errorf("%w: no open tile on the top row", puzzle.ErrBadInput)
}

func d22Password(p grids.Point, facing int) int {
	return (p.Y+1)*1000 + (p.X+1)*4 + facing
}

// d22WalkFlat follows the path with flat wrapping: stepping into the
// void scans ahead, around the board edge, to the next real tile.
func d22WalkFlat(board *grids.Grid[byte], path []d22Turn) (int, error) {
	pos, err := d22Start(board)
	if err != nil {
		return 0, err
	}

	// Facing 0..3 is right, down, left, up, matching the password rule.
	deltas := [4]grids.Point{grids.Pt(1, 0), grids.Pt(0, 1), grids.Pt(-1, 0), grids.Pt(0, -1)}
	facing := 0
	for _, ins := range path {
		switch ins.turn {
		case 'R':
			facing = (facing + 1) % 4
		case 'L':
			facing = (facing + 3) % 4
		default:
			for s := 0; s < ins.steps; s++ {
				next := board.Wrap(pos.Add(deltas[facing]))
				for board.At(next) == d22Void {
					next = board.Wrap(next.Add(deltas[facing]))
				}
				if board.At(next) == d22Wall {
					break
				}
				pos = next
			}
		}
	}

	return d22Password(pos, facing), nil
}

// d22Vec is an integer 3D vector: a surface cell position, a heading
// or a face normal.
type d22Vec [3]int

func (a d22Vec) add(b d22Vec) d22Vec { return d22Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a d22Vec) sub(b d22Vec) d22Vec { return d22Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a d22Vec) neg() d22Vec         { return d22Vec{-a[0], -a[1], -a[2]} }
func (a d22Vec) mul(k int) d22Vec    { return d22Vec{a[0] * k, a[1] * k, a[2] * k} }

func (a d22Vec) cross(b d22Vec) d22Vec {
	return d22Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// d22Face is one folded S×S face: its top-left net block, the 3D
// position of its local (0,0) cell, the 3D directions of moving right
// and down across it, and its outward normal.
type d22Face struct {
	block  grids.Point
	origin d22Vec
	ex     d22Vec
	ey     d22Vec
	n      d22Vec
}

// d22Cell ties a 3D surface cell back to the net.
type d22Cell struct {
	at   grids.Point
	face *d22Face
}

// d22Fold folds the net into a cube. Faces are the S×S net blocks
// holding tiles; a breadth-first traversal assigns each one a 3D frame,
// rotating the frame a quarter turn whenever it crosses a block edge.
// Returns the surface map and the cell size S.
func d22Fold(board *grids.Grid[byte]) (map[d22Vec]d22Cell, int, error) {
	tiles := 0
	board.Each(func(_ grids.Point, c byte) {
		if c != d22Void {
			tiles++
		}
	})
	size := 1
	for size*size < tiles/6 {
		size++
	}
	if tiles == 0 || size*size*6 != tiles {
		return nil, 0, fmt.Errorf("%w: %d tiles do not tile a cube", puzzle.ErrBadInput, tiles)
	}

	blockAt := func(b grids.Point) bool {
		p := grids.Pt(b.X*size, b.Y*size)

		return board.InBounds(p) && board.At(p) != d22Void
	}

	first := grids.Pt(-1, 0)
	for x := 0; x*size < board.Width(); x++ {
		if blockAt(grids.Pt(x, 0)) {
			first = grids.Pt(x, 0)
			break
		}
	}
	if first.X < 0 {
		return nil, 0, fmt.Errorf("%w: empty top block row", puzzle.ErrBadInput)
	}

	seen := map[grids.Point]bool{first: true}
	queue := []*d22Face{{
		block:  first,
		origin: d22Vec{0, 0, -1},
		ex:     d22Vec{1, 0, 0},
		ey:     d22Vec{0, 1, 0},
		n:      d22Vec{0, 0, -1},
	}}
	world := make(map[d22Vec]d22Cell, tiles)

	for len(queue) > 0 {
		face := queue[0]
		queue = queue[1:]

		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				pos := face.origin.add(face.ex.mul(i)).add(face.ey.mul(j))
				net := grids.Pt(face.block.X*size+i, face.block.Y*size+j)
				world[pos] = d22Cell{at: net, face: face}
			}
		}

		// Fold the four net neighbours over this face's edges.
		next := [4]*d22Face{
			{
				block:  grids.Pt(face.block.X+1, face.block.Y),
				origin: face.origin.add(face.ex.mul(size)).sub(face.n),
				ex:     face.n.neg(), ey: face.ey, n: face.ex,
			},
			{
				block:  grids.Pt(face.block.X-1, face.block.Y),
				origin: face.origin.sub(face.ex).sub(face.n.mul(size)),
				ex: face.n, ey: face.ey, n: face.ex.neg(),
			},
			{
				block:  grids.Pt(face.block.X, face.block.Y+1),
				origin: face.origin.add(face.ey.mul(size)).sub(face.n),
				ex:     face.ex, ey: face.n.neg(), n: face.ey,
			},
			{
				block:  grids.Pt(face.block.X, face.block.Y-1),
				origin: face.origin.sub(face.ey).sub(face.n.mul(size)),
				ex: face.ex, ey: face.n, n: face.ey.neg(),
			},
		}
		for _, nb := range next {
			if nb.block.X < 0 || nb.block.Y < 0 || seen[nb.block] || !blockAt(nb.block) {
				continue
			}
			seen[nb.block] = true
			queue = append(queue, nb)
		}
	}

	if len(world) != tiles {
		return nil, 0, fmt.Errorf("%w: disconnected cube net", puzzle.ErrBadInput)
	}

	return world, size, nil
}

// d22WalkCube follows the path on the folded cube. A step off a face
// rolls over the cube edge: the heading becomes the inverted normal
// and the old heading becomes the new normal.
func d22WalkCube(board *grids.Grid[byte], path []d22Turn) (int, error) {
	world, _, err := d22Fold(board)
	if err != nil {
		return 0, err
	}
	start, err := d22Start(board)
	if err != nil {
		return 0, err
	}

	var pos d22Vec
	for sp, cell := range world {
		if cell.at == start {
			pos = sp
			break
		}
	}
	cell := world[pos]
	dir, normal := cell.face.ex, cell.face.n

	for _, ins := range path {
		switch ins.turn {
		case 'R':
			dir = dir.cross(normal)
		case 'L':
			dir = normal.cross(dir)
		default:
			for s := 0; s < ins.steps; s++ {
				nextPos, nextDir, nextNorm := pos.add(dir), dir, normal
				if _, ok := world[nextPos]; !ok {
					// Over the edge.
					nextPos = pos.add(dir).sub(normal)
					nextDir, nextNorm = normal.neg(), dir
				}
				next, ok := world[nextPos]
				if !ok {
					return 0, fmt.Errorf("%w: walked off the cube", puzzle.ErrBadInput)
				}
				if board.At(next.at) == d22Wall {
					break
				}
				pos, dir, normal = nextPos, nextDir, nextNorm
			}
		}
	}

	cell = world[pos]
	facing := 0
	switch dir {
	case cell.face.ex:
		facing = 0
	case cell.face.ey:
		facing = 1
	case cell.face.ex.neg():
		facing = 2
	case cell.face.ey.neg():
		facing = 3
	}

	return d22Password(cell.at, facing), nil
}
