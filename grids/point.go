package grids

// Point is a cell coordinate. X grows rightward, Y grows downward,
// matching the line/column order of puzzle input files.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point { return Point{p.X * k, p.Y * k} }

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Next returns the point one step from p in direction d.
func (p Point) Next(d Dir) Point { return p.Add(d.Step()) }

// Dir is one of the four orthogonal displacements.
type Dir int

const (
	Up Dir = iota
	Down
	Left
	Right
)

// Dirs enumerates the four directions in a stable order.
var Dirs = [4]Dir{Up, Down, Left, Right}

// Step returns the unit coordinate increment of d.
func (d Dir) Step() Point {
	switch d {
	case Up:
		return Point{0, -1}
	case Down:
		return Point{0, 1}
	case Left:
		return Point{-1, 0}
	default:
		return Point{1, 0}
	}
}

// Right returns the direction after a clockwise quarter turn.
func (d Dir) Right() Dir {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// Left returns the direction after a counter-clockwise quarter turn.
func (d Dir) Left() Dir { return d.Right().Right().Right() }

// Reverse returns the opposite direction.
func (d Dir) Reverse() Dir { return d.Right().Right() }

// String implements fmt.Stringer.
func (d Dir) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
