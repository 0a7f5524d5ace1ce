package grids

import (
	"fmt"
	"strings"
)

// Decoder turns one input byte into a cell value.
// Returning an error rejects the whole grid with ErrBadCharacter context.
type Decoder[T any] func(b byte) (T, error)

// Encoder turns a cell value back into its display byte.
type Encoder[T any] func(c T) byte

// Grid is a rectangular area of cells parsed from puzzle input lines.
// Grid values own their cell storage; copies share it.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
	enc    Encoder[T]
}

// Parse builds a Grid from the input lines, stopping at the first blank
// line (days with a trailing instruction block rely on this). Short rows
// are padded by decoding ' ', mirroring ragged puzzle maps.
// Returns ErrEmptyGrid for empty input and wraps ErrBadCharacter when
// the decoder rejects a byte.
// Complexity: O(W×H) time and memory.
func Parse[T any](lines []string, dec Decoder[T], enc Encoder[T]) (*Grid[T], error) {
	width := 0
	height := 0
	for _, ln := range lines {
		if ln == "" {
			break
		}
		if len(ln) > width {
			width = len(ln)
		}
		height++
	}
	if width == 0 || height == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([]T, 0, width*height)
	for y := 0; y < height; y++ {
		ln := lines[y]
		for x := 0; x < width; x++ {
			b := byte(' ')
			if x < len(ln) {
				b = ln[x]
			}
			c, err := dec(b)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at (%d,%d): %v", ErrBadCharacter, b, x, y, err)
			}
			cells = append(cells, c)
		}
	}

	return &Grid[T]{width: width, height: height, cells: cells, enc: enc}, nil
}

// New returns an empty W×H grid filled with the zero value of T.
func New[T any](width, height int, enc Encoder[T]) *Grid[T] {
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
		enc:    enc,
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Area returns Width×Height.
func (g *Grid[T]) Area() int { return g.width * g.height }

// InBounds reports whether p lies inside the grid.
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell at p. p must be in bounds.
func (g *Grid[T]) At(p Point) T { return g.cells[g.Index(p)] }

// TryAt returns the cell at p, or false when p is out of bounds.
func (g *Grid[T]) TryAt(p Point) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}

	return g.cells[g.Index(p)], true
}

// Set replaces the cell at p. p must be in bounds.
func (g *Grid[T]) Set(p Point, c T) { g.cells[g.Index(p)] = c }

// Index maps p to its row-major position: Y*Width + X.
func (g *Grid[T]) Index(p Point) int { return p.Y*g.width + p.X }

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Find returns the first cell (row-major order) matching the predicate.
func (g *Grid[T]) Find(match func(c T) bool) (Point, bool) {
	for i, c := range g.cells {
		if match(c) {
			return g.Coordinate(i), true
		}
	}

	return Point{}, false
}

// Each calls visit for every cell in row-major order.
func (g *Grid[T]) Each(visit func(p Point, c T)) {
	for i, c := range g.cells {
		visit(g.Coordinate(i), c)
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{width: g.width, height: g.height, cells: cells, enc: g.enc}
}

// Inflated returns a copy with margin zero-value cells on all four sides.
func (g *Grid[T]) Inflated(margin int) *Grid[T] {
	out := New[T](g.width+2*margin, g.height+2*margin, g.enc)
	g.Each(func(p Point, c T) {
		out.Set(Point{p.X + margin, p.Y + margin}, c)
	})

	return out
}

// Wrap folds p back into the grid along both axes, for toroidal maps.
// p must not stray further than one grid size outside.
func (g *Grid[T]) Wrap(p Point) Point {
	x, y := p.X, p.Y
	if x < 0 {
		x += g.width
	} else if x >= g.width {
		x -= g.width
	}
	if y < 0 {
		y += g.height
	} else if y >= g.height {
		y -= g.height
	}

	return Point{x, y}
}

// String renders the grid with its encoder, one line per row.
// Grids built without an encoder render cells as '?'.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.enc == nil {
				sb.WriteByte('?')
				continue
			}
			sb.WriteByte(g.enc(g.At(Point{x, y})))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
