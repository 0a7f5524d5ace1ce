// Package grids models the rectangular character areas most puzzle days
// are built on, together with the coordinates and directions used to
// move across them.
//
// What:
//
//   - Point: an (X, Y) cell coordinate with arithmetic helpers.
//   - Dir: one of the four orthogonal directions, with turning and
//     stepping operations.
//   - Grid[T]: a generic rectangular area decoded from input lines via a
//     per-day byte decoder, with bounds-checked access, search, margin
//     inflation, coordinate wrapping and rendering.
//   - WalkCheapest: a Dijkstra-ordered walk over cells through a
//     caller-supplied adjacency function.
//
// Why:
//
//   - Game maps: mazes, guard patrols, push-box warehouses.
//   - Terrain: height maps, plant regions, race tracks.
//
// Complexity:
//
//   - Parse:        O(W×H) time and memory.
//   - At/Set:       O(1).
//   - Inflated:     O((W+2m)×(H+2m)).
//   - WalkCheapest: O(W×H×d log(W×H)), d = neighbors per cell.
//
// Errors:
//
//   - ErrEmptyGrid: the input has no usable rows or columns.
//   - ErrBadCharacter: the decoder rejected an input byte.
package grids
