package y2024

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/grids"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Robot chain depths: two intermediate robots in part A, 25 in part B.
const (
	d21DepthA = 2
	d21DepthB = 25
)

// d21Move is one arm displacement on the directional keypad.
type d21Move struct {
	from, to byte
}

// d21Key memoizes a move at a given robot-chain depth.
type d21Key struct {
	move  d21Move
	depth int
}

// Directional keypad layout, row 0 at the bottom. The gap sits at the
// top-left.
var (
	d21DirPos = map[byte]grids.Point{
		'A': grids.Pt(2, 1),
		'^': grids.Pt(1, 1),
		'<': grids.Pt(0, 0),
		'v': grids.Pt(1, 0),
		'>': grids.Pt(2, 0),
	}
	d21DirGap = grids.Pt(0, 1)
	d21NumGap = grids.Pt(0, 0)
)

// Day21 — Keypad Conundrum. Door codes are typed on a numeric keypad by
// a robot driven through a chain of directional keypads. The answer
// sums code value times shortest button-press sequence, with chains of
// 2 (part A) and 25 (part B) robots.
func Day21(lines []string) (puzzle.Solution, error) {
	memo := make(map[d21Key]int)
	complexityA, complexityB := 0, 0
	seen := 0
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		presses, value, err := d21Code(ln)
		if err != nil {
			return puzzle.Solution{}, err
		}
		complexityA += value * d21CodeLength(memo, presses, d21DepthA)
		complexityB += value * d21CodeLength(memo, presses, d21DepthB)
		seen++
	}
	if seen == 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no codes", puzzle.ErrBadInput)
	}

	return puzzle.Solution{PartA: complexityA, PartB: complexityB}, nil
}

// d21Code validates a code like "029A" and returns its key presses and
// numeric value.
func d21Code(line string) (string, int, error) {
	if !strings.HasSuffix(line, "A") {
		return "", 0, fmt.Errorf("%w: code %q", puzzle.ErrBadInput, line)
	}
	for i := 0; i < len(line)-1; i++ {
		if line[i] < '0' || line[i] > '9' {
			return "", 0, fmt.Errorf("%w: code %q", puzzle.ErrBadInput, line)
		}
	}
	nums := scan.Numbers(line)
	if len(nums) != 1 {
		return "", 0, fmt.Errorf("%w: code %q", puzzle.ErrBadInput, line)
	}

	return line, nums[0], nil
}

// d21NumPos returns the numeric keypad coordinate of a button, row 0 at
// the bottom with the gap at (0,0).
func d21NumPos(b byte) grids.Point {
	switch {
	case b == 'A':
		return grids.Pt(2, 0)
	case b == '0':
		return grids.Pt(1, 0)
	default:
		d := int(b - '1')
		return grids.Pt(d%3, 1+d/3)
	}
}

// d21CodeLength is the shortest press count that types the code through
// a chain of depth robots.
func d21CodeLength(memo map[d21Key]int, presses string, depth int) int {
	total := 0
	pos := byte('A')
	for i := 0; i < len(presses); i++ {
		best := -1
		for _, seq := range d21Sequences(d21NumPos(pos), d21NumPos(presses[i]), d21NumGap) {
			if cost := d21SequenceCost(memo, seq, depth); best < 0 || cost < best {
				best = cost
			}
		}
		total += best
		pos = presses[i]
	}

	return total
}

// d21SequenceCost types one directional sequence through the remaining
// robot chain, starting from the Activate button.
func d21SequenceCost(memo map[d21Key]int, seq []byte, depth int) int {
	cost := 0
	prev := byte('A')
	for _, b := range seq {
		cost += d21MoveCost(memo, d21Move{from: prev, to: b}, depth)
		prev = b
	}

	return cost
}

// d21MoveCost is the shortest press count realizing one directional
// move through depth robots. At depth 0 we press the button ourselves.
func d21MoveCost(memo map[d21Key]int, mv d21Move, depth int) int {
	if depth == 0 {
		return 1
	}
	key := d21Key{move: mv, depth: depth}
	if v, ok := memo[key]; ok {
		return v
	}

	best := -1
	for _, seq := range d21Sequences(d21DirPos[mv.from], d21DirPos[mv.to], d21DirGap) {
		if cost := d21SequenceCost(memo, seq, depth-1); best < 0 || cost < best {
			best = cost
		}
	}
	memo[key] = best

	return best
}

// d21Sequences lists the candidate shortest paths between two keypad
// buttons, ending with the activation press. Only the all-vertical-
// then-all-horizontal order and its mirror can be globally optimal;
// whichever of the two would sweep the arm over the gap is dropped.
func d21Sequences(from, to, gap grids.Point) [][]byte {
	vdir, hdir := byte('v'), byte('<')
	if from.Y < to.Y {
		vdir = '^'
	}
	if from.X < to.X {
		hdir = '>'
	}
	vert := bytes.Repeat([]byte{vdir}, abs(to.Y-from.Y))
	horz := bytes.Repeat([]byte{hdir}, abs(to.X-from.X))

	vh := make([]byte, 0, len(vert)+len(horz)+1)
	vh = append(append(append(vh, vert...), horz...), 'A')
	if len(vert) == 0 || len(horz) == 0 {
		return [][]byte{vh}
	}
	hv := make([]byte, 0, len(vert)+len(horz)+1)
	hv = append(append(append(hv, horz...), vert...), 'A')

	switch {
	case from.X == gap.X && to.Y == gap.Y:
		return [][]byte{hv}
	case from.Y == gap.Y && to.X == gap.X:
		return [][]byte{vh}
	}

	return [][]byte{vh, hv}
}
