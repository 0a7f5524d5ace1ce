package puzzle

import (
	"errors"
	"sort"
	"strconv"
)

// Sentinel errors shared by every day solver.
var (
	// ErrBadInput indicates the input text does not match the puzzle format.
	ErrBadInput = errors.New("puzzle: malformed input")
	// ErrNoSolver indicates the requested day has no registered solver.
	ErrNoSolver = errors.New("puzzle: no solver registered for day")
	// ErrNoAnswer indicates the puzzle state admits no answer.
	ErrNoAnswer = errors.New("puzzle: no answer exists")
)

// Solution holds the two answers of one day. Most answers are numbers;
// a few days produce text (crate tops, register dumps), carried in
// TextA/TextB and preferred by the renderers when non-empty.
type Solution struct {
	PartA int
	PartB int
	TextA string
	TextB string
}

// A renders part A: TextA when set, PartA in decimal otherwise.
func (s Solution) A() string {
	if s.TextA != "" {
		return s.TextA
	}

	return strconv.Itoa(s.PartA)
}

// B renders part B the same way.
func (s Solution) B() string {
	if s.TextB != "" {
		return s.TextB
	}

	return strconv.Itoa(s.PartB)
}

// SolveFunc computes both answers of one day from the raw input lines.
// Implementations are pure: they parse lines fresh on every call and
// keep no state between calls.
type SolveFunc func(lines []string) (Solution, error)

// Year groups the registered solvers of one puzzle year.
type Year struct {
	// Label is the calendar year, e.g. 2024.
	Label int
	// Days maps day number (1..25) to its solver. Unsolved days are absent.
	Days map[int]SolveFunc
}

// Solve runs the solver of the given day.
// Returns ErrNoSolver if the day is not registered.
func (y Year) Solve(day int, lines []string) (Solution, error) {
	fn, ok := y.Days[day]
	if !ok {
		return Solution{}, ErrNoSolver
	}

	return fn(lines)
}

// SolvedDays returns the registered day numbers in increasing order.
func (y Year) SolvedDays() []int {
	days := make([]int, 0, len(y.Days))
	for d := range y.Days {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}
