// Package puzzle defines the small shared vocabulary of the workspace:
// what a day's solver looks like, what it returns, and the sentinel
// errors every day reports through.
//
// What:
//
//   - Solution: the two numeric answers of one day (part A, part B).
//   - SolveFunc: a pure function from raw input lines to a Solution.
//   - Year: a year label plus its day-number → SolveFunc registry.
//
// Why:
//
//   - Days stay independent pure functions; the runner and the CLI only
//     ever see this package's types, never a day's internals.
//   - Registries make "which days are solved" a data question, not a
//     switch statement scattered across the driver.
//
// Errors:
//
//   - ErrBadInput: the input text does not match the puzzle's format.
//   - ErrNoSolver: the requested day has no registered solver.
//   - ErrNoAnswer: the puzzle state admits no answer.
package puzzle
