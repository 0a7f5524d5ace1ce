// Package advent is a workspace of self-contained Advent of Code solutions —
// one small pure function pair per day, plus the toolkit they share.
//
// 🚀 What is advent?
//
//	A per-day puzzle collection with a thin driver:
//		• Year packages: y2022, y2023, y2024 — one file per day, two answers per file
//		• Toolkit: grids (2D areas & directions), scan (number extraction),
//		  intervals (disjoint spans), bitset (wide bit vectors),
//		  graphs (all-pair distances, topological sort)
//		• Runner: loads input/<year>/NN.txt, times each day, verifies answers,
//		  and benchmarks with a trimmed mean
//		• CLI: advent run / bench / list (cobra + zap + lipgloss)
//
// ✨ Why this layout?
//
//   - Days stay independent – no shared mutable state, no cross-day imports
//   - Toolkit packages carry the reusable algorithms with full test suites
//   - The driver is a harness, not a framework: read file, solve, print, time
//
// Each day is registered as a puzzle.SolveFunc taking the raw input lines and
// returning the day's two answers:
//
//	sol, err := y2024.Year().Days[1](lines)
//	fmt.Println(sol.A(), sol.B())
//
// Dive into README.md for the per-day index and the toolkit overview.
//
//	go get github.com/katalvlaran/advent
package advent
