// Package runner is the harness around the day solvers: it loads
// input/<year>/NN.txt, runs each registered day, times it, checks the
// answers against an optional answers.yaml, and benchmarks days with a
// trimmed mean over repeated runs.
//
// A day that fails — missing input, malformed input, no answer — is
// reported and the remaining days still run.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent/puzzle"
)

// ErrNoInput indicates a day's input file is missing or unreadable.
var ErrNoInput = errors.New("runner: input file missing")

// DefaultRepetitions is the benchmark sample count when Config leaves
// Repetitions zero.
const DefaultRepetitions = 10

// Config selects what to run and where the inputs live.
type Config struct {
	// InputDir is the directory holding <year>/NN.txt files and the
	// optional answers.yaml. Defaults to "input".
	InputDir string
	// Day restricts the run to a single day; 0 runs every registered day.
	Day int
	// Repetitions is the benchmark sample count per day.
	Repetitions int
	// Logger receives per-day debug traces. Nil means no logging.
	Logger *zap.Logger
}

// Result is the outcome of one day: its answers and timing, or the
// error that stopped it.
type Result struct {
	Year     int
	Day      int
	Solution puzzle.Solution
	Elapsed  time.Duration
	Err      error
	Verdict  Verdict
}

// Failed reports whether the day did not produce answers.
func (r Result) Failed() bool { return r.Err != nil }

func (c Config) normalized() Config {
	if c.InputDir == "" {
		c.InputDir = "input"
	}
	if c.Repetitions <= 0 {
		c.Repetitions = DefaultRepetitions
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return c
}

func (c Config) days(year puzzle.Year) []int {
	if c.Day != 0 {
		return []int{c.Day}
	}

	return year.SolvedDays()
}

// Run solves every selected day of the given years, one timed pass per
// day, in day order.
func Run(cfg Config, years ...puzzle.Year) []Result {
	cfg = cfg.normalized()
	answers := loadAnswersOrWarn(cfg)

	var results []Result
	for _, year := range years {
		for _, day := range cfg.days(year) {
			res := Result{Year: year.Label, Day: day}

			lines, err := ReadInput(cfg.InputDir, year.Label, day)
			if err != nil {
				res.Err = err
				results = append(results, res)
				continue
			}

			start := time.Now()
			res.Solution, res.Err = year.Solve(day, lines)
			res.Elapsed = time.Since(start)
			if res.Err == nil {
				res.Verdict = answers.Check(year.Label, day, res.Solution)
			}

			cfg.Logger.Debug("solved day",
				zap.Int("year", res.Year),
				zap.Int("day", res.Day),
				zap.Duration("elapsed", res.Elapsed),
				zap.Error(res.Err))
			results = append(results, res)
		}
	}

	return results
}

// Bench times every selected day Repetitions times and reports the
// trimmed mean, dropping the slowest and fastest tenth of the samples.
// A day that fails once is not retried.
func Bench(cfg Config, years ...puzzle.Year) []Result {
	cfg = cfg.normalized()
	answers := loadAnswersOrWarn(cfg)

	var results []Result
	for _, year := range years {
		for _, day := range cfg.days(year) {
			res := Result{Year: year.Label, Day: day}

			lines, err := ReadInput(cfg.InputDir, year.Label, day)
			if err != nil {
				res.Err = err
				results = append(results, res)
				continue
			}

			samples := make([]time.Duration, 0, cfg.Repetitions)
			for i := 0; i < cfg.Repetitions; i++ {
				start := time.Now()
				res.Solution, res.Err = year.Solve(day, lines)
				samples = append(samples, time.Since(start))
				if res.Err != nil {
					break
				}
			}
			if res.Err == nil {
				res.Elapsed = trimmedMean(samples)
				res.Verdict = answers.Check(year.Label, day, res.Solution)
			}

			cfg.Logger.Debug("benchmarked day",
				zap.Int("year", res.Year),
				zap.Int("day", res.Day),
				zap.Int("samples", len(samples)),
				zap.Duration("mean", res.Elapsed),
				zap.Error(res.Err))
			results = append(results, res)
		}
	}

	return results
}

// ReadInput loads <dir>/<year>/NN.txt and splits it into lines.
func ReadInput(dir string, year, day int) ([]string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%d", year), fmt.Sprintf("%02d.txt", day))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
	}

	return strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n"), nil
}

// trimmedMean drops the top and bottom tenth of the sorted samples and
// averages the rest.
func trimmedMean(samples []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	trim := len(sorted) / 10
	kept := sorted[trim : len(sorted)-trim]

	var total time.Duration
	for _, s := range kept {
		total += s
	}

	return total / time.Duration(len(kept))
}

func loadAnswersOrWarn(cfg Config) Answers {
	answers, err := LoadAnswers(cfg.InputDir)
	if err != nil {
		cfg.Logger.Warn("answers.yaml unreadable", zap.Error(err))
	}

	return answers
}
