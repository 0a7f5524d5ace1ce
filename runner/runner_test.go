package runner

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

// testYear registers one day that sums its input numbers into PartA
// and counts the lines into PartB.
func testYear() puzzle.Year {
	return puzzle.Year{
		Label: 2099,
		Days: map[int]puzzle.SolveFunc{
			1: func(lines []string) (puzzle.Solution, error) {
				sum := 0
				for _, ln := range lines {
					n, err := strconv.Atoi(ln)
					if err != nil {
						return puzzle.Solution{}, puzzle.ErrBadInput
					}
					sum += n
				}

				return puzzle.Solution{PartA: sum, PartB: len(lines)}, nil
			},
			2: func([]string) (puzzle.Solution, error) {
				return puzzle.Solution{}, puzzle.ErrNoAnswer
			},
		},
	}
}

func writeInput(t *testing.T, dir string, year int, day int, content string) {
	t.Helper()
	yearDir := filepath.Join(dir, strconv.Itoa(year))
	require.NoError(t, os.MkdirAll(yearDir, 0o755))
	name := filepath.Join(yearDir, "0"+strconv.Itoa(day)+".txt")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestRunSolvesRegisteredDays(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2099, 1, "1\n2\n3\n")
	writeInput(t, dir, 2099, 2, "whatever\n")

	results := Run(Config{InputDir: dir}, testYear())
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Equal(t, 6, results[0].Solution.PartA)
	require.Equal(t, 3, results[0].Solution.PartB)
	require.Equal(t, VerdictUnknown, results[0].Verdict)

	// A failing day does not stop the run.
	require.ErrorIs(t, results[1].Err, puzzle.ErrNoAnswer)
}

func TestRunSingleDay(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2099, 1, "5\n")

	results := Run(Config{InputDir: dir, Day: 1}, testYear())
	require.Len(t, results, 1)
	require.Equal(t, 5, results[0].Solution.PartA)
}

func TestRunMissingInput(t *testing.T) {
	results := Run(Config{InputDir: t.TempDir(), Day: 1}, testYear())
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, ErrNoInput)
	require.True(t, results[0].Failed())
}

func TestRunVerifiesAnswers(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2099, 1, "1\n2\n3\n")
	answers := "2099:\n  1: [\"6\", \"3\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answers.yaml"), []byte(answers), 0o644))

	results := Run(Config{InputDir: dir, Day: 1}, testYear())
	require.Equal(t, VerdictPass, results[0].Verdict)

	wrong := "2099:\n  1: [\"7\", \"3\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answers.yaml"), []byte(wrong), 0o644))
	results = Run(Config{InputDir: dir, Day: 1}, testYear())
	require.Equal(t, VerdictFail, results[0].Verdict)
}

func TestLoadAnswers(t *testing.T) {
	missing, err := LoadAnswers(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, missing)

	dir := t.TempDir()
	bad := "2099:\n  1: [\"6\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answers.yaml"), []byte(bad), 0o644))
	_, err = LoadAnswers(dir)
	require.ErrorIs(t, err, ErrBadAnswers)
}

func TestBenchReportsTrimmedMean(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, 2099, 1, "4\n")

	results := Bench(Config{InputDir: dir, Day: 1, Repetitions: 20}, testYear())
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	require.Equal(t, 4, results[0].Solution.PartA)
	require.Greater(t, results[0].Elapsed, time.Duration(0))
}

func TestTrimmedMean(t *testing.T) {
	samples := []time.Duration{
		100, 2, 3, 4, 5, 6, 7, 8, 9, 1, // one outlier each way
	}
	// 10 samples: drop the fastest and the slowest one.
	require.Equal(t, time.Duration(5), trimmedMean(samples))

	short := []time.Duration{3, 5}
	require.Equal(t, time.Duration(4), trimmedMean(short))
}

func TestReportRendering(t *testing.T) {
	results := []Result{
		{Year: 2099, Day: 1, Solution: puzzle.Solution{PartA: 6, PartB: 3}, Elapsed: time.Millisecond, Verdict: VerdictPass},
		{Year: 2099, Day: 2, Err: puzzle.ErrNoAnswer},
	}

	report := Report(results)
	require.Contains(t, report, "2099 day 01")
	require.Contains(t, report, "6")
	require.Contains(t, report, "no answer")

	histogram := Histogram(results)
	require.Contains(t, histogram, "2099/01")
	require.Contains(t, histogram, "failed")
}
