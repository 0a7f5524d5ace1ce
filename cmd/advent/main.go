// Command advent runs, benchmarks and lists the Advent of Code day
// solvers. Inputs are plain text files under --input/<year>/NN.txt.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/runner"
	"github.com/katalvlaran/advent/y2022"
	"github.com/katalvlaran/advent/y2023"
	"github.com/katalvlaran/advent/y2024"
)

var (
	// Global flags
	inputDir string
	day      int
	repeat   int
	verbose  bool

	// Logger
	logger *zap.Logger
)

// years lists every registered puzzle year, oldest first.
func years() []puzzle.Year {
	return []puzzle.Year{y2022.Year(), y2023.Year(), y2024.Year()}
}

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent of Code solutions driver",
	Long: `advent solves Advent of Code puzzles from local input files.

Inputs live under --input as <year>/NN.txt (e.g. input/2024/01.txt).
An optional answers.yaml next to them turns on answer verification.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [year]",
	Short: "Run the solvers of a year (or of every year)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectYears(args)
		if err != nil {
			return err
		}

		results := runner.Run(config(), selected...)
		fmt.Print(runner.Report(results))

		return failure(results)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench [year]",
	Short: "Benchmark the solvers with a trimmed-mean timing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectYears(args)
		if err != nil {
			return err
		}

		results := runner.Bench(config(), selected...)
		fmt.Print(runner.Report(results))
		fmt.Println()
		fmt.Print(runner.Histogram(results))

		return failure(results)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered days per year",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, year := range years() {
			fmt.Printf("%d: %d days %v\n", year.Label, len(year.Days), year.SolvedDays())
		}

		return nil
	},
}

func config() runner.Config {
	return runner.Config{
		InputDir:    inputDir,
		Day:         day,
		Repetitions: repeat,
		Logger:      logger,
	}
}

// selectYears resolves the optional year argument.
func selectYears(args []string) ([]puzzle.Year, error) {
	if len(args) == 0 {
		return years(), nil
	}

	label, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("not a year: %q", args[0])
	}
	for _, year := range years() {
		if year.Label == label {
			return []puzzle.Year{year}, nil
		}
	}

	return nil, fmt.Errorf("no solvers registered for year %d", label)
}

// failure turns any failed day into a non-zero exit.
func failure(results []runner.Result) error {
	failed := 0
	for _, res := range results {
		if res.Failed() || res.Verdict == runner.VerdictFail {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d day(s) failed", failed)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inputDir, "input", "input", "directory with <year>/NN.txt puzzle inputs")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	runCmd.Flags().IntVar(&day, "day", 0, "run a single day (default: all registered)")
	benchCmd.Flags().IntVar(&day, "day", 0, "benchmark a single day (default: all registered)")
	benchCmd.Flags().IntVar(&repeat, "repeat", runner.DefaultRepetitions, "benchmark repetitions per day")

	rootCmd.AddCommand(runCmd, benchCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
