package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yildizm/aoc2018/internal/formatter"
	"github.com/yildizm/aoc2018/internal/solver"
	"github.com/yildizm/aoc2018/internal/ui"
)

var (
	solvePart       int
	solveInput      string
	solveParallel   int
	solveTimeout    time.Duration
	solveTUI        bool
	solveOutputFile string
	solveTimings    bool
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve puzzles and print their answers",
		Long: `Solve the given days, or every available day when none is given.

Each puzzle part prints one "<label>=<value>" line. A part that fails prints
"<label>=error: <message>" and the command exits non-zero once all parts ran.

Examples:
  aoc solve
  aoc solve 3 4
  aoc solve 4 --part 2 --input ./guards.txt
  aoc solve --output json --output-file answers.json`,
		RunE: runSolve,
	}

	cmd.Flags().IntVarP(&solvePart, "part", "p", 0, "solve only part 1 or 2 (default both)")
	cmd.Flags().StringVarP(&solveInput, "input", "i", "", "input file (requires exactly one day)")
	cmd.Flags().IntVar(&solveParallel, "parallel", 4, "number of puzzles solved concurrently")
	cmd.Flags().DurationVar(&solveTimeout, "timeout", 60*time.Second, "limit for the whole run (0 disables it)")
	cmd.Flags().BoolVar(&solveTUI, "tui", false, "show results in an interactive terminal UI")
	cmd.Flags().StringVar(&solveOutputFile, "output-file", "", "save output to file instead of stdout")
	cmd.Flags().BoolVar(&solveTimings, "timings", false, "include solve durations in the output")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	// Use config values if flags weren't explicitly set
	if !cmd.Flag("parallel").Changed {
		solveParallel = cfg.Solve.Parallelism
	}
	if !cmd.Flag("timeout").Changed {
		solveTimeout = cfg.Solve.Timeout
	}
	if !cmd.Flag("timings").Changed {
		solveTimings = cfg.Output.ShowTimings
	}

	days, err := parseDays(args)
	if err != nil {
		return err
	}

	puzzles, inputs, err := selectPuzzles(days)
	if err != nil {
		return err
	}

	ctx, cancel := solveContext(cmd.Context(), solveTimeout)
	defer cancel()

	runner := solver.NewRunner(inputs, solveParallel, newLogger("solver"))

	var results []solver.Result
	if solveTUI {
		results, err = ui.Run(ctx, runner, puzzles, ui.Options{Color: useColor(), Parallelism: solveParallel})
		if err != nil {
			return fmt.Errorf("terminal UI failed: %w", err)
		}
	} else {
		results = runner.Run(ctx, puzzles)
		if err := writeResults(cmd, results); err != nil {
			return err
		}
	}

	if failed := solver.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	return nil
}

// selectPuzzles resolves the requested days and part against the default
// registry and returns where their inputs come from
func selectPuzzles(days []int) ([]solver.Puzzle, solver.InputResolver, error) {
	if solveInput != "" && len(days) != 1 {
		return nil, nil, fmt.Errorf("--input requires exactly one day")
	}

	puzzles, err := solver.Default().Select(days, solvePart)
	if err != nil {
		return nil, nil, err
	}

	var inputs solver.InputResolver = &GetGlobalConfig().Inputs
	if solveInput != "" {
		if err := validateFilePath(solveInput); err != nil {
			return nil, nil, fmt.Errorf("invalid input file: %w", err)
		}
		inputs = solver.StaticInput(solveInput)
	}
	return puzzles, inputs, nil
}

// parseDays parses day arguments, rejecting anything outside 1-25
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: must be a number", arg)
		}
		if day < 1 || day > 25 {
			return nil, fmt.Errorf("invalid day %d (must be 1-25)", day)
		}
		days = append(days, day)
	}
	return days, nil
}

// solveContext cancels on SIGINT/SIGTERM and after timeout, when positive
func solveContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// writeResults formats results and writes them to --output-file or stdout
func writeResults(cmd *cobra.Command, results []solver.Result) error {
	f, err := formatter.New(getOutputFormat(cmd), formatter.Options{
		Color:       useColor(),
		Emoji:       !isEmojiDisabled(),
		ShowTimings: solveTimings,
	})
	if err != nil {
		return err
	}

	output, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	return handleOutputDestination(cmd.OutOrStdout(), output, solveOutputFile)
}

// handleOutputDestination writes output to file or w
func handleOutputDestination(w io.Writer, output []byte, outputFile string) error {
	if outputFile == "" {
		_, err := w.Write(output)
		return err
	}

	if err := validateOutputFilePath(outputFile); err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	newLogger("cli").Info("Output saved to: %s", outputFile)
	return nil
}

func validateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", cleanPath)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", cleanPath)
	}

	return nil
}

func validateOutputFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			newLogger("cli").Warn("failed to close output file: %v", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
