package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yildizm/aoc2018/internal/logger"
	"github.com/yildizm/aoc2018/internal/solver"
)

// watchDebounce groups the burst of events an editor produces on save
const watchDebounce = 100 * time.Millisecond

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <day>",
		Short: "Re-solve a day whenever its input file changes",
		Long: `Watch the input file of a day and solve its puzzles again every time
the file is written. Press Ctrl+C to stop watching.

Examples:
  aoc watch 4
  aoc watch 3 --part 1 --input ./claims.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().IntVarP(&solvePart, "part", "p", 0, "solve only part 1 or 2 (default both)")
	cmd.Flags().StringVarP(&solveInput, "input", "i", "", "input file to watch")
	cmd.Flags().BoolVar(&solveTimings, "timings", false, "include solve durations in the output")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}

	puzzles, inputs, err := selectPuzzles(days)
	if err != nil {
		return err
	}
	filename := inputs.PathFor(days[0])

	log := newLogger("watch")

	watcher, cleanup, err := setupFileWatcher(filename, log)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := solveContext(cmd.Context(), 0)
	defer stop()

	runner := solver.NewRunner(inputs, GetGlobalConfig().Solve.Parallelism, newLogger("solver"))
	solveOnce := func() {
		if err := writeResults(cmd, runner.Run(ctx, puzzles)); err != nil {
			log.Error("failed to write results: %v", err)
		}
	}

	solveOnce()
	return runWatchLoop(ctx, watcher, filename, log, solveOnce)
}

// setupFileWatcher watches the directory holding filename, so editors that
// replace the file on save are still seen
func setupFileWatcher(filename string, log *logger.Logger) (*fsnotify.Watcher, func(), error) {
	if err := validateWatchFilePath(filename); err != nil {
		return nil, nil, fmt.Errorf("invalid file path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(filepath.Clean(filename))
	if err := watcher.Add(dir); err != nil {
		cleanupWatcher(watcher, log)
		return nil, nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	log.InfoWithFields("watching input", []logger.Field{logger.Path(filename)})
	log.Info("Press Ctrl+C to stop...")

	return watcher, func() { cleanupWatcher(watcher, log) }, nil
}

// runWatchLoop calls onChange after every write to filename until ctx is done
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, filename string, log *logger.Logger, onChange func()) error {
	target := filepath.Clean(filename)

	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping watch: %v", context.Cause(ctx))
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isInputChange(event, target) {
				continue
			}
			log.DebugWithFields("input changed", []logger.Field{logger.Path(event.Name), logger.F("op", event.Op.String())})
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watcher error: %v", err)
		}
	}
}

// isInputChange reports whether event wrote or replaced the watched file
func isInputChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher, log *logger.Logger) {
	if err := watcher.Close(); err != nil {
		log.Debug("failed to close watcher: %v", err)
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
