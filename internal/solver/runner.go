package solver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yildizm/aoc2018/internal/logger"
)

// InputResolver maps a day to the path of its input file
type InputResolver interface {
	PathFor(day int) string
}

// InputResolverFunc adapts a function to InputResolver
type InputResolverFunc func(day int) string

// PathFor calls f(day)
func (f InputResolverFunc) PathFor(day int) string { return f(day) }

// StaticInput resolves every day to the same path
func StaticInput(path string) InputResolver {
	return InputResolverFunc(func(int) string { return path })
}

// Result is the outcome of solving one puzzle part
type Result struct {
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Label    string        `json:"label"`
	Input    string        `json:"input"`
	Answer   any           `json:"answer,omitempty"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

// OK reports whether the puzzle produced an answer
func (r Result) OK() bool {
	return r.Err == nil
}

// Failed returns the number of results carrying an error
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Runner solves puzzles concurrently
type Runner struct {
	inputs      InputResolver
	parallelism int
	log         *logger.Logger
}

// NewRunner creates a runner. Parallelism below 1 runs puzzles one at a time.
func NewRunner(inputs InputResolver, parallelism int, log *logger.Logger) *Runner {
	if parallelism < 1 {
		parallelism = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		inputs:      inputs,
		parallelism: parallelism,
		log:         log.WithComponent("solver"),
	}
}

// Run solves every puzzle and returns one result per puzzle, in the order
// given. A failing puzzle never stops the others; a cancelled ctx marks the
// puzzles that had not started as failed with the context error.
func (r *Runner) Run(ctx context.Context, puzzles []Puzzle) []Result {
	results := make([]Result, len(puzzles))

	var g errgroup.Group
	g.SetLimit(r.parallelism)

	for i, p := range puzzles {
		g.Go(func() error {
			results[i] = r.solve(ctx, p)
			return nil
		})
	}
	// Workers record failures in results and never return an error.
	_ = g.Wait()

	return results
}

// RunOne solves a single puzzle
func (r *Runner) RunOne(ctx context.Context, p Puzzle) Result {
	return r.solve(ctx, p)
}

func (r *Runner) solve(ctx context.Context, p Puzzle) (result Result) {
	path := r.inputs.PathFor(p.Day)
	result = Result{
		Day:   p.Day,
		Part:  p.Part,
		Label: p.Label,
		Input: path,
	}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			result.Answer = nil
			result.Err = fmt.Errorf("%s: panic: %v", p.Label, rec)
		}
		result.Duration = time.Since(start)

		if result.Err != nil {
			r.log.DebugWithFields("puzzle failed", []logger.Field{
				logger.Day(p.Day), logger.Part(p.Part), logger.Path(path), logger.Error(result.Err),
			})
			return
		}
		r.log.DebugWithFields("puzzle solved", []logger.Field{
			logger.Day(p.Day), logger.Part(p.Part), logger.Duration(result.Duration),
		})
	}()

	r.log.DebugWithFields("solving", []logger.Field{logger.Day(p.Day), logger.Part(p.Part), logger.Path(path)})

	answer, err := p.Solve(ctx, path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Answer = answer
	return result
}
