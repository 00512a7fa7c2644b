// Package solver registers the puzzle solvers and runs them against their
// input files.
package solver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrDuplicatePuzzle is returned when a day/part pair is registered twice
	ErrDuplicatePuzzle = errors.New("puzzle already registered")
	// ErrUnknownPuzzle is returned when no puzzle is registered for a day/part pair
	ErrUnknownPuzzle = errors.New("puzzle not registered")
)

// SolveFunc computes the answer of one puzzle part from the input file at path
type SolveFunc func(ctx context.Context, path string) (any, error)

// Puzzle is one registered puzzle part
type Puzzle struct {
	Day   int
	Part  int
	Label string
	Solve SolveFunc
}

type key struct {
	day, part int
}

// Registry holds the known puzzles. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[key]Puzzle
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[key]Puzzle)}
}

// Register adds a puzzle. An empty label defaults to "dayN first task" or
// "dayN second task".
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("invalid day %d (must be 1-25)", p.Day)
	}
	if p.Part != 1 && p.Part != 2 {
		return fmt.Errorf("invalid part %d (must be 1 or 2)", p.Part)
	}
	if p.Solve == nil {
		return fmt.Errorf("day %d part %d: missing solve function", p.Day, p.Part)
	}
	if p.Label == "" {
		p.Label = Label(p.Day, p.Part)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{p.Day, p.Part}
	if _, exists := r.puzzles[k]; exists {
		return fmt.Errorf("day %d part %d: %w", p.Day, p.Part, ErrDuplicatePuzzle)
	}
	r.puzzles[k] = p
	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(p Puzzle) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Get returns the puzzle for day and part
func (r *Registry) Get(day, part int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.puzzles[key{day, part}]
	if !ok {
		return Puzzle{}, fmt.Errorf("day %d part %d: %w", day, part, ErrUnknownPuzzle)
	}
	return p, nil
}

// All returns every puzzle ordered by day, then part
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	all := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		all = append(all, p)
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b Puzzle) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part - b.Part
	})
	return all
}

// Days returns the distinct registered days, ascending
func (r *Registry) Days() []int {
	var days []int
	for _, p := range r.All() {
		if len(days) == 0 || days[len(days)-1] != p.Day {
			days = append(days, p.Day)
		}
	}
	return days
}

// Select returns the puzzles for the given days, or every puzzle when days is
// empty. A part of 0 selects both parts.
func (r *Registry) Select(days []int, part int) ([]Puzzle, error) {
	if part < 0 || part > 2 {
		return nil, fmt.Errorf("invalid part %d (must be 1 or 2)", part)
	}

	var selected []Puzzle
	for _, p := range r.All() {
		if len(days) > 0 && !slices.Contains(days, p.Day) {
			continue
		}
		if part != 0 && p.Part != part {
			continue
		}
		selected = append(selected, p)
	}

	for _, day := range days {
		found := slices.ContainsFunc(selected, func(p Puzzle) bool { return p.Day == day })
		if !found {
			return nil, fmt.Errorf("day %d: %w", day, ErrUnknownPuzzle)
		}
	}
	return selected, nil
}

// Label returns the display label for a puzzle part
func Label(day, part int) string {
	ordinal := "first"
	if part == 2 {
		ordinal = "second"
	}
	return fmt.Sprintf("day%d %s task", day, ordinal)
}
