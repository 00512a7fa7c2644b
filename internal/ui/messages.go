package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/aoc2018/internal/solver"
)

// Message types shared across UI models
type puzzleSolvedMsg struct {
	run    int
	index  int
	result solver.Result
}

// CreateSolveCommand creates a tea command that solves one puzzle. run tags
// the message so results of an abandoned run can be ignored.
func CreateSolveCommand(ctx context.Context, runner *solver.Runner, run, index int, puzzle solver.Puzzle) tea.Cmd {
	return func() tea.Msg {
		return puzzleSolvedMsg{
			run:    run,
			index:  index,
			result: runner.RunOne(ctx, puzzle),
		}
	}
}
