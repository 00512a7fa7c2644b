package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/aoc2018/internal/emoji"
	"github.com/yildizm/aoc2018/internal/solver"
	"github.com/yildizm/aoc2018/internal/ui/components"
)

// Options controls the look of the results view
type Options struct {
	Color       bool
	Parallelism int
}

// ResultsModel solves puzzles and shows their answers as they arrive
type ResultsModel struct {
	ctx         context.Context
	runner      *solver.Runner
	puzzles     []solver.Puzzle
	parallelism int

	results  []solver.Result
	finished []bool
	run      int
	next     int
	inflight int
	done     int

	selected int
	width    int
	height   int
	ready    bool
	quitting bool

	styles   *Styles
	progress *components.ProgressBar
}

// NewResultsModel creates a model that solves puzzles with runner
func NewResultsModel(ctx context.Context, runner *solver.Runner, puzzles []solver.Puzzle, opts Options) *ResultsModel {
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	styles := GetStyles(opts.Color)
	progress := components.NewProgressBar(30)
	progress.FilledStyle = styles.Success
	progress.EmptyStyle = styles.Muted

	return &ResultsModel{
		ctx:         ctx,
		runner:      runner,
		puzzles:     puzzles,
		parallelism: parallelism,
		styles:      styles,
		progress:    progress,
	}
}

// Init starts the first run
func (m *ResultsModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.startRun(),
	)
}

// Update handles messages
func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if !m.Running() {
				return m, m.startRun()
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.puzzles)-1 {
				m.selected++
			}
		}

	case puzzleSolvedMsg:
		if msg.run != m.run {
			return m, nil
		}
		m.results[msg.index] = msg.result
		m.finished[msg.index] = true
		m.done++
		m.inflight--
		m.progress.SetProgress(m.done, len(m.puzzles))
		if m.next < len(m.puzzles) {
			return m, m.dispatch()
		}
	}

	return m, nil
}

// View renders the model
func (m *ResultsModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.quitting {
		return "Thanks for using aoc! " + emoji.GetEmoji("tree") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(emoji.GetEmoji("tree")+" Advent of Code 2018") + "\n\n")
	b.WriteString(m.progress.Render() + "\n\n")

	for i, p := range m.puzzles {
		line := m.statusSymbol(i) + " " + p.Label + "=" + m.answerText(i)
		if i == m.selected {
			b.WriteString(m.styles.ListSelected.Render(line) + "\n")
		} else {
			b.WriteString(m.styles.ListItem.Render(line) + "\n")
		}
	}

	if details := m.details(); details != "" {
		b.WriteString("\n" + m.styles.Muted.Render(details) + "\n")
	}

	help := "↑/↓ select • q quit"
	if !m.Running() {
		help = "↑/↓ select • r rerun • q quit"
	}
	b.WriteString("\n" + m.styles.Muted.Render(help))

	box := m.styles.Box
	if m.width > 4 {
		box = box.Width(m.width - 2)
	}
	return box.Render(b.String())
}

// Running reports whether puzzles of the current run are still being solved
func (m *ResultsModel) Running() bool {
	return m.done < len(m.puzzles)
}

// Results returns the results of the current run. Puzzles that had not
// finished when the view was closed fail with context.Canceled.
func (m *ResultsModel) Results() []solver.Result {
	out := make([]solver.Result, len(m.results))
	for i, r := range m.results {
		if !m.finished[i] {
			p := m.puzzles[i]
			r = solver.Result{Day: p.Day, Part: p.Part, Label: p.Label, Err: context.Canceled}
		}
		out[i] = r
	}
	return out
}

// startRun resets the state and dispatches the first batch of puzzles
func (m *ResultsModel) startRun() tea.Cmd {
	m.run++
	m.results = make([]solver.Result, len(m.puzzles))
	m.finished = make([]bool, len(m.puzzles))
	m.next, m.inflight, m.done = 0, 0, 0
	m.progress.SetProgress(0, len(m.puzzles))
	m.progress.SetLabel(emoji.GetEmoji("rocket") + fmt.Sprintf(" Solving %d puzzles", len(m.puzzles)))

	var cmds []tea.Cmd
	for m.next < len(m.puzzles) && m.inflight < m.parallelism {
		cmds = append(cmds, m.dispatch())
	}
	return tea.Batch(cmds...)
}

// dispatch starts the next pending puzzle
func (m *ResultsModel) dispatch() tea.Cmd {
	index := m.next
	m.next++
	m.inflight++
	return CreateSolveCommand(m.ctx, m.runner, m.run, index, m.puzzles[index])
}

func (m *ResultsModel) statusSymbol(i int) string {
	switch {
	case !m.finished[i]:
		return emoji.GetEmoji("clock")
	case m.results[i].Err != nil:
		return m.styles.Error.Render(emoji.GetEmoji("error"))
	default:
		return m.styles.Success.Render(emoji.GetEmoji("star"))
	}
}

func (m *ResultsModel) answerText(i int) string {
	switch {
	case !m.finished[i]:
		return "..."
	case m.results[i].Err != nil:
		return m.styles.Error.Render("error: " + m.results[i].Err.Error())
	default:
		return fmt.Sprint(m.results[i].Answer)
	}
}

func (m *ResultsModel) details() string {
	if m.selected >= len(m.puzzles) || !m.finished[m.selected] {
		return ""
	}
	r := m.results[m.selected]
	return fmt.Sprintf("%s %s  %s %s", emoji.GetEmoji("file"), r.Input, emoji.GetEmoji("clock"), r.Duration)
}

// Run runs the results TUI until the user quits
func Run(ctx context.Context, runner *solver.Runner, puzzles []solver.Puzzle, opts Options) ([]solver.Result, error) {
	model := NewResultsModel(ctx, runner, puzzles, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return model.Results(), err
}
