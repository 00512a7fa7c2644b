package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/aoc2018/internal/emoji"
	"github.com/yildizm/aoc2018/internal/solver"
)

func testPuzzles() []solver.Puzzle {
	r := solver.NewRegistry()
	for day := 1; day <= 3; day++ {
		r.MustRegister(solver.Puzzle{Day: day, Part: 1, Solve: func(context.Context, string) (any, error) {
			if day == 2 {
				return nil, errors.New("bad input")
			}
			return day * 10, nil
		}})
	}
	return r.All()
}

// collect executes cmd and returns every puzzleSolvedMsg it produces
func collect(cmd tea.Cmd) []puzzleSolvedMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []puzzleSolvedMsg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case puzzleSolvedMsg:
		return []puzzleSolvedMsg{msg}
	default:
		return nil
	}
}

func newTestModel(parallelism int) *ResultsModel {
	runner := solver.NewRunner(solver.StaticInput("in.txt"), parallelism, nil)
	m := NewResultsModel(context.Background(), runner, testPuzzles(), Options{Parallelism: parallelism})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// drain feeds solved messages back into the model until the run completes
func drain(t *testing.T, m *ResultsModel, cmd tea.Cmd) {
	t.Helper()
	pending := collect(cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		_, next := m.Update(msg)
		pending = append(pending, collect(next)...)
	}
	if m.Running() {
		t.Fatalf("Expected run to finish, %d of %d done", m.done, len(m.puzzles))
	}
}

func TestResultsModelSolvesAll(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	t.Cleanup(func() { emoji.SetEmojiDisabled(false) })

	m := newTestModel(2)
	cmd := m.startRun()
	if m.inflight != 2 {
		t.Errorf("Expected 2 puzzles in flight, got %d", m.inflight)
	}
	drain(t, m, cmd)

	results := m.Results()
	if results[0].Answer != 10 || results[2].Answer != 30 {
		t.Errorf("Unexpected answers: %+v", results)
	}
	if results[1].Err == nil {
		t.Errorf("Expected day 2 to fail")
	}

	view := m.View()
	for _, want := range []string{"day1 first task=10", "day2 first task=error: bad input", "3/3", "r rerun"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestResultsModelIgnoresStaleRun(t *testing.T) {
	m := newTestModel(1)
	first := m.startRun()
	stale := collect(first)

	m.startRun()
	for _, msg := range stale {
		m.Update(msg)
	}
	if m.done != 0 {
		t.Errorf("Expected stale results to be ignored, got %d done", m.done)
	}
}

func TestResultsModelKeys(t *testing.T) {
	m := newTestModel(3)
	drain(t, m, m.startRun())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 2 {
		t.Errorf("Expected selection to stop at 2, got %d", m.selected)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.selected != 1 {
		t.Errorf("Expected selection 1, got %d", m.selected)
	}

	run := m.run
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.run != run+1 || cmd == nil {
		t.Errorf("Expected r to start a new run")
	}
	drain(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil || !m.quitting {
		t.Errorf("Expected q to quit")
	}
	if !strings.Contains(m.View(), "Thanks for using aoc!") {
		t.Errorf("Unexpected quit view: %q", m.View())
	}
}

func TestResultsModelQuitMidRun(t *testing.T) {
	m := newTestModel(1)
	cmd := m.startRun()
	first := collect(cmd)
	if len(first) != 1 {
		t.Fatalf("Expected 1 puzzle in flight, got %d", len(first))
	}
	m.Update(first[0])
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	results := m.Results()
	if results[0].Err != nil || results[0].Answer != 10 {
		t.Errorf("Expected finished puzzle to keep its answer, got %+v", results[0])
	}
	for _, r := range results[1:] {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("Expected unfinished %q to be canceled, got %v", r.Label, r.Err)
		}
		if r.Label == "" || r.Day == 0 {
			t.Errorf("Expected unfinished result to name its puzzle, got %+v", r)
		}
	}
	if got := solver.Failed(results); got != 2 {
		t.Errorf("Expected 2 failed results, got %d", got)
	}
}

func TestResultsModelNotReady(t *testing.T) {
	m := NewResultsModel(context.Background(), solver.NewRunner(solver.StaticInput(""), 1, nil), nil, Options{})
	if m.View() != "Initializing..." {
		t.Errorf("Expected initializing view, got %q", m.View())
	}
}

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetThemeByName("default") })

	for _, name := range GetAvailableThemes() {
		if !SetThemeByName(name) {
			t.Errorf("Expected theme %s to exist", name)
		}
		if GetTheme().Name != name {
			t.Errorf("Expected active theme %s, got %s", name, GetTheme().Name)
		}
	}
	if SetThemeByName("neon") {
		t.Error("Expected unknown theme to be rejected")
	}
}
