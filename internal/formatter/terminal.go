package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/go-termfmt"

	"github.com/yildizm/aoc2018/internal/emoji"
	"github.com/yildizm/aoc2018/internal/solver"
)

// terminalFormatter renders results as a per-day tree using go-termfmt
type terminalFormatter struct {
	opts        *termfmt.TerminalOptions
	showTimings bool
}

// NewTerminal creates a new tree formatter
func NewTerminal(color, useEmoji, showTimings bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = useEmoji
	return &terminalFormatter{opts: opts, showTimings: showTimings}
}

func (f *terminalFormatter) Format(results []solver.Result) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)

	if len(results) > 0 {
		f.writeResults(&b, results)
	}

	f.writeSummary(&b, results)

	return []byte(b.String()), nil
}

// writeHeader writes the boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Advent of Code 2018"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeResults writes one tree node per day with a child per part
func (f *terminalFormatter) writeResults(b *strings.Builder, results []solver.Result) {
	b.WriteString(emoji.Lookup("tree", f.opts.Emoji) + " Answers\n")

	days := groupByDay(results)
	items := make([]termfmt.TreeItem, 0, len(days))
	for i, day := range days {
		children := make([]termfmt.TreeItem, 0, len(day.results))
		for j, r := range day.results {
			children = append(children, termfmt.TreeItem{
				Label: f.statusSymbol(r) + " " + strings.TrimPrefix(r.Label, fmt.Sprintf("day%d ", r.Day)),
				Value: f.resultValue(r),
				Last:  j == len(day.results)-1,
			})
		}
		items = append(items, termfmt.TreeItem{
			Label:    fmt.Sprintf("Day %d", day.day),
			Value:    fmt.Sprintf("%d/%d solved", day.solved(), len(day.results)),
			Children: children,
			Last:     i == len(days)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeSummary writes totals with a solved-ratio bar
func (f *terminalFormatter) writeSummary(b *strings.Builder, results []solver.Result) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Summary\n")

	failed := solver.Failed(results)
	ratio := 0.0
	if len(results) > 0 {
		ratio = float64(len(results)-failed) / float64(len(results))
	}

	items := []termfmt.TreeItem{
		{Label: "Solved", Value: fmt.Sprintf("%d/%d %s", len(results)-failed, len(results), termfmt.CreateConfidenceBar(ratio, f.opts))},
		{Label: "Failed", Value: fmt.Sprintf("%d", failed)},
		{Label: "Total time", Value: formatDuration(totalDuration(results)), Last: true},
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}

func (f *terminalFormatter) statusSymbol(r solver.Result) string {
	if r.Err != nil {
		return emoji.Lookup("error", f.opts.Emoji)
	}
	return emoji.Lookup("star", f.opts.Emoji)
}

func (f *terminalFormatter) resultValue(r solver.Result) string {
	value := formatAnswer(r.Answer)
	if r.Err != nil {
		value = "error: " + singleLine(r.Err.Error())
	}
	if f.showTimings {
		value += " (" + formatDuration(r.Duration) + ")"
	}
	return value
}
