package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders how many puzzles of a run have finished
type ProgressBar struct {
	Width   int
	Current int
	Total   int
	Label   string

	FilledStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width:       width,
		FilledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// SetProgress updates the progress
func (p *ProgressBar) SetProgress(current, total int) {
	p.Current = current
	p.Total = total
}

// SetLabel sets the progress label
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Percentage returns the completed fraction, clamped to [0, 1]
func (p *ProgressBar) Percentage() float64 {
	if p.Total <= 0 {
		return 0
	}
	percentage := float64(p.Current) / float64(p.Total)
	if percentage > 1.0 {
		percentage = 1.0
	}
	return percentage
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	percentage := p.Percentage()

	filledWidth := int(float64(p.Width) * percentage)
	emptyWidth := p.Width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)

	bar := p.FilledStyle.Render(filled) + p.EmptyStyle.Render(empty)
	result := fmt.Sprintf("[%s] %d/%d %.1f%%", bar, p.Current, p.Total, percentage*100)

	if p.Label != "" {
		result = p.Label + "\n" + result
	}

	return result
}
