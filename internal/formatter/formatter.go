package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/aoc2018/internal/solver"
)

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(results []solver.Result) ([]byte, error)
}

// Options controls the presentation of results
type Options struct {
	Color       bool
	Emoji       bool
	ShowTimings bool
}

// Formats lists the supported output format names
var Formats = []string{"text", "json", "csv", "tree"}

// New returns the formatter registered under name
func New(name string, opts Options) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return NewText(opts.ShowTimings), nil
	case "json":
		return NewJSON(), nil
	case "csv":
		return NewCSV(), nil
	case "tree":
		return NewTerminal(opts.Color, opts.Emoji, opts.ShowTimings), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: %s)", name, strings.Join(Formats, ", "))
	}
}
