package formatter

import (
	"strings"

	"github.com/yildizm/aoc2018/internal/solver"
)

// textFormatter writes one "label=answer" line per result
type textFormatter struct {
	showTimings bool
}

// NewText creates the plain line-per-result formatter
func NewText(showTimings bool) Formatter {
	return &textFormatter{showTimings: showTimings}
}

func (f *textFormatter) Format(results []solver.Result) ([]byte, error) {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.Label)
		b.WriteString("=")
		if r.Err != nil {
			b.WriteString("error: " + singleLine(r.Err.Error()))
		} else {
			b.WriteString(formatAnswer(r.Answer))
		}
		if f.showTimings {
			b.WriteString(" (" + formatDuration(r.Duration) + ")")
		}
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}
