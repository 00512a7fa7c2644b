package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/aoc2018/internal/solver"
)

// formatAnswer renders an answer the way it is printed after "label="
func formatAnswer(answer any) string {
	switch v := answer.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatDuration rounds durations to a readable precision
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}

// singleLine collapses line breaks so a message fits on one output line
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func totalDuration(results []solver.Result) time.Duration {
	var total time.Duration
	for _, r := range results {
		total += r.Duration
	}
	return total
}

// dayResults groups the results of one day, in input order
type dayResults struct {
	day     int
	results []solver.Result
}

func (d dayResults) solved() int {
	return len(d.results) - solver.Failed(d.results)
}

// groupByDay groups results by day, keeping the order days first appear in
func groupByDay(results []solver.Result) []dayResults {
	var groups []dayResults
	index := make(map[int]int)
	for _, r := range results {
		i, ok := index[r.Day]
		if !ok {
			i = len(groups)
			index[r.Day] = i
			groups = append(groups, dayResults{day: r.Day})
		}
		groups[i].results = append(groups[i].results, r)
	}
	return groups
}
