package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/aoc2018/internal/solver"
)

// csvFormatter formats results as CSV
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(results []solver.Result) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	headers := []string{
		"Day",
		"Part",
		"Label",
		"Answer",
		"Error",
		"Duration",
	}

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range results {
		answer, errMsg := "", ""
		if r.Err != nil {
			errMsg = escapeCSVString(r.Err.Error())
		} else {
			answer = formatAnswer(r.Answer)
		}

		record := []string{
			strconv.Itoa(r.Day),
			strconv.Itoa(r.Part),
			r.Label,
			answer,
			errMsg,
			formatDuration(r.Duration),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// escapeCSVString flattens and truncates error messages for CSV
func escapeCSVString(s string) string {
	s = singleLine(s)

	if len(s) > 100 {
		s = s[:97] + "..."
	}

	return s
}
