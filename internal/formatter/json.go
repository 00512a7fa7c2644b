package formatter

import (
	"encoding/json"
	"time"

	"github.com/yildizm/aoc2018/internal/solver"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(results []solver.Result) ([]byte, error) {
	output := &JSONOutput{
		Summary: createSummary(results),
		Results: createResultOutputs(results),
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput is the document written by the JSON formatter
type JSONOutput struct {
	Summary *SummaryOutput  `json:"summary"`
	Results []*ResultOutput `json:"results"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Total    int    `json:"total"`
	Solved   int    `json:"solved"`
	Failed   int    `json:"failed"`
	Duration string `json:"duration"`
}

// ResultOutput represents one solved or failed puzzle part
type ResultOutput struct {
	Day        int     `json:"day"`
	Part       int     `json:"part"`
	Label      string  `json:"label"`
	Input      string  `json:"input,omitempty"`
	Answer     any     `json:"answer,omitempty"`
	Error      string  `json:"error,omitempty"`
	DurationMS float64 `json:"duration_ms"`
}

func createSummary(results []solver.Result) *SummaryOutput {
	failed := solver.Failed(results)
	return &SummaryOutput{
		Total:    len(results),
		Solved:   len(results) - failed,
		Failed:   failed,
		Duration: formatDuration(totalDuration(results)),
	}
}

func createResultOutputs(results []solver.Result) []*ResultOutput {
	outputs := make([]*ResultOutput, 0, len(results))
	for _, r := range results {
		output := &ResultOutput{
			Day:        r.Day,
			Part:       r.Part,
			Label:      r.Label,
			Input:      r.Input,
			DurationMS: float64(r.Duration) / float64(time.Millisecond),
		}
		if r.Err != nil {
			output.Error = r.Err.Error()
		} else {
			output.Answer = r.Answer
		}
		outputs = append(outputs, output)
	}
	return outputs
}
