package formatter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/yildizm/aoc2018/internal/solver"
)

func sampleResults() []solver.Result {
	return []solver.Result{
		{Day: 3, Part: 1, Label: "day3 first task", Answer: 4, Duration: 1500 * time.Microsecond},
		{Day: 3, Part: 2, Label: "day3 second task", Answer: 3, Duration: 500 * time.Microsecond},
		{Day: 4, Part: 1, Label: "day4 first task", Err: errors.New("line 2:\nbad guard")},
		{Day: 2, Part: 2, Label: "day2 second task", Answer: "fgij"},
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := NewText(false).Format(sampleResults())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "day3 first task=4\n" +
		"day3 second task=3\n" +
		"day4 first task=error: line 2: bad guard\n" +
		"day2 second task=fgij\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Text output mismatch (-want +got):\n%s", diff)
	}
}

func TestTextFormatterTimings(t *testing.T) {
	out, err := NewText(true).Format(sampleResults()[:1])
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(out) != "day3 first task=4 (1.5ms)\n" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSON().Format(sampleResults())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var doc JSONOutput
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	wantSummary := &SummaryOutput{Total: 4, Solved: 3, Failed: 1, Duration: "2ms"}
	if diff := cmp.Diff(wantSummary, doc.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if len(doc.Results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(doc.Results))
	}
	if doc.Results[0].Answer != float64(4) {
		t.Errorf("Expected answer 4, got %v", doc.Results[0].Answer)
	}
	if doc.Results[0].DurationMS != 1.5 {
		t.Errorf("Expected 1.5ms, got %v", doc.Results[0].DurationMS)
	}
	if doc.Results[2].Error == "" || doc.Results[2].Answer != nil {
		t.Errorf("Expected error without answer, got %+v", doc.Results[2])
	}
	if doc.Results[3].Answer != "fgij" {
		t.Errorf("Expected answer fgij, got %v", doc.Results[3].Answer)
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := NewCSV().Format(sampleResults())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Expected header plus 4 records, got %d", len(records))
	}

	want := []string{"4", "1", "day4 first task", "", "line 2: bad guard", "0s"}
	if diff := cmp.Diff(want, records[3]); diff != "" {
		t.Errorf("Failed record mismatch (-want +got):\n%s", diff)
	}
	if records[1][3] != "4" {
		t.Errorf("Expected answer 4, got %q", records[1][3])
	}
}

func TestEscapeCSVStringTruncates(t *testing.T) {
	got := escapeCSVString(strings.Repeat("x", 150))
	if len(got) != 100 || !strings.HasSuffix(got, "...") {
		t.Errorf("Expected truncated string of 100 chars, got %d", len(got))
	}
}

func TestTerminalFormatter(t *testing.T) {
	out, err := NewTerminal(false, false, false).Format(sampleResults())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	output := string(out)

	for _, want := range []string{
		"Advent of Code 2018",
		"Day 3",
		"2/2 solved",
		"[*] first task",
		"[ERR] first task",
		"error: line 2: bad guard",
		"Day 2",
		"Summary",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, output)
		}
	}

	day3 := strings.Index(output, "Day 3")
	day4 := strings.Index(output, "Day 4")
	day2 := strings.Index(output, "Day 2")
	if day3 > day4 || day4 > day2 {
		t.Errorf("Days should keep result order")
	}
}

func TestTerminalFormatterEmpty(t *testing.T) {
	out, err := NewTerminal(false, false, false).Format(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(string(out), "Answers") {
		t.Errorf("Empty results should not render the answer tree")
	}
}

func TestNew(t *testing.T) {
	for _, name := range append(Formats, "", "JSON") {
		if _, err := New(name, Options{}); err != nil {
			t.Errorf("New(%q) returned error: %v", name, err)
		}
	}
	if _, err := New("markdown", Options{}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{1234 * time.Nanosecond, "1µs"},
		{1234567 * time.Nanosecond, "1.23ms"},
		{1234567890 * time.Nanosecond, "1.235s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
