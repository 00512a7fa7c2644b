package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"

	"github.com/yildizm/aoc2018/internal/logger"
)

// setupInputs writes input files and a config pointing at them, returning
// the config path
func setupInputs(t *testing.T, inputs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "input_data")
	if err := os.MkdirAll(inputDir, 0o750); err != nil {
		t.Fatalf("Failed to create input dir: %v", err)
	}
	for name, content := range inputs {
		if err := os.WriteFile(filepath.Join(inputDir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("Failed to write input: %v", err)
		}
	}

	configPath := filepath.Join(dir, "aoc.yaml")
	content := "inputs:\n  directory: \"" + inputDir + "\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return configPath
}

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { globalConfig = nil })

	var out bytes.Buffer
	cmd := NewRootCommand("dev", "none", "unknown")
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	configPath := setupInputs(t, map[string]string{
		"day3_data.txt": "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2\n",
	})

	out, err := execute(t, "solve", "3", "--config", configPath, "--no-emoji")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "day3 first task=4\nday3 second task=3\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveCommandFailureExitsNonZero(t *testing.T) {
	configPath := setupInputs(t, map[string]string{
		"day1_data.txt": "+1\n-2\nbogus\n",
		"day5_data.txt": "aA\n",
	})

	out, err := execute(t, "solve", "1", "5", "--part", "1", "--config", configPath)
	if err == nil || err.Error() != "1 of 2 puzzles failed" {
		t.Errorf("Expected failure count error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "day1 first task=error: ") || !strings.Contains(lines[0], "day1_data.txt:3") {
		t.Errorf("Expected located error line, got %q", lines[0])
	}
	if lines[1] != "day5 first task=0" {
		t.Errorf("Expected day 5 to be solved, got %q", lines[1])
	}
}

func TestSolveCommandInputFlag(t *testing.T) {
	input := filepath.Join(t.TempDir(), "polymer.txt")
	if err := os.WriteFile(input, []byte("dabAcCaCBAcCcaDA\n"), 0o600); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	out, err := execute(t, "solve", "5", "--input", input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "day5 first task=10\nday5 second task=4\n" {
		t.Errorf("Unexpected output: %q", out)
	}

	if _, err := execute(t, "solve", "3", "5", "--input", input); err == nil || !strings.Contains(err.Error(), "exactly one day") {
		t.Errorf("Expected --input to require one day, got %v", err)
	}
}

func TestSolveCommandJSONOutputFile(t *testing.T) {
	configPath := setupInputs(t, map[string]string{"day1_data.txt": "+1\n-2\n+3\n+1\n"})
	outputFile := filepath.Join(t.TempDir(), "answers.json")

	out, err := execute(t, "solve", "1", "-c", configPath, "-o", "json", "--output-file", outputFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("Expected nothing on stdout, got %q", out)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	var doc struct {
		Summary struct {
			Total  int `json:"total"`
			Solved int `json:"solved"`
		} `json:"summary"`
		Results []struct {
			Label  string `json:"label"`
			Answer int    `json:"answer"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if doc.Summary.Total != 2 || doc.Summary.Solved != 2 {
		t.Errorf("Unexpected summary: %+v", doc.Summary)
	}
	if doc.Results[0].Answer != 3 || doc.Results[1].Answer != 2 {
		t.Errorf("Unexpected answers: %+v", doc.Results)
	}
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr string
	}{
		{name: "no days", args: nil, want: []int{}},
		{name: "several days", args: []string{"4", "1"}, want: []int{4, 1}},
		{name: "not a number", args: []string{"three"}, wantErr: `invalid day "three": must be a number`},
		{name: "out of range", args: []string{"26"}, wantErr: "invalid day 26 (must be 1-25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDays(tt.args)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Errorf("Expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Days mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownDay(t *testing.T) {
	if _, err := execute(t, "solve", "9"); err == nil || !strings.Contains(err.Error(), "puzzle not registered") {
		t.Errorf("Expected unknown day error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "aoc development (local-build) built on local-build\n") {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "config", "init", "--minimal", "--no-emoji")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "[OK] Configuration file created at: .aoc.yaml") {
		t.Errorf("Unexpected init output: %q", out)
	}

	if _, err := execute(t, "config", "init"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected existing file error, got %v", err)
	}

	out, err = execute(t, "config", "validate", "--config", ".aoc.yaml", "--no-emoji")
	if err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}
	if !strings.Contains(out, "Configuration is valid") || !strings.Contains(out, "File Pattern: day%d_data.txt") {
		t.Errorf("Unexpected validate output: %q", out)
	}
}

func TestConfigShowJSON(t *testing.T) {
	configPath := setupInputs(t, nil)

	out, err := execute(t, "config", "show", "--config", configPath, "--format", "json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("Invalid JSON: %v\n%s", err, out)
	}
	if _, ok := doc["inputs"]; !ok {
		t.Errorf("Expected inputs section, got %v", doc)
	}
}

func TestRunWatchLoop(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "day5_data.txt")
	if err := os.WriteFile(target, []byte("aA\n"), 0o600); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	log := logger.Nop()
	watcher, cleanup, err := setupFileWatcher(target, log)
	if err != nil {
		t.Fatalf("Failed to set up watcher: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- runWatchLoop(ctx, watcher, target, log, func() { changes <- struct{}{} })
	}()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(target, []byte("abBA\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite input: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected a change notification")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch loop did not stop")
	}
}

func TestIsInputChange(t *testing.T) {
	target := filepath.Clean("/data/day4_data.txt")
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"replace", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/data/day3_data.txt", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInputChange(tt.event, target); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestValidateWatchFilePath(t *testing.T) {
	if err := validateWatchFilePath(" "); err == nil {
		t.Error("Expected error for empty path")
	}
	if err := validateWatchFilePath(t.TempDir()); err == nil || !strings.Contains(err.Error(), "cannot watch directory") {
		t.Errorf("Expected directory error, got %v", err)
	}
}
