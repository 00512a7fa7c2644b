package polymer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yildizm/aoc2018/internal/input"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		units string
		want  int
	}{
		{"aA", 0},
		{"abBA", 0},
		{"abAB", 4},
		{"aabAAB", 6},
		{"dabAcCaCBAcCcaDA", 10},
		{"", 0},
	}

	for _, tt := range tests {
		if got := Reduce(tt.units); got != tt.want {
			t.Errorf("Reduce(%q) = %d, want %d", tt.units, got, tt.want)
		}
	}
}

func TestShortestWithout(t *testing.T) {
	if got := ShortestWithout("dabAcCaCBAcCcaDA"); got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day5.txt")
	if err := os.WriteFile(path, []byte("dabAcCaCBAcCcaDA\nignored\n"), 0o600); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	units, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if units != "dabAcCaCBAcCcaDA" {
		t.Errorf("Expected first line, got %q", units)
	}
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day5.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
	if input.IsIOError(err) {
		t.Errorf("Expected a readable empty file not to be an io error, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name %s, got %v", path, err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !input.IsIOError(err) {
		t.Errorf("Expected io error, got %v", err)
	}
}
