package frequency

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yildizm/aoc2018/internal/input"
)

func TestSum(t *testing.T) {
	tests := []struct {
		changes []int
		want    int
	}{
		{[]int{+1, -2, +3, +1}, 3},
		{[]int{+1, +1, +1}, 3},
		{[]int{+1, +1, -2}, 0},
		{[]int{-1, -2, -3}, -6},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := Sum(tt.changes); got != tt.want {
			t.Errorf("Sum(%v) = %d, want %d", tt.changes, got, tt.want)
		}
	}
}

func TestFirstRepeat(t *testing.T) {
	tests := []struct {
		changes []int
		want    int
	}{
		{[]int{+1, -2, +3, +1}, 2},
		{[]int{+1, -1}, 0},
		{[]int{+3, +3, +4, -2, -4}, 10},
		{[]int{-6, +3, +8, +5, -6}, 5},
		{[]int{+7, +7, -2, -7, -4}, 14},
	}

	for _, tt := range tests {
		got, err := FirstRepeat(context.Background(), tt.changes)
		if err != nil {
			t.Errorf("FirstRepeat(%v) returned error: %v", tt.changes, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FirstRepeat(%v) = %d, want %d", tt.changes, got, tt.want)
		}
	}
}

func TestFirstRepeatErrors(t *testing.T) {
	if _, err := FirstRepeat(context.Background(), nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}

	if _, err := FirstRepeat(context.Background(), []int{+1}); !errors.Is(err, ErrNoRepeat) {
		t.Errorf("Expected ErrNoRepeat, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FirstRepeat(ctx, []int{+1}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day1.txt")
	if err := os.WriteFile(path, []byte("+13\n-7\n-17\n+12\n"), 0o600); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	changes, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if Sum(changes) != 1 {
		t.Errorf("Expected sum 1, got %d", Sum(changes))
	}
}

func TestParseChangeError(t *testing.T) {
	_, err := ParseChange("+1x")
	if !input.IsFieldParseError(err) {
		t.Fatalf("Expected field parse error, got %v", err)
	}
	if input.FieldOf(err) != "change" {
		t.Errorf("Expected field change, got %q", input.FieldOf(err))
	}
}
