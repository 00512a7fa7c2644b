// Package frequency applies a list of frequency changes to a device.
package frequency

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/yildizm/aoc2018/internal/input"
)

// MaxPasses bounds how many times FirstRepeat cycles through the changes.
const MaxPasses = 100000

var (
	// ErrEmpty is returned when there are no changes to apply
	ErrEmpty = errors.New("no frequency changes")

	// ErrNoRepeat is returned when no frequency repeats within MaxPasses
	ErrNoRepeat = errors.New("no frequency is reached twice")
)

// ParseChange converts a line such as "+13" or "-7"
func ParseChange(line string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, input.NewFieldParseError("change", line, err)
	}
	return v, nil
}

// Load parses every change in the file at path
func Load(path string) ([]int, error) {
	return input.ParseFile(path, ParseChange)
}

// Sum returns the frequency reached from zero after applying every change once
func Sum(changes []int) int {
	total := 0
	for _, c := range changes {
		total += c
	}
	return total
}

// FirstRepeat applies changes cyclically from zero and returns the first
// frequency reached twice. The starting frequency counts as reached.
func FirstRepeat(ctx context.Context, changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, ErrEmpty
	}

	current := 0
	seen := map[int]struct{}{current: {}}
	for pass := 0; pass < MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for _, c := range changes {
			current += c
			if _, ok := seen[current]; ok {
				return current, nil
			}
			seen[current] = struct{}{}
		}
	}
	return 0, ErrNoRepeat
}
