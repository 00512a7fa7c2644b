// Package polymer reduces polymers by reacting adjacent units of opposite polarity.
package polymer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yildizm/aoc2018/internal/input"
)

// ErrEmpty is returned when the input file holds no polymer
var ErrEmpty = errors.New("input contains no polymer")

// Load reads the polymer from the first line of the file at path
func Load(path string) (string, error) {
	for line, err := range input.Lines(path) {
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrEmpty)
}

// reacts reports whether a and b are the same unit type with opposite polarity
func reacts(a, b byte) bool {
	return a != b && lower(a) == lower(b)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Reduce returns the length of the polymer after every reaction has happened
func Reduce(units string) int {
	return reduce(units, 0)
}

// reduce reacts units, skipping units of type skip (in either case) when skip is non-zero
func reduce(units string, skip byte) int {
	stack := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		c := units[i]
		if skip != 0 && lower(c) == skip {
			continue
		}
		if n := len(stack); n > 0 && reacts(stack[n-1], c) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, c)
	}
	return len(stack)
}

// ShortestWithout returns the shortest reduced length reachable by first
// removing every unit of a single type
func ShortestWithout(units string) int {
	shortest := len(units)
	for t := byte('a'); t <= 'z'; t++ {
		shortest = min(shortest, reduce(units, t))
	}
	return shortest
}
