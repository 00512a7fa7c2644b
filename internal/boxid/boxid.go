// Package boxid checks warehouse box IDs.
package boxid

import (
	"errors"
	"strings"

	"github.com/yildizm/aoc2018/internal/input"
)

// ErrTooFewIDs is returned when fewer than two distinct IDs are available to compare
var ErrTooFewIDs = errors.New("need at least two distinct box IDs")

// Load reads one box ID per line from the file at path
func Load(path string) ([]string, error) {
	return input.ParseFile(path, func(line string) (string, error) {
		return strings.TrimSpace(line), nil
	})
}

// Checksum multiplies the number of IDs containing some letter exactly twice
// by the number containing some letter exactly three times.
func Checksum(ids []string) int {
	twice, thrice := 0, 0
	for _, id := range ids {
		counts := make(map[rune]int)
		for _, r := range id {
			counts[r]++
		}

		hasTwo, hasThree := false, false
		for _, n := range counts {
			switch n {
			case 2:
				hasTwo = true
			case 3:
				hasThree = true
			}
		}
		if hasTwo {
			twice++
		}
		if hasThree {
			thrice++
		}
	}
	return twice * thrice
}

// CommonLetters finds the two distinct IDs sharing the most characters at the
// same positions and returns those shared characters in order. The first pair
// reaching the maximum wins.
func CommonLetters(ids []string) (string, error) {
	best := -1
	var a, b []rune

	for i, left := range ids {
		for j, right := range ids {
			if i == j || left == right {
				continue
			}
			l, r := []rune(left), []rune(right)
			if n := matching(l, r); n > best {
				best = n
				a, b = l, r
			}
		}
	}

	if best < 0 {
		return "", ErrTooFewIDs
	}

	var common strings.Builder
	for k := 0; k < min(len(a), len(b)); k++ {
		if a[k] == b[k] {
			common.WriteRune(a[k])
		}
	}
	return common.String(), nil
}

func matching(a, b []rune) int {
	n := 0
	for k := 0; k < min(len(a), len(b)); k++ {
		if a[k] == b[k] {
			n++
		}
	}
	return n
}
