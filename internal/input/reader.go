// Package input reads puzzle input files line by line and defines the
// error kinds shared by every puzzle parser.
package input

import (
	"bufio"
	"errors"
	"iter"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxLineLength bounds a single input line.
const MaxLineLength = 1024 * 1024

// Lines returns a single-pass sequence over the lines of the file at path.
// Each line has its terminator removed. The file is opened when iteration
// starts and closed when the sequence is exhausted or the loop breaks early.
//
// A failure is yielded once as a non-nil error, after which the sequence ends.
func Lines(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		// #nosec G304 - puzzle input paths come from the user's own configuration
		file, err := os.Open(path)
		if err != nil {
			yield("", NewIOError(path, err))
			return
		}
		defer func() { _ = file.Close() }()

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 64*1024), MaxLineLength)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSuffix(scanner.Text(), "\r")
			if !utf8.ValidString(line) {
				yield("", NewDecodeError(path, lineNumber))
				return
			}
			if !yield(line, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield("", NewIOError(path, err).At(path, lineNumber+1))
		}
	}
}

// ReadLines collects every line of the file at path.
func ReadLines(path string) ([]string, error) {
	var lines []string
	for line, err := range Lines(path) {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ParseFile converts every line of the file at path with parse. Errors of
// type *Error are annotated with the path and line number. No partial
// result is returned on failure.
func ParseFile[T any](path string, parse func(line string) (T, error)) ([]T, error) {
	var records []T
	lineNumber := 0
	for line, err := range Lines(path) {
		if err != nil {
			return nil, err
		}
		lineNumber++

		record, err := parse(line)
		if err != nil {
			return nil, locate(err, path, lineNumber)
		}
		records = append(records, record)
	}
	return records, nil
}

func locate(err error, path string, lineNumber int) error {
	var ie *Error
	if errors.As(err, &ie) {
		ie.At(path, lineNumber)
	}
	return err
}
