// Package parser converts single text lines into typed records using
// regular expressions with named capture groups.
package parser

import (
	"fmt"
	"regexp"

	"github.com/yildizm/aoc2018/internal/input"
)

// Pattern is an immutable line pattern. Build patterns once at package scope
// with MustCompile and share them freely.
type Pattern struct {
	name   string
	regex  *regexp.Regexp
	fields []Field
	index  map[string]int
}

// Compile builds a pattern named name from expr. Every declared field must be
// a named group in expr.
func Compile(name, expr string, fields ...Field) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s pattern: %w", name, err)
	}

	p := &Pattern{
		name:   name,
		regex:  re,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		idx := re.SubexpIndex(f.Name)
		if idx < 0 {
			return nil, fmt.Errorf("%s pattern has no group named %q", name, f.Name)
		}
		p.index[f.Name] = idx
	}

	return p, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(name, expr string, fields ...Field) *Pattern {
	p, err := Compile(name, expr, fields...)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the pattern name
func (p *Pattern) Name() string {
	return p.name
}

// Match reports whether line has the pattern's shape
func (p *Pattern) Match(line string) bool {
	return p.regex.MatchString(line)
}

// Parse extracts and converts every declared field of line. Fields are
// converted in declaration order and the first failure is reported; no
// partial record is returned.
func (p *Pattern) Parse(line string) (Record, error) {
	matches := p.regex.FindStringSubmatch(line)
	if matches == nil {
		return Record{}, input.NewFormatError(p.name, line)
	}

	values := make(map[string]any, len(p.fields))
	for _, f := range p.fields {
		v, err := f.Kind.convert(matches[p.index[f.Name]])
		if err != nil {
			return Record{}, input.NewFieldParseError(f.Name, line, err)
		}
		values[f.Name] = v
	}

	return Record{values: values}, nil
}
