package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the kind of input error
type ErrorType string

const (
	// ErrTypeIO indicates the file is missing or unreadable
	ErrTypeIO ErrorType = "io"

	// ErrTypeDecode indicates a line is not valid UTF-8 text
	ErrTypeDecode ErrorType = "decode"

	// ErrTypeFormat indicates a line does not match the expected pattern
	ErrTypeFormat ErrorType = "format"

	// ErrTypeFieldParse indicates a named field could not be converted
	ErrTypeFieldParse ErrorType = "field_parse"

	// ErrTypeProtocol indicates a sequence of records violates the expected ordering
	ErrTypeProtocol ErrorType = "protocol"
)

// Sentinels for errors.Is; matching is by Type only.
var (
	ErrIO         = &Error{Type: ErrTypeIO}
	ErrDecode     = &Error{Type: ErrTypeDecode}
	ErrFormat     = &Error{Type: ErrTypeFormat}
	ErrFieldParse = &Error{Type: ErrTypeFieldParse}
	ErrProtocol   = &Error{Type: ErrTypeProtocol}
)

// Error describes a failure to read or interpret puzzle input
type Error struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// Path is the input file, when known
	Path string `json:"path,omitempty"`

	// LineNumber is 1-based, zero when unknown
	LineNumber int `json:"line_number,omitempty"`

	// Line is the offending input text
	Line string `json:"line,omitempty"`

	// Field names the record field that failed to convert
	Field string `json:"field,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("type=%s", e.Type))

	if e.Path != "" {
		if e.LineNumber > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Path, e.LineNumber))
		} else {
			parts = append(parts, e.Path)
		}
	}

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}

	parts = append(parts, e.Message)

	if e.Line != "" {
		parts = append(parts, fmt.Sprintf("line=%q", e.Line))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *Error) Is(target error) bool {
	if ie, ok := target.(*Error); ok {
		return e.Type == ie.Type
	}
	return false
}

// At records where in the input the error occurred. Existing location is kept.
func (e *Error) At(path string, lineNumber int) *Error {
	if e.Path == "" {
		e.Path = path
	}
	if e.LineNumber == 0 {
		e.LineNumber = lineNumber
	}
	return e
}

// NewIOError creates an error for a missing or unreadable file
func NewIOError(path string, cause error) *Error {
	return &Error{
		Type:    ErrTypeIO,
		Message: "cannot read file",
		Path:    path,
		Cause:   cause,
	}
}

// NewDecodeError creates an error for a line that is not valid text
func NewDecodeError(path string, lineNumber int) *Error {
	return &Error{
		Type:       ErrTypeDecode,
		Message:    "line is not valid UTF-8",
		Path:       path,
		LineNumber: lineNumber,
	}
}

// NewFormatError creates an error for a line that does not match its pattern
func NewFormatError(pattern, line string) *Error {
	return &Error{
		Type:    ErrTypeFormat,
		Message: fmt.Sprintf("cannot parse string as %s", pattern),
		Line:    line,
	}
}

// NewFieldParseError creates an error for a field whose text is not a valid value
func NewFieldParseError(field, line string, cause error) *Error {
	return &Error{
		Type:    ErrTypeFieldParse,
		Message: fmt.Sprintf("cannot parse %s value", field),
		Field:   field,
		Line:    line,
		Cause:   cause,
	}
}

// NewProtocolError creates an error for records arriving in an unexpected order
func NewProtocolError(message, line string) *Error {
	return &Error{
		Type:    ErrTypeProtocol,
		Message: message,
		Line:    line,
	}
}

// IsIOError checks if an error is an I/O error
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsFormatError checks if an error is a format error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsFieldParseError checks if an error is a field parse error
func IsFieldParseError(err error) bool {
	return errors.Is(err, ErrFieldParse)
}

// IsProtocolError checks if an error is a protocol error
func IsProtocolError(err error) bool {
	return errors.Is(err, ErrProtocol)
}

// FieldOf returns the name of the field that failed to parse, or "".
func FieldOf(err error) string {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Field
	}
	return ""
}
