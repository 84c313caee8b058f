// Package errors provides sentinel errors and error types for the pgn2tex tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrHeaderSyntax indicates an unparsable header line before the
	// blank line that separates headers from movetext.
	ErrHeaderSyntax = errors.New("header syntax error")

	// ErrMalformedMovetext indicates the tokenizer could not make
	// progress on the movetext body.
	ErrMalformedMovetext = errors.New("malformed movetext")

	// ErrUnknownElement indicates the generator encountered an element
	// kind outside the closed set.
	ErrUnknownElement = errors.New("unknown game element")

	// ErrUnbalancedVariation indicates a variation was closed with no
	// variation open.
	ErrUnbalancedVariation = errors.New("unbalanced variation")

	// ErrMissingTag indicates a required PGN header is missing.
	ErrMissingTag = errors.New("missing required tag")

	// ErrRenderFailed indicates the external document renderer failed.
	ErrRenderFailed = errors.New("render failed")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError represents a parsing error with input location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ParseError wrapper.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
