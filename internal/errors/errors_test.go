package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrHeaderSyntax", ErrHeaderSyntax, ErrHeaderSyntax},
		{"ErrMalformedMovetext", ErrMalformedMovetext, ErrMalformedMovetext},
		{"ErrUnknownElement", ErrUnknownElement, ErrUnknownElement},
		{"ErrUnbalancedVariation", ErrUnbalancedVariation, ErrUnbalancedVariation},
		{"ErrMissingTag", ErrMissingTag, ErrMissingTag},
		{"ErrRenderFailed", ErrRenderFailed, ErrRenderFailed},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("scanning headers: %w", ErrHeaderSyntax)

	if !errors.Is(wrapped, ErrHeaderSyntax) {
		t.Errorf("errors.Is(wrapped, ErrHeaderSyntax) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name: "full context",
			err: &ParseError{
				Err:      ErrHeaderSyntax,
				File:     "games.pgn",
				Line:     3,
				Expected: `[Key "Value"]`,
				Got:      `[Event missing quote]`,
			},
			contains: []string{"games.pgn:3", "Event missing quote", "header syntax"},
		},
		{
			name: "line only",
			err: &ParseError{
				Err:  ErrMalformedMovetext,
				Line: 12,
			},
			contains: []string{"line 12", "malformed movetext"},
		},
		{
			name:     "bare",
			err:      &ParseError{},
			contains: []string{"parse error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestParseError_Unwrap verifies that ParseError properly implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:  ErrHeaderSyntax,
		File: "test.pgn",
		Line: 1,
	}

	unwrapped := errors.Unwrap(parseErr)
	if !errors.Is(unwrapped, ErrHeaderSyntax) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrHeaderSyntax)
	}

	if !errors.Is(parseErr, ErrHeaderSyntax) {
		t.Error("errors.Is(parseErr, ErrHeaderSyntax) = false, want true")
	}
}

// TestParseError_As verifies that errors.As works with ParseError
func TestParseError_As(t *testing.T) {
	parseErr := &ParseError{
		Err:  ErrUnbalancedVariation,
		File: "deep.pgn",
		Line: 7,
	}

	wrapped := fmt.Errorf("conversion failed: %w", parseErr)

	var extracted *ParseError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract ParseError")
	}

	if extracted.Line != 7 {
		t.Errorf("extracted.Line = %d, want 7", extracted.Line)
	}
	if extracted.File != "deep.pgn" {
		t.Errorf("extracted.File = %q, want %q", extracted.File, "deep.pgn")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrRenderFailed, "running pdflatex")

	if !errors.Is(wrapped, ErrRenderFailed) {
		t.Error("Wrap should preserve the underlying error")
	}

	if !strings.Contains(wrapped.Error(), "running pdflatex") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}

	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrMissingTag, "title for %s", "game.pgn")

	if !errors.Is(wrapped, ErrMissingTag) {
		t.Error("Wrapf should preserve the underlying error")
	}

	if !strings.Contains(wrapped.Error(), "title for game.pgn") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
