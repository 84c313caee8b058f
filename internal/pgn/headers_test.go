package pgn

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

func TestParseHeaders_Basic(t *testing.T) {
	content := "[Event \"Casual Game\"]\n[White \"Smith, John\"]\n[Black \"Doe, Jane\"]\n\n1. e4 e5\n"

	tags, body, err := ParseHeaders(content)
	if err != nil {
		t.Fatalf("ParseHeaders() error: %v", err)
	}

	want := map[string]string{
		"event": "Casual Game",
		"white": "Smith, John",
		"black": "Doe, Jane",
	}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if body != "1. e4 e5\n" {
		t.Errorf("body = %q, want %q", body, "1. e4 e5\n")
	}
}

func TestParseHeaders_KeysLowerCased(t *testing.T) {
	tags, _, err := ParseHeaders("[FEN \"8/8/8/8/8/8/8/8 w - - 0 1\"]\n\n*\n")
	if err != nil {
		t.Fatalf("ParseHeaders() error: %v", err)
	}
	if _, ok := tags["fen"]; !ok {
		t.Errorf("expected lower-cased key %q, got %v", "fen", tags)
	}
}

func TestParseHeaders_LeadingSpaces(t *testing.T) {
	tags, _, err := ParseHeaders("  [Site \"London\"]\n\n1-0\n")
	if err != nil {
		t.Fatalf("ParseHeaders() error: %v", err)
	}
	if tags["site"] != "London" {
		t.Errorf("tags[site] = %q, want %q", tags["site"], "London")
	}
}

func TestParseHeaders_BadLine(t *testing.T) {
	content := "[Event \"Ok\"]\nthis is not a header\n\n1. e4\n"

	_, _, err := ParseHeaders(content)
	if !errors.Is(err, perrors.ErrHeaderSyntax) {
		t.Fatalf("err = %v, want ErrHeaderSyntax", err)
	}

	var parseErr *perrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("error should be a *ParseError")
	}
	if parseErr.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", parseErr.Line)
	}
	if parseErr.Got != "this is not a header" {
		t.Errorf("ParseError.Got = %q, want the offending line", parseErr.Got)
	}
}

func TestParseHeaders_NoBlankSeparator(t *testing.T) {
	// A record that is all headers has an empty movetext body.
	tags, body, err := ParseHeaders("[Event \"Only Headers\"]")
	if err != nil {
		t.Fatalf("ParseHeaders() error: %v", err)
	}
	if tags["event"] != "Only Headers" {
		t.Errorf("tags[event] = %q", tags["event"])
	}
	if body != "" {
		t.Errorf("body = %q, want empty", body)
	}
}

func TestParseHeaders_EmptyInput(t *testing.T) {
	tags, body, err := ParseHeaders("")
	if err != nil {
		t.Fatalf("ParseHeaders() error: %v", err)
	}
	if len(tags) != 0 || body != "" {
		t.Errorf("got tags=%v body=%q, want empty", tags, body)
	}
}
