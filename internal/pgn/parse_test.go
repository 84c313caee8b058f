package pgn

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

const sampleRecord = "[White \"Smith, John\"]\n" +
	"[Black \"Doe, Jane\"]\n" +
	"[Result \"1-0\"]\n" +
	"\n" +
	"1. e4 e5 2. Nf3 {A solid reply.} 1-0\n"

func TestParseGame(t *testing.T) {
	game, err := ParseGame(sampleRecord)
	if err != nil {
		t.Fatalf("ParseGame() error: %v", err)
	}

	if game.Tag("white") != "Smith, John" {
		t.Errorf("Tag(white) = %q", game.Tag("white"))
	}

	want := []Element{
		{Moves, "1. e4 e5 2. Nf3"},
		{Comment, "A solid reply."},
		{Result, "1-0"},
		{End, ""},
	}
	if diff := cmp.Diff(want, game.Elements); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGame_EndSentinelAlwaysPresent(t *testing.T) {
	game, err := ParseGame("[White \"A\"]\n[Black \"B\"]\n\n")
	if err != nil {
		t.Fatalf("ParseGame() error: %v", err)
	}
	if len(game.Elements) == 0 || game.Elements[len(game.Elements)-1].Kind != End {
		t.Errorf("elements should end with the End sentinel, got %v", game.Elements)
	}
}

func TestParseGame_HeaderError(t *testing.T) {
	_, err := ParseGame("not a header\n\n1. e4\n")
	if !errors.Is(err, perrors.ErrHeaderSyntax) {
		t.Fatalf("err = %v, want ErrHeaderSyntax", err)
	}
}

func TestParseGameReader(t *testing.T) {
	game, err := ParseGameReader(strings.NewReader(sampleRecord))
	if err != nil {
		t.Fatalf("ParseGameReader() error: %v", err)
	}
	if game.Tag("black") != "Doe, Jane" {
		t.Errorf("Tag(black) = %q", game.Tag("black"))
	}
}

func TestParseGameFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.pgn")
	if err := os.WriteFile(path, []byte(sampleRecord), 0o644); err != nil {
		t.Fatal(err)
	}

	game, err := ParseGameFile(path)
	if err != nil {
		t.Fatalf("ParseGameFile() error: %v", err)
	}
	if game.Tag("result") != "1-0" {
		t.Errorf("Tag(result) = %q", game.Tag("result"))
	}
}

func TestParseGameFile_AnnotatesFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pgn")
	if err := os.WriteFile(path, []byte("garbage header line\n\n*\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseGameFile(path)
	var parseErr *perrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if parseErr.File != path {
		t.Errorf("ParseError.File = %q, want %q", parseErr.File, path)
	}
}

func TestParseGameFile_Missing(t *testing.T) {
	_, err := ParseGameFile(filepath.Join(t.TempDir(), "nope.pgn"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
