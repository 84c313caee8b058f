package pgn

import (
	"errors"
	"io"
	"os"

	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

// ParseGame parses a complete game record: header block, tokenized and
// aggregated movetext, and the trailing End sentinel.
func ParseGame(content string) (*Game, error) {
	tags, body, err := ParseHeaders(content)
	if err != nil {
		return nil, err
	}

	raw, err := Tokenize(body)
	if err != nil {
		return nil, err
	}

	elements := AggregateMoves(raw)
	elements = append(elements, Element{Kind: End})

	return &Game{Tags: tags, Elements: elements}, nil
}

// ParseGameReader reads an entire game record from r and parses it.
func ParseGameReader(r io.Reader) (*Game, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, perrors.Wrap(err, "reading game record")
	}
	return ParseGame(string(content))
}

// ParseGameFile parses the game record stored at path. Parse errors are
// annotated with the file name.
func ParseGameFile(path string) (*Game, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}

	game, err := ParseGame(string(content))
	if err != nil {
		var parseErr *perrors.ParseError
		if errors.As(err, &parseErr) && parseErr.File == "" {
			parseErr.File = path
		}
		return nil, err
	}
	return game, nil
}
