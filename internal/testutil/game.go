package testutil

import (
	"testing"

	"github.com/pgntools/pgn2tex/internal/pgn"
)

// MustParseGame parses a full game record and returns the game.
// It calls t.Fatal if parsing fails.
func MustParseGame(t *testing.T, record string) *pgn.Game {
	t.Helper()
	game, err := pgn.ParseGame(record)
	if err != nil {
		t.Fatalf("failed to parse test game: %v\n%s", err, record)
	}
	return game
}

// MovesElt returns a Moves element with the given run text.
func MovesElt(text string) pgn.Element {
	return pgn.Element{Kind: pgn.Moves, Text: text}
}

// CommentElt returns a Comment element with the given text.
func CommentElt(text string) pgn.Element {
	return pgn.Element{Kind: pgn.Comment, Text: text}
}

// StartVar returns a StartVariation element.
func StartVar() pgn.Element {
	return pgn.Element{Kind: pgn.StartVariation}
}

// EndVar returns an EndVariation element.
func EndVar() pgn.Element {
	return pgn.Element{Kind: pgn.EndVariation}
}

// ResultElt returns a Result element with the given text.
func ResultElt(text string) pgn.Element {
	return pgn.Element{Kind: pgn.Result, Text: text}
}

// EndElt returns the End sentinel.
func EndElt() pgn.Element {
	return pgn.Element{Kind: pgn.End}
}

// GameOf builds a Game from tags and an element sequence, appending the
// End sentinel.
func GameOf(tags map[string]string, elements ...pgn.Element) *pgn.Game {
	if tags == nil {
		tags = map[string]string{}
	}
	return &pgn.Game{
		Tags:     tags,
		Elements: append(elements, EndElt()),
	}
}
