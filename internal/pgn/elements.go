// Package pgn turns a single PGN game record into an ordered stream of
// typed elements: headers are split off first, the movetext body is
// tokenized by an ordered rule table, and consecutive moves are merged
// into runs ready for document generation.
package pgn

// ElementKind identifies the type of a movetext element.
type ElementKind int

const (
	// Move is a single ply as it appeared in the movetext. Only present
	// in the raw tokenizer output; aggregation merges moves into Moves.
	Move ElementKind = iota
	// Moves is a run of consecutive plies joined by single spaces.
	Moves
	// Comment is the text between a brace pair.
	Comment
	// StartVariation marks an opening variation delimiter.
	StartVariation
	// EndVariation marks a closing variation delimiter.
	EndVariation
	// Evaluation is a short run of evaluation symbols such as +- or =.
	Evaluation
	// Result is a canonical game result token.
	Result
	// End is the synthetic sentinel appended after the last element.
	End
)

// elementKindNames maps element kinds to their string representations.
var elementKindNames = [...]string{
	Move:           "MOVE",
	Moves:          "MOVES",
	Comment:        "COMMENT",
	StartVariation: "START_VARIATION",
	EndVariation:   "END_VARIATION",
	Evaluation:     "EVALUATION",
	Result:         "RESULT",
	End:            "END",
}

// String returns the string representation of an element kind.
func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "UNKNOWN"
}

// Element is a single typed item of the movetext stream. Text holds the
// captured payload and is empty for delimiter-only kinds.
type Element struct {
	Kind ElementKind
	Text string
}

// Game holds one parsed game: its header tags and the aggregated element
// sequence, terminated by an End sentinel. Both are read-only after parsing.
type Game struct {
	// Tags maps lower-cased header keys to their values.
	Tags map[string]string

	// Elements is the aggregated movetext element sequence.
	Elements []Element
}

// Tag returns the value of the named header, or "" if absent.
// Keys are stored lower-cased; lookup expects a lower-case key.
func (g *Game) Tag(key string) string {
	return g.Tags[key]
}

// HasTag reports whether the named header is present.
func (g *Game) HasTag(key string) bool {
	_, ok := g.Tags[key]
	return ok
}
