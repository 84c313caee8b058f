package pgn

import (
	"regexp"
	"strings"

	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

// tokenRule pairs an element kind with the anchored pattern recognizing it.
type tokenRule struct {
	kind ElementKind
	re   *regexp.Regexp
}

// tokenRules is the ordered rule table for the movetext grammar. The first
// rule matching at the current position wins, so evaluation symbols and
// results are checked before the move fallback swallows them. Move tokens
// have no reliable distinguishing prefix and are recognized by exclusion:
// anything not matching a rule here is consumed as a move.
var tokenRules = []tokenRule{
	{Comment, regexp.MustCompile(`^\{([^}]*)\}`)},
	{StartVariation, regexp.MustCompile(`^\(`)},
	{EndVariation, regexp.MustCompile(`^\)`)},
	{Evaluation, regexp.MustCompile(`^([-+/=]{1,3})`)},
	{Result, regexp.MustCompile(`^((1-0)|(0-1)|(1/2-1/2))`)},
}

// Tokenize scans a movetext body into the raw element sequence. The input
// is consumed entirely or the scan fails with ErrMalformedMovetext; every
// iteration is guaranteed to make progress.
func Tokenize(body string) ([]Element, error) {
	var elements []Element

	rest := body
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if rest == "" {
			return elements, nil
		}

		n, matched := matchRule(rest, &elements)
		if !matched {
			n = consumeMove(rest, &elements)
		}
		if n <= 0 {
			return nil, perrors.Wrapf(perrors.ErrMalformedMovetext,
				"no progress at %q", truncateFor(rest))
		}
		rest = rest[n:]
	}
}

// matchRule tries the rule table at the start of rest. On a match it
// appends the element and returns the number of bytes consumed.
func matchRule(rest string, elements *[]Element) (int, bool) {
	for _, rule := range tokenRules {
		m := rule.re.FindStringSubmatch(rest)
		if m == nil {
			continue
		}
		text := ""
		if len(m) > 1 {
			text = m[1]
		}
		*elements = append(*elements, Element{Kind: rule.kind, Text: text})
		return len(m[0]), true
	}
	return 0, false
}

// consumeMove takes the next whitespace-delimited token as a move element.
// rest is non-empty and starts with a non-space character.
func consumeMove(rest string, elements *[]Element) int {
	end := strings.IndexAny(rest, " \t\r\n")
	if end < 0 {
		end = len(rest)
	}
	*elements = append(*elements, Element{Kind: Move, Text: rest[:end]})
	return end
}

// truncateFor shortens movetext remainders for error messages.
func truncateFor(s string) string {
	const max = 20
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
