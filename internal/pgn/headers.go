package pgn

import (
	"regexp"
	"strings"

	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

// headerRe matches one header line: a bracketed key and a quoted value.
var headerRe = regexp.MustCompile(`^ *\[([^ ]+) "([^"]+)"\]`)

// ParseHeaders scans the leading header block of a game record. Every line
// up to the first blank line must be a `[Key "Value"]` pair; keys are
// lower-cased on insertion. It returns the tag map and the remaining
// movetext body. A non-matching, non-blank line fails with ErrHeaderSyntax
// wrapped in a ParseError naming the offending line.
func ParseHeaders(content string) (map[string]string, string, error) {
	tags := make(map[string]string)
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return tags, strings.Join(lines[i+1:], "\n"), nil
		}

		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			return nil, "", &perrors.ParseError{
				Err:      perrors.ErrHeaderSyntax,
				Line:     i + 1,
				Expected: `[Key "Value"]`,
				Got:      strings.TrimSpace(line),
			}
		}
		tags[strings.ToLower(m[1])] = m[2]
	}

	// No blank line found; the whole input was headers.
	return tags, "", nil
}
