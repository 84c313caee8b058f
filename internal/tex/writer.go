// Package tex generates the typeset document description for a parsed game.
package tex

import (
	"fmt"
	"io"
	"strings"
)

// Writer emits document lines wrapped to a fixed column width. Write
// errors are sticky: the first one is retained and later calls become
// no-ops, so callers can check Err once after generating.
type Writer struct {
	w     io.Writer
	width int
	err   error
}

// NewWriter creates a writer wrapping output at width columns.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = 78
	}
	return &Writer{w: w, width: width}
}

// Line writes one logical line, wrapped to the configured width.
// An empty string produces a blank line.
func (w *Writer) Line(s string) {
	w.print(wrap(s, w.width) + "\n")
}

// Paragraph writes a logical line as its own paragraph: a blank line
// before and after the wrapped text.
func (w *Writer) Paragraph(s string) {
	w.BlankLine()
	w.Line(s)
	w.BlankLine()
}

// LineWithBreak writes a logical line followed by a blank line.
func (w *Writer) LineWithBreak(s string) {
	w.Line(s)
	w.BlankLine()
}

// BlankLine writes an empty line.
func (w *Writer) BlankLine() {
	w.print("\n")
}

// Err returns the first write error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) print(s string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprint(w.w, s)
}

// wrap greedily wraps s at word boundaries to the given width. Words
// longer than the width are kept whole so command text is never split.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i == 0 {
			sb.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width {
			sb.WriteByte('\n')
			sb.WriteString(word)
			lineLen = len(word)
		} else {
			sb.WriteByte(' ')
			sb.WriteString(word)
			lineLen += 1 + len(word)
		}
	}
	return sb.String()
}
