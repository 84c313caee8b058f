package pgn

import "strings"

// AggregateMoves merges runs of consecutive Move elements into single
// Moves elements, emitted where each run ends. Non-move elements pass
// through unchanged, preserving order. The generator treats a run of
// plies as one renderable unit per variation segment, not as individual
// tokens. Re-running the pass on its own output is a no-op.
func AggregateMoves(raw []Element) []Element {
	out := make([]Element, 0, len(raw))
	var run []string

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Element{Kind: Moves, Text: strings.Join(run, " ")})
		run = run[:0]
	}

	for _, elt := range raw {
		if elt.Kind == Move {
			run = append(run, elt.Text)
			continue
		}
		flush()
		out = append(out, elt)
	}
	flush()

	return out
}
