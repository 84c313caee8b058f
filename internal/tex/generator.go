package tex

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pgntools/pgn2tex/internal/config"
	perrors "github.com/pgntools/pgn2tex/internal/errors"
	"github.com/pgntools/pgn2tex/internal/pgn"
)

// diagramMarker prefixes a paragraph comment that requests a board diagram.
const diagramMarker = "(D)"

// mainVariation is the identifier of the top-level game context.
const mainVariation = "main"

// Generator walks an aggregated element sequence and emits the document
// description. It owns the variation stack and the cursor; the cursor only
// moves forward, except for the single-element lookahead used when a
// comment immediately precedes a variation close.
type Generator struct {
	w   *Writer
	cfg *config.Config

	varCounter int
	varStack   []string
}

// NewGenerator creates a generator writing the document to out.
// If cfg is nil, a default config is used.
func NewGenerator(out io.Writer, cfg *config.Config) *Generator {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Generator{
		w:   NewWriter(out, cfg.Layout.LineWidth),
		cfg: cfg,
	}
}

// Generate emits the complete document for game: preamble, title, optional
// initial diagram, the movetext body, and the closing marker.
func (g *Generator) Generate(game *pgn.Game) error {
	title, err := Title(game)
	if err != nil {
		return err
	}

	g.begin()
	g.w.Line(fmt.Sprintf(`\section{%s}`, title))

	if fen := game.Tag("fen"); fen != "" {
		g.w.Line(fmt.Sprintf(`\fenboard{%s}`, fen))
		g.diagram()
	}

	if err := g.writeGame(game.Elements); err != nil {
		return err
	}

	g.end()
	return g.w.Err()
}

// begin emits the fixed document preamble.
func (g *Generator) begin() {
	g.w.Line(fmt.Sprintf(`\documentclass[%s]{%s}`, g.cfg.Layout.PaperSize, g.cfg.Layout.DocumentClass))
	g.w.Line(fmt.Sprintf(`\usepackage{%s}`, g.cfg.Layout.ChessPackage))
	g.w.Line(`\setlength{\parskip}{1em}`)
	g.w.Line(`\begin{document}`)
	g.w.BlankLine()
	g.w.Line(fmt.Sprintf(`\newchessgame[id=%s]`, mainVariation))
}

// end emits the closing marker.
func (g *Generator) end() {
	g.w.BlankLine()
	g.w.Line(`\end{document}`)
}

// writeGame runs the element state machine over the sequence.
func (g *Generator) writeGame(elements []pgn.Element) error {
	i := 0
	for i < len(elements) {
		elt := elements[i]
		i++

		switch elt.Kind {
		case pgn.Moves:
			g.w.Line(fmt.Sprintf(`\mainline { %s }`, elt.Text))
		case pgn.Evaluation:
			g.w.Line(elt.Text)
		case pgn.Result:
			g.w.Paragraph(elt.Text)
		case pgn.StartVariation:
			g.w.Line("(")
			g.startVariation()
		case pgn.EndVariation:
			g.w.Line(")")
			if err := g.endVariation(); err != nil {
				return err
			}
		case pgn.Comment:
			next, err := g.writeComment(elt.Text, elements, i)
			if err != nil {
				return err
			}
			i = next
		case pgn.End:
			return nil
		default:
			return perrors.Wrapf(perrors.ErrUnknownElement, "%s", elt.Kind)
		}
	}
	return nil
}

// startVariation opens a nested variation context keyed to the parent.
func (g *Generator) startVariation() {
	id := fmt.Sprintf("var%d", g.varCounter)
	g.varCounter++
	g.w.Line(fmt.Sprintf(`\newchessgame[newvar=%s, id=%s]`, g.currentVariation(), id))
	g.varStack = append(g.varStack, id)
}

// endVariation pops the variation stack and resumes the parent context.
// Leaving the last variation also ends the paragraph.
func (g *Generator) endVariation() error {
	if len(g.varStack) == 0 {
		return perrors.Wrap(perrors.ErrUnbalancedVariation, "variation closed with none open")
	}
	g.varStack = g.varStack[:len(g.varStack)-1]

	if len(g.varStack) == 0 {
		g.w.LineWithBreak(fmt.Sprintf(`\resumechessgame[id=%s]`, g.currentVariation()))
	} else {
		g.w.Line(fmt.Sprintf(`\resumechessgame[id=%s]`, g.currentVariation()))
	}
	return nil
}

// currentVariation returns the identifier of the innermost open variation,
// or the main line when none is open.
func (g *Generator) currentVariation() string {
	if len(g.varStack) == 0 {
		return mainVariation
	}
	return g.varStack[len(g.varStack)-1]
}

// writeComment emits a comment element. i indexes the element following the
// comment; the returned index accounts for the lookahead consuming an
// EndVariation.
//
// A comment starting with a lower-case letter attaches inline to the
// current line; any other comment becomes its own paragraph, with a
// leading "(D)" marker requesting a diagram first. When the element after
// the comment closes a variation, the closing delimiter is emitted before
// the comment text so it is not left dangling after the paragraph; the
// pop/resume then follows the comment. The reordering applies to both
// comment styles.
func (g *Generator) writeComment(text string, elements []pgn.Element, i int) (int, error) {
	closesVariation := i < len(elements) && elements[i].Kind == pgn.EndVariation
	if closesVariation {
		g.w.Line(")")
		i++
	}

	if isInlineComment(text) {
		g.w.Line(text)
	} else {
		if strings.HasPrefix(text, diagramMarker) {
			g.diagram()
			text = strings.TrimSpace(text[len(diagramMarker):])
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			g.w.Paragraph(line)
		}
	}

	if closesVariation {
		if err := g.endVariation(); err != nil {
			return i, err
		}
		g.w.BlankLine()
	}
	return i, nil
}

// isInlineComment reports whether the comment text uses the inline
// convention: a leading lower-case letter continues the preceding line.
func isInlineComment(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLower(r)
}

// diagram emits a board diagram command as its own paragraph.
func (g *Generator) diagram() {
	g.w.Paragraph(`\chessboard`)
}

// Title derives the section title from the game headers: the players'
// surnames, plus site and year when both are present. The white and black
// headers are required.
func Title(game *pgn.Game) (string, error) {
	white, err := surname(game, "white")
	if err != nil {
		return "", err
	}
	black, err := surname(game, "black")
	if err != nil {
		return "", err
	}

	title := white + " - " + black
	if game.HasTag("site") && game.HasTag("date") {
		year := strings.SplitN(game.Tag("date"), ".", 2)[0]
		title += " " + game.Tag("site") + " " + year
	}
	return title, nil
}

// surname returns the part of a player header before the first comma.
func surname(game *pgn.Game, tag string) (string, error) {
	value := game.Tag(tag)
	if value == "" {
		return "", perrors.Wrapf(perrors.ErrMissingTag, "%s", tag)
	}
	return strings.TrimSpace(strings.SplitN(value, ",", 2)[0]), nil
}
