package cmd

import (
	"bytes"
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/pgntools/pgn2tex/internal/config"
	"github.com/pgntools/pgn2tex/internal/pgn"
	"github.com/pgntools/pgn2tex/internal/render"
	"github.com/pgntools/pgn2tex/internal/tex"
)

// convertFile converts one game record. In tex-only mode the generated
// document goes to outputPath, or stdout when outputPath is empty;
// otherwise the document is handed to the external renderer and the
// artifact lands at outputPath (default: input path with .pdf extension).
func convertFile(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, inputPath, outputPath string, texOnly bool) error {
	game, err := pgn.ParseGameFile(inputPath)
	if err != nil {
		return err
	}

	var doc bytes.Buffer
	if err := tex.NewGenerator(&doc, cfg).Generate(game); err != nil {
		return err
	}

	if texOnly {
		if outputPath == "" {
			_, err := os.Stdout.Write(doc.Bytes())
			return err
		}
		return os.WriteFile(outputPath, doc.Bytes(), 0o644) //nolint:gosec // G306: document source, not sensitive
	}

	if outputPath == "" {
		outputPath = render.OutputPath(inputPath, ".pdf")
	}

	renderer := render.NewRenderer(cfg, logger)
	return renderer.RenderDocument(ctx, doc.Bytes(), render.BaseName(inputPath), outputPath)
}
