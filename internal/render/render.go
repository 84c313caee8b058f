// Package render invokes the external typesetting tool on a generated
// document and relocates the rendered artifact. It is deliberately thin:
// working directory lifecycle, one subprocess call, one file move.
package render

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pgntools/pgn2tex/internal/config"
	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

// Renderer runs the configured typesetting command.
type Renderer struct {
	cfg *config.Config
	log *zap.SugaredLogger
}

// NewRenderer creates a renderer. A nil logger disables logging.
func NewRenderer(cfg *config.Config, log *zap.SugaredLogger) *Renderer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Renderer{cfg: cfg, log: log}
}

// RenderDocument writes doc as <baseName>.tex into a fresh working
// directory, runs the renderer there, and moves the produced artifact to
// destPath. The working directory is removed on every path unless the
// configuration asks to keep it.
func (r *Renderer) RenderDocument(ctx context.Context, doc []byte, baseName, destPath string) error {
	workdir := filepath.Join(os.TempDir(), "pgn2tex-"+uuid.NewString())
	if err := os.Mkdir(workdir, 0o700); err != nil {
		return perrors.Wrap(err, "creating working directory")
	}
	defer func() {
		if r.cfg.Renderer.KeepWorkdir {
			r.log.Infow("keeping working directory", "dir", workdir)
			return
		}
		os.RemoveAll(workdir) //nolint:errcheck,gosec // G104: cleanup on exit
	}()

	texPath := filepath.Join(workdir, baseName+".tex")
	if err := os.WriteFile(texPath, doc, 0o644); err != nil { //nolint:gosec // G306: intermediate file, not sensitive
		return perrors.Wrap(err, "writing document")
	}

	if err := r.run(ctx, workdir, texPath); err != nil {
		return err
	}

	artifact, err := findArtifact(workdir)
	if err != nil {
		return err
	}

	r.log.Infow("rendered document", "artifact", artifact, "dest", destPath)
	return moveFile(artifact, destPath)
}

// run executes the typesetting command in workdir.
func (r *Renderer) run(ctx context.Context, workdir, texPath string) error {
	args := []string{"-interaction=nonstopmode", "-output-directory", workdir}
	args = append(args, r.cfg.Renderer.ExtraArgs...)
	args = append(args, texPath)

	cmd := exec.CommandContext(ctx, r.cfg.Renderer.Command, args...) //nolint:gosec // G204: command comes from user configuration
	out, err := cmd.CombinedOutput()
	if err != nil {
		r.log.Errorw("renderer failed", "command", r.cfg.Renderer.Command, "err", err)
		return perrors.Wrapf(perrors.ErrRenderFailed, "%s: %v: %s",
			r.cfg.Renderer.Command, err, lastLines(string(out), 5))
	}
	return nil
}

// findArtifact returns the single .pdf produced in workdir.
func findArtifact(workdir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(workdir, "*.pdf"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", perrors.Wrap(perrors.ErrRenderFailed, "no rendered artifact produced")
	}
	return matches[0], nil
}

// moveFile renames src to dest, falling back to copy-and-remove when the
// rename crosses filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}

	in, err := os.Open(src) //nolint:gosec // G304: path produced by the renderer
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck,gosec // G104: read-only handle

	out, err := os.Create(dest) //nolint:gosec // G304: caller-specified destination
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // G104: already failing
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// BaseName returns the document base name for an input path: the file name
// with its extension removed.
func BaseName(inputPath string) string {
	name := filepath.Base(inputPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OutputPath returns the default destination for an input path, replacing
// its extension with ext (e.g. ".pdf").
func OutputPath(inputPath, ext string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}

// lastLines returns up to n trailing non-empty lines of s on one line,
// for compact error reporting.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, strings.TrimSpace(line))
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	if len(kept) == 0 {
		return "(no output)"
	}
	return strings.Join(kept, " | ")
}
