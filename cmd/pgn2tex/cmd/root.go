// Package cmd implements the pgn2tex command line interface.
package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pgntools/pgn2tex/internal/config"
	"github.com/pgntools/pgn2tex/internal/render"
	"github.com/pgntools/pgn2tex/internal/worker"
)

const programVersion = "0.1.0"

var (
	cfgFile    string
	outputPath string
	texOnly    bool
	verbose    bool
	jobs       int
)

var rootCmd = &cobra.Command{
	Use:     "pgn2tex [flags] game.pgn...",
	Short:   "Convert PGN game records to typeset documents",
	Version: programVersion,
	Long: `pgn2tex reads chess game records in PGN format and typesets them
as printable documents: moves, evaluations, variations, comments, and
board diagrams.

With a single input and no --output, the rendered document is written
next to the input file. With --tex-only and no --output, the generated
document source is written to stdout instead of being rendered.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ./pgn2tex.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "destination path (single input only)")
	rootCmd.Flags().BoolVar(&texOnly, "tex-only", false, "write the document source instead of rendering it")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of concurrent conversions")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure on exit is harmless

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output requires a single input file, got %d", len(args))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 1 {
		return convertFile(ctx, cfg, logger, args[0], outputPath, texOnly)
	}
	return convertBatch(ctx, cfg, logger, args)
}

// convertBatch converts several inputs concurrently on a worker pool.
// Per-file failures are logged; the first failure is returned after the
// whole batch has run.
func convertBatch(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, inputs []string) error {
	ext := ".pdf"
	if texOnly {
		ext = ".tex"
	}

	pool := worker.NewPool(func(job worker.Job) worker.Result {
		return worker.Result{
			Job: job,
			Err: convertFile(ctx, cfg, logger, job.InputPath, job.OutputPath, texOnly),
		}
	}, worker.WithWorkers(jobs), worker.WithBufferSize(len(inputs)))

	pool.Start()
	go func() {
		for i, input := range inputs {
			pool.Submit(worker.Job{
				InputPath:  input,
				OutputPath: render.OutputPath(input, ext),
				Index:      i,
			})
		}
		pool.Close()
	}()

	var firstErr error
	for result := range pool.Results() {
		if result.Err != nil {
			logger.Errorw("conversion failed", "input", result.Job.InputPath, "err", result.Err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", result.Job.InputPath, result.Err)
			}
			continue
		}
		logger.Infow("converted", "input", result.Job.InputPath, "output", result.Job.OutputPath)
	}
	return firstErr
}

// loadConfig loads the settings file given with --config, or searches the
// default locations.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadDefault()
}

// newLogger builds the CLI logger. The default production logger only
// reports warnings and failures; --verbose switches to development output.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
