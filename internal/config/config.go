// Package config provides configuration for the pgn2tex converter.
// Defaults cover the common case; an optional TOML settings file can
// override layout and renderer options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	perrors "github.com/pgntools/pgn2tex/internal/errors"
)

// Config holds all converter settings.
type Config struct {
	Layout   LayoutConfig   `toml:"layout"`
	Renderer RendererConfig `toml:"renderer"`
}

// LayoutConfig controls the generated document.
type LayoutConfig struct {
	// LineWidth is the column the document text is wrapped to.
	LineWidth int `toml:"line_width"`

	// PaperSize is passed as the document class option.
	PaperSize string `toml:"paper_size"`

	// DocumentClass is the LaTeX document class.
	DocumentClass string `toml:"document_class"`

	// ChessPackage is the package providing the chess commands.
	ChessPackage string `toml:"chess_package"`
}

// RendererConfig controls the external document renderer.
type RendererConfig struct {
	// Command is the renderer executable.
	Command string `toml:"command"`

	// ExtraArgs are appended to the renderer command line.
	ExtraArgs []string `toml:"extra_args"`

	// KeepWorkdir leaves the temporary working directory in place,
	// useful when debugging renderer failures.
	KeepWorkdir bool `toml:"keep_workdir"`
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Layout.LineWidth == 0 {
		c.Layout.LineWidth = 78
	}
	if c.Layout.PaperSize == "" {
		c.Layout.PaperSize = "a4paper"
	}
	if c.Layout.DocumentClass == "" {
		c.Layout.DocumentClass = "article"
	}
	if c.Layout.ChessPackage == "" {
		c.Layout.ChessPackage = "xskak"
	}
	if c.Renderer.Command == "" {
		c.Renderer.Command = "pdflatex"
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Layout.LineWidth < 20 {
		return perrors.Wrapf(perrors.ErrInvalidConfig,
			"line_width %d is too narrow", c.Layout.LineWidth)
	}
	if c.Renderer.Command == "" {
		return perrors.Wrap(perrors.ErrInvalidConfig, "renderer command is empty")
	}
	return nil
}

// Load loads configuration from a TOML file and applies defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault returns the configuration from the first settings file found
// in the default locations, or the built-in defaults if none exists.
func LoadDefault() (*Config, error) {
	defaultPaths := []string{
		"./pgn2tex.toml",
		filepath.Join(os.Getenv("HOME"), ".config/pgn2tex/pgn2tex.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return NewConfig(), nil
}
