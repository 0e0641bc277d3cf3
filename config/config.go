// Package config loads YAML-backed options shared by the CLI and by
// printer.ToMermaidPretty.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls validation strictness, input format detection, and
// pretty-printer layout. Zero value is non-strict validation and
// auto-detected input format; Load fills in a two-space printer indent.
type Options struct {
	Strict bool   `yaml:"strict"`
	Format string `yaml:"format"` // "", "mermaid", or "markdown"
	Printer PrinterOptions `yaml:"printer"`
}

// PrinterOptions controls printer.ToMermaidPretty layout.
type PrinterOptions struct {
	Indent    string `yaml:"indent"`
	LineWidth int    `yaml:"lineWidth"`
}

// Default returns the zero-config behaviour: non-strict rules, format
// auto-detection, two-space indent.
func Default() *Options {
	return &Options{
		Printer: PrinterOptions{Indent: "  ", LineWidth: 0},
	}
}

// Load reads and parses a YAML options file. A missing indent or line width
// falls back to Default's values so a config file only needs to override
// what it cares about.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided config path is intentional
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if opts.Printer.Indent == "" {
		opts.Printer.Indent = "  "
	}
	return opts, nil
}
