// Command mmdast parses, validates, and lints Mermaid diagrams from files,
// markdown documents, or stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hallvard/mmdast"
	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/config"
	"github.com/hallvard/mmdast/extractor"
	"github.com/hallvard/mmdast/internal/inpututil"
)

const version = "0.1.0"

var (
	strict     bool
	formatFlag string
	configPath string

	logger *zap.SugaredLogger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mmdast [file...]",
		Short: "Parse, validate, and lint Mermaid diagrams",
		Long: `mmdast parses, validates, and lints Mermaid diagrams found in .mmd files,
markdown documents, or piped in via stdin.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			z, err := zap.NewProduction(zap.IncreaseLevel(zap.ErrorLevel))
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer z.Sync() //nolint:errcheck // best-effort flush on exit
			logger = z.Sugar()

			opts := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				opts = loaded
			}
			if strict {
				opts.Strict = true
			}
			if formatFlag != "" {
				opts.Format = formatFlag
			}

			var hasErrors bool
			if len(args) == 0 {
				hasErrors = processStdin(opts)
			} else {
				hasErrors = processFiles(args, opts)
			}
			if hasErrors {
				os.Exit(1)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&strict, "strict", false, "use strict validation rules")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "force input format (mermaid or markdown)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func processStdin(opts *config.Options) bool {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Errorw("reading stdin", "error", err)
		return true
	}

	content := string(data)
	isMarkdown := opts.Format == "markdown"
	if opts.Format == "" {
		isMarkdown = looksLikeMarkdown(content)
	}

	if !isMarkdown {
		diagram, err := mmdast.Parse(content)
		if err != nil {
			logger.Errorw("parse failed", "error", err)
			return true
		}
		fmt.Printf("Diagram type: %s\n", diagram.GetType())
		return !reportValidation(diagram, opts.Strict, "")
	}

	blocks, err := extractor.ExtractFromMarkdown(content)
	if err != nil {
		logger.Errorw("extracting mermaid blocks", "error", err)
		return true
	}
	if len(blocks) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no Mermaid diagrams found in markdown")
		return true
	}

	fmt.Printf("Found %d Mermaid diagram(s)\n", len(blocks))
	hasErrors := false
	for i, block := range blocks {
		fmt.Printf("\n--- Diagram %d (%s, line %d) ---\n", i+1, block.DiagramType, block.LineOffset)
		diagram, err := mmdast.Parse(block.Source)
		if err != nil {
			logger.Errorw("parse failed", "block", i+1, "error", err)
			hasErrors = true
			continue
		}
		if !reportValidation(diagram, opts.Strict, "") {
			hasErrors = true
		}
	}
	return hasErrors
}

func processFiles(paths []string, opts *config.Options) bool {
	hasErrors := false

	for _, path := range paths {
		fmt.Printf("\nValidating: %s\n", path)

		diagrams, err := mmdast.ParseFile(path)
		if err != nil {
			logger.Errorw("parsing file", "path", path, "error", err)
			hasErrors = true
			continue
		}

		if len(diagrams) == 0 {
			if inpututil.DetectFileType(path) == inpututil.FileTypeMarkdown {
				fmt.Fprintln(os.Stderr, "  Error: no Mermaid diagrams found in markdown file")
			} else {
				fmt.Fprintln(os.Stderr, "  Error: no valid Mermaid diagram found in file")
			}
			hasErrors = true
			continue
		}

		if len(diagrams) > 1 {
			fmt.Printf("  Found %d diagrams\n", len(diagrams))
		}

		for i, diagram := range diagrams {
			var prefix string
			if len(diagrams) > 1 {
				prefix = fmt.Sprintf("  Diagram %d (%s): ", i+1, diagram.GetType())
			} else {
				prefix = fmt.Sprintf("  Type: %s - ", diagram.GetType())
			}
			if !reportValidation(diagram, opts.Strict, prefix) {
				hasErrors = true
			}
		}
	}

	return hasErrors
}

// reportValidation prints the outcome of validating diagram and returns
// whether it was clean.
func reportValidation(diagram ast.Diagram, strict bool, prefix string) bool {
	errors := mmdast.Validate(diagram, strict)
	if len(errors) == 0 {
		fmt.Printf("%s✓ Valid\n", prefix)
		return true
	}

	fmt.Printf("%s✗ %d validation error(s):\n", prefix, len(errors))
	for _, e := range errors {
		fmt.Printf("%s  %v\n", prefix, e)
	}
	return false
}

func looksLikeMarkdown(content string) bool {
	return len(content) > 10 && (containsAny(content, "```mermaid", "```\nmermaid", "# ", "## "))
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if len(s) >= len(sub) {
			for i := 0; i <= len(s)-len(sub); i++ {
				if s[i:i+len(sub)] == sub {
					return true
				}
			}
		}
	}
	return false
}
