package mmdast

import (
	"fmt"
	"io"
	"os"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/config"
	"github.com/hallvard/mmdast/extractor"
	"github.com/hallvard/mmdast/internal/inpututil"
	"github.com/hallvard/mmdast/parser"
	"github.com/hallvard/mmdast/printer"
	"github.com/hallvard/mmdast/validator"
)

// Parse parses a single Mermaid diagram from source text.
func Parse(source string) (ast.Diagram, error) {
	return parser.Parse(source)
}

// ParseReader parses a single Mermaid diagram read from r.
func ParseReader(r io.Reader) (ast.Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading diagram: %w", err)
	}
	return parser.Parse(string(data))
}

// ParseFlowchart parses source as a flowchart diagram specifically, failing
// if it names a different diagram type.
func ParseFlowchart(source string) (*ast.FlowchartDiagram, error) {
	d, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	flowchart, ok := d.(*ast.FlowchartDiagram)
	if !ok {
		return nil, fmt.Errorf("expected a flowchart diagram, got %s", d.GetType())
	}
	return flowchart, nil
}

// ParseFile reads path and parses every Mermaid diagram it contains. A .mmd
// file yields its single diagram; a markdown file (.md, .markdown, .mdx)
// yields one diagram per fenced mermaid code block. Any other extension is
// rejected rather than guessed at.
func ParseFile(path string) ([]ast.Diagram, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch inpututil.DetectFileType(path) {
	case inpututil.FileTypeMermaid:
		d, err := parser.Parse(string(data))
		if err != nil {
			return nil, err
		}
		return []ast.Diagram{d}, nil
	case inpututil.FileTypeMarkdown:
		extracted, err := ExtractFromMarkdown(string(data))
		if err != nil {
			return nil, err
		}
		diagrams := make([]ast.Diagram, 0, len(extracted))
		for _, e := range extracted {
			diagrams = append(diagrams, e.Diagram)
		}
		return diagrams, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

// ExtractedDiagram is a Mermaid diagram pulled out of a markdown document,
// paired with the parsed AST for the block's source.
type ExtractedDiagram struct {
	Diagram    ast.Diagram
	Source     string
	LineOffset int
}

// ExtractFromMarkdown walks markdown content for fenced mermaid code blocks
// and parses each one, failing on the first block that cannot be parsed.
func ExtractFromMarkdown(markdown string) ([]ExtractedDiagram, error) {
	blocks, err := extractor.ExtractFromMarkdown(markdown)
	if err != nil {
		return nil, err
	}

	diagrams := make([]ExtractedDiagram, 0, len(blocks))
	for _, b := range blocks {
		d, err := parser.Parse(b.Source)
		if err != nil {
			return nil, fmt.Errorf("parsing diagram at line %d: %w", b.LineOffset, err)
		}
		diagrams = append(diagrams, ExtractedDiagram{
			Diagram:    d,
			Source:     b.Source,
			LineOffset: b.LineOffset,
		})
	}
	return diagrams, nil
}

// Lint runs the dialect-appropriate validation rules against diagram and
// reports findings without rejecting it; an already-successful Parse can
// still surface style and reference problems this way.
func Lint(diagram ast.Diagram, strict bool) []validator.Finding {
	return validator.Lint(diagram, strict)
}

// Validate runs the dialect-appropriate validation rules against diagram and
// reports them as ValidationErrors, dropping Lint's dialect label for
// callers that only care about a single diagram's own errors.
func Validate(diagram ast.Diagram, strict bool) []validator.ValidationError {
	findings := validator.Lint(diagram, strict)
	errors := make([]validator.ValidationError, 0, len(findings))
	for _, f := range findings {
		errors = append(errors, validator.ValidationError{
			Line:     f.Line,
			Column:   f.Column,
			Message:  f.Message,
			Severity: f.Severity,
		})
	}
	return errors
}

// ValidateFlowchart runs the default flowchart validation rules against
// flowchart.
func ValidateFlowchart(flowchart *ast.FlowchartDiagram) []validator.ValidationError {
	return validator.New(validator.DefaultRules()...).Validate(flowchart)
}

// DefaultRules returns the flowchart validation rules applied when strict
// mode is off.
func DefaultRules() []validator.Rule {
	return validator.DefaultRules()
}

// StrictRules returns the flowchart validation rules applied when strict
// mode is on, a superset of DefaultRules.
func StrictRules() []validator.Rule {
	return validator.StrictRules()
}

// ToMermaid renders diagram back to Mermaid source text using the default
// printer layout.
func ToMermaid(diagram ast.Diagram) string {
	return printer.ToMermaid(diagram)
}

// ToMermaidPretty renders diagram back to Mermaid source text using the
// printer layout described by opts. A nil opts falls back to config
// defaults.
func ToMermaidPretty(diagram ast.Diagram, opts *config.PrinterOptions) string {
	popts := printer.DefaultOptions()
	if opts != nil && opts.Indent != "" {
		popts.Indent = opts.Indent
	}
	return printer.ToMermaidPretty(diagram, popts)
}

// LoadConfig reads CLI/printer options from a YAML file at path.
func LoadConfig(path string) (*config.Options, error) {
	return config.Load(path)
}
