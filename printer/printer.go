// Package printer renders a Diagram AST back to Mermaid source text.
//
// This is deliberately plain, stdlib-only code: a strings.Builder-driven
// switch over concrete diagram types, the same construction style the
// parser package uses in reverse. No template engine or AST-to-string
// library in the example pack fits a line-oriented DSL like Mermaid, so
// this package reaches for none (see DESIGN.md).
package printer

import (
	"fmt"
	"strings"

	"github.com/hallvard/mmdast/ast"
)

// Options controls pretty-printer layout.
type Options struct {
	Indent string
}

// DefaultOptions returns the layout ToMermaid uses: two-space indent.
func DefaultOptions() Options {
	return Options{Indent: "  "}
}

// ToMermaid renders diagram using DefaultOptions.
func ToMermaid(diagram ast.Diagram) string {
	return ToMermaidPretty(diagram, DefaultOptions())
}

// sourced is implemented by the dialects that retain their raw source
// rather than a structural model (the supplementary dialects routed
// through ast.MiscDiagram at Accept time; see ast.*.GetSource).
type sourced interface {
	GetSource() string
}

// ToMermaidPretty renders diagram back to Mermaid source text using the
// dialect-appropriate writer. Dialects with a structural AST (flowchart,
// sequence, class, state, pie, gantt, mindmap, block-beta) are rewritten
// field-by-field; dialects that only retain raw source (ast.MiscDiagram,
// which also covers gitGraph, and anything implementing GetSource) are
// emitted verbatim, which is round-trip-exact by construction.
func ToMermaidPretty(diagram ast.Diagram, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	w := &writer{opts: opts}
	switch d := diagram.(type) {
	case *ast.FlowchartDiagram:
		writeFlowchart(w, d)
	case *ast.BlockBetaDiagram:
		writeBlockBeta(w, d)
	case *ast.SequenceDiagram:
		writeSequence(w, d)
	case *ast.ClassDiagram:
		writeClass(w, d)
	case *ast.StateDiagram:
		writeState(w, d, 0)
	case *ast.PieDiagram:
		writePie(w, d)
	case *ast.GanttDiagram:
		writeGantt(w, d)
	case *ast.MindmapDiagram:
		writeMindmap(w, d)
	case *ast.MiscDiagram:
		return d.Source
	default:
		if s, ok := diagram.(sourced); ok {
			return s.GetSource()
		}
		return ""
	}
	return w.String()
}

// writer accumulates output lines and tracks nesting depth for indentation.
type writer struct {
	b     strings.Builder
	opts  Options
	depth int
}

func (w *writer) line(format string, args ...interface{}) {
	w.b.WriteString(strings.Repeat(w.opts.Indent, w.depth))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *writer) raw(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) String() string {
	return strings.TrimRight(w.b.String(), "\n")
}

// writePreamble emits the title/accTitle/accDescr lines common to every
// dialect, indented at the writer's current depth.
func writePreamble(w *writer, p *ast.Preamble) {
	if p.HasTitle {
		w.line("title %s", p.Title)
	}
	if p.Accessibility.HasTitle {
		w.line("accTitle: %s", p.Accessibility.Title)
	}
	if p.Accessibility.HasDescription {
		w.line("accDescr: %s", p.Accessibility.Description)
	}
}
