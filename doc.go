// Package mmdast provides parsing, validation, and linting for Mermaid
// diagram syntax, plus a round-tripping pretty-printer.
//
// # Basic Usage
//
// Parse a raw Mermaid diagram:
//
//	diagram, err := mmdast.Parse(source)
//	if err != nil {
//	    // Handle parse error
//	}
//
// Extract diagrams from markdown:
//
//	diagrams, err := mmdast.ExtractFromMarkdown(markdownContent)
//	for _, diagram := range diagrams {
//	    // Process each diagram
//	}
//
// Lint without rejecting the parse:
//
//	findings := mmdast.Lint(diagram, false)
//
// # Supported Diagram Types
//
// Flowchart/graph, sequence, class, state, pie, gantt, mindmap, block-beta,
// gitGraph, info, C4 (context/container/component/dynamic/deployment), ER,
// journey, quadrant, sankey, timeline and xyChart. Dialects without a
// dedicated AST walk fall back to ast.MiscDiagram, which preserves the raw
// source for round-tripping.
package mmdast
