// Package extractor provides utilities for extracting Mermaid diagrams from various file formats.
package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// DiagramBlock represents a Mermaid diagram extracted from a source file.
type DiagramBlock struct {
	// Source contains the raw Mermaid diagram syntax
	Source string
	// LineOffset is the line number in the original file where this diagram starts (1-indexed)
	LineOffset int
	// DiagramType is the type of Mermaid diagram (e.g., "flowchart", "sequence", "graph")
	DiagramType string
}

// ExtractFromMarkdown extracts all Mermaid code blocks from markdown content.
// It walks a goldmark AST rather than scanning raw text, so fences nested
// inside lists/blockquotes, indented fences, and info-string variations
// (```mermaid title=...) are all recognised the way a real Markdown parser
// recognises them. A line that begins with backslash-escaped backticks
// (\`\`\`) is reported as an error naming that line; escaped backticks
// later in a line, such as inside inline code, are not.
func ExtractFromMarkdown(markdown string) ([]DiagramBlock, error) {
	for i, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "\\`\\`\\`") {
			return nil, fmt.Errorf("line %d: escaped backticks (\\`\\`\\`) found where a code fence was expected", i+1)
		}
	}

	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []DiagramBlock
	err := gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		fcb, ok := n.(*gast.FencedCodeBlock)
		if !ok {
			return gast.WalkContinue, nil
		}
		if !isMermaidInfo(string(fcb.Language(source))) {
			return gast.WalkContinue, nil
		}

		var buf bytes.Buffer
		lines := fcb.Lines()
		var startOffset int
		if lines.Len() > 0 {
			startOffset = lines.At(0).Start
		}
		for i := 0; i < lines.Len(); i++ {
			buf.Write(lines.At(i).Value(source))
		}

		body := strings.TrimRight(buf.String(), "\n")
		if strings.TrimSpace(body) == "" {
			return gast.WalkSkipChildren, nil
		}

		lineOffset := 1 + bytes.Count(source[:startOffset], []byte("\n"))
		blocks = append(blocks, DiagramBlock{
			Source:      body,
			LineOffset:  lineOffset,
			DiagramType: detectDiagramType(body),
		})
		return gast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// isMermaidInfo reports whether a fenced code block's info string names the
// mermaid language, allowing trailing attributes (```mermaid title=...).
func isMermaidInfo(info string) bool {
	info = strings.TrimSpace(info)
	if info == "" {
		return false
	}
	field := info
	if idx := strings.IndexAny(info, " \t"); idx >= 0 {
		field = info[:idx]
	}
	return field == "mermaid"
}

// detectDiagramType attempts to determine the diagram type from the source.
func detectDiagramType(source string) string {
	lines := strings.SplitSeq(source, "\n")
	for line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%%") {
			continue // Skip empty lines and comments
		}

		// State diagrams - check v2 first to avoid matching base stateDiagram
		if strings.HasPrefix(trimmed, "stateDiagram-v2") {
			return "stateDiagram-v2"
		}
		if strings.HasPrefix(trimmed, "stateDiagram") {
			return "state"
		}

		// C4 diagrams - multiple variants
		if strings.HasPrefix(trimmed, "C4Context") {
			return "c4Context"
		}
		if strings.HasPrefix(trimmed, "C4Container") {
			return "c4Container"
		}
		if strings.HasPrefix(trimmed, "C4Component") {
			return "c4Component"
		}
		if strings.HasPrefix(trimmed, "C4Dynamic") {
			return "c4Dynamic"
		}
		if strings.HasPrefix(trimmed, "C4Deployment") {
			return "c4Deployment"
		}

		if strings.HasPrefix(trimmed, "sequenceDiagram") {
			return "sequence"
		}
		if strings.HasPrefix(trimmed, "classDiagram") {
			return "class"
		}
		if strings.HasPrefix(trimmed, "erDiagram") {
			return "er"
		}
		if strings.HasPrefix(trimmed, "gantt") {
			return "gantt"
		}
		if strings.HasPrefix(trimmed, "pie") {
			return "pie"
		}
		if strings.HasPrefix(trimmed, "journey") {
			return "journey"
		}
		if strings.HasPrefix(trimmed, "gitGraph") {
			return "gitGraph"
		}
		if strings.HasPrefix(trimmed, "mindmap") {
			return "mindmap"
		}
		if strings.HasPrefix(trimmed, "timeline") {
			return "timeline"
		}
		if strings.HasPrefix(trimmed, "sankey-beta") {
			return "sankey"
		}
		if strings.HasPrefix(trimmed, "quadrantChart") {
			return "quadrantChart"
		}
		if strings.HasPrefix(trimmed, "xychart-beta") {
			return "xyChart"
		}
		if strings.HasPrefix(trimmed, "block-beta") {
			return "block-beta"
		}
		if strings.HasPrefix(trimmed, "flowchart") {
			return "flowchart"
		}
		if strings.HasPrefix(trimmed, "graph") {
			return "graph"
		}

		break
	}

	return "unknown"
}
