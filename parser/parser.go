// Package parser provides parsing functionality for all Mermaid diagram types.
package parser

import (
	"fmt"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
)

// DiagramParser defines the interface all diagram parsers must implement.
type DiagramParser interface {
	// Parse parses the source and returns a Diagram AST.
	Parse(source string) (ast.Diagram, error)
	// SupportedTypes returns the diagram types this parser handles.
	SupportedTypes() []string
}

// Parse parses a Mermaid diagram from source and returns a Diagram. It
// automatically detects the diagram type and dispatches to the matching
// dialect parser.
//
// A panic inside any dialect parser is recovered here and reported as an
// errs.InternalError rather than propagating: every dialect parser is
// written to return an error for every malformed input it anticipates, so a
// panic means it hit a case its author believed unreachable.
func Parse(source string) (diagram ast.Diagram, err error) {
	defer func() {
		if r := recover(); r != nil {
			diagram = nil
			err = errs.Internal(1, 1, fmt.Sprintf("recovered panic while parsing: %v", r))
		}
	}()

	if strings.TrimSpace(source) == "" {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	diagType := detectDiagramType(source)
	if diagType == "" {
		return nil, errs.New(errs.UnknownDiagramKind, 1, 1, "", "diagram has no header line to detect a type from")
	}

	var p DiagramParser
	switch diagType {
	case "flowchart", "graph":
		p = NewFlowchartParser()
	case "sequence":
		p = NewSequenceParser()
	case "class":
		p = NewClassParser()
	case "state", "stateDiagram-v2":
		p = NewStateParser()
	case "er":
		p = NewERParser()
	case "gantt":
		p = NewGanttParser()
	case "pie":
		p = NewPieParser()
	case "journey":
		p = NewJourneyParser()
	case "timeline":
		p = NewTimelineParser()
	case "mindmap":
		p = NewMindmapParser()
	case "block-beta":
		p = NewBlockBetaParser()
	case "sankey":
		p = NewSankeyParser()
	case "quadrantChart":
		p = NewQuadrantParser()
	case "xyChart":
		p = NewXYChartParser()
	case "c4Context":
		p = NewC4ContextParser()
	case "c4Container":
		p = NewC4ContainerParser()
	case "c4Component":
		p = NewC4ComponentParser()
	case "c4Dynamic":
		p = NewC4DynamicParser()
	case "c4Deployment":
		p = NewC4DeploymentParser()
	case "info":
		return ast.NewMiscDiagram("info", source, ast.Position{Line: 1, Column: 1}), nil
	default:
		// Any non-blank header this package doesn't model structurally still
		// parses, as a Misc diagram keyed by its own leading token.
		return ast.NewMiscDiagram(diagType, source, ast.Position{Line: 1, Column: 1}), nil
	}

	return p.Parse(source)
}

// diagramTypeMapping maps Mermaid diagram prefixes to normalized type names.
// Ordered by specificity (more specific prefixes first).
var diagramTypeMapping = []struct {
	prefix string
	typeID string
}{
	{"stateDiagram-v2", "stateDiagram-v2"},
	{"stateDiagram", "state"},
	{"sequenceDiagram", "sequence"},
	{"classDiagram", "class"},
	{"erDiagram", "er"},
	{"C4Context", "c4Context"},
	{"C4Container", "c4Container"},
	{"C4Component", "c4Component"},
	{"C4Dynamic", "c4Dynamic"},
	{"C4Deployment", "c4Deployment"},
	{"quadrantChart", "quadrantChart"},
	{"xychart-beta", "xyChart"},
	{"sankey-beta", "sankey"},
	{"gitGraph", "gitGraph"},
	{"block-beta", "block-beta"},
	{"timeline", "timeline"},
	{"mindmap", "mindmap"},
	{"journey", "journey"},
	{"flowchart", "flowchart"},
	{"gantt", "gantt"},
	{"graph", "graph"},
	{"pie", "pie"},
	{"info", "info"},
}

// detectDiagramType detects the diagram type from the source. If the
// header line's leading keyword isn't one this package models
// structurally, it returns that keyword verbatim so the caller can fall
// back to a Misc diagram keyed by it.
func detectDiagramType(source string) string {
	lines := strings.SplitSeq(source, "\n")
	for line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%%") {
			continue // Skip empty lines and comments
		}

		for _, mapping := range diagramTypeMapping {
			if strings.HasPrefix(trimmed, mapping.prefix) {
				return mapping.typeID
			}
		}

		if fields := strings.Fields(trimmed); len(fields) > 0 {
			return fields[0]
		}
		return trimmed
	}

	return ""
}
