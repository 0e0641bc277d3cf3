package parser

import (
	"regexp"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
	"github.com/hallvard/mmdast/lexer"
)

var (
	mindmapHeaderRegex = regexp.MustCompile(`^mindmap\s*$`)
	mindmapIconRegex   = regexp.MustCompile(`^\s*::icon\(([^)]+)\)\s*$`)
)

// MindmapParser handles parsing of mindmap diagrams.
type MindmapParser struct{}

// NewMindmapParser creates a new mindmap parser.
func NewMindmapParser() *MindmapParser { return &MindmapParser{} }

// SupportedTypes returns the diagram types this parser supports.
func (p *MindmapParser) SupportedTypes() []string { return []string{"mindmap"} }

// Parse parses a mindmap diagram source.
func (p *MindmapParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	firstLine := strings.TrimSpace(lines[0])
	if !mindmapHeaderRegex.MatchString(firstLine) {
		return nil, errs.New(errs.ExpectedToken, 1, 1, firstLine, "expected 'mindmap'")
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}

	d := &ast.MindmapDiagram{Preamble: preamble, Pos: ast.Position{Line: 1, Column: 1}}

	nodeStack := make([]*ast.MindmapNode, 0)
	lastLevel := -1
	indentSize := 0
	rootIndent := -1

	for i := next; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || lexer.IsComment(line) {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		if d.Root == nil {
			rootIndent = indent
		}
		relativeIndent := indent - rootIndent

		if indentSize == 0 && relativeIndent > 0 {
			if relativeIndent == 2 || relativeIndent == 4 {
				if lastLevel != 0 {
					return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "cannot establish indentation pattern (not a direct child of root)")
				}
				indentSize = relativeIndent
			} else {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "invalid indentation (expected 2 or 4 space indentation style)")
			}
		}

		var level int
		switch {
		case relativeIndent == 0:
			level = 0
		case relativeIndent > 0:
			if relativeIndent%indentSize != 0 {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "inconsistent indentation")
			}
			level = relativeIndent / indentSize
		default:
			return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "invalid indentation (less than root)")
		}

		if iconMatches := mindmapIconRegex.FindStringSubmatch(trimmed); iconMatches != nil {
			if len(nodeStack) == 0 {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "icon definition outside of node")
			}
			nodeStack[len(nodeStack)-1].Icon = strings.TrimSpace(iconMatches[1])
			continue
		}

		text, shape := parseMindmapNodeText(trimmed)
		if text == "" {
			return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "node text cannot be empty")
		}

		node := &ast.MindmapNode{Text: text, Shape: shape, Level: level, Pos: ast.Position{Line: i + 1, Column: 1}}

		if level == 0 {
			if d.Root != nil {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "multiple root nodes found")
			}
			d.Root = node
			nodeStack = []*ast.MindmapNode{node}
		} else {
			if len(nodeStack) == 0 {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "child node before root node")
			}
			for len(nodeStack) > level {
				nodeStack = nodeStack[:len(nodeStack)-1]
			}
			if len(nodeStack) == 0 {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "invalid nesting level")
			}
			parent := nodeStack[len(nodeStack)-1]
			if level > lastLevel+1 {
				return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "invalid nesting (level jumped by more than one)")
			}
			parent.Children = append(parent.Children, node)
			nodeStack = append(nodeStack, node)
		}

		lastLevel = level
	}

	if d.Root == nil {
		return nil, errs.New(errs.ExpectedToken, 1, 1, "", "mindmap must have a root node")
	}

	return d, nil
}

// parseMindmapNodeText extracts the text and shape markers from a node line.
// Handles both "((text))" and "id((text))" or "id[text]" forms.
func parseMindmapNodeText(line string) (text string, shape string) {
	line = strings.TrimSpace(line)

	shapes := []struct{ prefix, suffix, shape string }{
		{"))", "((", "))(("},
		{"((", "))", "(())"},
		{"{{", "}}", "{{}}"},
		{"[", "]", "[]"},
		{"(", ")", "()"},
	}

	for _, s := range shapes {
		if strings.HasPrefix(line, s.prefix) && strings.HasSuffix(line, s.suffix) {
			return strings.TrimSpace(line[len(s.prefix) : len(line)-len(s.suffix)]), s.shape
		}
		shapeStart := strings.Index(line, s.prefix)
		if shapeStart > 0 && strings.HasSuffix(line, s.suffix) {
			start := shapeStart + len(s.prefix)
			end := len(line) - len(s.suffix)
			if end >= start {
				return strings.TrimSpace(line[start:end]), s.shape
			}
		}
	}

	return line, ""
}
