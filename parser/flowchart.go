// Package parser provides parsing functionality for Mermaid diagrams.
package parser

import (
	"regexp"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
	"github.com/hallvard/mmdast/lexer"
)

var (
	flowchartHeaderPattern = regexp.MustCompile(`^\s*(flowchart|graph)(?:\s+(TB|TD|BT|RL|LR))?\s*$`)
	subgraphStartPattern   = regexp.MustCompile(`^\s*subgraph\s+(?:(\w+)\s*\[([^\]]+)\]|(\w+)|"([^"]+)")\s*$`)
	subgraphEndPattern     = regexp.MustCompile(`^\s*end\s*$`)
	classDefPattern        = regexp.MustCompile(`^\s*classDef\s+(\w+)\s+(.+)$`)
	classAssignPattern     = regexp.MustCompile(`^\s*class\s+([\w,\s]+?)\s+(\w+)\s*$`)

	nodeDefPattern    = regexp.MustCompile(`^\s*(\w+)\s*(\[\[|\(\(\(|\(\(|\[\(|\(\[|\{\{|\{|>|\[|\()([^\])\}]*?)(\]\]|\)\)\)|\)\)|\)\]|\]\)|\}\}|\}|\]|\))?\s*$`)
	edgeSegmentPattern = regexp.MustCompile(`^\s*(\w+)\s*(<)?(-{2,3}|-\.{1,2}-|={2,3})(>)?\s*(?:\|([^|]+)\|)?\s*`)
	trailingNodePattern = regexp.MustCompile(`^\s*(\w+)\s*$`)

	shapeNames = map[string]string{
		"[": "rect", "(": "round", "((": "circle", "{": "rhombus", "{{": "hexagon",
		"[[": "subroutine", "[(": "cylinder", "(([": "stadium", "([": "stadium",
		">": "asymmetric", "(((": "double-circle",
	}
)

// FlowchartParser parses Mermaid flowchart and graph diagrams.
type FlowchartParser struct{}

// NewFlowchartParser creates a new flowchart parser.
func NewFlowchartParser() *FlowchartParser { return &FlowchartParser{} }

// SupportedTypes returns the diagram types this parser handles.
func (p *FlowchartParser) SupportedTypes() []string { return []string{"flowchart", "graph"} }

// Parse parses a Mermaid flowchart/graph diagram from a string.
func (p *FlowchartParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	header := strings.TrimSpace(lines[0])
	matches := flowchartHeaderPattern.FindStringSubmatch(header)
	if matches == nil {
		return nil, errs.New(errs.ExpectedToken, 1, 1, header, "expected 'flowchart' or 'graph' optionally followed by a direction")
	}

	direction := matches[2]
	if direction == "" {
		direction = "TB" // missing direction defaults to top-to-bottom
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}

	fc := &ast.FlowchartDiagram{
		Preamble:  preamble,
		Direction: direction,
		Nodes:     map[string]*ast.Node{},
		ClassDefs: map[string]*ast.ClassDef{},
		Pos:       ast.Position{Line: 1, Column: 1},
	}

	consumed, err := p.parseBody(lines[next:], next, fc.Nodes, &fc.NodeOrder, &fc.Edges, &fc.Subgraphs, fc.ClassDefs, false)
	if err != nil {
		return nil, err
	}
	_ = consumed
	return fc, nil
}

// parseBody parses statement lines into the given node/edge/subgraph
// collections, used both for the top-level diagram and recursively for each
// subgraph's own scope. It returns the number of lines consumed.
func (p *FlowchartParser) parseBody(
	lines []string, startLine int,
	nodes map[string]*ast.Node, nodeOrder *[]string,
	edges *[]*ast.Edge, subgraphs *[]*ast.Subgraph,
	classDefs map[string]*ast.ClassDef,
	inSubgraph bool,
) (int, error) {
	lineNum := startLine
	i := 0
	for i < len(lines) {
		lineNum++
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		i++

		if trimmed == "" || lexer.IsComment(raw) {
			continue
		}

		if subgraphEndPattern.MatchString(trimmed) {
			if !inSubgraph {
				return 0, errs.New(errs.UnbalancedBlock, lineNum, 1, trimmed, "'end' without a matching 'subgraph'")
			}
			return i, nil
		}

		if matches := subgraphStartPattern.FindStringSubmatch(trimmed); matches != nil {
			sg := &ast.Subgraph{
				Nodes: map[string]*ast.Node{},
				Pos:   ast.Position{Line: lineNum, Column: 1},
			}
			switch {
			case matches[1] != "":
				sg.ID = matches[1]
				sg.Title = strings.Trim(matches[2], `"`)
			case matches[3] != "":
				sg.ID = matches[3]
				sg.Title = matches[3]
			case matches[4] != "":
				sg.ID = matches[4]
				sg.Title = matches[4]
			}

			consumed, err := p.parseBody(lines[i:], lineNum, sg.Nodes, &sg.NodeOrder, &sg.Edges, &sg.Subgraphs, classDefs, true)
			if err != nil {
				return 0, err
			}
			*subgraphs = append(*subgraphs, sg)
			i += consumed
			lineNum += consumed
			continue
		}

		if matches := classDefPattern.FindStringSubmatch(trimmed); matches != nil {
			classDefs[matches[1]] = &ast.ClassDef{
				Name:   matches[1],
				Styles: p.parseStyles(matches[2]),
				Pos:    ast.Position{Line: lineNum, Column: 1},
			}
			continue
		}

		if matches := classAssignPattern.FindStringSubmatch(trimmed); matches != nil {
			for _, id := range strings.Split(matches[1], ",") {
				id = strings.TrimSpace(id)
				if n := p.getOrCreateNode(nodes, nodeOrder, id, lineNum); n != nil {
					n.Class = matches[2]
				}
			}
			continue
		}

		if chain, ok := p.parseEdgeChain(trimmed); ok {
			for idx, step := range chain {
				p.getOrCreateNode(nodes, nodeOrder, step.from, lineNum)
				if idx == len(chain)-1 {
					p.getOrCreateNode(nodes, nodeOrder, step.to, lineNum)
				}
				*edges = append(*edges, &ast.Edge{
					From:  step.from,
					To:    step.to,
					Arrow: step.arrow,
					Label: step.label,
					Pos:   ast.Position{Line: lineNum, Column: 1},
				})
			}
			continue
		}

		if matches := nodeDefPattern.FindStringSubmatch(trimmed); matches != nil {
			id := matches[1]
			shape := shapeName(matches[2])
			label := strings.TrimSpace(matches[3])

			n, exists := nodes[id]
			if exists && !n.Implicit && n.Shape != "" && shape != "" && n.Shape != shape {
				return 0, errs.New(errs.ConflictingShape, lineNum, 1, id,
					"node '"+id+"' was already defined with shape '"+n.Shape+"', cannot redefine as '"+shape+"'")
			}
			if !exists {
				n = &ast.Node{ID: id, Pos: ast.Position{Line: lineNum, Column: 1}}
				nodes[id] = n
				*nodeOrder = append(*nodeOrder, id)
			}
			n.Shape = shape
			n.Label = label
			n.Implicit = false
			continue
		}

		continue
	}

	if inSubgraph {
		return 0, errs.New(errs.UnbalancedBlock, lineNum, 1, "", "subgraph opened but never closed with 'end'")
	}
	return len(lines), nil
}

func (p *FlowchartParser) getOrCreateNode(nodes map[string]*ast.Node, order *[]string, id string, lineNum int) *ast.Node {
	if n, ok := nodes[id]; ok {
		return n
	}
	n := &ast.Node{ID: id, Implicit: true, Pos: ast.Position{Line: lineNum, Column: 1}}
	nodes[id] = n
	*order = append(*order, id)
	return n
}

type edgeStep struct {
	from, to, arrow, label string
}

// parseEdgeChain parses a possibly-chained edge statement such as
// "a --> b --> c" into one edgeStep per arrow. A line with only a single
// hop ("a --> b") yields exactly one step.
func (p *FlowchartParser) parseEdgeChain(line string) ([]edgeStep, bool) {
	var ids, arrows, labels []string
	rest := line
	for {
		groups := edgeSegmentPattern.FindStringSubmatch(rest)
		if groups == nil {
			break
		}
		full := edgeSegmentPattern.FindString(rest)
		arrow := groups[3]
		if groups[2] == "<" {
			arrow = "<" + arrow
		}
		if groups[4] == ">" {
			arrow += ">"
		}
		ids = append(ids, groups[1])
		arrows = append(arrows, arrow)
		labels = append(labels, strings.TrimSpace(groups[5]))
		rest = rest[len(full):]
	}
	if len(ids) == 0 {
		return nil, false
	}
	tail := trailingNodePattern.FindStringSubmatch(rest)
	if tail == nil {
		return nil, false
	}
	ids = append(ids, tail[1])

	steps := make([]edgeStep, len(arrows))
	for i := range arrows {
		steps[i] = edgeStep{from: ids[i], to: ids[i+1], arrow: arrows[i], label: labels[i]}
	}
	return steps, true
}

func shapeName(delim string) string {
	if name, ok := shapeNames[delim]; ok {
		return name
	}
	return "rect"
}

func (p *FlowchartParser) parseStyles(styleStr string) map[string]string {
	styles := make(map[string]string)
	for part := range strings.SplitSeq(styleStr, ",") {
		part = strings.TrimSpace(part)
		if kv := strings.SplitN(part, ":", 2); len(kv) == 2 {
			styles[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return styles
}
