package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
	"github.com/hallvard/mmdast/lexer"
)

var (
	blockHeaderPattern   = regexp.MustCompile(`^block-beta\s*$`)
	blockColumnsPattern  = regexp.MustCompile(`^columns\s+(\d+)\s*$`)
	blockGroupStartPattern = regexp.MustCompile(`^block:(\w+)\s*$`)
	blockGroupEndPattern = regexp.MustCompile(`^end\s*$`)
	blockEdgePattern     = regexp.MustCompile(`^(\w+)\s*(-{2,3}>|<-{2,3})\s*(\w+)\s*$`)
	blockNodePattern     = regexp.MustCompile(`(\w+)(?:(\[\[|\(\(|\[\(|\(\[|\{\{|\[|\()([^\])\}]*)(\]\]|\)\)|\)\]|\]\)|\}\}|\]|\)))?`)
)

// BlockBetaParser parses Mermaid block-beta diagrams.
type BlockBetaParser struct{}

// NewBlockBetaParser creates a new block-beta parser.
func NewBlockBetaParser() *BlockBetaParser { return &BlockBetaParser{} }

// SupportedTypes returns the diagram types this parser handles.
func (p *BlockBetaParser) SupportedTypes() []string { return []string{"block-beta"} }

// Parse parses a Mermaid block-beta diagram from a string.
func (p *BlockBetaParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	header := strings.TrimSpace(lines[0])
	if !blockHeaderPattern.MatchString(header) {
		return nil, errs.New(errs.ExpectedToken, 1, 1, header, "expected 'block-beta'")
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}

	d := &ast.BlockBetaDiagram{
		Preamble: preamble,
		Blocks:   map[string]*ast.BlockNode{},
		Pos:      ast.Position{Line: 1, Column: 1},
	}

	if _, err := p.parseBody(lines[next:], next+1, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *BlockBetaParser) getOrCreateBlock(d *ast.BlockBetaDiagram, id string, lineNum int) *ast.BlockNode {
	if b, ok := d.Blocks[id]; ok {
		return b
	}
	b := &ast.BlockNode{ID: id, Implicit: true, Pos: ast.Position{Line: lineNum, Column: 1}}
	d.Blocks[id] = b
	d.BlockOrder = append(d.BlockOrder, id)
	return b
}

// parseBody parses block-beta statement lines, recursing into a nested
// parent when a composite "block:id ... end" group is entered. It mirrors
// the flowchart parser's subgraph recursion.
func (p *BlockBetaParser) parseBody(lines []string, startLine int, d *ast.BlockBetaDiagram) (int, error) {
	return p.parseGroup(lines, startLine, d, nil)
}

func (p *BlockBetaParser) parseGroup(lines []string, startLine int, d *ast.BlockBetaDiagram, parent *ast.BlockNode) (int, error) {
	lineNum := startLine - 1
	i := 0
	for i < len(lines) {
		lineNum++
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		i++

		if trimmed == "" || lexer.IsComment(raw) {
			continue
		}

		if blockGroupEndPattern.MatchString(trimmed) {
			if parent == nil {
				return 0, errs.New(errs.UnbalancedBlock, lineNum, 1, trimmed, "'end' without a matching 'block'")
			}
			return i, nil
		}

		if matches := blockColumnsPattern.FindStringSubmatch(trimmed); matches != nil {
			n, _ := strconv.Atoi(matches[1])
			d.Columns = n
			continue
		}

		if matches := blockGroupStartPattern.FindStringSubmatch(trimmed); matches != nil {
			group := &ast.BlockNode{ID: matches[1], Pos: ast.Position{Line: lineNum, Column: 1}}
			consumed, err := p.parseGroup(lines[i:], lineNum+1, d, group)
			if err != nil {
				return 0, err
			}
			d.Blocks[group.ID] = group
			d.BlockOrder = append(d.BlockOrder, group.ID)
			if parent != nil {
				parent.Children = append(parent.Children, group)
			}
			i += consumed
			lineNum += consumed
			continue
		}

		if matches := blockEdgePattern.FindStringSubmatch(trimmed); matches != nil {
			from, arrow, to := matches[1], matches[2], matches[3]
			if strings.HasPrefix(arrow, "<") {
				from, to = to, from
			}
			p.getOrCreateBlock(d, from, lineNum)
			p.getOrCreateBlock(d, to, lineNum)
			d.Edges = append(d.Edges, &ast.Edge{From: from, To: to, Arrow: "-->", Pos: ast.Position{Line: lineNum, Column: 1}})
			continue
		}

		// One or more space-separated node references/definitions on a row.
		for _, m := range blockNodePattern.FindAllStringSubmatch(trimmed, -1) {
			id, shape, label := m[1], shapeName(m[2]), strings.TrimSpace(m[3])
			b := p.getOrCreateBlock(d, id, lineNum)
			if m[2] != "" {
				b.Shape = shape
				b.Label = label
				b.Implicit = false
			}
			if parent != nil {
				parent.Children = append(parent.Children, b)
			}
		}
	}

	if parent != nil {
		return 0, errs.New(errs.UnbalancedBlock, lineNum, 1, "", "block opened with 'block:' but never closed with 'end'")
	}
	return len(lines), nil
}
