package parser

import (
	"regexp"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
	"github.com/hallvard/mmdast/lexer"
)

var (
	classHeaderPattern = regexp.MustCompile(`^classDiagram(?:-v2)?\s*$`)

	classDeclPattern      = regexp.MustCompile(`^class\s+(\w+)(?:\s*<<(.+)>>)?\s*$`)
	classBodyStartPattern = regexp.MustCompile(`^class\s+(\w+)(?:\s*<<(.+)>>)?\s*\{\s*$`)
	classBodyEndPattern   = regexp.MustCompile(`^\}\s*$`)

	memberPattern = regexp.MustCompile(`^([+\-#~])(\w+)(\(([^)]*)\))?(?:\s+(.+))?\s*$`)

	// Relationship patterns: inheritance --|>/<|--, realization ..|>/<|..,
	// composition --*/*--, aggregation --o/o--, dependency ..>/<.., plain
	// association -- or -->.
	relationshipPattern = regexp.MustCompile(`^(\w+)\s+(?:"([^"]+)"\s+)?(<\|--|--\|>|<\|\.\.|\.\.\|>|\*--|--\*|o--|--o|<\.\.|\.\.>|-->|--|\.\.)\s+(?:"([^"]+)"\s+)?(\w+)(?:\s*:\s*(.+))?\s*$`)

	classNotePattern = regexp.MustCompile(`^note\s+for\s+(\w+)\s+"([^"]+)"\s*$`)
)

// ClassParser parses Mermaid class diagrams.
type ClassParser struct{}

// NewClassParser creates a new class diagram parser.
func NewClassParser() *ClassParser { return &ClassParser{} }

// SupportedTypes returns the diagram types this parser handles.
func (p *ClassParser) SupportedTypes() []string { return []string{"class"} }

// Parse parses a Mermaid class diagram from a string.
func (p *ClassParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	header := strings.TrimSpace(lines[0])
	if !classHeaderPattern.MatchString(header) {
		return nil, errs.New(errs.ExpectedToken, 1, 1, header, "expected 'classDiagram'")
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}

	d := &ast.ClassDiagram{
		Preamble: preamble,
		Classes:  map[string]*ast.Class{},
		Pos:      ast.Position{Line: 1, Column: 1},
	}

	if err := p.parseBody(lines[next:], next+1, d); err != nil {
		return nil, err
	}

	return d, nil
}

// declare returns the placeholder Class for name, creating one the first
// time the name is seen (by a relation referencing it, or by the class
// body itself if that comes first). This is the two-phase forward
// reference technique: relationships never need the class they point to to
// exist yet, and a later "class Name { ... }" simply fills in the
// placeholder in place rather than being looked up and linked after the
// fact.
func (p *ClassParser) declare(d *ast.ClassDiagram, name string, pos ast.Position) *ast.Class {
	if c, ok := d.Classes[name]; ok {
		return c
	}
	c := &ast.Class{Name: name, Pos: pos}
	d.Classes[name] = c
	d.ClassOrder = append(d.ClassOrder, name)
	return c
}

func (p *ClassParser) parseBody(lines []string, startLine int, d *ast.ClassDiagram) error {
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
		pos := ast.Position{Line: lineNum, Column: 1}

		if matches := classBodyStartPattern.FindStringSubmatch(trimmed); matches != nil {
			members, consumed, err := p.parseClassBody(lines[i:], lineNum+1)
			if err != nil {
				return err
			}
			c := p.declare(d, matches[1], pos)
			c.Declared = true
			c.Stereotype = matches[2]
			c.Members = members
			i += consumed
			lineNum += consumed
			continue
		}

		if matches := classDeclPattern.FindStringSubmatch(trimmed); matches != nil {
			c := p.declare(d, matches[1], pos)
			c.Declared = true
			if matches[2] != "" {
				c.Stereotype = matches[2]
			}
			continue
		}

		if matches := relationshipPattern.FindStringSubmatch(trimmed); matches != nil {
			from, fromCard, link, toCard, to, label := matches[1], matches[2], matches[3], matches[4], matches[5], matches[6]
			p.declare(d, from, pos)
			p.declare(d, to, pos)
			d.Relations = append(d.Relations, &ast.Relation{
				From:             from,
				To:               to,
				Kind:             relationKind(link),
				Label:            strings.TrimSpace(label),
				FromMultiplicity: fromCard,
				ToMultiplicity:   toCard,
				Pos:              pos,
			})
			continue
		}

		if classNotePattern.MatchString(trimmed) {
			continue
		}

		continue
	}
	return nil
}

func (p *ClassParser) parseClassBody(lines []string, startLine int) ([]ast.ClassMember, int, error) {
	var members []ast.ClassMember
	lineNum := startLine - 1

	for i, line := range lines {
		lineNum++
		trimmed := strings.TrimSpace(line)

		if classBodyEndPattern.MatchString(trimmed) {
			return members, i + 1, nil
		}
		if trimmed == "" || lexer.IsComment(line) {
			continue
		}

		if matches := memberPattern.FindStringSubmatch(trimmed); matches != nil {
			member := ast.ClassMember{
				Visibility: matches[1],
				Name:       matches[2],
				Type:       matches[5],
				IsMethod:   matches[3] != "",
				Pos:        ast.Position{Line: lineNum, Column: 1},
			}
			if matches[4] != "" {
				for _, param := range strings.Split(matches[4], ",") {
					param = strings.TrimSpace(param)
					if param != "" {
						member.Parameters = append(member.Parameters, param)
					}
				}
			}
			members = append(members, member)
		}
	}

	return nil, 0, errs.New(errs.UnbalancedBlock, startLine, 1, "", "class body opened with '{' but never closed with '}'")
}

func relationKind(link string) string {
	switch link {
	case "<|--", "--|>":
		return "inheritance"
	case "<|..", "..|>":
		return "realization"
	case "*--", "--*":
		return "composition"
	case "o--", "--o":
		return "aggregation"
	case "..>", "<..", "..":
		return "dependency"
	default:
		return "association"
	}
}
