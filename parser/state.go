package parser

import (
	"regexp"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
	"github.com/hallvard/mmdast/lexer"
)

var (
	stateHeaderPattern = regexp.MustCompile(`^(stateDiagram|stateDiagram-v2)\s*$`)

	stateDefPattern   = regexp.MustCompile(`^state\s+"([^"]+)"\s+as\s+(\w+)\s*$`)
	stateBodyStart    = regexp.MustCompile(`^state\s+(\w+)\s*\{\s*$`)
	stateBodyEnd      = regexp.MustCompile(`^\}\s*$`)
	transitionPattern = regexp.MustCompile(`^(\w+|\[\*\])\s+-->\s+(\w+|\[\*\])(?:\s*:\s*(.+))?\s*$`)
	forkPattern       = regexp.MustCompile(`^state\s+(\w+)\s+<<fork>>\s*$`)
	joinPattern       = regexp.MustCompile(`^state\s+(\w+)\s+<<join>>\s*$`)
	choicePattern     = regexp.MustCompile(`^state\s+(\w+)\s+<<choice>>\s*$`)
	stateNotePattern  = regexp.MustCompile(`^note\s+(left|right)\s+of\s+(\w+)\s*:\s*(.+)\s*$`)
)

// StateParser parses Mermaid state diagrams.
type StateParser struct{}

// NewStateParser creates a new state diagram parser.
func NewStateParser() *StateParser { return &StateParser{} }

// SupportedTypes returns the diagram types this parser handles.
func (p *StateParser) SupportedTypes() []string { return []string{"state", "stateDiagram-v2"} }

// Parse parses a Mermaid state diagram from a string.
func (p *StateParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	header := strings.TrimSpace(lines[0])
	if !stateHeaderPattern.MatchString(header) {
		return nil, errs.New(errs.ExpectedToken, 1, 1, header, "expected 'stateDiagram' or 'stateDiagram-v2'")
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}

	d := &ast.StateDiagram{
		Preamble: preamble,
		States:   map[string]*ast.State{},
		Pos:      ast.Position{Line: 1, Column: 1},
	}

	if _, err := p.parseBody(lines[next:], next+1, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *StateParser) getOrCreateState(d *ast.StateDiagram, id string, pos ast.Position) *ast.State {
	if s, ok := d.States[id]; ok {
		return s
	}
	s := &ast.State{ID: id, Kind: "state", Pos: pos}
	d.States[id] = s
	d.StateOrder = append(d.StateOrder, id)
	return s
}

// parseBody parses state statement lines, recursing into a nested
// StateDiagram for each composite state's own scope.
func (p *StateParser) parseBody(lines []string, startLine int, d *ast.StateDiagram) (int, error) {
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

		if stateBodyEnd.MatchString(trimmed) {
			return i, nil
		}

		if matches := forkPattern.FindStringSubmatch(trimmed); matches != nil {
			p.getOrCreateState(d, matches[1], pos).Kind = "fork"
			continue
		}
		if matches := joinPattern.FindStringSubmatch(trimmed); matches != nil {
			p.getOrCreateState(d, matches[1], pos).Kind = "join"
			continue
		}
		if matches := choicePattern.FindStringSubmatch(trimmed); matches != nil {
			p.getOrCreateState(d, matches[1], pos).Kind = "choice"
			continue
		}

		if matches := stateDefPattern.FindStringSubmatch(trimmed); matches != nil {
			p.getOrCreateState(d, matches[2], pos).Description = matches[1]
			continue
		}

		if matches := stateNotePattern.FindStringSubmatch(trimmed); matches != nil {
			s := p.getOrCreateState(d, matches[2], pos)
			s.NoteSide = matches[1]
			s.Note = strings.TrimSpace(matches[3])
			continue
		}

		if matches := stateBodyStart.FindStringSubmatch(trimmed); matches != nil {
			nested := &ast.StateDiagram{States: map[string]*ast.State{}, Pos: pos}
			consumed, err := p.parseBody(lines[i:], lineNum+1, nested)
			if err != nil {
				return 0, err
			}
			s := p.getOrCreateState(d, matches[1], pos)
			s.Nested = nested
			i += consumed
			lineNum += consumed
			continue
		}

		if matches := transitionPattern.FindStringSubmatch(trimmed); matches != nil {
			from, to, label := matches[1], matches[2], strings.TrimSpace(matches[3])
			if from != "[*]" {
				p.getOrCreateState(d, from, pos)
			}
			if to != "[*]" {
				p.getOrCreateState(d, to, pos)
			}
			d.Transitions = append(d.Transitions, &ast.Transition{From: from, To: to, Label: label, Pos: pos})
			continue
		}

		continue
	}

	return len(lines), nil
}
