package parser

import (
	"regexp"
	"strings"

	"github.com/hallvard/mmdast/ast"
	"github.com/hallvard/mmdast/errs"
	"github.com/hallvard/mmdast/lexer"
)

var (
	seqHeaderPattern = regexp.MustCompile(`^sequenceDiagram\s*$`)

	participantPattern = regexp.MustCompile(`^(participant|actor)\s+(\w+)(?:\s+as\s+(.+))?$`)

	activatePattern   = regexp.MustCompile(`^activate\s+(\w+)$`)
	deactivatePattern = regexp.MustCompile(`^deactivate\s+(\w+)$`)

	loopPattern     = regexp.MustCompile(`^loop\s+(.+)$`)
	altPattern      = regexp.MustCompile(`^alt\s+(.+)$`)
	elsePattern     = regexp.MustCompile(`^else(?:\s+(.+))?$`)
	optPattern      = regexp.MustCompile(`^opt\s+(.+)$`)
	parPattern      = regexp.MustCompile(`^par\s+(.+)$`)
	andPattern      = regexp.MustCompile(`^and(?:\s+(.+))?$`)
	criticalPattern = regexp.MustCompile(`^critical\s+(.+)$`)
	optionPattern   = regexp.MustCompile(`^option\s+(.+)$`)
	breakPattern    = regexp.MustCompile(`^break\s+(.+)$`)
	endPattern      = regexp.MustCompile(`^end\s*$`)

	noteLeftPattern  = regexp.MustCompile(`^note\s+left\s+of\s+(\w+)\s*:\s*(.+)$`)
	noteRightPattern = regexp.MustCompile(`^note\s+right\s+of\s+(\w+)\s*:\s*(.+)$`)
	noteOverPattern  = regexp.MustCompile(`^note\s+over\s+([\w,\s]+)\s*:\s*(.+)$`)

	boxPattern = regexp.MustCompile(`^box\s+(?:(\w+)\s+)?(.+)$`)

	autonumberPattern = regexp.MustCompile(`^autonumber\s*$`)

	seqArrows = []string{
		"<<-->>", "<<->>",
		"-->>", "->>", "--x", "-x", "--)", "-)", "-->", "->",
	}
)

// blockOpener returns the block kind a line opens, the keyword label for the
// first branch, and whether the line opens any block at all.
func blockOpener(trimmed string) (kind, label string, ok bool) {
	if m := loopPattern.FindStringSubmatch(trimmed); m != nil {
		return "loop", m[1], true
	}
	if m := altPattern.FindStringSubmatch(trimmed); m != nil {
		return "alt", m[1], true
	}
	if m := optPattern.FindStringSubmatch(trimmed); m != nil {
		return "opt", m[1], true
	}
	if m := parPattern.FindStringSubmatch(trimmed); m != nil {
		return "par", m[1], true
	}
	if m := criticalPattern.FindStringSubmatch(trimmed); m != nil {
		return "critical", m[1], true
	}
	if m := breakPattern.FindStringSubmatch(trimmed); m != nil {
		return "break", m[1], true
	}
	return "", "", false
}

// separatorFor returns the keyword that starts a new branch within a block
// of the given kind, and whether the separator line matches trimmed.
func separatorFor(kind, trimmed string) (keyword, label string, ok bool) {
	switch kind {
	case "alt":
		if m := elsePattern.FindStringSubmatch(trimmed); m != nil {
			return "else", m[1], true
		}
	case "par":
		if m := andPattern.FindStringSubmatch(trimmed); m != nil {
			return "and", m[1], true
		}
	case "critical":
		if m := optionPattern.FindStringSubmatch(trimmed); m != nil {
			return "option", m[1], true
		}
	}
	return "", "", false
}

// SequenceParser parses Mermaid sequence diagrams.
type SequenceParser struct{}

// NewSequenceParser creates a new sequence diagram parser.
func NewSequenceParser() *SequenceParser { return &SequenceParser{} }

// SupportedTypes returns the diagram types this parser handles.
func (p *SequenceParser) SupportedTypes() []string { return []string{"sequence"} }

// Parse parses a Mermaid sequence diagram from a string.
func (p *SequenceParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	headerLine := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !lexer.IsComment(line) {
			headerLine = i
			break
		}
	}
	if headerLine == -1 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "sequence diagram has no content")
	}

	trimmedHeader := strings.TrimSpace(lines[headerLine])
	if !seqHeaderPattern.MatchString(trimmedHeader) {
		return nil, errs.New(errs.ExpectedToken, headerLine+1, 1, trimmedHeader, "expected 'sequenceDiagram'")
	}

	preamble, next, perr := lexer.ReadPreamble(lines, headerLine+1)
	if perr != nil {
		return nil, perr
	}

	diagram := &ast.SequenceDiagram{
		Preamble:     preamble,
		Participants: map[string]*ast.Participant{},
		Pos:          ast.Position{Line: 1, Column: 1},
	}

	elems, _, err := p.parseElements(lines[next:], next+1, diagram)
	if err != nil {
		return nil, err
	}
	diagram.Elements = elems

	return diagram, nil
}

func (p *SequenceParser) registerParticipant(d *ast.SequenceDiagram, id, alias, kind string, pos ast.Position) {
	if _, ok := d.Participants[id]; ok {
		return
	}
	if alias == "" {
		alias = id
	}
	d.Participants[id] = &ast.Participant{ID: id, Alias: alias, Kind: kind, Pos: pos}
	d.ParticipantOrder = append(d.ParticipantOrder, id)
}

// parseElements is the top-level line-oriented recursive-descent loop,
// tracking a single logical depth at a time: when it meets a block opener
// it recurses into parseBlockBranches to consume that block's entire body
// (which in turn recurses for nested blocks), so the overall call stack
// mirrors the nesting depth of the source rather than hand-rolling a frame
// stack per block kind the way the original parser did.
func (p *SequenceParser) parseElements(lines []string, startLine int, d *ast.SequenceDiagram) ([]ast.SeqElement, int, error) {
	var elems []ast.SeqElement
	i := 0
	lineNum := startLine - 1

	for i < len(lines) {
		lineNum++
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || lexer.IsComment(raw) {
			i++
			continue
		}

		pos := ast.Position{Line: lineNum, Column: 1}

		if endPattern.MatchString(trimmed) {
			return elems, i, nil
		}

		if kind, label, ok := blockOpener(trimmed); ok {
			block, consumed, err := p.parseBlockBranches(lines[i+1:], lineNum+1, d, kind, label)
			if err != nil {
				return nil, 0, err
			}
			block.Pos = pos
			elems = append(elems, block)
			i += consumed + 1
			lineNum += consumed
			continue
		}

		if matches := participantPattern.FindStringSubmatch(trimmed); matches != nil {
			p.registerParticipant(d, matches[2], matches[3], matches[1], pos)
			i++
			continue
		}

		if matches := activatePattern.FindStringSubmatch(trimmed); matches != nil {
			elems = append(elems, &ast.Activation{Participant: matches[1], Activate: true, Pos: pos})
			i++
			continue
		}
		if matches := deactivatePattern.FindStringSubmatch(trimmed); matches != nil {
			elems = append(elems, &ast.Activation{Participant: matches[1], Activate: false, Pos: pos})
			i++
			continue
		}

		if matches := boxPattern.FindStringSubmatch(trimmed); matches != nil {
			box, consumed, err := p.parseBox(lines[i+1:], lineNum+1, d, matches[1], matches[2])
			if err != nil {
				return nil, 0, err
			}
			box.Pos = pos
			elems = append(elems, box)
			i += consumed + 1
			lineNum += consumed
			continue
		}

		if matches := noteLeftPattern.FindStringSubmatch(trimmed); matches != nil {
			elems = append(elems, &ast.Note{Placement: "left of", Participants: []string{matches[1]}, Text: matches[2], Pos: pos})
			i++
			continue
		}
		if matches := noteRightPattern.FindStringSubmatch(trimmed); matches != nil {
			elems = append(elems, &ast.Note{Placement: "right of", Participants: []string{matches[1]}, Text: matches[2], Pos: pos})
			i++
			continue
		}
		if matches := noteOverPattern.FindStringSubmatch(trimmed); matches != nil {
			parts := strings.Split(strings.ReplaceAll(matches[1], " ", ""), ",")
			elems = append(elems, &ast.Note{Placement: "over", Participants: parts, Text: matches[2], Pos: pos})
			i++
			continue
		}

		if autonumberPattern.MatchString(trimmed) {
			d.Autonumber = true
			i++
			continue
		}

		if msg := p.parseMessage(trimmed, pos); msg != nil {
			p.registerParticipant(d, msg.From, "", "participant", pos)
			p.registerParticipant(d, msg.To, "", "participant", pos)
			elems = append(elems, msg)
			i++
			continue
		}

		return nil, 0, errs.New(errs.ExpectedToken, lineNum, 1, trimmed, "unrecognised sequence diagram statement")
	}

	return elems, i, nil
}

func (p *SequenceParser) parseMessage(line string, pos ast.Position) *ast.Message {
	for _, arrow := range seqArrows {
		idx := strings.Index(line, arrow)
		if idx == -1 {
			continue
		}
		from := strings.TrimSpace(line[:idx])
		rest := strings.TrimSpace(line[idx+len(arrow):])

		activate := strings.HasPrefix(rest, "+")
		deactivate := strings.HasPrefix(rest, "-")
		if activate || deactivate {
			rest = strings.TrimSpace(rest[1:])
		}

		parts := strings.SplitN(rest, ":", 2)
		to := strings.TrimSpace(parts[0])
		text := ""
		if len(parts) > 1 {
			text = strings.TrimSpace(parts[1])
		}

		if !isValidID(from) || !isValidID(to) {
			continue
		}

		return &ast.Message{From: from, To: to, Arrow: arrow, Text: text, Activate: activate, Deactivate: deactivate, Pos: pos}
	}
	return nil
}

// parseBlockBranches consumes a block body starting right after its opening
// line, splitting it into branches at the separator keyword appropriate for
// kind (else for alt, and for par, option for critical; loop/opt/break take
// no separator and are always a single branch). It returns the number of
// lines consumed, not counting the opening line itself.
func (p *SequenceParser) parseBlockBranches(lines []string, startLine int, d *ast.SequenceDiagram, kind, firstLabel string) (*ast.SeqBlock, int, error) {
	block := &ast.SeqBlock{Kind: kind}
	branchKeyword := kind
	branchLabel := firstLabel
	var bodyLines []string
	branchStartLine := startLine
	lineNum := startLine - 1

	flush := func() error {
		elems, _, err := p.parseElements(bodyLines, branchStartLine, d)
		if err != nil {
			return err
		}
		block.Branches = append(block.Branches, ast.SeqBranch{Keyword: branchKeyword, Label: branchLabel, Elements: elems})
		bodyLines = nil
		return nil
	}

	depth := 1
	for i := 0; i < len(lines); i++ {
		lineNum++
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || lexer.IsComment(raw) {
			bodyLines = append(bodyLines, raw)
			continue
		}

		if _, _, opens := blockOpener(trimmed); opens {
			depth++
			bodyLines = append(bodyLines, raw)
			continue
		}

		if depth == 1 {
			if kw, label, ok := separatorFor(kind, trimmed); ok {
				if err := flush(); err != nil {
					return nil, 0, err
				}
				branchKeyword, branchLabel = kw, label
				branchStartLine = lineNum + 1
				continue
			}
		}

		if endPattern.MatchString(trimmed) {
			depth--
			if depth == 0 {
				if err := flush(); err != nil {
					return nil, 0, err
				}
				return block, i + 1, nil
			}
			bodyLines = append(bodyLines, raw)
			continue
		}

		bodyLines = append(bodyLines, raw)
	}

	return nil, 0, errs.New(errs.UnbalancedBlock, startLine, 1, kind, "block opened but never closed with 'end'")
}

func (p *SequenceParser) parseBox(lines []string, startLine int, d *ast.SequenceDiagram, colour, label string) (*ast.Box, int, error) {
	box := &ast.Box{Colour: colour, Label: label}
	lineNum := startLine - 1
	for i := 0; i < len(lines); i++ {
		lineNum++
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || lexer.IsComment(lines[i]) {
			continue
		}
		if endPattern.MatchString(trimmed) {
			return box, i + 1, nil
		}
		if matches := participantPattern.FindStringSubmatch(trimmed); matches != nil {
			pos := ast.Position{Line: lineNum, Column: 1}
			p.registerParticipant(d, matches[2], matches[3], matches[1], pos)
			box.Participants = append(box.Participants, matches[2])
		}
	}
	return nil, 0, errs.New(errs.UnbalancedBlock, startLine, 1, "box", "box opened but never closed with 'end'")
}

func isValidID(id string) bool {
	if id == "" {
		return false
	}
	for _, ch := range id {
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') &&
			(ch < '0' || ch > '9') && ch != '_' {
			return false
		}
	}
	return true
}
