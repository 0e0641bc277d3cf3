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
	pieHeaderRegex = regexp.MustCompile(`^pie\s*(?:(showData)\s*)?(?:title\s+(.+))?$`)
	pieEntryRegex  = regexp.MustCompile(`^\s*"([^"]+)"\s*:\s*([0-9]+(?:\.[0-9]{1,2})?)\s*$`)
)

// PieParser handles parsing of pie chart diagrams.
type PieParser struct{}

// NewPieParser creates a new pie parser.
func NewPieParser() *PieParser { return &PieParser{} }

// SupportedTypes returns the diagram types this parser supports.
func (p *PieParser) SupportedTypes() []string { return []string{"pie"} }

// Parse parses a pie chart diagram source.
func (p *PieParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	firstLine := strings.TrimSpace(lines[0])
	matches := pieHeaderRegex.FindStringSubmatch(firstLine)
	if matches == nil {
		return nil, errs.New(errs.ExpectedToken, 1, 1, firstLine, "expected 'pie' optionally followed by 'showData' and/or 'title'")
	}

	d := &ast.PieDiagram{Pos: ast.Position{Line: 1, Column: 1}}
	if matches[1] == "showData" {
		d.ShowData = true
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}
	d.Preamble = preamble
	if matches[2] != "" && !d.Preamble.HasTitle {
		d.Preamble.Title = strings.TrimSpace(matches[2])
		d.Preamble.HasTitle = true
	}

	for i := next; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || lexer.IsComment(line) {
			continue
		}

		entryMatches := pieEntryRegex.FindStringSubmatch(trimmed)
		if entryMatches == nil {
			return nil, errs.New(errs.ExpectedToken, i+1, 1, trimmed, "expected a pie entry of the form \"label\" : value")
		}

		value, err := strconv.ParseFloat(entryMatches[2], 64)
		if err != nil {
			return nil, errs.New(errs.InvalidNumber, i+1, 1, entryMatches[2], "invalid numeric value")
		}
		if value < 0 {
			return nil, errs.New(errs.InvalidNumber, i+1, 1, entryMatches[2], "pie chart values must not be negative")
		}

		d.Slices = append(d.Slices, &ast.PieSlice{
			Label: entryMatches[1],
			Value: value,
			Pos:   ast.Position{Line: i + 1, Column: 1},
		})
	}

	if len(d.Slices) == 0 {
		return nil, errs.New(errs.ExpectedToken, len(lines), 1, "", "pie chart must have at least one data entry")
	}

	return d, nil
}
