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
	ganttHeaderRegex      = regexp.MustCompile(`^gantt\s*$`)
	ganttDateFormatRegex  = regexp.MustCompile(`^\s*dateFormat\s+(.+)$`)
	ganttAxisFormatRegex  = regexp.MustCompile(`^\s*axisFormat\s+(.+)$`)
	ganttExcludesRegex    = regexp.MustCompile(`^\s*excludes\s+(.+)$`)
	ganttTodayMarkerRegex = regexp.MustCompile(`^\s*todayMarker\s+(on|off|#?[0-9a-fA-F]{3,6})\s*$`)
	ganttSectionRegex     = regexp.MustCompile(`^\s*section\s+(.+)$`)
	ganttTaskRegex        = regexp.MustCompile(`^\s*([^:]+?)\s*:\s*(.+)$`)
	dateLikePattern       = regexp.MustCompile(`\d`)
)

// GanttParser handles parsing of Gantt chart diagrams.
type GanttParser struct{}

// NewGanttParser creates a new Gantt parser.
func NewGanttParser() *GanttParser { return &GanttParser{} }

// SupportedTypes returns the diagram types this parser supports.
func (p *GanttParser) SupportedTypes() []string { return []string{"gantt"} }

// Parse parses a Gantt chart diagram source.
func (p *GanttParser) Parse(source string) (ast.Diagram, error) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return nil, errs.New(errs.EmptyInput, 1, 1, "", "diagram source is empty")
	}

	firstLine := strings.TrimSpace(lines[0])
	if !ganttHeaderRegex.MatchString(firstLine) {
		return nil, errs.New(errs.ExpectedToken, 1, 1, firstLine, "expected 'gantt'")
	}

	preamble, next, perr := lexer.ReadPreamble(lines, 1)
	if perr != nil {
		return nil, perr
	}

	d := &ast.GanttDiagram{
		Preamble:   preamble,
		DateFormat: "YYYY-MM-DD",
		Pos:        ast.Position{Line: 1, Column: 1},
	}

	var currentSection *ast.GanttSection
	anonCount := 0

	for i := next; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || lexer.IsComment(line) {
			continue
		}
		lineNum := i + 1

		if matches := ganttDateFormatRegex.FindStringSubmatch(trimmed); matches != nil {
			d.DateFormat = strings.TrimSpace(matches[1])
			continue
		}
		if matches := ganttAxisFormatRegex.FindStringSubmatch(trimmed); matches != nil {
			d.AxisFormat = strings.TrimSpace(matches[1])
			continue
		}
		if matches := ganttExcludesRegex.FindStringSubmatch(trimmed); matches != nil {
			d.Excludes = strings.TrimSpace(matches[1])
			continue
		}
		if matches := ganttTodayMarkerRegex.FindStringSubmatch(trimmed); matches != nil {
			d.TodayMarker = strings.TrimSpace(matches[1])
			continue
		}
		if matches := ganttSectionRegex.FindStringSubmatch(trimmed); matches != nil {
			if currentSection != nil {
				d.Sections = append(d.Sections, currentSection)
			}
			currentSection = &ast.GanttSection{Name: strings.TrimSpace(matches[1]), Pos: ast.Position{Line: lineNum, Column: 1}}
			continue
		}
		if matches := ganttTaskRegex.FindStringSubmatch(trimmed); matches != nil {
			if currentSection == nil {
				return nil, errs.New(errs.ExpectedToken, lineNum, 1, trimmed, "task defined outside of section")
			}
			taskName := strings.TrimSpace(matches[1])
			task, err := parseGanttTask(taskName, strings.TrimSpace(matches[2]), lineNum)
			if err != nil {
				return nil, err
			}
			if task.ID == "" {
				anonCount++
				task.ID = "task" + strconv.Itoa(anonCount)
			}
			currentSection.Tasks = append(currentSection.Tasks, task)
			continue
		}

		return nil, errs.New(errs.ExpectedToken, lineNum, 1, trimmed, "unrecognised gantt syntax")
	}

	if currentSection != nil {
		d.Sections = append(d.Sections, currentSection)
	}

	if !d.Preamble.HasTitle && len(d.Sections) == 0 {
		return nil, errs.New(errs.ExpectedToken, len(lines), 1, "", "gantt diagram must have at least a title or one section with tasks")
	}

	return d, nil
}

func parseGanttTask(name, params string, lineNum int) (*ast.GanttTask, error) {
	task := &ast.GanttTask{Name: name, Pos: ast.Position{Line: lineNum, Column: 1}}

	parts := strings.Split(params, ",")
	if len(parts) < 2 {
		return task, errs.New(errs.ExpectedToken, lineNum, 1, params, "task must have at least a start date and an end date/duration")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	statusKeywords := map[string]bool{"done": true, "active": true, "crit": true, "milestone": true}
	idx := 0

	if len(parts) > 2 && statusKeywords[parts[0]] {
		task.Status = parts[0]
		idx++
	}

	if idx < len(parts)-1 {
		next := parts[idx]
		if !strings.HasPrefix(next, "after") && !looksLikeDate(next) && !strings.HasSuffix(next, "d") && !strings.HasSuffix(next, "w") {
			task.ID = next
			idx++
		}
	}

	if idx >= len(parts) {
		return task, errs.New(errs.ExpectedToken, lineNum, 1, "", "task missing start date")
	}
	if after, ok := strings.CutPrefix(parts[idx], "after "); ok {
		task.Dependencies = strings.Fields(after)
		task.StartDate = parts[idx]
		idx++
	} else {
		task.StartDate = parts[idx]
		idx++
	}

	if idx >= len(parts) {
		return task, errs.New(errs.ExpectedToken, lineNum, 1, "", "task missing end date or duration")
	}
	task.EndDate = parts[idx]

	return task, nil
}

func looksLikeDate(s string) bool {
	return (strings.Contains(s, "-") || strings.Contains(s, "/")) && dateLikePattern.MatchString(s)
}
