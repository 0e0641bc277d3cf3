package validator

import (
	"fmt"

	"github.com/hallvard/mmdast/ast"
)

// Finding is a single lint result. It generalizes ValidationError with the
// dialect the finding came from so a caller working across mixed diagram
// types (for example a CLI walking a whole markdown file) can report findings
// without needing to re-discover which validator produced each one.
//
// Lint never causes a parse to fail: it is purely additive tooling run after
// a Diagram already exists.
type Finding struct {
	Dialect  string
	Line     int
	Column   int
	Message  string
	Severity Severity
}

func (f Finding) Error() string {
	return fmt.Sprintf("line %d: %s: %s", f.Line, f.Severity, f.Message)
}

func findingsFromErrors(dialect string, errors []ValidationError) []Finding {
	findings := make([]Finding, 0, len(errors))
	for _, e := range errors {
		findings = append(findings, Finding{
			Dialect: dialect, Line: e.Line, Column: e.Column, Message: e.Message, Severity: e.Severity,
		})
	}
	return findings
}

func findingsFromErrorPtrs(dialect string, errors []*ValidationError) []Finding {
	findings := make([]Finding, 0, len(errors))
	for _, e := range errors {
		findings = append(findings, Finding{
			Dialect: dialect, Line: e.Line, Column: e.Column, Message: e.Message, Severity: e.Severity,
		})
	}
	return findings
}

// Lint runs whichever rule set fits diagram's concrete dialect and reports
// findings without rejecting the diagram; an unsupported dialect simply
// yields no findings rather than an error, since lint is advisory.
func Lint(diagram ast.Diagram, strict bool) []Finding {
	switch d := diagram.(type) {
	case *ast.FlowchartDiagram:
		rules := DefaultRules()
		if strict {
			rules = StrictRules()
		}
		var errors []ValidationError
		for _, r := range rules {
			errors = append(errors, r.Validate(d)...)
		}
		return findingsFromErrors("flowchart", errors)

	case *ast.SequenceDiagram:
		rules := SequenceDefaultRules()
		if strict {
			rules = SequenceStrictRules()
		}
		var errors []ValidationError
		for _, r := range rules {
			errors = append(errors, r.ValidateSequence(d)...)
		}
		return findingsFromErrors("sequence", errors)

	case *ast.ClassDiagram:
		rules := ClassDefaultRules()
		if strict {
			rules = ClassStrictRules()
		}
		var errors []ValidationError
		for _, r := range rules {
			errors = append(errors, r.ValidateClass(d)...)
		}
		return findingsFromErrors("class", errors)

	case *ast.StateDiagram:
		rules := StateDefaultRules()
		if strict {
			rules = StateStrictRules()
		}
		var errors []ValidationError
		for _, r := range rules {
			errors = append(errors, r.ValidateState(d)...)
		}
		return findingsFromErrors("state", errors)

	case *ast.MiscDiagram:
		rules := GenericDefaultRules()
		if strict {
			rules = GenericStrictRules()
		}
		var errors []ValidationError
		for _, r := range rules {
			errors = append(errors, r.ValidateGeneric(d)...)
		}
		return findingsFromErrors(d.DiagramType, errors)

	case *ast.PieDiagram:
		return findingsFromErrorPtrs("pie", ValidatePie(d, strict))
	case *ast.ERDiagram:
		return findingsFromErrorPtrs("erDiagram", ValidateER(d, strict))
	case *ast.JourneyDiagram:
		return findingsFromErrorPtrs("journey", ValidateJourney(d, strict))
	case *ast.TimelineDiagram:
		return findingsFromErrorPtrs("timeline", ValidateTimeline(d, strict))
	case *ast.GanttDiagram:
		return findingsFromErrorPtrs("gantt", ValidateGantt(d, strict))
	case *ast.MindmapDiagram:
		return findingsFromErrorPtrs("mindmap", ValidateMindmap(d, strict))
	case *ast.SankeyDiagram:
		return findingsFromErrorPtrs("sankey", ValidateSankey(d, strict))
	case *ast.QuadrantDiagram:
		return findingsFromErrorPtrs("quadrantChart", ValidateQuadrant(d, strict))
	case *ast.XYChartDiagram:
		return findingsFromErrorPtrs("xyChart", ValidateXYChart(d, strict))

	case *ast.C4Diagram:
		rules := DefaultC4Rules()
		if strict {
			rules = StrictC4Rules()
		}
		return findingsFromErrors(d.DiagramType, ValidateC4(d, rules))

	default:
		return nil
	}
}
