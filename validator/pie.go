package validator

import (
	"fmt"

	"github.com/hallvard/mmdast/ast"
)

// PieRule is a validation rule for pie diagrams.
type PieRule interface {
	Validate(diagram *ast.PieDiagram) []*ValidationError
}

// ValidatePie runs validation rules on a pie diagram.
func ValidatePie(diagram *ast.PieDiagram, strict bool) []*ValidationError {
	rules := PieDefaultRules()
	if strict {
		rules = PieStrictRules()
	}

	var errors []*ValidationError
	for _, rule := range rules {
		errors = append(errors, rule.Validate(diagram)...)
	}
	return errors
}

// PieDefaultRules returns the default validation rules for pie diagrams.
func PieDefaultRules() []PieRule {
	return []PieRule{
		&NoDuplicateLabelsRule{},
		&NonNegativeValuesRule{},
	}
}

// PieStrictRules returns strict validation rules for pie diagrams.
func PieStrictRules() []PieRule {
	return PieDefaultRules()
}

// NoDuplicateLabelsRule checks for duplicate labels in pie chart.
type NoDuplicateLabelsRule struct{}

// Validate checks that all labels are unique.
func (r *NoDuplicateLabelsRule) Validate(diagram *ast.PieDiagram) []*ValidationError {
	checker := NewDuplicateChecker("label")
	var errors []*ValidationError

	for _, slice := range diagram.Slices {
		if err := checker.Check(slice.Label, slice.Pos); err != nil {
			errors = append(errors, err)
		}
	}

	return errors
}

// NonNegativeValuesRule checks that no value is negative.
type NonNegativeValuesRule struct{}

// Validate checks that all values are zero or greater.
func (r *NonNegativeValuesRule) Validate(diagram *ast.PieDiagram) []*ValidationError {
	var errors []*ValidationError

	for _, slice := range diagram.Slices {
		if slice.Value < 0 {
			errors = append(errors, &ValidationError{
				Line:     slice.Pos.Line,
				Column:   slice.Pos.Column,
				Message:  fmt.Sprintf("pie chart value for %q must not be negative (got %f)", slice.Label, slice.Value),
				Severity: SeverityError,
			})
		}
	}

	return errors
}
