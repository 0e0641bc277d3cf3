package validator

import (
	"fmt"

	"github.com/hallvard/mmdast/ast"
)

// ClassRule defines a validation rule for class diagrams.
type ClassRule interface {
	Name() string
	ValidateClass(diagram *ast.ClassDiagram) []ValidationError
}

// NoUndeclaredClasses flags classes that were only ever seen as a
// relationship endpoint and never given an explicit "class Name" or
// "class Name { ... }" declaration (ast.Class.Declared stays false for
// these placeholders).
type NoUndeclaredClasses struct{}

// Name returns the rule name.
func (r *NoUndeclaredClasses) Name() string { return "no-undeclared-classes" }

// ValidateClass validates the class diagram.
func (r *NoUndeclaredClasses) ValidateClass(diagram *ast.ClassDiagram) []ValidationError {
	var errors []ValidationError
	for _, name := range diagram.ClassOrder {
		c := diagram.Classes[name]
		if !c.Declared {
			errors = append(errors, ValidationError{
				Line:     c.Pos.Line,
				Column:   c.Pos.Column,
				Message:  fmt.Sprintf("class %q is referenced but never declared", name),
				Severity: SeverityWarning,
			})
		}
	}
	return errors
}

// ValidMemberVisibility checks that member visibility modifiers are valid.
type ValidMemberVisibility struct{}

// Name returns the rule name.
func (r *ValidMemberVisibility) Name() string { return "valid-member-visibility" }

// ValidateClass validates the class diagram.
func (r *ValidMemberVisibility) ValidateClass(diagram *ast.ClassDiagram) []ValidationError {
	var errors []ValidationError
	validVisibility := map[string]bool{"+": true, "-": true, "#": true, "~": true}

	for _, name := range diagram.ClassOrder {
		for _, member := range diagram.Classes[name].Members {
			if !validVisibility[member.Visibility] {
				errors = append(errors, ValidationError{
					Line:     member.Pos.Line,
					Column:   member.Pos.Column,
					Message:  fmt.Sprintf("invalid visibility modifier %q (must be +, -, #, or ~)", member.Visibility),
					Severity: SeverityError,
				})
			}
		}
	}
	return errors
}

// ValidRelationshipType checks that relationship kinds are valid.
type ValidRelationshipType struct{}

// Name returns the rule name.
func (r *ValidRelationshipType) Name() string { return "valid-relationship-type" }

// ValidateClass validates the class diagram.
func (r *ValidRelationshipType) ValidateClass(diagram *ast.ClassDiagram) []ValidationError {
	var errors []ValidationError
	validKinds := map[string]bool{
		"inheritance": true, "composition": true, "aggregation": true,
		"association": true, "dependency": true, "realization": true,
	}

	for _, rel := range diagram.Relations {
		if !validKinds[rel.Kind] {
			errors = append(errors, ValidationError{
				Line:     rel.Pos.Line,
				Column:   rel.Pos.Column,
				Message:  fmt.Sprintf("invalid relationship kind %q", rel.Kind),
				Severity: SeverityError,
			})
		}
	}
	return errors
}

// ClassDefaultRules returns the default set of validation rules for class diagrams.
func ClassDefaultRules() []ClassRule {
	return []ClassRule{
		&NoUndeclaredClasses{},
		&ValidMemberVisibility{},
		&ValidRelationshipType{},
	}
}

// ClassStrictRules returns a strict set of validation rules for class diagrams.
func ClassStrictRules() []ClassRule { return ClassDefaultRules() }

// NewClass creates a new class diagram validator with the given rules.
func NewClass(rules ...ClassRule) *Validator { return &Validator{classRules: rules} }
