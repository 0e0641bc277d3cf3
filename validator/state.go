package validator

import (
	"fmt"

	"github.com/hallvard/mmdast/ast"
)

// StateRule defines a validation rule for state diagrams.
type StateRule interface {
	Name() string
	ValidateState(diagram *ast.StateDiagram) []ValidationError
}

// ValidStateReferences checks that all states referenced in transitions
// exist, aside from the "[*]" start/end sentinel.
type ValidStateReferences struct{}

// Name returns the rule name.
func (r *ValidStateReferences) Name() string { return "valid-state-references" }

// ValidateState validates the state diagram.
func (r *ValidStateReferences) ValidateState(diagram *ast.StateDiagram) []ValidationError {
	var errors []ValidationError
	for _, trans := range diagram.Transitions {
		if trans.From != "[*]" {
			if _, ok := diagram.States[trans.From]; !ok {
				errors = append(errors, ValidationError{
					Line: trans.Pos.Line, Column: trans.Pos.Column,
					Message:  fmt.Sprintf("transition references undefined state %q", trans.From),
					Severity: SeverityError,
				})
			}
		}
		if trans.To != "[*]" {
			if _, ok := diagram.States[trans.To]; !ok {
				errors = append(errors, ValidationError{
					Line: trans.Pos.Line, Column: trans.Pos.Column,
					Message:  fmt.Sprintf("transition references undefined state %q", trans.To),
					Severity: SeverityError,
				})
			}
		}
	}
	return errors
}

// ValidPseudoStateKind checks that every state's Kind is one of the
// recognised values.
type ValidPseudoStateKind struct{}

// Name returns the rule name.
func (r *ValidPseudoStateKind) Name() string { return "valid-pseudo-state-kind" }

// ValidateState validates the state diagram.
func (r *ValidPseudoStateKind) ValidateState(diagram *ast.StateDiagram) []ValidationError {
	var errors []ValidationError
	validKinds := map[string]bool{"state": true, "fork": true, "join": true, "choice": true}
	for _, id := range diagram.StateOrder {
		s := diagram.States[id]
		if !validKinds[s.Kind] {
			errors = append(errors, ValidationError{
				Line: s.Pos.Line, Column: s.Pos.Column,
				Message:  fmt.Sprintf("invalid state kind %q for %q", s.Kind, s.ID),
				Severity: SeverityError,
			})
		}
	}
	return errors
}

// StateDefaultRules returns the default set of validation rules for state diagrams.
func StateDefaultRules() []StateRule {
	return []StateRule{
		&ValidStateReferences{},
		&ValidPseudoStateKind{},
	}
}

// StateStrictRules returns a strict set of validation rules for state diagrams.
func StateStrictRules() []StateRule { return StateDefaultRules() }

// NewState creates a new state diagram validator with the given rules.
func NewState(rules ...StateRule) *Validator { return &Validator{stateRules: rules} }
