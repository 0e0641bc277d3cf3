package validator

import (
	"fmt"

	"github.com/hallvard/mmdast/ast"
)

// SequenceRule defines validation rules for sequence diagrams.
type SequenceRule interface {
	// Name returns the name of the rule.
	Name() string
	// ValidateSequence checks a sequence diagram and returns any validation errors.
	ValidateSequence(diagram *ast.SequenceDiagram) []ValidationError
}

// NoDuplicateParticipants checks that participant IDs are unique. The
// parser's registerParticipant dedup already makes this unreachable for
// ordinary "participant X" declarations, since a repeated id reuses the
// same map entry; this rule instead catches a Box that lists a
// participant id the Box's own Pos shows was already introduced earlier.
type NoDuplicateParticipants struct{}

// Name returns the name of this validation rule.
func (r *NoDuplicateParticipants) Name() string { return "no-duplicate-participants" }

// ValidateSequence checks for duplicate participant IDs inside boxes.
func (r *NoDuplicateParticipants) ValidateSequence(diagram *ast.SequenceDiagram) []ValidationError {
	var errors []ValidationError
	seen := make(map[string]bool)
	r.checkElements(diagram.Elements, seen, &errors)
	return errors
}

func (r *NoDuplicateParticipants) checkElements(elems []ast.SeqElement, seen map[string]bool, errors *[]ValidationError) {
	for _, el := range elems {
		switch e := el.(type) {
		case *ast.Box:
			for _, p := range e.Participants {
				if seen[p] {
					*errors = append(*errors, ValidationError{
						Line: e.Pos.Line, Column: e.Pos.Column,
						Message:  fmt.Sprintf("participant %q appears in more than one box", p),
						Severity: SeverityWarning,
					})
				}
				seen[p] = true
			}
		case *ast.SeqBlock:
			for _, b := range e.Branches {
				r.checkElements(b.Elements, seen, errors)
			}
		}
	}
}

// ValidMessageArrows checks that message arrows are valid.
type ValidMessageArrows struct{}

// Name returns the name of this validation rule.
func (r *ValidMessageArrows) Name() string { return "valid-message-arrows" }

// ValidateSequence checks message arrow syntax.
func (r *ValidMessageArrows) ValidateSequence(diagram *ast.SequenceDiagram) []ValidationError {
	var errors []ValidationError
	validArrows := map[string]bool{
		"->": true, "-->": true, "->>": true, "-->>": true,
		"-x": true, "--x": true, "-)": true, "--)": true,
		"<<->>": true, "<<-->>": true,
	}
	r.checkArrows(diagram.Elements, validArrows, &errors)
	return errors
}

func (r *ValidMessageArrows) checkArrows(elems []ast.SeqElement, validArrows map[string]bool, errors *[]ValidationError) {
	for _, el := range elems {
		switch e := el.(type) {
		case *ast.Message:
			if !validArrows[e.Arrow] {
				*errors = append(*errors, ValidationError{
					Line: e.Pos.Line, Column: e.Pos.Column,
					Message:  fmt.Sprintf("invalid message arrow '%s'", e.Arrow),
					Severity: SeverityError,
				})
			}
		case *ast.SeqBlock:
			for _, b := range e.Branches {
				r.checkArrows(b.Elements, validArrows, errors)
			}
		}
	}
}

// ValidNotePositions checks that notes reference a known participant.
type ValidNotePositions struct{}

// Name returns the name of this validation rule.
func (r *ValidNotePositions) Name() string { return "valid-note-positions" }

// ValidateSequence checks note participant references.
func (r *ValidNotePositions) ValidateSequence(diagram *ast.SequenceDiagram) []ValidationError {
	var errors []ValidationError
	r.checkNotes(diagram.Elements, diagram.Participants, &errors)
	return errors
}

func (r *ValidNotePositions) checkNotes(elems []ast.SeqElement, participants map[string]*ast.Participant, errors *[]ValidationError) {
	for _, el := range elems {
		switch e := el.(type) {
		case *ast.Note:
			for _, p := range e.Participants {
				if _, ok := participants[p]; !ok {
					*errors = append(*errors, ValidationError{
						Line: e.Pos.Line, Column: e.Pos.Column,
						Message:  fmt.Sprintf("note references undefined participant '%s'", p),
						Severity: SeverityWarning,
					})
				}
			}
		case *ast.SeqBlock:
			for _, b := range e.Branches {
				r.checkNotes(b.Elements, participants, errors)
			}
		}
	}
}

// ActivationStackBalance checks that every participant's activation stack
// (opened by a message whose arrow is followed by "+" or a standalone
// "activate" statement, closed by a message whose arrow is followed by "-"
// or "deactivate") is empty once the
// diagram's elements are fully walked.
type ActivationStackBalance struct{}

// Name returns the name of this validation rule.
func (r *ActivationStackBalance) Name() string { return "activation-stack-balance" }

// ValidateSequence walks the diagram tracking one activation depth per
// participant and reports both an unmatched deactivate and any participant
// left with a nonzero depth at the end.
func (r *ActivationStackBalance) ValidateSequence(diagram *ast.SequenceDiagram) []ValidationError {
	depth := make(map[string]int)
	lastPos := make(map[string]ast.Position)
	var errors []ValidationError
	r.walk(diagram.Elements, depth, lastPos, &errors)

	for _, id := range diagram.ParticipantOrder {
		if depth[id] > 0 {
			errors = append(errors, ValidationError{
				Line: lastPos[id].Line, Column: lastPos[id].Column,
				Message:  fmt.Sprintf("participant '%s' has %d unmatched activation(s) at end of diagram", id, depth[id]),
				Severity: SeverityError,
			})
		}
	}
	return errors
}

func (r *ActivationStackBalance) walk(elems []ast.SeqElement, depth map[string]int, lastPos map[string]ast.Position, errors *[]ValidationError) {
	for _, el := range elems {
		switch e := el.(type) {
		case *ast.Message:
			if e.Activate {
				depth[e.To]++
				lastPos[e.To] = e.Pos
			}
			if e.Deactivate {
				r.deactivate(e.To, e.Pos, depth, lastPos, errors)
			}
		case *ast.Activation:
			if e.Activate {
				depth[e.Participant]++
				lastPos[e.Participant] = e.Pos
			} else {
				r.deactivate(e.Participant, e.Pos, depth, lastPos, errors)
			}
		case *ast.SeqBlock:
			for _, b := range e.Branches {
				r.walk(b.Elements, depth, lastPos, errors)
			}
		}
	}
}

func (r *ActivationStackBalance) deactivate(participant string, pos ast.Position, depth map[string]int, lastPos map[string]ast.Position, errors *[]ValidationError) {
	if depth[participant] == 0 {
		*errors = append(*errors, ValidationError{
			Line: pos.Line, Column: pos.Column,
			Message:  fmt.Sprintf("deactivate on participant '%s' with no matching activate", participant),
			Severity: SeverityError,
		})
		return
	}
	depth[participant]--
	lastPos[participant] = pos
}

// SequenceDefaultRules returns default validation rules for sequence diagrams.
func SequenceDefaultRules() []SequenceRule {
	return []SequenceRule{
		&NoDuplicateParticipants{},
		&ValidMessageArrows{},
		&ValidNotePositions{},
		&ActivationStackBalance{},
	}
}

// SequenceStrictRules returns strict validation rules for sequence diagrams.
func SequenceStrictRules() []SequenceRule { return SequenceDefaultRules() }
