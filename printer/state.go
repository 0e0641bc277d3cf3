package printer

import "github.com/hallvard/mmdast/ast"

func writeState(w *writer, d *ast.StateDiagram, depth int) {
	if depth == 0 {
		w.line("stateDiagram-v2")
		w.depth++
		writePreamble(w, &d.Preamble)
	}
	for _, id := range d.StateOrder {
		s := d.States[id]
		writeStateNode(w, s)
	}
	for _, t := range d.Transitions {
		if t.Label != "" {
			w.line("%s --> %s : %s", t.From, t.To, t.Label)
		} else {
			w.line("%s --> %s", t.From, t.To)
		}
	}
	if depth == 0 {
		w.depth--
	}
}

func writeStateNode(w *writer, s *ast.State) {
	switch s.Kind {
	case "start":
		w.line("[*] --> %s", s.ID)
		return
	case "end":
		w.line("%s --> [*]", s.ID)
		return
	}
	if s.Description != "" {
		w.line("%s : %s", s.ID, s.Description)
	}
	if s.Note != "" {
		w.line("note %s %s", s.NoteSide, s.ID)
		w.depth++
		w.line("%s", s.Note)
		w.depth--
		w.line("end note")
	}
	if s.Nested != nil {
		w.line("state %s {", s.ID)
		w.depth++
		writeState(w, s.Nested, 1)
		w.depth--
		w.line("}")
	}
}
