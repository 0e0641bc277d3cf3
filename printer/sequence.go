package printer

import "github.com/hallvard/mmdast/ast"

func writeSequence(w *writer, d *ast.SequenceDiagram) {
	w.line("sequenceDiagram")
	w.depth++
	writePreamble(w, &d.Preamble)
	if d.Autonumber {
		w.line("autonumber")
	}
	for _, id := range d.ParticipantOrder {
		p := d.Participants[id]
		kind := p.Kind
		if kind == "" {
			kind = "participant"
		}
		if p.Alias != "" && p.Alias != p.ID {
			w.line("%s %s as %s", kind, p.ID, p.Alias)
		} else {
			w.line("%s %s", kind, p.ID)
		}
	}
	writeSeqElements(w, d.Elements)
	w.depth--
}

func writeSeqElements(w *writer, elems []ast.SeqElement) {
	for _, el := range elems {
		switch e := el.(type) {
		case *ast.Message:
			activation := ""
			if e.Activate {
				activation = "+"
			} else if e.Deactivate {
				activation = "-"
			}
			w.line("%s%s%s%s: %s", e.From, e.Arrow, activation, e.To, e.Text)
		case *ast.Note:
			w.line("Note %s %s: %s", e.Placement, joinNames(e.Participants), e.Text)
		case *ast.Box:
			if e.Colour != "" {
				w.line("box %s %s", e.Colour, e.Label)
			} else {
				w.line("box %s", e.Label)
			}
		case *ast.Activation:
			if e.Activate {
				w.line("activate %s", e.Participant)
			} else {
				w.line("deactivate %s", e.Participant)
			}
		case *ast.SeqBlock:
			writeSeqBlock(w, e)
		}
	}
}

func writeSeqBlock(w *writer, b *ast.SeqBlock) {
	for _, branch := range b.Branches {
		if branch.Label != "" {
			w.line("%s %s", branch.Keyword, branch.Label)
		} else {
			w.line("%s", branch.Keyword)
		}
		w.depth++
		writeSeqElements(w, branch.Elements)
		w.depth--
	}
	w.line("end")
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out
}
