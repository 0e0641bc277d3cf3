package printer

import "github.com/hallvard/mmdast/ast"

func writePie(w *writer, d *ast.PieDiagram) {
	if d.ShowData {
		w.line("pie showData")
	} else {
		w.line("pie")
	}
	w.depth++
	writePreamble(w, &d.Preamble)
	for _, s := range d.Slices {
		w.line("%q : %v", s.Label, s.Value)
	}
	w.depth--
}
