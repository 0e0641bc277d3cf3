package printer

import "github.com/hallvard/mmdast/ast"

func writeGantt(w *writer, d *ast.GanttDiagram) {
	w.line("gantt")
	w.depth++
	writePreamble(w, &d.Preamble)
	if d.DateFormat != "" {
		w.line("dateFormat %s", d.DateFormat)
	}
	if d.AxisFormat != "" {
		w.line("axisFormat %s", d.AxisFormat)
	}
	if d.Excludes != "" {
		w.line("excludes %s", d.Excludes)
	}
	if d.TodayMarker != "" {
		w.line("todayMarker %s", d.TodayMarker)
	}
	for _, sec := range d.Sections {
		w.line("section %s", sec.Name)
		w.depth++
		for _, t := range sec.Tasks {
			w.line("%s", taskDecl(t))
		}
		w.depth--
	}
	w.depth--
}

func taskDecl(t *ast.GanttTask) string {
	decl := t.Name + " :"
	fields := []string{}
	if t.Status != "" {
		fields = append(fields, t.Status)
	}
	if t.ID != "" {
		fields = append(fields, t.ID)
	}
	for _, dep := range t.Dependencies {
		fields = append(fields, "after "+dep)
	}
	if t.StartDate != "" {
		fields = append(fields, t.StartDate)
	}
	if t.EndDate != "" {
		fields = append(fields, t.EndDate)
	}
	for i, f := range fields {
		if i > 0 {
			decl += ","
		}
		decl += " " + f
	}
	return decl
}
