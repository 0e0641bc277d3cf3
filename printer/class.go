package printer

import "github.com/hallvard/mmdast/ast"

func writeClass(w *writer, d *ast.ClassDiagram) {
	w.line("classDiagram")
	w.depth++
	writePreamble(w, &d.Preamble)
	for _, name := range d.ClassOrder {
		c := d.Classes[name]
		if !c.Declared {
			continue
		}
		writeClassBody(w, c)
	}
	for _, r := range d.Relations {
		writeRelation(w, r)
	}
	w.depth--
}

func writeClassBody(w *writer, c *ast.Class) {
	if len(c.Members) == 0 && c.Stereotype == "" {
		w.line("class %s", c.Name)
		return
	}
	w.line("class %s {", c.Name)
	w.depth++
	if c.Stereotype != "" {
		w.line("<<%s>>", c.Stereotype)
	}
	for _, m := range c.Members {
		w.line("%s", memberDecl(m))
	}
	w.depth--
	w.line("}")
}

func memberDecl(m ast.ClassMember) string {
	vis := m.Visibility
	if m.IsMethod {
		params := ""
		for i, p := range m.Parameters {
			if i > 0 {
				params += ", "
			}
			params += p
		}
		decl := vis + m.Name + "(" + params + ")"
		if m.Type != "" {
			decl += " " + m.Type
		}
		return decl
	}
	decl := vis + m.Name
	if m.Type != "" {
		decl += " " + m.Type
	}
	return decl
}

var relationArrows = map[string]string{
	"inheritance": "--|>",
	"composition": "--*",
	"aggregation": "--o",
	"association": "-->",
	"dependency":  "..>",
	"realization": "..|>",
}

func writeRelation(w *writer, r *ast.Relation) {
	arrow, ok := relationArrows[r.Kind]
	if !ok {
		arrow = "--"
	}
	label := ""
	if r.Label != "" {
		label = " : " + r.Label
	}
	from := r.From
	if r.FromMultiplicity != "" {
		from += ` "` + r.FromMultiplicity + `"`
	}
	to := r.To
	if r.ToMultiplicity != "" {
		to = `"` + r.ToMultiplicity + `" ` + to
	}
	w.line("%s %s %s%s", from, arrow, to, label)
}
