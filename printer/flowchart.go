package printer

import "github.com/hallvard/mmdast/ast"

// shapeDelims mirrors parser.shapeNames in reverse: the bracket pair Mermaid
// uses to declare a node of each shape.
var shapeDelims = map[string][2]string{
	"rect":          {"[", "]"},
	"round":         {"(", ")"},
	"circle":        {"((", "))"},
	"rhombus":       {"{", "}"},
	"hexagon":       {"{{", "}}"},
	"subroutine":    {"[[", "]]"},
	"cylinder":      {"[(", ")]"},
	"stadium":       {"([", "])"},
	"asymmetric":    {">", ""},
	"double-circle": {"(((", ")))"},
}

func writeFlowchart(w *writer, d *ast.FlowchartDiagram) {
	w.line("flowchart %s", d.Direction)
	w.depth++
	writePreamble(w, &d.Preamble)
	writeFlowchartBody(w, d.Nodes, d.NodeOrder, d.Edges, d.Subgraphs)
	for _, name := range classDefOrder(d.ClassDefs) {
		cd := d.ClassDefs[name]
		w.line("classDef %s %s", cd.Name, joinStyles(cd.Styles))
	}
	w.depth--
}

func writeFlowchartBody(w *writer, nodes map[string]*ast.Node, nodeOrder []string, edges []*ast.Edge, subgraphs []*ast.Subgraph) {
	for _, id := range nodeOrder {
		n, ok := nodes[id]
		if !ok || n.Implicit {
			continue
		}
		w.line("%s", nodeDecl(n))
	}
	for _, sg := range subgraphs {
		if sg.Title != "" && sg.Title != sg.ID {
			w.line("subgraph %s [%s]", sg.ID, sg.Title)
		} else {
			w.line("subgraph %s", sg.ID)
		}
		w.depth++
		writeFlowchartBody(w, sg.Nodes, sg.NodeOrder, sg.Edges, sg.Subgraphs)
		w.depth--
		w.line("end")
	}
	for _, e := range edges {
		if e.Label != "" {
			w.line("%s %s|%s| %s", e.From, e.Arrow, e.Label, e.To)
		} else {
			w.line("%s %s %s", e.From, e.Arrow, e.To)
		}
	}
}

func nodeDecl(n *ast.Node) string {
	delims, ok := shapeDelims[n.Shape]
	if !ok {
		return n.ID
	}
	return n.ID + delims[0] + n.Label + delims[1]
}

func classDefOrder(defs map[string]*ast.ClassDef) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

func joinStyles(styles map[string]string) string {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		out += k + ":" + styles[k]
	}
	return out
}

func writeBlockBeta(w *writer, d *ast.BlockBetaDiagram) {
	w.line("block-beta")
	w.depth++
	writePreamble(w, &d.Preamble)
	if d.Columns > 0 {
		w.line("columns %d", d.Columns)
	}
	for _, id := range d.BlockOrder {
		b := d.Blocks[id]
		if b.Implicit {
			continue
		}
		writeBlockNode(w, b)
	}
	for _, e := range d.Edges {
		w.line("%s --> %s", e.From, e.To)
	}
	w.depth--
}

func writeBlockNode(w *writer, b *ast.BlockNode) {
	delims, ok := shapeDelims[b.Shape]
	if !ok {
		delims = [2]string{"[", "]"}
	}
	if len(b.Children) == 0 {
		w.line("%s%s%s%s", b.ID, delims[0], b.Label, delims[1])
		return
	}
	w.line("block:%s", b.ID)
	w.depth++
	for _, c := range b.Children {
		writeBlockNode(w, c)
	}
	w.depth--
	w.line("end")
}
