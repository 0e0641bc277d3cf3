package printer

import "github.com/hallvard/mmdast/ast"

var mindmapShapeDelims = map[string][2]string{
	"[]":   {"[", "]"},
	"()":   {"(", ")"},
	"(())": {"((", "))"},
	"))((": {"))", "(("},
	"{{}}": {"{{", "}}"},
}

func writeMindmap(w *writer, d *ast.MindmapDiagram) {
	w.line("mindmap")
	w.depth++
	writePreamble(w, &d.Preamble)
	if d.Root != nil {
		writeMindmapNode(w, d.Root)
	}
	w.depth--
}

func writeMindmapNode(w *writer, n *ast.MindmapNode) {
	w.line("%s", nodeText(n))
	if n.Icon != "" {
		w.line("::icon(%s)", n.Icon)
	}
	w.depth++
	for _, c := range n.Children {
		writeMindmapNode(w, c)
	}
	w.depth--
}

func nodeText(n *ast.MindmapNode) string {
	delims, ok := mindmapShapeDelims[n.Shape]
	if !ok {
		return n.Text
	}
	return delims[0] + n.Text + delims[1]
}
