package ast

// FlowchartDiagram represents a complete Mermaid flowchart or graph diagram.
//
// Nodes are keyed by id for O(1) lookup during edge resolution, and NodeOrder
// preserves first-appearance order so printers and id-sorted traversal both
// have what they need. Edges stay an ordered slice: edge order is
// observable (arrows render in declaration order) so it is never collapsed
// into a map.
type FlowchartDiagram struct {
	Preamble  Preamble
	Direction string // TB, TD, BT, RL, LR
	Nodes     map[string]*Node
	NodeOrder []string
	Edges     []*Edge
	Subgraphs []*Subgraph
	ClassDefs map[string]*ClassDef
	Pos       Position
}

func (f *FlowchartDiagram) GetType() string         { return "flowchart" }
func (f *FlowchartDiagram) GetPosition() Position   { return f.Pos }
func (f *FlowchartDiagram) GetPreamble() *Preamble   { return &f.Preamble }

// Accept walks nodes in id-sorted order, then subgraphs, then edges in
// declaration order, matching the traversal contract flowchart readers rely
// on (node order must be deterministic across runs, edge order must mirror
// the source).
func (f *FlowchartDiagram) Accept(v Visitor) {
	v.VisitFlowchart(f)
	for _, id := range sortedKeys(f.Nodes) {
		n := f.Nodes[id]
		v.VisitNode(n)
		v.VisitVertex(n.ID)
	}
	for _, sg := range f.Subgraphs {
		v.VisitSubgraph(sg)
	}
	for _, e := range f.Edges {
		v.VisitEdge(e)
		v.VisitConnection(e.From, e.To)
	}
}

func sortedKeys(m map[string]*Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// simple insertion sort: node id sets are small, and avoids importing sort
	// just for this one call site across the package.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// Node is a flowchart vertex. Nodes may be introduced either by an explicit
// definition (id[label]) or implicitly by being referenced as an edge
// endpoint before any definition exists; Implicit records which happened.
type Node struct {
	ID       string
	Shape    string // bracket style: "rect", "round", "stadium", "circle", "rhombus", "hexagon", ...
	Label    string
	Implicit bool // true if auto-created from an edge reference, never explicitly defined
	Class    string
	Pos      Position
}

// Edge is a directed connection between two flowchart nodes.
type Edge struct {
	From  string
	To    string
	Arrow string // -->, -.->, ==>, --- , -.- , ===, etc.
	Label string
	Pos   Position
}

// Subgraph is a named grouping of statements, itself scoped like a
// mini-flowchart: its own nodes, edges and nested subgraphs.
type Subgraph struct {
	ID        string
	Title     string
	Direction string
	Nodes     map[string]*Node
	NodeOrder []string
	Edges     []*Edge
	Subgraphs []*Subgraph
	Pos       Position
}

// ClassDef is a style class definition (classDef name prop:val,...).
type ClassDef struct {
	Name   string
	Styles map[string]string
	Pos    Position
}
