package ast

// Visitor receives pre-order callbacks while a Diagram's Accept method walks
// its tree. Each dialect calls the typed hook for the node kinds it owns, plus
// the generic VisitVertex/VisitConnection hooks for anything that behaves
// like a graph vertex or a connection between two vertices, regardless of
// dialect. A caller interested only in the generic shape of a diagram (e.g.
// counting nodes and edges) never needs to know which dialect it is walking.
type Visitor interface {
	VisitFlowchart(d *FlowchartDiagram)
	VisitNode(n *Node)
	VisitEdge(e *Edge)
	VisitSubgraph(s *Subgraph)

	VisitSequence(d *SequenceDiagram)
	VisitParticipant(p *Participant)
	VisitMessage(m *Message)
	VisitBlock(b *SeqBlock)
	VisitNote(n *Note)
	VisitActivation(a *Activation)

	VisitClassDiagram(d *ClassDiagram)
	VisitClass(c *Class)
	VisitRelation(r *Relation)

	VisitStateDiagram(d *StateDiagram)
	VisitState(s *State)
	VisitTransition(t *Transition)

	VisitPie(d *PieDiagram)
	VisitPieSlice(s *PieSlice)

	VisitGantt(d *GanttDiagram)
	VisitGanttSection(s *GanttSection)
	VisitGanttTask(t *GanttTask)

	VisitMindmap(d *MindmapDiagram)
	VisitMindmapNode(n *MindmapNode)

	VisitBlockBeta(d *BlockBetaDiagram)
	VisitBlockNode(n *BlockNode)

	VisitMisc(d *MiscDiagram)

	// VisitVertex is called for every element that behaves as a graph
	// vertex, regardless of dialect: flowchart nodes, sequence
	// participants, class diagram classes, state diagram states and
	// block-beta blocks all trigger it once, identified by id.
	VisitVertex(id string)
	// VisitConnection is called for every element that behaves as a graph
	// edge, regardless of dialect: flowchart edges, sequence messages,
	// class relations and state transitions all trigger it once.
	VisitConnection(from, to string)
}

// BaseVisitor implements Visitor with no-op methods so callers can embed it
// and override only the hooks they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitFlowchart(*FlowchartDiagram) {}
func (BaseVisitor) VisitNode(*Node)                  {}
func (BaseVisitor) VisitEdge(*Edge)                  {}
func (BaseVisitor) VisitSubgraph(*Subgraph)          {}

func (BaseVisitor) VisitSequence(*SequenceDiagram) {}
func (BaseVisitor) VisitParticipant(*Participant)  {}
func (BaseVisitor) VisitMessage(*Message)          {}
func (BaseVisitor) VisitBlock(*SeqBlock)           {}
func (BaseVisitor) VisitNote(*Note)                {}
func (BaseVisitor) VisitActivation(*Activation)    {}

func (BaseVisitor) VisitClassDiagram(*ClassDiagram) {}
func (BaseVisitor) VisitClass(*Class)               {}
func (BaseVisitor) VisitRelation(*Relation)         {}

func (BaseVisitor) VisitStateDiagram(*StateDiagram) {}
func (BaseVisitor) VisitState(*State)               {}
func (BaseVisitor) VisitTransition(*Transition)     {}

func (BaseVisitor) VisitPie(*PieDiagram)       {}
func (BaseVisitor) VisitPieSlice(*PieSlice)    {}

func (BaseVisitor) VisitGantt(*GanttDiagram)          {}
func (BaseVisitor) VisitGanttSection(*GanttSection)   {}
func (BaseVisitor) VisitGanttTask(*GanttTask)         {}

func (BaseVisitor) VisitMindmap(*MindmapDiagram)  {}
func (BaseVisitor) VisitMindmapNode(*MindmapNode) {}

func (BaseVisitor) VisitBlockBeta(*BlockBetaDiagram) {}
func (BaseVisitor) VisitBlockNode(*BlockNode)        {}

func (BaseVisitor) VisitMisc(*MiscDiagram) {}

func (BaseVisitor) VisitVertex(id string)             {}
func (BaseVisitor) VisitConnection(from, to string)   {}

// NodeCounter is a reference Visitor that counts vertices and connections
// uniformly across every dialect, using only the generic hooks. It
// demonstrates that a consumer can treat "anything that behaves like a graph
// vertex" as a node without switching on diagram type.
type NodeCounter struct {
	BaseVisitor
	Vertices    int
	Connections int
}

func (c *NodeCounter) VisitVertex(id string) {
	c.Vertices++
}

func (c *NodeCounter) VisitConnection(from, to string) {
	c.Connections++
}
