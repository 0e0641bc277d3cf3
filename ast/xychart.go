package ast

// XYChartDiagram represents an XY chart diagram AST.
//
// xyChart is a supplementary dialect with no dedicated visitor hooks, and
// carries no addressable vertices of its own (its series are unlabeled
// value arrays), so Accept only emits the VisitMisc hook.
type XYChartDiagram struct {
	Preamble    Preamble
	Orientation string          // "horizontal" or "vertical" (default "vertical")
	XAxis       XYChartAxis     // X-axis configuration
	YAxis       XYChartAxis     // Y-axis configuration
	Series      []XYChartSeries // Data series (bar, line)
	Source      string          // Original source
	Pos         Position        // Position in source
}

// GetPreamble implements the Diagram interface.
func (d *XYChartDiagram) GetPreamble() *Preamble { return &d.Preamble }

// Accept emits the generic misc hook; xyChart has no graph-shaped content.
func (d *XYChartDiagram) Accept(v Visitor) {
	v.VisitMisc(&MiscDiagram{Preamble: d.Preamble, DiagramType: "xyChart", Source: d.Source, Pos: d.Pos})
}

// XYChartAxis represents an axis configuration in an XY chart.
type XYChartAxis struct {
	Label      string    // Axis label (optional)
	Categories []string  // Category labels (for categorical axis)
	Min        float64   // Minimum value (for numeric axis)
	Max        float64   // Maximum value (for numeric axis)
	IsNumeric  bool      // True if numeric, false if categorical
	Pos        Position  // Position in source
}

// XYChartSeries represents a data series in an XY chart.
type XYChartSeries struct {
	Type   string    // "bar" or "line"
	Values []float64 // Data values
	Pos    Position  // Position in source
}

// GetType returns the diagram type.
func (d *XYChartDiagram) GetType() string {
	return "xyChart"
}

// GetSource returns the original source.
func (d *XYChartDiagram) GetSource() string {
	return d.Source
}

// GetPosition returns the position in source.
func (d *XYChartDiagram) GetPosition() Position {
	return d.Pos
}
