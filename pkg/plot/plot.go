// Package plot describes the plot and panel collaborators that overlays draw
// against: which axes a plot carries, which edges they sit on, and the
// plot's orientation.
package plot

import (
	"github.com/plotglass/plotglass/pkg/axis"
	"github.com/plotglass/plotglass/pkg/geom"
)

// Orientation is the direction of the range (dependent) axis on screen.
type Orientation int

const (
	// Vertical means the range axis runs vertically, the common layout.
	Vertical Orientation = iota
	// Horizontal transposes the plot so the range axis runs horizontally.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Plot exposes the axis mappings and layout an overlay needs to convert data
// values into screen positions.
type Plot interface {
	DomainAxis() axis.Axis
	RangeAxis() axis.Axis
	DomainAxisEdge() geom.Edge
	RangeAxisEdge() geom.Edge
	Orientation() Orientation
}

// Panel is the surface a chart was rendered into. Overlays query it for the
// data area in screen coordinates and the plot that produced the chart.
type Panel interface {
	ScreenDataArea() geom.Rect
	Plot() Plot
}

// XYPlot is a concrete two-axis plot. Under vertical orientation the domain
// axis sits on the bottom edge and the range axis on the left; horizontal
// orientation transposes them.
type XYPlot struct {
	domain      axis.Axis
	rng         axis.Axis
	orientation Orientation
}

// NewXYPlot creates a vertically oriented plot over the given axes.
// Nil axes are not permitted.
func NewXYPlot(domain, rng axis.Axis) *XYPlot {
	if domain == nil {
		panic("plot: nil domain axis not permitted")
	}
	if rng == nil {
		panic("plot: nil range axis not permitted")
	}
	return &XYPlot{domain: domain, rng: rng, orientation: Vertical}
}

// DomainAxis returns the independent-variable axis.
func (p *XYPlot) DomainAxis() axis.Axis { return p.domain }

// RangeAxis returns the dependent-variable axis.
func (p *XYPlot) RangeAxis() axis.Axis { return p.rng }

// Orientation returns the plot orientation.
func (p *XYPlot) Orientation() Orientation { return p.orientation }

// SetOrientation changes the plot orientation, transposing the axis edges.
func (p *XYPlot) SetOrientation(o Orientation) {
	p.orientation = o
}

// DomainAxisEdge returns the edge the domain axis is drawn against.
func (p *XYPlot) DomainAxisEdge() geom.Edge {
	if p.orientation == Horizontal {
		return geom.EdgeLeft
	}
	return geom.EdgeBottom
}

// RangeAxisEdge returns the edge the range axis is drawn against.
func (p *XYPlot) RangeAxisEdge() geom.Edge {
	if p.orientation == Horizontal {
		return geom.EdgeBottom
	}
	return geom.EdgeLeft
}

// FixedPanel is a Panel with a fixed data area, for hosts that lay the chart
// out once per repaint.
type FixedPanel struct {
	area geom.Rect
	plot Plot
}

// NewFixedPanel creates a panel over an already-computed data area.
func NewFixedPanel(area geom.Rect, p Plot) *FixedPanel {
	if p == nil {
		panic("plot: nil plot not permitted")
	}
	return &FixedPanel{area: area, plot: p}
}

// ScreenDataArea returns the rectangle chart data is drawn into.
func (f *FixedPanel) ScreenDataArea() geom.Rect { return f.area }

// Plot returns the plot rendered in this panel.
func (f *FixedPanel) Plot() Plot { return f.plot }
