// Package overlay implements crosshair annotations drawn on top of a
// rendered chart. A Crosshair marks a fixed data value along one axis; a
// CrosshairOverlay owns collections of crosshairs for the domain and range
// axes, tracks their changes, and paints them into a panel's data area.
package overlay

import (
	"fmt"
	"image/color"

	"github.com/plotglass/plotglass/pkg/event"
	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// Default label styling for new crosshairs.
var (
	defaultLinePaint       = paint.Paint(color.Black)
	defaultLabelBackground = paint.Paint(color.NRGBA{B: 255, A: 63})
)

// Crosshair is a marker at a fixed data value along one axis. Mutations
// notify subscribed listeners, letting an owning overlay trigger a repaint.
type Crosshair struct {
	notifier event.Notifier

	value   float64
	visible bool

	linePaint  paint.Paint
	lineStroke paint.Stroke

	labelVisible    bool
	labelFormat     string
	labelAnchor     geom.Anchor
	labelFont       paint.Font
	labelPaint      paint.Paint
	labelBackground paint.Paint
	labelXOffset    float64
	labelYOffset    float64
}

// NewCrosshair creates a visible crosshair at the given value with default
// styling and a hidden label.
func NewCrosshair(value float64) *Crosshair {
	return &Crosshair{
		value:           value,
		visible:         true,
		linePaint:       defaultLinePaint,
		lineStroke:      paint.SolidStroke(0.5),
		labelFormat:     "%g",
		labelAnchor:     geom.AnchorBottomLeft,
		labelFont:       paint.DefaultFont,
		labelPaint:      color.Black,
		labelBackground: defaultLabelBackground,
		labelXOffset:    5,
		labelYOffset:    5,
	}
}

// Subscribe registers a listener invoked after every observable mutation.
func (c *Crosshair) Subscribe(fn func()) event.Handle {
	return c.notifier.Subscribe(fn)
}

// Unsubscribe removes a listener.
func (c *Crosshair) Unsubscribe(h event.Handle) {
	c.notifier.Unsubscribe(h)
}

// Value returns the data value the crosshair marks.
func (c *Crosshair) Value() float64 { return c.value }

// SetValue moves the crosshair and notifies listeners if the value changed.
func (c *Crosshair) SetValue(value float64) {
	if c.value == value {
		return
	}
	c.value = value
	c.notifier.Notify()
}

// Visible reports whether the crosshair is drawn.
func (c *Crosshair) Visible() bool { return c.visible }

// SetVisible shows or hides the crosshair and notifies listeners if the
// flag changed.
func (c *Crosshair) SetVisible(visible bool) {
	if c.visible == visible {
		return
	}
	c.visible = visible
	c.notifier.Notify()
}

// LinePaint returns the paint for the crosshair line.
func (c *Crosshair) LinePaint() paint.Paint { return c.linePaint }

// SetLinePaint changes the line paint. Nil is not permitted.
func (c *Crosshair) SetLinePaint(p paint.Paint) {
	if p == nil {
		panic("overlay: nil line paint not permitted")
	}
	if paint.Equal(c.linePaint, p) {
		return
	}
	c.linePaint = p
	c.notifier.Notify()
}

// LineStroke returns the stroke for the crosshair line.
func (c *Crosshair) LineStroke() paint.Stroke { return c.lineStroke }

// SetLineStroke changes the line stroke.
func (c *Crosshair) SetLineStroke(s paint.Stroke) {
	if c.lineStroke.Equal(s) {
		return
	}
	c.lineStroke = s.Clone()
	c.notifier.Notify()
}

// LabelVisible reports whether the value label is drawn next to the line.
func (c *Crosshair) LabelVisible() bool { return c.labelVisible }

// SetLabelVisible toggles the value label.
func (c *Crosshair) SetLabelVisible(visible bool) {
	if c.labelVisible == visible {
		return
	}
	c.labelVisible = visible
	c.notifier.Notify()
}

// LabelFormat returns the printf format applied to the value for the label.
func (c *Crosshair) LabelFormat() string { return c.labelFormat }

// SetLabelFormat changes the label format. An empty format is not permitted.
func (c *Crosshair) SetLabelFormat(format string) {
	if format == "" {
		panic("overlay: empty label format not permitted")
	}
	if c.labelFormat == format {
		return
	}
	c.labelFormat = format
	c.notifier.Notify()
}

// Label returns the formatted label text for the current value.
func (c *Crosshair) Label() string {
	return fmt.Sprintf(c.labelFormat, c.value)
}

// LabelAnchor returns the anchor controlling label placement.
func (c *Crosshair) LabelAnchor() geom.Anchor { return c.labelAnchor }

// SetLabelAnchor changes the label anchor.
func (c *Crosshair) SetLabelAnchor(a geom.Anchor) {
	if c.labelAnchor == a {
		return
	}
	c.labelAnchor = a
	c.notifier.Notify()
}

// LabelFont returns the label font.
func (c *Crosshair) LabelFont() paint.Font { return c.labelFont }

// SetLabelFont changes the label font.
func (c *Crosshair) SetLabelFont(f paint.Font) {
	if c.labelFont.Equal(f) {
		return
	}
	c.labelFont = f
	c.notifier.Notify()
}

// LabelPaint returns the label text paint.
func (c *Crosshair) LabelPaint() paint.Paint { return c.labelPaint }

// SetLabelPaint changes the label text paint. Nil is not permitted.
func (c *Crosshair) SetLabelPaint(p paint.Paint) {
	if p == nil {
		panic("overlay: nil label paint not permitted")
	}
	if paint.Equal(c.labelPaint, p) {
		return
	}
	c.labelPaint = p
	c.notifier.Notify()
}

// LabelBackground returns the label background paint, nil when the label is
// drawn without a background.
func (c *Crosshair) LabelBackground() paint.Paint { return c.labelBackground }

// SetLabelBackground changes the label background paint. Nil disables the
// background.
func (c *Crosshair) SetLabelBackground(p paint.Paint) {
	if paint.Equal(c.labelBackground, p) {
		return
	}
	c.labelBackground = p
	c.notifier.Notify()
}

// LabelOffsets returns the x and y distances between the line and the label
// anchor point.
func (c *Crosshair) LabelOffsets() (x, y float64) {
	return c.labelXOffset, c.labelYOffset
}

// SetLabelOffsets changes the label offsets.
func (c *Crosshair) SetLabelOffsets(x, y float64) {
	if c.labelXOffset == x && c.labelYOffset == y {
		return
	}
	c.labelXOffset = x
	c.labelYOffset = y
	c.notifier.Notify()
}

// Equals reports whether two crosshairs have identical values and styling.
// Listener registrations are not part of equality.
func (c *Crosshair) Equals(o *Crosshair) bool {
	if c == o {
		return true
	}
	if o == nil {
		return false
	}
	return c.value == o.value &&
		c.visible == o.visible &&
		paint.Equal(c.linePaint, o.linePaint) &&
		c.lineStroke.Equal(o.lineStroke) &&
		c.labelVisible == o.labelVisible &&
		c.labelFormat == o.labelFormat &&
		c.labelAnchor == o.labelAnchor &&
		c.labelFont.Equal(o.labelFont) &&
		paint.Equal(c.labelPaint, o.labelPaint) &&
		paint.Equal(c.labelBackground, o.labelBackground) &&
		c.labelXOffset == o.labelXOffset &&
		c.labelYOffset == o.labelYOffset
}

// Clone returns an independent copy of the crosshair. Listeners are not
// carried over.
func (c *Crosshair) Clone() *Crosshair {
	clone := *c
	clone.notifier = event.Notifier{}
	clone.lineStroke = c.lineStroke.Clone()
	return &clone
}
