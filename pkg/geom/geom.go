// Package geom provides the small geometric vocabulary shared by the chart
// annotation components: rectangles, edges, alignments, insets, and text
// anchors.
package geom

// Rect is an axis-aligned rectangle in screen coordinates. Y increases
// downward, matching raster and SVG surfaces.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from an origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the boundary are inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x <= r.MaxX() && y >= r.MinY() && y <= r.MaxY()
}

// Intersect returns the overlap of two rectangles. The result is an empty
// rectangle when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.MinX(), o.MinX())
	y0 := max(r.MinY(), o.MinY())
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Point is a location in screen coordinates.
type Point struct {
	X, Y float64
}

// Edge identifies one side of a rectangle. Axes are attached to an edge of
// the plot's data area, and the edge determines which dimension a data value
// maps along.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// IsTopOrBottom reports whether the edge runs horizontally, so values map
// along the width of the area.
func (e Edge) IsTopOrBottom() bool {
	return e == EdgeTop || e == EdgeBottom
}

// IsLeftOrRight reports whether the edge runs vertically, so values map
// along the height of the area.
func (e Edge) IsLeftOrRight() bool {
	return e == EdgeLeft || e == EdgeRight
}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "unknown"
}

// HAlign is a horizontal alignment.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

func (a HAlign) String() string {
	switch a {
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	}
	return "unknown"
}

// VAlign is a vertical alignment.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

func (a VAlign) String() string {
	switch a {
	case VAlignTop:
		return "top"
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "bottom"
	}
	return "unknown"
}

// Insets is padding around the sides of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Shrink returns r reduced by the insets on every side. A rectangle smaller
// than the insets collapses to empty.
func (i Insets) Shrink(r Rect) Rect {
	out := Rect{
		X: r.X + i.Left,
		Y: r.Y + i.Top,
		W: r.W - i.Left - i.Right,
		H: r.H - i.Top - i.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Anchor names the point of a text string that is placed at a given
// location when the string is drawn.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

// Factors returns the fractional offsets for anchored string drawing: ax is
// the fraction of the string width to the left of the anchor point, ay the
// fraction of the string height below it.
func (a Anchor) Factors() (ax, ay float64) {
	switch a {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		ay = 1
	case AnchorCenterLeft, AnchorCenter, AnchorCenterRight:
		ay = 0.5
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		ay = 0
	}
	switch a {
	case AnchorTopLeft, AnchorCenterLeft, AnchorBottomLeft:
		ax = 0
	case AnchorTopCenter, AnchorCenter, AnchorBottomCenter:
		ax = 0.5
	case AnchorTopRight, AnchorCenterRight, AnchorBottomRight:
		ax = 1
	}
	return ax, ay
}
