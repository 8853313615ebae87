// Package canvas abstracts the 2D drawing surface chart annotations render
// into. Two backends are provided: a raster backend over gg and a vector
// backend over svgo. Overlay and title code draws through the Canvas
// interface and never touches a backend directly.
package canvas

import (
	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// Canvas is a stateful 2D drawing surface. Paint, stroke, font, and clip are
// surface state set before issuing primitives, mirroring how immediate-mode
// graphics contexts work.
type Canvas interface {
	// Push saves the drawing state (paint, stroke, font, clip).
	Push()
	// Pop restores the most recently pushed state.
	Pop()
	// Clip intersects the current clip region with r. Subsequent primitives
	// are confined to the clip region until it is restored via Pop.
	Clip(r geom.Rect)

	SetPaint(p paint.Paint)
	SetStroke(s paint.Stroke)
	SetFont(f paint.Font)

	// StrokeLine draws a line from (x0, y0) to (x1, y1) with the current
	// paint and stroke.
	StrokeLine(x0, y0, x1, y1 float64)
	// FillRect fills r with the current paint.
	FillRect(r geom.Rect)
	// StrokeRect outlines r with the current paint and stroke.
	StrokeRect(r geom.Rect)
	// DrawString draws s with the named point of the string placed at
	// (x, y), using the current font and paint.
	DrawString(s string, x, y float64, anchor geom.Anchor)
	// StringSize reports the rendered size of s in the current font. Vector
	// backends estimate.
	StringSize(s string) (w, h float64)
}
