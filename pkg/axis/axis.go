// Package axis maps data values to screen pixels for the edge of a plot the
// axis is attached to.
package axis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/plotglass/plotglass/pkg/geom"
)

// Axis converts between data space and screen space for a given drawing area
// and axis edge.
type Axis interface {
	// ValueToPixel maps a data value to a screen coordinate. For a top or
	// bottom edge the result is an x coordinate; for a left or right edge a
	// y coordinate.
	ValueToPixel(value float64, area geom.Rect, edge geom.Edge) float64

	// PixelToValue is the inverse of ValueToPixel.
	PixelToValue(pixel float64, area geom.Rect, edge geom.Edge) float64
}

// Linear is an axis with a linear scale over [Lower, Upper].
//
// Along a top or bottom edge values increase left to right; along a left or
// right edge values increase bottom to top (screen y runs downward).
// Inverted flips the direction on either edge kind.
type Linear struct {
	Lower    float64
	Upper    float64
	Inverted bool
}

// NewLinear creates a linear axis over the given bounds.
func NewLinear(lower, upper float64) *Linear {
	return &Linear{Lower: lower, Upper: upper}
}

// ValueToPixel implements Axis. A degenerate range (Upper == Lower) maps
// every value to the low-coordinate end of the area.
func (a *Linear) ValueToPixel(value float64, area geom.Rect, edge geom.Edge) float64 {
	span := a.Upper - a.Lower
	var frac float64
	if span != 0 {
		frac = (value - a.Lower) / span
	}
	if a.Inverted {
		frac = 1 - frac
	}
	if edge.IsTopOrBottom() {
		return area.MinX() + frac*area.W
	}
	return area.MaxY() - frac*area.H
}

// PixelToValue implements Axis.
func (a *Linear) PixelToValue(pixel float64, area geom.Rect, edge geom.Edge) float64 {
	var frac float64
	if edge.IsTopOrBottom() {
		if area.W != 0 {
			frac = (pixel - area.MinX()) / area.W
		}
	} else {
		if area.H != 0 {
			frac = (area.MaxY() - pixel) / area.H
		}
	}
	if a.Inverted {
		frac = 1 - frac
	}
	return a.Lower + frac*(a.Upper-a.Lower)
}

// Ticks returns n evenly spaced tick values spanning the axis bounds,
// endpoints included. It returns nil for n < 2.
func (a *Linear) Ticks(n int) []float64 {
	if n < 2 {
		return nil
	}
	return floats.Span(make([]float64, n), a.Lower, a.Upper)
}

// Contains reports whether a value lies within the axis bounds.
func (a *Linear) Contains(value float64) bool {
	return value >= a.Lower && value <= a.Upper
}
