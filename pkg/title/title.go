// Package title implements chart title blocks. A TextTitle is a styled text
// label positioned against one edge of a chart; every attribute mutation
// notifies subscribed listeners so the host chart can re-lay itself out.
package title

import (
	"hash/fnv"
	"image/color"
	"math"

	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// DefaultPadding is the padding applied around newly created titles.
var DefaultPadding = geom.Insets{Top: 1, Left: 1, Bottom: 1, Right: 1}

// DefaultTextPaint is the foreground paint for new titles.
var DefaultTextPaint = paint.Paint(color.Black)

// MaxLinesUnlimited leaves the number of displayed lines unbounded.
const MaxLinesUnlimited = math.MaxInt

// frame carries the layout attributes shared by all title blocks: which
// chart edge the block sits on, how it aligns there, and its padding.
type frame struct {
	position geom.Edge
	hAlign   geom.HAlign
	vAlign   geom.VAlign
	padding  geom.Insets
}

func defaultFrame() frame {
	return frame{
		position: geom.EdgeTop,
		hAlign:   geom.HAlignCenter,
		vAlign:   geom.VAlignCenter,
		padding:  DefaultPadding,
	}
}

func (f frame) equal(o frame) bool {
	return f == o
}

func (f frame) hash() uint32 {
	h := fnv.New32a()
	h.Write([]byte{
		byte(f.position), byte(f.hAlign), byte(f.vAlign),
	})
	for _, v := range []float64{f.padding.Top, f.padding.Left, f.padding.Bottom, f.padding.Right} {
		bits := math.Float64bits(v)
		h.Write([]byte{
			byte(bits >> 56), byte(bits >> 48), byte(bits >> 40), byte(bits >> 32),
			byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits),
		})
	}
	return h.Sum32()
}

// TextStyle groups the visual attributes of a title: font, foreground
// paint, and optional background paint.
type TextStyle struct {
	font       paint.Font
	paint      paint.Paint
	background paint.Paint
}

// NewTextStyle creates a style without a background. Nil paint is not
// permitted.
func NewTextStyle(font paint.Font, p paint.Paint) TextStyle {
	return NewTextStyleWithBackground(font, p, nil)
}

// NewTextStyleWithBackground creates a style with an optional background
// paint; nil means transparent.
func NewTextStyleWithBackground(font paint.Font, p, background paint.Paint) TextStyle {
	if p == nil {
		panic("title: nil paint not permitted")
	}
	return TextStyle{font: font, paint: p, background: background}
}

// Font returns the style's font.
func (s TextStyle) Font() paint.Font { return s.font }

// Paint returns the style's foreground paint.
func (s TextStyle) Paint() paint.Paint { return s.paint }

// Background returns the style's background paint, possibly nil.
func (s TextStyle) Background() paint.Paint { return s.background }

// Equal reports whether two styles draw identically.
func (s TextStyle) Equal(o TextStyle) bool {
	return s.font.Equal(o.font) &&
		paint.Equal(s.paint, o.paint) &&
		paint.Equal(s.background, o.background)
}

// Position groups the layout attributes of a title block.
type Position struct {
	edge    geom.Edge
	hAlign  geom.HAlign
	vAlign  geom.VAlign
	padding geom.Insets
}

// NewPosition creates a title position.
func NewPosition(edge geom.Edge, hAlign geom.HAlign, vAlign geom.VAlign, padding geom.Insets) Position {
	return Position{edge: edge, hAlign: hAlign, vAlign: vAlign, padding: padding}
}

// DefaultPosition is centered against the top edge with default padding.
func DefaultPosition() Position {
	f := defaultFrame()
	return Position{edge: f.position, hAlign: f.hAlign, vAlign: f.vAlign, padding: f.padding}
}

// Edge returns the chart edge the block sits on.
func (p Position) Edge() geom.Edge { return p.edge }

// HAlign returns the horizontal alignment along the edge.
func (p Position) HAlign() geom.HAlign { return p.hAlign }

// VAlign returns the vertical alignment along the edge.
func (p Position) VAlign() geom.VAlign { return p.vAlign }

// Padding returns the padding around the block.
func (p Position) Padding() geom.Insets { return p.padding }
