// Package paint describes the drawing attributes used by chart annotations:
// paints (colors), fonts, and line strokes.
package paint

import (
	"hash/fnv"
	"image/color"
)

// Paint is the fill or stroke color applied to a drawing primitive. Any
// color.Color works; nil means "no paint" where a component permits it.
type Paint = color.Color

// Equal compares two paints by their resolved color channels rather than by
// dynamic type, so color.Black and an equivalent RGBA value compare equal.
// Two nil paints are equal; nil never equals a non-nil paint.
func Equal(a, b Paint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// Hash returns a channel-based hash of a paint, consistent with Equal.
// A nil paint hashes to zero.
func Hash(p Paint) uint32 {
	if p == nil {
		return 0
	}
	r, g, b, a := p.RGBA()
	h := fnv.New32a()
	buf := []byte{
		byte(r >> 8), byte(r),
		byte(g >> 8), byte(g),
		byte(b >> 8), byte(b),
		byte(a >> 8), byte(a),
	}
	h.Write(buf)
	return h.Sum32()
}

// Font describes the typeface for text drawing. Backends that render from
// font files use Path when it is set and fall back to a built-in face
// otherwise; vector backends emit the family name.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
	Path   string
}

// DefaultFont is the font used by titles and crosshair labels when the
// caller does not supply one.
var DefaultFont = Font{Family: "sans-serif", Size: 12, Bold: true}

// Equal reports whether two fonts describe the same typeface.
func (f Font) Equal(o Font) bool {
	return f == o
}

// HashFont returns a hash of a font, consistent with Font.Equal.
func HashFont(f Font) uint32 {
	h := fnv.New32a()
	h.Write([]byte(f.Family))
	h.Write([]byte{boolByte(f.Bold), boolByte(f.Italic)})
	size := uint64(f.Size * 64)
	h.Write([]byte{
		byte(size >> 24), byte(size >> 16), byte(size >> 8), byte(size),
	})
	h.Write([]byte(f.Path))
	return h.Sum32()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Stroke describes how lines are drawn: width and an optional dash pattern.
type Stroke struct {
	Width     float64
	Dash      []float64
	DashPhase float64
}

// SolidStroke returns a plain stroke of the given width.
func SolidStroke(width float64) Stroke {
	return Stroke{Width: width}
}

// Equal reports whether two strokes draw identically.
func (s Stroke) Equal(o Stroke) bool {
	if s.Width != o.Width || s.DashPhase != o.DashPhase {
		return false
	}
	if len(s.Dash) != len(o.Dash) {
		return false
	}
	for i := range s.Dash {
		if s.Dash[i] != o.Dash[i] {
			return false
		}
	}
	return true
}

// Clone returns a stroke with its own copy of the dash pattern.
func (s Stroke) Clone() Stroke {
	out := s
	if s.Dash != nil {
		out.Dash = make([]float64, len(s.Dash))
		copy(out.Dash, s.Dash)
	}
	return out
}
