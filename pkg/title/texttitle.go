package title

import (
	"github.com/plotglass/plotglass/pkg/canvas"
	"github.com/plotglass/plotglass/pkg/entity"
	"github.com/plotglass/plotglass/pkg/event"
	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// TextTitle is a text label block for a chart. Text, font, and foreground
// paint are always present; background paint, tooltip, and URL are optional
// and disabled when empty.
//
// Setter notification semantics are deliberately asymmetric: text, font, and
// paint only notify when the new value differs from the old, while
// alignment, background paint, tooltip, URL, the expand flag, and the line
// bound notify unconditionally. Tests rely on this distinction; do not
// normalize it.
type TextTitle struct {
	frame
	notifier event.Notifier

	text          string
	font          paint.Font
	textPaint     paint.Paint
	textAlignment geom.HAlign
	background    paint.Paint
	toolTipText   string
	urlText       string
	expandToFit   bool
	maxLines      int
}

// BlockResult carries the outcome of drawing a block, including any entity
// collection that accumulated interactive regions.
type BlockResult struct {
	EntityCollection entity.Collection
}

// NewTextTitle creates a top-centered title with the default font and paint.
func NewTextTitle(text string) *TextTitle {
	return NewTextTitleWithFont(text, paint.DefaultFont)
}

// NewTextTitleWithFont creates a top-centered title in the given font.
func NewTextTitleWithFont(text string, font paint.Font) *TextTitle {
	return newTextTitle(text, font, DefaultTextPaint, DefaultPosition())
}

// NewStyledTextTitle creates a title from a style and position.
func NewStyledTextTitle(text string, style TextStyle, pos Position) *TextTitle {
	t := newTextTitle(text, style.Font(), style.Paint(), pos)
	t.background = style.Background()
	return t
}

func newTextTitle(text string, font paint.Font, p paint.Paint, pos Position) *TextTitle {
	if p == nil {
		panic("title: nil paint not permitted")
	}
	return &TextTitle{
		frame: frame{
			position: pos.Edge(),
			hAlign:   pos.HAlign(),
			vAlign:   pos.VAlign(),
			padding:  pos.Padding(),
		},
		text:      text,
		font:      font,
		textPaint: p,
		// The text alignment defaults to the block's horizontal alignment;
		// they are separate attributes but usually want to agree.
		textAlignment: pos.HAlign(),
		maxLines:      MaxLinesUnlimited,
	}
}

// Subscribe registers a listener invoked after every qualifying mutation.
func (t *TextTitle) Subscribe(fn func()) event.Handle {
	return t.notifier.Subscribe(fn)
}

// Unsubscribe removes a listener.
func (t *TextTitle) Unsubscribe(h event.Handle) {
	t.notifier.Unsubscribe(h)
}

// Text returns the title text.
func (t *TextTitle) Text() string { return t.text }

// SetText replaces the title text and notifies listeners if it changed.
func (t *TextTitle) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.notifier.Notify()
}

// Font returns the title font.
func (t *TextTitle) Font() paint.Font { return t.font }

// SetFont replaces the font and notifies listeners if it changed.
func (t *TextTitle) SetFont(f paint.Font) {
	if t.font.Equal(f) {
		return
	}
	t.font = f
	t.notifier.Notify()
}

// Paint returns the foreground paint, never nil.
func (t *TextTitle) Paint() paint.Paint { return t.textPaint }

// SetPaint replaces the foreground paint and notifies listeners if it
// changed. Nil is not permitted.
func (t *TextTitle) SetPaint(p paint.Paint) {
	if p == nil {
		panic("title: nil paint not permitted")
	}
	if paint.Equal(t.textPaint, p) {
		return
	}
	t.textPaint = p
	t.notifier.Notify()
}

// TextAlignment returns the horizontal alignment of the text within the
// block.
func (t *TextTitle) TextAlignment() geom.HAlign { return t.textAlignment }

// SetTextAlignment replaces the text alignment. Listeners are always
// notified, even when the alignment is unchanged.
func (t *TextTitle) SetTextAlignment(a geom.HAlign) {
	t.textAlignment = a
	t.notifier.Notify()
}

// BackgroundPaint returns the background paint, nil when the background is
// transparent.
func (t *TextTitle) BackgroundPaint() paint.Paint { return t.background }

// SetBackgroundPaint replaces the background paint; nil makes the
// background transparent. Listeners are always notified.
func (t *TextTitle) SetBackgroundPaint(p paint.Paint) {
	t.background = p
	t.notifier.Notify()
}

// ToolTipText returns the tooltip text, empty when disabled.
func (t *TextTitle) ToolTipText() string { return t.toolTipText }

// SetToolTipText replaces the tooltip text; empty disables the tooltip.
// Listeners are always notified.
func (t *TextTitle) SetToolTipText(text string) {
	t.toolTipText = text
	t.notifier.Notify()
}

// URLText returns the URL text, empty when disabled.
func (t *TextTitle) URLText() string { return t.urlText }

// SetURLText replaces the URL text; empty disables the link. Listeners are
// always notified.
func (t *TextTitle) SetURLText(text string) {
	t.urlText = text
	t.notifier.Notify()
}

// ExpandToFitSpace reports whether the title grows to fill available space.
func (t *TextTitle) ExpandToFitSpace() bool { return t.expandToFit }

// SetExpandToFitSpace replaces the expand flag. Listeners are always
// notified.
func (t *TextTitle) SetExpandToFitSpace(expand bool) {
	t.expandToFit = expand
	t.notifier.Notify()
}

// MaximumLinesToDisplay returns the line bound, MaxLinesUnlimited by
// default.
func (t *TextTitle) MaximumLinesToDisplay() int { return t.maxLines }

// SetMaximumLinesToDisplay replaces the line bound. Listeners are always
// notified.
func (t *TextTitle) SetMaximumLinesToDisplay(max int) {
	t.maxLines = max
	t.notifier.Notify()
}

// Position returns the chart edge the title sits on.
func (t *TextTitle) Position() geom.Edge { return t.position }

// SetPosition moves the title to another edge. Listeners are always
// notified.
func (t *TextTitle) SetPosition(e geom.Edge) {
	t.position = e
	t.notifier.Notify()
}

// HAlign returns the block's horizontal alignment.
func (t *TextTitle) HAlign() geom.HAlign { return t.hAlign }

// VAlign returns the block's vertical alignment.
func (t *TextTitle) VAlign() geom.VAlign { return t.vAlign }

// Padding returns the padding around the block.
func (t *TextTitle) Padding() geom.Insets { return t.padding }

// Draw renders the title into area without entity collection.
func (t *TextTitle) Draw(cv canvas.Canvas, area geom.Rect) {
	t.DrawWithParams(cv, area, nil)
}

// DrawWithParams renders the title into area. When params is an entity
// Collection and the title carries tooltip or URL text, an interactive
// entity spanning area is registered and the collection is attached to the
// result.
func (t *TextTitle) DrawWithParams(cv canvas.Canvas, area geom.Rect, params any) BlockResult {
	if t.background != nil {
		cv.SetPaint(t.background)
		cv.FillRect(area)
	}
	cv.SetFont(t.font)
	cv.SetPaint(t.textPaint)
	t.drawText(cv, area)

	var result BlockResult
	if ec, ok := params.(entity.Collection); ok {
		if t.toolTipText != "" || t.urlText != "" {
			ec.Add(entity.Entity{
				Area:    area,
				ToolTip: t.toolTipText,
				URL:     t.urlText,
			})
		}
		result.EntityCollection = ec
	}
	return result
}

// drawText places the title text inside the padded area according to the
// text alignment. Wrapping and line-bound enforcement belong to the text
// layout collaborator; a single line is drawn here.
func (t *TextTitle) drawText(cv canvas.Canvas, area geom.Rect) {
	if t.text == "" {
		return
	}
	inner := t.padding.Shrink(area)
	if inner.IsEmpty() {
		return
	}
	var x float64
	var anchor geom.Anchor
	switch t.textAlignment {
	case geom.HAlignLeft:
		x = inner.MinX()
		anchor = geom.AnchorCenterLeft
	case geom.HAlignRight:
		x = inner.MaxX()
		anchor = geom.AnchorCenterRight
	default:
		x = inner.CenterX()
		anchor = geom.AnchorCenter
	}
	cv.DrawString(t.text, x, inner.CenterY(), anchor)
}

// Equals compares all visual and layout attributes, paints by color
// channels.
func (t *TextTitle) Equals(o *TextTitle) bool {
	if t == o {
		return true
	}
	if o == nil {
		return false
	}
	return t.text == o.text &&
		t.font.Equal(o.font) &&
		paint.Equal(t.textPaint, o.textPaint) &&
		t.textAlignment == o.textAlignment &&
		paint.Equal(t.background, o.background) &&
		t.maxLines == o.maxLines &&
		t.expandToFit == o.expandToFit &&
		t.toolTipText == o.toolTipText &&
		t.urlText == o.urlText &&
		t.frame.equal(o.frame)
}

// Hash combines the layout hash with text, font, and paint. Alignment,
// background paint, tooltip, and URL take part in Equals but not in Hash,
// so equal hashes do not imply interchangeable titles for those attributes.
func (t *TextTitle) Hash() uint32 {
	h := t.frame.hash()
	h = 29*h + stringHash(t.text)
	h = 29*h + paint.HashFont(t.font)
	h = 29*h + paint.Hash(t.textPaint)
	return h
}

func stringHash(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Clone returns an independent copy of the title. Listeners are not carried
// over.
func (t *TextTitle) Clone() *TextTitle {
	clone := *t
	clone.notifier = event.Notifier{}
	return &clone
}
