package title

import (
	"image/color"
	"testing"

	"github.com/plotglass/plotglass/pkg/entity"
	"github.com/plotglass/plotglass/pkg/geom"
	"github.com/plotglass/plotglass/pkg/paint"
)

// recCanvas records draw calls for assertions.
type recCanvas struct {
	fills   []geom.Rect
	strings []string
	paints  []paint.Paint
	fonts   []paint.Font
}

func (r *recCanvas) Push()                  {}
func (r *recCanvas) Pop()                   {}
func (r *recCanvas) Clip(geom.Rect)         {}
func (r *recCanvas) SetPaint(p paint.Paint) { r.paints = append(r.paints, p) }
func (r *recCanvas) SetStroke(paint.Stroke) {}
func (r *recCanvas) SetFont(f paint.Font)   { r.fonts = append(r.fonts, f) }
func (r *recCanvas) FillRect(rc geom.Rect)  { r.fills = append(r.fills, rc) }
func (r *recCanvas) StrokeRect(geom.Rect)   {}
func (r *recCanvas) StrokeLine(x0, y0, x1, y1 float64) {}
func (r *recCanvas) StringSize(string) (float64, float64) { return 10, 10 }

func (r *recCanvas) DrawString(s string, x, y float64, a geom.Anchor) {
	r.strings = append(r.strings, s)
}

func TestNewTextTitleDefaults(t *testing.T) {
	title := NewTextTitle("Sales")

	if title.Text() != "Sales" {
		t.Errorf("Text = %q", title.Text())
	}
	if title.Position() != geom.EdgeTop {
		t.Errorf("Position = %v, want top", title.Position())
	}
	if title.HAlign() != geom.HAlignCenter || title.VAlign() != geom.VAlignCenter {
		t.Error("Expected centered alignment by default")
	}
	if title.TextAlignment() != geom.HAlignCenter {
		t.Error("Text alignment should default to the block's horizontal alignment")
	}
	if title.MaximumLinesToDisplay() != MaxLinesUnlimited {
		t.Errorf("Max lines = %d, want unlimited", title.MaximumLinesToDisplay())
	}
	if title.BackgroundPaint() != nil {
		t.Error("Background should default to nil (transparent)")
	}
	if !paint.Equal(title.Paint(), DefaultTextPaint) {
		t.Error("Paint should default to DefaultTextPaint")
	}
}

func TestSetTextNotifiesOnlyOnChange(t *testing.T) {
	title := NewTextTitle("a")
	var fired int
	title.Subscribe(func() { fired++ })

	title.SetText("a")
	if fired != 0 {
		t.Errorf("Setting equal text should not notify, got %d", fired)
	}

	title.SetText("b")
	if fired != 1 {
		t.Errorf("Setting different text should notify once, got %d", fired)
	}
}

func TestSetFontAndPaintShortCircuit(t *testing.T) {
	title := NewTextTitle("a")
	var fired int
	title.Subscribe(func() { fired++ })

	title.SetFont(title.Font())
	title.SetPaint(color.Black) // channel-equal to the default
	if fired != 0 {
		t.Errorf("Equal font/paint should not notify, got %d", fired)
	}

	title.SetFont(paint.Font{Family: "serif", Size: 18})
	title.SetPaint(color.NRGBA{R: 200, A: 255})
	if fired != 2 {
		t.Errorf("Expected 2 notifications, got %d", fired)
	}
}

func TestUnconditionalNotifiers(t *testing.T) {
	// Background, tooltip, URL, alignment, expand flag, and max lines
	// notify even when the value is unchanged. This asymmetry with
	// text/font/paint is intentional; keep it.
	title := NewTextTitle("a")
	title.SetToolTipText("tip")

	var fired int
	title.Subscribe(func() { fired++ })

	title.SetBackgroundPaint(nil)                   // unchanged: still notifies
	title.SetToolTipText("tip")                     // unchanged
	title.SetURLText("")                            // unchanged
	title.SetTextAlignment(title.TextAlignment())   // unchanged
	title.SetExpandToFitSpace(false)                // unchanged
	title.SetMaximumLinesToDisplay(MaxLinesUnlimited) // unchanged

	if fired != 6 {
		t.Errorf("Expected 6 unconditional notifications, got %d", fired)
	}
}

func TestSetPaintNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil paint")
		}
	}()
	NewTextTitle("a").SetPaint(nil)
}

func TestDrawFillsBackgroundWhenSet(t *testing.T) {
	area := geom.NewRect(0, 0, 200, 30)
	title := NewTextTitle("Report")

	rec := &recCanvas{}
	title.Draw(rec, area)
	if len(rec.fills) != 0 {
		t.Errorf("Transparent title should not fill, got %d fills", len(rec.fills))
	}
	if len(rec.strings) != 1 || rec.strings[0] != "Report" {
		t.Errorf("Expected title text drawn once, got %v", rec.strings)
	}

	title.SetBackgroundPaint(color.NRGBA{G: 255, A: 255})
	rec = &recCanvas{}
	title.Draw(rec, area)
	if len(rec.fills) != 1 || rec.fills[0] != area {
		t.Errorf("Expected background fill of %+v, got %v", area, rec.fills)
	}
}

func TestDrawRegistersEntity(t *testing.T) {
	area := geom.NewRect(10, 10, 100, 20)
	title := NewTextTitle("Linked")
	title.SetToolTipText("tip")
	title.SetURLText("https://example.com/report")

	ec := entity.NewCollection()
	result := title.DrawWithParams(&recCanvas{}, area, ec)

	if result.EntityCollection != entity.Collection(ec) {
		t.Error("Result should carry the supplied collection")
	}
	if ec.Count() != 1 {
		t.Fatalf("Expected 1 entity, got %d", ec.Count())
	}
	e := ec.Entities()[0]
	if e.Area != area || e.ToolTip != "tip" || e.URL != "https://example.com/report" {
		t.Errorf("Unexpected entity: %+v", e)
	}
}

func TestDrawSkipsEntityWithoutTooltipOrURL(t *testing.T) {
	ec := entity.NewCollection()
	title := NewTextTitle("Plain")

	result := title.DrawWithParams(&recCanvas{}, geom.NewRect(0, 0, 50, 10), ec)

	if ec.Count() != 0 {
		t.Errorf("Expected no entity, got %d", ec.Count())
	}
	// The collection is still attached to the result.
	if result.EntityCollection != entity.Collection(ec) {
		t.Error("Result should carry the supplied collection")
	}
}

func TestDrawWithoutCollection(t *testing.T) {
	title := NewTextTitle("Plain")
	title.SetToolTipText("tip")

	result := title.DrawWithParams(&recCanvas{}, geom.NewRect(0, 0, 50, 10), nil)
	if result.EntityCollection != nil {
		t.Error("Expected empty result without a collection param")
	}
}

func TestEqualsComparesAllAttributes(t *testing.T) {
	a := NewTextTitle("x")
	b := NewTextTitle("x")
	if !a.Equals(b) {
		t.Error("Identically constructed titles should be equal")
	}

	b.SetBackgroundPaint(color.NRGBA{R: 1, A: 255})
	if a.Equals(b) {
		t.Error("Background paint should take part in Equals")
	}

	b.SetBackgroundPaint(nil)
	if !a.Equals(b) {
		t.Error("Resetting the background should restore equality")
	}

	b.SetToolTipText("t")
	if a.Equals(b) {
		t.Error("Tooltip should take part in Equals")
	}
}

func TestHashOmitsSecondaryAttributes(t *testing.T) {
	// Hash covers layout, text, font, and paint only. Titles differing in
	// background, alignment, tooltip, or URL hash identically even though
	// Equals distinguishes them — a documented quirk, not a bug.
	a := NewTextTitle("x")
	b := NewTextTitle("x")
	b.SetBackgroundPaint(color.NRGBA{R: 9, A: 255})
	b.SetToolTipText("tip")
	b.SetURLText("url")
	b.SetTextAlignment(geom.HAlignRight)

	if a.Hash() != b.Hash() {
		t.Error("Hash should ignore background/alignment/tooltip/URL")
	}
	if a.Equals(b) {
		t.Error("Equals should still distinguish the titles")
	}

	b.SetText("y")
	if a.Hash() == b.Hash() {
		t.Error("Hash should depend on text")
	}
}

func TestCloneCarriesNoListeners(t *testing.T) {
	a := NewTextTitle("x")
	var fired int
	a.Subscribe(func() { fired++ })

	clone := a.Clone()
	clone.SetText("y")

	if fired != 0 {
		t.Errorf("Clone mutation notified the original's listeners %d times", fired)
	}
	if a.Text() != "x" {
		t.Error("Clone mutation affected the original")
	}
}

func TestStyledConstructor(t *testing.T) {
	style := NewTextStyleWithBackground(
		paint.Font{Family: "serif", Size: 20, Bold: true},
		color.White,
		color.NRGBA{B: 128, A: 255},
	)
	pos := NewPosition(geom.EdgeBottom, geom.HAlignLeft, geom.VAlignBottom, geom.Insets{Top: 2, Left: 2, Bottom: 2, Right: 2})

	title := NewStyledTextTitle("Styled", style, pos)

	if title.Position() != geom.EdgeBottom {
		t.Errorf("Position = %v, want bottom", title.Position())
	}
	if title.TextAlignment() != geom.HAlignLeft {
		t.Error("Text alignment should follow the position's horizontal alignment")
	}
	if !paint.Equal(title.BackgroundPaint(), color.NRGBA{B: 128, A: 255}) {
		t.Error("Background paint not taken from style")
	}
	if !title.Font().Equal(style.Font()) {
		t.Error("Font not taken from style")
	}
}
