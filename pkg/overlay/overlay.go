package overlay

import (
	"github.com/plotglass/plotglass/pkg/canvas"
	"github.com/plotglass/plotglass/pkg/event"
	"github.com/plotglass/plotglass/pkg/plot"
)

// CrosshairOverlay paints crosshairs on top of a chart rendered in a panel.
// It subscribes to each crosshair it holds and republishes marker changes as
// overlay-changed notifications so the host panel knows to repaint.
type CrosshairOverlay struct {
	registry *Registry
	notifier event.Notifier
	subs     map[*Crosshair][]event.Handle
}

// NewCrosshairOverlay creates an overlay that initially contains no
// crosshairs.
func NewCrosshairOverlay() *CrosshairOverlay {
	return &CrosshairOverlay{
		registry: NewRegistry(),
		subs:     map[*Crosshair][]event.Handle{},
	}
}

// OnOverlayChanged registers a listener invoked whenever the overlay's
// content changes or any contained crosshair mutates.
func (o *CrosshairOverlay) OnOverlayChanged(fn func()) event.Handle {
	return o.notifier.Subscribe(fn)
}

// RemoveOverlayListener removes a listener registered with OnOverlayChanged.
func (o *CrosshairOverlay) RemoveOverlayListener(h event.Handle) {
	o.notifier.Unsubscribe(h)
}

func (o *CrosshairOverlay) fireOverlayChanged() {
	o.notifier.Notify()
}

// AddDomainCrosshair adds a crosshair against the domain axis and notifies
// overlay listeners. Nil is not permitted.
func (o *CrosshairOverlay) AddDomainCrosshair(c *Crosshair) {
	if c == nil {
		panic("overlay: nil crosshair not permitted")
	}
	o.registry.AddDomain(c)
	o.subscribe(c)
	o.fireOverlayChanged()
}

// AddRangeCrosshair adds a crosshair against the range axis and notifies
// overlay listeners. Nil is not permitted.
func (o *CrosshairOverlay) AddRangeCrosshair(c *Crosshair) {
	if c == nil {
		panic("overlay: nil crosshair not permitted")
	}
	o.registry.AddRange(c)
	o.subscribe(c)
	o.fireOverlayChanged()
}

// RemoveDomainCrosshair removes a domain crosshair and notifies overlay
// listeners. Removing a crosshair that is not present is a silent no-op.
// Nil is not permitted.
func (o *CrosshairOverlay) RemoveDomainCrosshair(c *Crosshair) {
	if c == nil {
		panic("overlay: nil crosshair not permitted")
	}
	if o.registry.RemoveDomain(c) {
		o.unsubscribe(c)
		o.fireOverlayChanged()
	}
}

// RemoveRangeCrosshair removes a range crosshair and notifies overlay
// listeners. Removing a crosshair that is not present is a silent no-op.
// Nil is not permitted.
func (o *CrosshairOverlay) RemoveRangeCrosshair(c *Crosshair) {
	if c == nil {
		panic("overlay: nil crosshair not permitted")
	}
	if o.registry.RemoveRange(c) {
		o.unsubscribe(c)
		o.fireOverlayChanged()
	}
}

// ClearDomainCrosshairs removes every domain crosshair. Listeners are
// notified once, and not at all when there was nothing to clear.
func (o *CrosshairOverlay) ClearDomainCrosshairs() {
	if o.registry.DomainEmpty() {
		return
	}
	for _, c := range o.registry.DomainCrosshairs() {
		o.registry.RemoveDomain(c)
		o.unsubscribe(c)
	}
	o.fireOverlayChanged()
}

// ClearRangeCrosshairs removes every range crosshair. Listeners are
// notified once, and not at all when there was nothing to clear.
func (o *CrosshairOverlay) ClearRangeCrosshairs() {
	if o.registry.RangeEmpty() {
		return
	}
	for _, c := range o.registry.RangeCrosshairs() {
		o.registry.RemoveRange(c)
		o.unsubscribe(c)
	}
	o.fireOverlayChanged()
}

// DomainCrosshairs returns a copy of the domain crosshair sequence.
func (o *CrosshairOverlay) DomainCrosshairs() []*Crosshair {
	return o.registry.DomainCrosshairs()
}

// RangeCrosshairs returns a copy of the range crosshair sequence.
func (o *CrosshairOverlay) RangeCrosshairs() []*Crosshair {
	return o.registry.RangeCrosshairs()
}

func (o *CrosshairOverlay) subscribe(c *Crosshair) {
	h := c.Subscribe(o.fireOverlayChanged)
	o.subs[c] = append(o.subs[c], h)
}

func (o *CrosshairOverlay) unsubscribe(c *Crosshair) {
	handles := o.subs[c]
	if len(handles) == 0 {
		return
	}
	last := handles[len(handles)-1]
	c.Unsubscribe(last)
	if len(handles) == 1 {
		delete(o.subs, c)
		return
	}
	o.subs[c] = handles[:len(handles)-1]
}

// PaintOverlay renders the crosshairs on top of the chart rendered in the
// panel. Drawing is clipped to the panel's data area and the previous canvas
// state is restored before returning.
//
// Which way a crosshair is drawn depends on the plot orientation: under
// vertical orientation a domain value produces a vertical line and a range
// value a horizontal line; horizontal orientation transposes both.
func (o *CrosshairOverlay) PaintOverlay(cv canvas.Canvas, panel plot.Panel) {
	cv.Push()
	dataArea := panel.ScreenDataArea()
	cv.Clip(dataArea)
	p := panel.Plot()

	xAxis := p.DomainAxis()
	xEdge := p.DomainAxisEdge()
	for _, c := range o.DomainCrosshairs() {
		if !c.Visible() {
			continue
		}
		px := xAxis.ValueToPixel(c.Value(), dataArea, xEdge)
		if p.Orientation() == plot.Vertical {
			drawVerticalCrosshair(cv, dataArea, px, c)
		} else {
			drawHorizontalCrosshair(cv, dataArea, px, c)
		}
	}

	yAxis := p.RangeAxis()
	yEdge := p.RangeAxisEdge()
	for _, c := range o.RangeCrosshairs() {
		if !c.Visible() {
			continue
		}
		px := yAxis.ValueToPixel(c.Value(), dataArea, yEdge)
		if p.Orientation() == plot.Vertical {
			drawHorizontalCrosshair(cv, dataArea, px, c)
		} else {
			drawVerticalCrosshair(cv, dataArea, px, c)
		}
	}

	cv.Pop()
}

// Equals reports whether two overlays hold equal crosshair sequences, by
// element equality in order. Listener registrations are not compared.
func (o *CrosshairOverlay) Equals(other *CrosshairOverlay) bool {
	if o == other {
		return true
	}
	if other == nil {
		return false
	}
	return crosshairsEqual(o.registry.domain, other.registry.domain) &&
		crosshairsEqual(o.registry.rng, other.registry.rng)
}

func crosshairsEqual(a, b []*Crosshair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent overlay with a deep copy of the registry.
// Neither overlay-changed listeners nor the internal crosshair subscriptions
// are carried over: the clone starts with fresh observer state, and callers
// re-attach listeners as needed.
func (o *CrosshairOverlay) Clone() *CrosshairOverlay {
	return &CrosshairOverlay{
		registry: o.registry.Clone(),
		subs:     map[*Crosshair][]event.Handle{},
	}
}
