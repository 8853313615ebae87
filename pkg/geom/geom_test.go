package geom

import "testing"

func TestRectIntersect(t *testing.T) {
	a := NewRect(0, 0, 100, 50)
	b := NewRect(50, 10, 100, 100)

	got := a.Intersect(b)
	want := Rect{X: 50, Y: 10, W: 50, H: 40}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	// Disjoint rectangles intersect to empty.
	c := NewRect(500, 500, 10, 10)
	if got := a.Intersect(c); !got.IsEmpty() {
		t.Errorf("Expected empty intersection, got %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	cases := []struct {
		x, y float64
		want bool
	}{
		{15, 25, true},
		{10, 20, true},  // top-left corner
		{40, 60, true},  // bottom-right corner
		{9, 25, false},  // left of rect
		{15, 61, false}, // below rect
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestInsetsShrink(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	i := Insets{Top: 10, Left: 5, Bottom: 10, Right: 5}

	got := i.Shrink(r)
	want := Rect{X: 5, Y: 10, W: 90, H: 80}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	// Oversized insets collapse to empty rather than negative.
	big := Insets{Top: 200, Left: 200, Bottom: 0, Right: 0}
	if got := big.Shrink(r); !got.IsEmpty() {
		t.Errorf("Expected empty rect, got %+v", got)
	}
}

func TestEdgeDirection(t *testing.T) {
	if !EdgeTop.IsTopOrBottom() || !EdgeBottom.IsTopOrBottom() {
		t.Error("Top/bottom edges should report IsTopOrBottom")
	}
	if !EdgeLeft.IsLeftOrRight() || !EdgeRight.IsLeftOrRight() {
		t.Error("Left/right edges should report IsLeftOrRight")
	}
	if EdgeTop.IsLeftOrRight() || EdgeLeft.IsTopOrBottom() {
		t.Error("Edge direction predicates overlap")
	}
}

func TestAnchorFactors(t *testing.T) {
	cases := []struct {
		anchor Anchor
		ax, ay float64
	}{
		{AnchorTopLeft, 0, 1},
		{AnchorCenter, 0.5, 0.5},
		{AnchorBottomRight, 1, 0},
		{AnchorTopRight, 1, 1},
		{AnchorBottomLeft, 0, 0},
	}
	for _, c := range cases {
		ax, ay := c.anchor.Factors()
		if ax != c.ax || ay != c.ay {
			t.Errorf("%v.Factors() = (%v,%v), want (%v,%v)", c.anchor, ax, ay, c.ax, c.ay)
		}
	}
}
