// Package entity collects the interactive hit regions produced while a chart
// is drawn. A host panel passes a Collection into draw calls and later
// resolves mouse positions against the accumulated entities for tooltip and
// link behavior.
package entity

import "github.com/plotglass/plotglass/pkg/geom"

// Entity is an interactive region of a rendered chart, optionally carrying
// tooltip text and a URL.
type Entity struct {
	Area    geom.Rect
	ToolTip string
	URL     string
}

// Contains reports whether the point lies inside the entity's hit area.
func (e Entity) Contains(x, y float64) bool {
	return e.Area.Contains(x, y)
}

// Collection accumulates entities during drawing. Draw code detects an
// entity-collecting surface by asserting to this interface.
type Collection interface {
	Add(e Entity)
	Count() int
	Entities() []Entity
}

// StandardCollection is the plain slice-backed Collection.
type StandardCollection struct {
	entities []Entity
}

// NewCollection creates an empty collection.
func NewCollection() *StandardCollection {
	return &StandardCollection{}
}

// Add appends an entity to the collection.
func (c *StandardCollection) Add(e Entity) {
	c.entities = append(c.entities, e)
}

// Count returns the number of collected entities.
func (c *StandardCollection) Count() int {
	return len(c.entities)
}

// Entities returns a copy of the collected entities in insertion order.
func (c *StandardCollection) Entities() []Entity {
	out := make([]Entity, len(c.entities))
	copy(out, c.entities)
	return out
}

// EntityAt returns the most recently added entity containing the point, or
// false if none does. Later entities win because they are drawn on top.
func (c *StandardCollection) EntityAt(x, y float64) (Entity, bool) {
	for i := len(c.entities) - 1; i >= 0; i-- {
		if c.entities[i].Contains(x, y) {
			return c.entities[i], true
		}
	}
	return Entity{}, false
}
