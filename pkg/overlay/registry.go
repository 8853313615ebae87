package overlay

// Registry stores the crosshairs attached to the domain and range axes.
// Insertion order is preserved and duplicates are allowed. Accessors return
// copies so callers cannot mutate the stored sequences behind the overlay's
// back.
type Registry struct {
	domain []*Crosshair
	rng    []*Crosshair
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddDomain appends a crosshair to the domain sequence.
func (r *Registry) AddDomain(c *Crosshair) {
	r.domain = append(r.domain, c)
}

// AddRange appends a crosshair to the range sequence.
func (r *Registry) AddRange(c *Crosshair) {
	r.rng = append(r.rng, c)
}

// RemoveDomain removes the first domain crosshair equal to c and reports
// whether a removal occurred.
func (r *Registry) RemoveDomain(c *Crosshair) bool {
	var removed bool
	r.domain, removed = removeFirst(r.domain, c)
	return removed
}

// RemoveRange removes the first range crosshair equal to c and reports
// whether a removal occurred.
func (r *Registry) RemoveRange(c *Crosshair) bool {
	var removed bool
	r.rng, removed = removeFirst(r.rng, c)
	return removed
}

func removeFirst(list []*Crosshair, c *Crosshair) ([]*Crosshair, bool) {
	for i, e := range list {
		if e == c || e.Equals(c) {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

// DomainEmpty reports whether no domain crosshairs are stored.
func (r *Registry) DomainEmpty() bool {
	return len(r.domain) == 0
}

// RangeEmpty reports whether no range crosshairs are stored.
func (r *Registry) RangeEmpty() bool {
	return len(r.rng) == 0
}

// DomainCrosshairs returns a copy of the domain sequence in insertion order.
func (r *Registry) DomainCrosshairs() []*Crosshair {
	out := make([]*Crosshair, len(r.domain))
	copy(out, r.domain)
	return out
}

// RangeCrosshairs returns a copy of the range sequence in insertion order.
func (r *Registry) RangeCrosshairs() []*Crosshair {
	out := make([]*Crosshair, len(r.rng))
	copy(out, r.rng)
	return out
}

// Clone returns a deep copy: both sequences are new and every contained
// crosshair is itself cloned.
func (r *Registry) Clone() *Registry {
	clone := &Registry{
		domain: make([]*Crosshair, len(r.domain)),
		rng:    make([]*Crosshair, len(r.rng)),
	}
	for i, c := range r.domain {
		clone.domain[i] = c.Clone()
	}
	for i, c := range r.rng {
		clone.rng[i] = c.Clone()
	}
	return clone
}
