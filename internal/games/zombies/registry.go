package zombies

// Registry is the ordered set of live entities used for drawing.
// Removal only marks an entry; Compact drops marked entries, so removing
// while Each is running never skips or revisits anything.
type Registry struct {
	entries []Entity
	removed map[EntityID]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{removed: make(map[EntityID]bool)}
}

// Add appends e. Later entries draw on top.
func (r *Registry) Add(e Entity) {
	r.entries = append(r.entries, e)
}

// Remove marks the entity with the given id for removal.
func (r *Registry) Remove(id EntityID) {
	r.removed[id] = true
}

// Contains reports whether id is registered and not marked.
func (r *Registry) Contains(id EntityID) bool {
	if r.removed[id] {
		return false
	}
	for _, e := range r.entries {
		if e.ID() == id {
			return true
		}
	}
	return false
}

// Each calls fn for every live entity in registration order.
func (r *Registry) Each(fn func(Entity)) {
	for _, e := range r.entries {
		if !r.removed[e.ID()] {
			fn(e)
		}
	}
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	n := 0
	for _, e := range r.entries {
		if !r.removed[e.ID()] {
			n++
		}
	}
	return n
}

// Compact drops every marked entry, preserving order.
func (r *Registry) Compact() {
	if len(r.removed) == 0 {
		return
	}
	kept := r.entries[:0]
	for _, e := range r.entries {
		if !r.removed[e.ID()] {
			kept = append(kept, e)
		}
	}
	clear(r.entries[len(kept):])
	r.entries = kept
	clear(r.removed)
}

// Clear removes everything.
func (r *Registry) Clear() {
	clear(r.entries)
	r.entries = r.entries[:0]
	clear(r.removed)
}
