package patchcord

// Wire copies one port into another every tick. It is the declarative way of
// patching two modules together; the alternative is a composite module doing
// the assignment in its own Update.
//
// The wire borrows both ports: the pointed-to fields must outlive the wire,
// which the composing code guarantees by unregistering the wire before
// discarding the modules it touches. The source port is never written; the
// destination port is overwritten unconditionally every tick.
type Wire struct {
	from *float32
	to   *float32
}

// NewWire registers a wire copying from into to once per tick.
func NewWire(rack *Rack, from *float32, to *float32) *Wire {
	w := &Wire{from: from, to: to}
	rack.Register(w)
	return w
}

func (w *Wire) Update() {
	*w.to = *w.from
}
