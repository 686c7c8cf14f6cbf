package event

// Registry records every listener a mount adds so they can all be removed
// together on teardown. One registry belongs to one mount.
type Registry struct {
	records []record
}

type record struct {
	target Listenable
	typ    Type
	id     ListenerID
	opts   Options
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register attaches h to target and records the registration. A Once
// registration forgets its record when it fires.
func (r *Registry) Register(target Listenable, typ Type, h Handler, opts Options) ListenerID {
	var id ListenerID
	handler := h
	if opts.Once {
		handler = func(e *Event) {
			r.forget(id)
			h(e)
		}
	}
	id = target.AddEventListener(typ, handler, opts)
	r.records = append(r.records, record{target: target, typ: typ, id: id, opts: opts})
	return id
}

func (r *Registry) forget(id ListenerID) (record, bool) {
	for i, rec := range r.records {
		if rec.id == id {
			r.records = append(r.records[:i:i], r.records[i+1:]...)
			return rec, true
		}
	}
	return record{}, false
}

// Remove detaches a single registration ahead of teardown.
func (r *Registry) Remove(id ListenerID) bool {
	rec, ok := r.forget(id)
	if !ok {
		return false
	}
	return rec.target.RemoveEventListener(rec.typ, rec.id, rec.opts)
}

// TeardownAll detaches every recorded listener with the exact
// target/type/options it was added with, then forgets them.
func (r *Registry) TeardownAll() {
	for _, rec := range r.records {
		rec.target.RemoveEventListener(rec.typ, rec.id, rec.opts)
	}
	r.records = nil
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	return len(r.records)
}
