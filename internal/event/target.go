package event

type listener struct {
	id   ListenerID
	h    Handler
	opts Options
}

// Target holds listeners by event type. It is meant to be embedded and is not
// safe for concurrent use; everything runs on the UI thread.
type Target struct {
	listeners map[Type][]listener
}

// AddEventListener attaches h and returns its registration id.
func (t *Target) AddEventListener(typ Type, h Handler, opts Options) ListenerID {
	if t.listeners == nil {
		t.listeners = make(map[Type][]listener)
	}
	id := nextID()
	t.listeners[typ] = append(t.listeners[typ], listener{id: id, h: h, opts: opts})
	return id
}

// RemoveEventListener detaches the listener registered under id. The Capture
// flag must match the one used when adding, as in the DOM.
func (t *Target) RemoveEventListener(typ Type, id ListenerID, opts Options) bool {
	ls := t.listeners[typ]
	for i, l := range ls {
		if l.id != id || l.opts.Capture != opts.Capture {
			continue
		}
		t.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
		if len(t.listeners[typ]) == 0 {
			delete(t.listeners, typ)
		}
		return true
	}
	return false
}

// Dispatch invokes the listeners for e.Type in registration order. Listeners
// added during dispatch do not see the current event; listeners removed
// during dispatch are skipped.
func (t *Target) Dispatch(e *Event) {
	snapshot := append([]listener(nil), t.listeners[e.Type]...)
	for _, l := range snapshot {
		if !t.has(e.Type, l.id) {
			continue
		}
		if l.opts.Once {
			t.RemoveEventListener(e.Type, l.id, l.opts)
		}
		l.h(e)
	}
}

// ListenerCount returns the number of listeners for typ, or for every type
// when typ is empty.
func (t *Target) ListenerCount(typ Type) int {
	if typ != "" {
		return len(t.listeners[typ])
	}
	n := 0
	for _, ls := range t.listeners {
		n += len(ls)
	}
	return n
}

func (t *Target) has(typ Type, id ListenerID) bool {
	for _, l := range t.listeners[typ] {
		if l.id == id {
			return true
		}
	}
	return false
}
