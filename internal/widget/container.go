package widget

import "github.com/depeter/scrubbar/internal/event"

// Window receives pointer events that bubble past the root element, so
// listeners on it track the pointer anywhere in the window.
type Window struct {
	event.Target
}

// ID implements event.Node.
func (w *Window) ID() string { return "window" }

type pointerState struct {
	down    *Element
	capture *Element
}

// Container owns an element tree and routes pointer input into it.
type Container struct {
	root   *Element
	window *Window
	byID   map[string]*Element

	pointers map[int]*pointerState
}

// NewContainer creates a container whose root covers bounds.
func NewContainer(rootID string, bounds Rect) *Container {
	c := &Container{
		root:     NewElement(rootID, bounds),
		window:   &Window{},
		byID:     make(map[string]*Element),
		pointers: make(map[int]*pointerState),
	}
	c.byID[rootID] = c.root
	return c
}

// Root returns the root element.
func (c *Container) Root() *Element { return c.root }

// Window returns the window-level event target.
func (c *Container) Window() *Window { return c.window }

// Add creates an element under parent and indexes it by id.
func (c *Container) Add(parent *Element, id string, bounds Rect) *Element {
	el := parent.Append(NewElement(id, bounds))
	if id != "" {
		c.byID[id] = el
	}
	return el
}

// Lookup returns the element with the given id, or nil.
func (c *Container) Lookup(id string) *Element {
	return c.byID[id]
}

// ByClass returns the elements carrying class in document order.
func (c *Container) ByClass(class string) []*Element {
	var out []*Element
	c.Walk(func(e *Element) bool {
		if e.HasClass(class) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Walk visits elements depth-first in document order. Returning false from
// fn skips the element's subtree.
func (c *Container) Walk(fn func(*Element) bool) {
	var walk func(*Element)
	walk = func(e *Element) {
		if !fn(e) {
			return
		}
		for _, ch := range e.children {
			walk(ch)
		}
	}
	walk(c.root)
}

// ElementFromPoint returns the topmost visible element containing (x, y), or
// nil when the point is outside the root.
func (c *Container) ElementFromPoint(x, y float64) *Element {
	return hit(c.root, x, y)
}

func hit(e *Element, x, y float64) *Element {
	if e.Hidden || (e.ShowWithClass != "" && !e.HasClass(e.ShowWithClass)) {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		if found := hit(e.children[i], x, y); found != nil {
			return found
		}
	}
	if e.Bounds.Contains(x, y) {
		return e
	}
	return nil
}

// DispatchPointer delivers a pointer event for pointer id. The event bubbles
// from its target through the ancestors to the window. Touch pointers are
// implicitly captured by the element they went down on. A pointerup on the
// same element as the matching pointerdown is followed by a click.
func (c *Container) DispatchPointer(id int, typ event.Type, kind event.PointerKind, x, y float64) *event.Event {
	under := c.ElementFromPoint(x, y)
	target := under

	st := c.pointers[id]
	switch typ {
	case event.PointerDown:
		st = &pointerState{down: under}
		if kind == event.Touch {
			st.capture = under
		}
		c.pointers[id] = st
	case event.PointerMove, event.PointerUp:
		if st != nil && st.capture != nil {
			target = st.capture
		}
	}

	ev := &event.Event{Type: typ, X: x, Y: y, PointerKind: kind}
	c.dispatch(target, ev)

	if typ == event.PointerUp {
		delete(c.pointers, id)
		if st != nil && st.down != nil && st.down == under {
			c.dispatch(under, &event.Event{Type: event.Click, X: x, Y: y, PointerKind: kind})
		}
	}
	return ev
}

func (c *Container) dispatch(target *Element, ev *event.Event) {
	if target != nil {
		ev.Target = target
		for n := target; n != nil && !ev.PropagationStopped(); n = n.parent {
			n.Dispatch(ev)
		}
	} else {
		ev.Target = c.window
	}
	if !ev.PropagationStopped() {
		c.window.Dispatch(ev)
	}
}
