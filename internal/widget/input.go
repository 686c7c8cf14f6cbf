package widget

import (
	"sort"

	"github.com/depeter/scrubbar/internal/event"
)

// Point is a window position in pixels.
type Point struct {
	X, Y float64
}

// Snapshot is the pointer state sampled once per tick.
type Snapshot struct {
	Mouse     Point
	MouseDown bool
	// Touches holds the active touches by touch id.
	Touches map[int]Point
}

// mousePointer is the pointer id of the mouse. Touch ids are offset past it.
const mousePointer = 0

// Input turns successive snapshots into pointer events on a container.
type Input struct {
	c *Container

	primed    bool
	mouse     Point
	mouseDown bool
	touches   map[int]Point
}

// NewInput returns an Input feeding c.
func NewInput(c *Container) *Input {
	return &Input{c: c, touches: make(map[int]Point)}
}

// Apply dispatches the pointer events implied by the change from the
// previous snapshot: down, move and up for the mouse and every touch.
func (in *Input) Apply(s Snapshot) {
	in.applyMouse(s)
	in.applyTouches(s.Touches)
}

func (in *Input) applyMouse(s Snapshot) {
	if !in.primed {
		in.primed = true
		in.mouse = s.Mouse
	}
	if s.Mouse != in.mouse {
		in.mouse = s.Mouse
		in.c.DispatchPointer(mousePointer, event.PointerMove, event.Mouse, s.Mouse.X, s.Mouse.Y)
	}
	switch {
	case s.MouseDown && !in.mouseDown:
		in.c.DispatchPointer(mousePointer, event.PointerDown, event.Mouse, s.Mouse.X, s.Mouse.Y)
	case !s.MouseDown && in.mouseDown:
		in.c.DispatchPointer(mousePointer, event.PointerUp, event.Mouse, s.Mouse.X, s.Mouse.Y)
	}
	in.mouseDown = s.MouseDown
}

func (in *Input) applyTouches(now map[int]Point) {
	ids := make([]int, 0, len(now)+len(in.touches))
	for id := range now {
		ids = append(ids, id)
	}
	for id := range in.touches {
		if _, ok := now[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	for _, id := range ids {
		p, active := now[id]
		prev, known := in.touches[id]
		pid := mousePointer + 1 + id
		switch {
		case active && !known:
			in.c.DispatchPointer(pid, event.PointerDown, event.Touch, p.X, p.Y)
			in.touches[id] = p
		case active && p != prev:
			in.c.DispatchPointer(pid, event.PointerMove, event.Touch, p.X, p.Y)
			in.touches[id] = p
		case !active:
			in.c.DispatchPointer(pid, event.PointerUp, event.Touch, prev.X, prev.Y)
			delete(in.touches, id)
		}
	}
}
