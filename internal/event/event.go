// Package event implements DOM-style event targets for widget elements and
// media backends, plus the per-mount listener registry.
package event

import "sync/atomic"

// Type names an event.
type Type string

// Media events.
const (
	Play           Type = "play"
	Pause          Type = "pause"
	Ended          Type = "ended"
	TimeUpdate     Type = "timeupdate"
	Progress       Type = "progress"
	LoadedMetadata Type = "loadedmetadata"
	CanPlay        Type = "canplay"
)

// Input events.
const (
	Click       Type = "click"
	PointerDown Type = "pointerdown"
	PointerMove Type = "pointermove"
	PointerUp   Type = "pointerup"
)

// PointerKind is the device that produced a pointer event.
type PointerKind int

const (
	Mouse PointerKind = iota
	Touch
	Pen
)

func (k PointerKind) String() string {
	switch k {
	case Touch:
		return "touch"
	case Pen:
		return "pen"
	default:
		return "mouse"
	}
}

// Node is anything an event can be targeted at.
type Node interface {
	ID() string
}

// Event is dispatched to handlers. Pointer fields are zero for media events.
type Event struct {
	Type   Type
	Target Node

	X, Y        float64
	PointerKind PointerKind

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the default action as suppressed.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from bubbling further.
func (e *Event) StopPropagation() { e.stopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.stopped }

// Handler receives events.
type Handler func(*Event)

// Options mirror addEventListener options.
type Options struct {
	// Once removes the listener before its first invocation.
	Once bool
	// Capture must match between add and remove.
	Capture bool
}

// ListenerID identifies one registration. IDs are unique process-wide.
type ListenerID uint64

var lastID atomic.Uint64

func nextID() ListenerID {
	return ListenerID(lastID.Add(1))
}

// Listenable is implemented by anything handlers can be attached to.
type Listenable interface {
	AddEventListener(typ Type, h Handler, opts Options) ListenerID
	RemoveEventListener(typ Type, id ListenerID, opts Options) bool
}
