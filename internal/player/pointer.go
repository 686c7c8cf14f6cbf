package player

import "github.com/depeter/scrubbar/internal/event"

// pointer is the part of a pointer event the seek gesture needs. Pens are
// treated as mice: only touch gets the vertical cancel band.
type pointer struct {
	X, Y float64
	Kind event.PointerKind
}

func pointerOf(e *event.Event) pointer {
	kind := event.Mouse
	if e.PointerKind == event.Touch {
		kind = event.Touch
	}
	return pointer{X: e.X, Y: e.Y, Kind: kind}
}
