package player

import (
	"math"

	"github.com/depeter/scrubbar/internal/event"
	"github.com/depeter/scrubbar/internal/timefmt"
	"github.com/depeter/scrubbar/internal/widget"
)

// dragSession lives from pointer-down on the bar until the matching
// pointer-up on the window.
type dragSession struct {
	// cancelBounds is taken once at drag start with top and bottom floored.
	cancelBounds widget.Rect
	overCancel   bool

	moveID event.ListenerID
	upID   event.ListenerID
}

func (ct *Controller) bindSeek() {
	ct.reg.Register(ct.el.barHolder, event.PointerDown, ct.onPointerDown, event.Options{})
}

func (ct *Controller) onPointerDown(e *event.Event) {
	e.PreventDefault()
	e.StopPropagation()
	// Without metadata there is no second to seek to.
	if ct.drag != nil || ct.singleSecond <= 0 {
		return
	}

	ct.el.circle.AddClass(widget.ClassDisplay)
	ct.el.cancelSeek.AddClass(widget.ClassDisplay)

	b := ct.el.cancelSeekButton.BoundingClientRect()
	top, bottom := math.Floor(b.Top()), math.Floor(b.Bottom())
	s := &dragSession{cancelBounds: widget.Rect{X: b.X, Y: top, W: b.W, H: bottom - top}}
	ct.drag = s

	ct.updatePosition(pointerOf(e))

	win := ct.c.Window()
	s.moveID = ct.reg.Register(win, event.PointerMove, func(e *event.Event) {
		ct.move.Call(pointerOf(e))
	}, event.Options{})
	s.upID = ct.reg.Register(win, event.PointerUp, ct.onPointerUp, event.Options{})
}

// updatePosition previews the position under p without seeking.
func (ct *Controller) updatePosition(p pointer) {
	s := ct.drag
	if s == nil {
		return
	}
	if p.Kind == event.Touch {
		ct.trackCancelBand(s, p.Y)
	}

	bar := ct.el.barHolder
	var secs float64
	if w := bar.ClientWidth(); w > 0 {
		raw := (p.X - bar.OffsetLeft()) / w * 100
		switch {
		case raw < 0:
			secs = 0
		case raw > 100:
			secs = ct.lastSecond()
		default:
			secs = math.Min(ct.secondsAt(raw), ct.lastSecond())
		}
	}

	ct.el.cancelSeekCurrentTime.SetText(timefmt.Format(secs))
	ct.moveBar(secs * ct.singleSecond)
}

// trackCancelBand toggles the cancel class when a touch enters or leaves the
// cancel button's vertical band.
func (ct *Controller) trackCancelBand(s *dragSession, y float64) {
	inside := y > s.cancelBounds.Top() && y < s.cancelBounds.Bottom()
	switch {
	case inside && !s.overCancel:
		s.overCancel = true
		ct.el.cancelSeek.AddClass(widget.ClassCancel)
	case !inside && s.overCancel:
		s.overCancel = false
		ct.el.cancelSeek.RemoveClass(widget.ClassCancel)
	}
}

func (ct *Controller) onPointerUp(e *event.Event) {
	defer ct.endDrag()

	ct.move.Flush()
	if ct.cancelPressed(e, pointerOf(e)) {
		ct.renderCommitted()
		return
	}
	ct.commit()
}

func (ct *Controller) cancelPressed(e *event.Event, p pointer) bool {
	btn := ct.el.cancelSeekButton
	if p.Kind == event.Touch {
		return ct.c.ElementFromPoint(p.X, p.Y) == btn
	}
	return e.Target == event.Node(btn)
}

// commit seeks to the position the handle shows.
func (ct *Controller) commit() {
	secs := ct.secondsAt(ct.el.circleHolder.Left())
	n := int(secs)
	ct.setAbsolute(n)
	ct.media.SetCurrentTime(secs)
	ct.renderCommitted()
}

// endDrag returns to idle: window listeners go, the throttle is dropped and
// the overlay is hidden.
func (ct *Controller) endDrag() {
	s := ct.drag
	if s == nil {
		return
	}
	ct.drag = nil
	ct.reg.Remove(s.moveID)
	ct.reg.Remove(s.upID)
	ct.move.Cancel()
	ct.el.circle.RemoveClass(widget.ClassDisplay)
	ct.el.cancelSeek.RemoveClass(widget.ClassDisplay)
	ct.el.cancelSeek.RemoveClass(widget.ClassCancel)
}

// secondsAt converts a bar percentage to whole seconds. The epsilon absorbs
// float error when a percentage built from seconds is read back.
func (ct *Controller) secondsAt(percent float64) float64 {
	if ct.singleSecond <= 0 {
		return 0
	}
	return math.Floor(percent/ct.singleSecond + 1e-6)
}

func (ct *Controller) lastSecond() float64 {
	d := ct.media.Duration()
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0
	}
	return math.Floor(d)
}
