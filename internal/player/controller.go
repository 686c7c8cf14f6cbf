// Package player wires a media element to the player widget: the clock and
// progress fill follow playback, and the bar can be dragged to seek.
package player

import (
	"log"
	"strconv"
	"time"

	"github.com/depeter/scrubbar/internal/event"
	"github.com/depeter/scrubbar/internal/loop"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/throttle"
	"github.com/depeter/scrubbar/internal/timefmt"
	"github.com/depeter/scrubbar/internal/widget"
)

// DefaultThrottle limits how often drag moves update the bar.
const DefaultThrottle = 25 * time.Millisecond

// Host runs timers and frame callbacks on the UI thread. loop.Loop is the
// production implementation.
type Host interface {
	throttle.Scheduler
	RequestFrame(f func()) loop.FrameID
	CancelFrame(id loop.FrameID)
}

type options struct {
	throttle time.Duration
	skips    bool
}

// Option configures Init.
type Option func(*options)

// WithThrottle sets the drag throttle window.
func WithThrottle(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.throttle = d
		}
	}
}

// WithoutSkips leaves skip buttons in the layout unwired.
func WithoutSkips() Option {
	return func(o *options) { o.skips = false }
}

type elements struct {
	duration              *widget.Element
	currentTime           *widget.Element
	playButton            *widget.Element
	barHolder             *widget.Element
	progressBar           *widget.Element
	bufferBar             *widget.Element
	circleHolder          *widget.Element
	circle                *widget.Element
	cancelSeek            *widget.Element
	cancelSeekButton      *widget.Element
	cancelSeekCurrentTime *widget.Element
	cancelSeekDuration    *widget.Element
}

// Controller is one mounted player. All methods run on the UI thread.
type Controller struct {
	c     *widget.Container
	media media.Element
	host  Host
	reg   *event.Registry
	el    elements

	playing      bool
	singleSecond float64
	progress     float64
	second       int
	clock        *timefmt.Time

	drag *dragSession
	move *throttle.Throttler[pointer]

	frame        loop.FrameID
	framePending bool
}

// Init mounts the full controller and returns its teardown.
func Init(c *widget.Container, m media.Element, host Host, opts ...Option) func() {
	return Mount(c, m, host, opts...).Teardown
}

// Mount is Init returning the controller itself.
func Mount(c *widget.Container, m media.Element, host Host, opts ...Option) *Controller {
	o := options{throttle: DefaultThrottle, skips: true}
	for _, opt := range opts {
		opt(&o)
	}

	ct := &Controller{
		c:       c,
		media:   m,
		host:    host,
		reg:     event.NewRegistry(),
		playing: !m.Paused(),
		clock:   timefmt.NewTime(false),
		el: elements{
			duration:              lookup(c, widget.IDDuration),
			currentTime:           lookup(c, widget.IDCurrentTime),
			playButton:            lookup(c, widget.IDPlayButton),
			barHolder:             lookup(c, widget.IDBarHolder),
			progressBar:           lookup(c, widget.IDProgressBar),
			bufferBar:             lookup(c, widget.IDBufferBar),
			circleHolder:          lookup(c, widget.IDCircleHolder),
			circle:                lookup(c, widget.IDCircle),
			cancelSeek:            lookup(c, widget.IDCancelSeek),
			cancelSeekButton:      lookup(c, widget.IDCancelSeekButton),
			cancelSeekCurrentTime: lookup(c, widget.IDCancelSeekCurrentTime),
			cancelSeekDuration:    lookup(c, widget.IDCancelSeekDuration),
		},
	}
	ct.move = throttle.New(ct.updatePosition, o.throttle, host)

	ct.syncPlayIcon()
	ct.bindSync()
	ct.bindSeek()
	if o.skips {
		ct.bindSkips()
	}
	return ct
}

// Teardown detaches every listener, including an active drag's window
// listeners, and drops pending timers and frames. Calling it twice is harmless.
func (ct *Controller) Teardown() {
	ct.endDrag()
	ct.move.Cancel()
	if ct.framePending {
		ct.host.CancelFrame(ct.frame)
		ct.framePending = false
	}
	ct.reg.TeardownAll()
}

// Dragging reports whether a seek drag is in progress.
func (ct *Controller) Dragging() bool { return ct.drag != nil }

// Progress returns the committed progress percentage.
func (ct *Controller) Progress() float64 { return ct.progress }

// SingleSecond returns the percentage of the bar one second covers.
func (ct *Controller) SingleSecond() float64 { return ct.singleSecond }

func (ct *Controller) bindSkips() {
	for _, btn := range ct.c.ByClass(widget.ClassSkip) {
		secs, err := strconv.Atoi(btn.Data(widget.DataSeconds))
		if err != nil || secs == 0 {
			log.Printf("Ignoring skip button %q: bad offset %q", btn.ID(), btn.Data(widget.DataSeconds))
			continue
		}
		delta := float64(secs)
		ct.reg.Register(btn, event.Click, func(e *event.Event) {
			e.PreventDefault()
			e.StopPropagation()
			ct.skip(delta)
		}, event.Options{})
	}
}

// InitBasic wires only the play/pause toggle, for layouts without a seek bar.
func InitBasic(c *widget.Container, m media.Element) func() {
	reg := event.NewRegistry()
	btn := lookup(c, widget.IDPlayButton)
	playing := !m.Paused()
	setIcon := func() {
		if playing {
			btn.SetIcon(widget.IconPause)
		} else {
			btn.SetIcon(widget.IconPlay)
		}
	}
	setIcon()

	reg.Register(btn, event.Click, func(e *event.Event) {
		e.PreventDefault()
		e.StopPropagation()
		if err := toggle(m, playing); err != nil {
			log.Printf("Failed to toggle playback: %v", err)
		}
	}, event.Options{})
	reg.Register(m, event.Play, func(*event.Event) {
		playing = true
		setIcon()
	}, event.Options{})
	reg.Register(m, event.Pause, func(*event.Event) {
		playing = false
		setIcon()
	}, event.Options{})
	return reg.TeardownAll
}

func toggle(m media.Element, playing bool) error {
	if playing {
		return m.Pause()
	}
	return m.Play()
}

// lookup returns the element with id, or a detached placeholder.
func lookup(c *widget.Container, id string) *widget.Element {
	if el := c.Lookup(id); el != nil {
		return el
	}
	log.Printf("Player layout has no %q element", id)
	return widget.NewElement(id, widget.Rect{})
}
