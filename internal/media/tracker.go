package media

import (
	"math"

	"github.com/depeter/scrubbar/internal/event"
)

// Tracker turns property snapshots from a playback backend into media events.
// Backends call its Set methods on the UI thread; it implements the read side
// of Element and leaves Play, Pause and SetCurrentTime to the backend.
type Tracker struct {
	event.Target

	duration   float64
	position   float64
	cached     float64
	paused     bool
	ended      bool
	fileLoaded bool
	seeking    bool
	ready      ReadyState
}

// NewTracker returns a tracker with nothing loaded.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// ID implements event.Node.
func (t *Tracker) ID() string { return "media" }

// Reset forgets the current file. It fires nothing.
func (t *Tracker) Reset() {
	t.duration = math.NaN()
	t.position = 0
	t.cached = 0
	t.paused = true
	t.ended = false
	t.fileLoaded = false
	t.seeking = false
	t.ready = HaveNothing
}

// SetDuration records the file length. The first positive value fires
// loadedmetadata, and canplay as well when the file is already loaded.
func (t *Tracker) SetDuration(d float64) {
	if !(d > 0) {
		return
	}
	t.duration = d
	if t.ready >= HaveMetadata {
		return
	}
	t.ready = HaveMetadata
	t.fire(event.LoadedMetadata)
	if t.fileLoaded {
		t.canPlay()
	}
}

// FileLoaded marks the file as decodable.
func (t *Tracker) FileLoaded() {
	t.fileLoaded = true
	if t.ready == HaveMetadata {
		t.canPlay()
	}
}

func (t *Tracker) canPlay() {
	t.ready = HaveEnoughData
	t.fire(event.CanPlay)
}

// SetPosition records the playback position and fires timeupdate. Reports
// are dropped between Seeked and SeekDone, since they predate the seek.
func (t *Tracker) SetPosition(pos float64) {
	if t.seeking || math.IsNaN(pos) || pos == t.position {
		return
	}
	t.position = pos
	t.fire(event.TimeUpdate)
}

// SetCached records how far the demuxer has buffered and fires progress.
func (t *Tracker) SetCached(end float64) {
	if !(end > 0) || end == t.cached {
		return
	}
	t.cached = end
	t.fire(event.Progress)
}

// SetPaused fires play or pause on a change of the pause state.
func (t *Tracker) SetPaused(paused bool) {
	if paused == t.paused {
		return
	}
	t.paused = paused
	if paused {
		t.fire(event.Pause)
		return
	}
	t.ended = false
	t.fire(event.Play)
}

// SetEOF fires ended when the backend reports the end of the file.
func (t *Tracker) SetEOF(eof bool) {
	if !eof {
		t.ended = false
		return
	}
	if t.ended {
		return
	}
	t.ended = true
	t.seeking = false
	if t.duration > 0 {
		t.SetPosition(t.duration)
	}
	t.fire(event.Ended)
}

// Seeked moves the position without waiting for the backend to report it.
func (t *Tracker) Seeked(pos float64) {
	t.position = pos
	t.ended = false
	t.seeking = true
}

// SeekDone marks the pending seek as handled by the backend, so position
// reports apply again.
func (t *Tracker) SeekDone() {
	t.seeking = false
}

func (t *Tracker) CurrentTime() float64 { return t.position }
func (t *Tracker) Duration() float64    { return t.duration }

func (t *Tracker) Buffered() []TimeRange {
	if t.cached <= 0 {
		return nil
	}
	return []TimeRange{{Start: 0, End: t.cached}}
}

func (t *Tracker) Paused() bool           { return t.paused }
func (t *Tracker) Ended() bool            { return t.ended }
func (t *Tracker) ReadyState() ReadyState { return t.ready }

func (t *Tracker) fire(typ event.Type) {
	t.Dispatch(&event.Event{Type: typ, Target: t})
}
