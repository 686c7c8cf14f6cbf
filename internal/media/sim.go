package media

import (
	"math"
	"time"

	"github.com/depeter/scrubbar/internal/event"
)

// Sim is a media element without audio. Time only moves when Advance is
// called, which makes it deterministic for tests and handy for demos.
type Sim struct {
	event.Target

	duration float64
	position float64
	buffered float64
	paused   bool
	ended    bool
	ready    ReadyState

	// BufferRate is how many seconds get buffered per second of Advance.
	BufferRate float64
	// Seeks records every SetCurrentTime call.
	Seeks []float64
}

// NewSim returns a paused element with no metadata.
func NewSim() *Sim {
	return &Sim{duration: math.NaN(), paused: true, BufferRate: 4}
}

// ID implements event.Node.
func (s *Sim) ID() string { return "media" }

// Load makes the metadata available and fires loadedmetadata then canplay.
func (s *Sim) Load(duration float64) {
	s.duration = duration
	s.position = 0
	s.buffered = 0
	s.ended = false
	s.ready = HaveMetadata
	s.fire(event.LoadedMetadata)
	s.ready = HaveEnoughData
	s.fire(event.CanPlay)
}

// Advance moves playback forward by d when playing and fires timeupdate,
// progress, and ended on reaching the end.
func (s *Sim) Advance(d time.Duration) {
	if s.ready < HaveMetadata {
		return
	}
	if s.BufferRate > 0 && s.buffered < s.duration {
		s.buffered = math.Min(s.duration, s.buffered+d.Seconds()*s.BufferRate)
		s.fire(event.Progress)
	}
	if s.paused || s.ended {
		return
	}
	s.position += d.Seconds()
	if s.position >= s.duration {
		s.position = s.duration
		s.fire(event.TimeUpdate)
		s.ended = true
		s.paused = true
		s.fire(event.Pause)
		s.fire(event.Ended)
		return
	}
	s.fire(event.TimeUpdate)
}

// SetBuffered sets the end of the single buffered range and fires progress.
func (s *Sim) SetBuffered(end float64) {
	s.buffered = end
	s.fire(event.Progress)
}

func (s *Sim) CurrentTime() float64 { return s.position }

// SetCurrentTime seeks and fires timeupdate.
func (s *Sim) SetCurrentTime(seconds float64) {
	s.Seeks = append(s.Seeks, seconds)
	if seconds < 0 {
		seconds = 0
	}
	if !math.IsNaN(s.duration) && seconds > s.duration {
		seconds = s.duration
	}
	s.position = seconds
	s.ended = false
	s.fire(event.TimeUpdate)
}

func (s *Sim) Duration() float64 { return s.duration }

func (s *Sim) Buffered() []TimeRange {
	if s.buffered <= 0 {
		return nil
	}
	return []TimeRange{{Start: 0, End: s.buffered}}
}

// Play starts playback and fires play.
func (s *Sim) Play() error {
	if !s.paused {
		return nil
	}
	if s.ended {
		s.position = 0
		s.ended = false
	}
	s.paused = false
	s.fire(event.Play)
	return nil
}

// Pause stops playback and fires pause.
func (s *Sim) Pause() error {
	if s.paused {
		return nil
	}
	s.paused = true
	s.fire(event.Pause)
	return nil
}

func (s *Sim) Paused() bool           { return s.paused }
func (s *Sim) ReadyState() ReadyState { return s.ready }

func (s *Sim) fire(typ event.Type) {
	s.Dispatch(&event.Event{Type: typ, Target: s})
}
