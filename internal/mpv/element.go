// Package mpv plays audio through libmpv and exposes it as a media.Element.
package mpv

import (
	"fmt"
	"log"
	"runtime"
	"strconv"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/scrubbar/internal/media"
)

// Poster runs f on the UI thread. loop.Loop implements it.
type Poster interface {
	Post(f func())
}

// Options are the libmpv settings the player exposes.
type Options struct {
	Volume      int
	AudioOutput string
	StartPaused bool
}

// Element is an audio-only libmpv instance. Property changes are observed on
// a background goroutine and applied to the embedded tracker on the UI
// thread, so listeners always run there.
type Element struct {
	*media.Tracker

	m    *mpv.Mpv
	mu   sync.Mutex
	post Poster
	done chan struct{}

	startPaused bool
}

var _ media.Element = (*Element)(nil)

// New creates and initializes an mpv instance without video output.
func New(opts Options, post Poster) (*Element, error) {
	m := mpv.New()

	must(m.SetOptionString("vo", "null"))
	must(m.SetOptionString("video", "no"))
	must(m.SetOptionString("keep-open", "yes"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("terminal", "no"))
	must(m.SetOptionString("volume", strconv.Itoa(opts.Volume)))
	if opts.AudioOutput != "" {
		must(m.SetOptionString("ao", opts.AudioOutput))
	}

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	e := &Element{
		Tracker:     media.NewTracker(),
		m:           m,
		post:        post,
		done:        make(chan struct{}),
		startPaused: opts.StartPaused,
	}

	m.ObserveProperty(0, "time-pos", mpv.FormatDouble)
	m.ObserveProperty(0, "duration", mpv.FormatDouble)
	m.ObserveProperty(0, "pause", mpv.FormatFlag)
	m.ObserveProperty(0, "demuxer-cache-time", mpv.FormatDouble)
	m.ObserveProperty(0, "eof-reached", mpv.FormatFlag)

	go e.eventLoop()

	return e, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// Load replaces the current file with url. Call it on the UI thread.
func (e *Element) Load(url string) error {
	e.Tracker.Reset()
	pause := "no"
	if e.startPaused {
		pause = "yes"
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.m.SetPropertyString("pause", pause); err != nil {
		return fmt.Errorf("set pause: %w", err)
	}
	if err := e.m.Command([]string{"loadfile", url}); err != nil {
		return fmt.Errorf("loadfile %s: %w", url, err)
	}
	return nil
}

// SetCurrentTime seeks to an absolute position.
func (e *Element) SetCurrentTime(seconds float64) {
	e.Tracker.Seeked(seconds)
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.m.Command([]string{"seek", strconv.FormatFloat(seconds, 'f', 3, 64), "absolute"}); err != nil {
		log.Printf("Seek to %.1f failed: %v", seconds, err)
		e.Tracker.SeekDone()
	}
}

// Play resumes playback, restarting from the top after the end.
func (e *Element) Play() error {
	ended := e.Tracker.Ended()
	e.mu.Lock()
	defer e.mu.Unlock()
	if ended {
		if err := e.m.Command([]string{"seek", "0", "absolute"}); err != nil {
			return fmt.Errorf("rewind: %w", err)
		}
	}
	return e.m.SetPropertyString("pause", "no")
}

// Pause pauses playback.
func (e *Element) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.SetPropertyString("pause", "yes")
}

// SetVolume sets the volume (0-150).
func (e *Element) SetVolume(vol int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.m.SetPropertyString("volume", strconv.Itoa(vol))
}

// Close stops the event loop and destroys the mpv instance.
func (e *Element) Close() {
	e.mu.Lock()
	must(e.m.Command([]string{"quit"}))
	e.mu.Unlock()
	<-e.done
	e.m.TerminateDestroy()
}

func (e *Element) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(e.done)
	for {
		ev := e.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			if apply := e.property(prop.Name, prop.Data); apply != nil {
				e.post.Post(apply)
			}

		case mpv.EventFileLoaded:
			e.post.Post(e.Tracker.FileLoaded)

		case mpv.EventPlaybackRestart:
			e.post.Post(e.Tracker.SeekDone)

		case mpv.EventEnd:
			if ev.Data != nil {
				log.Printf("mpv end-file: reason=%s", ev.EndFile().Reason)
			}

		case mpv.EventShutdown:
			return
		}
	}
}

// property maps an observed property to the tracker update that applies it,
// or nil when the value is unusable.
func (e *Element) property(name string, data interface{}) func() {
	switch name {
	case "time-pos":
		if v, ok := data.(float64); ok {
			return func() { e.Tracker.SetPosition(v) }
		}
	case "duration":
		if v, ok := data.(float64); ok {
			return func() { e.Tracker.SetDuration(v) }
		}
	case "demuxer-cache-time":
		if v, ok := data.(float64); ok {
			return func() { e.Tracker.SetCached(v) }
		}
	case "pause":
		if v, ok := data.(int); ok {
			return func() { e.Tracker.SetPaused(v == 1) }
		}
	case "eof-reached":
		if v, ok := data.(int); ok {
			return func() { e.Tracker.SetEOF(v == 1) }
		}
	}
	return nil
}
