package jellyfin

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/depeter/scrubbar/internal/constants"
	"github.com/depeter/scrubbar/internal/event"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/throttle"
)

// PlaystateAPI is the part of Client the reporter talks to.
type PlaystateAPI interface {
	ReportPlaybackStart(itemID, playSessionID string, positionTicks int64) error
	ReportPlaybackProgress(itemID, playSessionID string, positionTicks int64, isPaused bool) error
	ReportPlaybackStopped(itemID, playSessionID string, positionTicks int64) error
}

var _ PlaystateAPI = (*Client)(nil)

// NewPlaySessionID returns a fresh id tying a stream URL to its reports.
func NewPlaySessionID() string {
	return uuid.NewString()
}

// Reporter mirrors a media element's playback to the server's play state.
// It listens on the UI thread and sends requests from goroutines.
type Reporter struct {
	api       PlaystateAPI
	media     media.Element
	itemID    string
	sessionID string

	reg      *event.Registry
	progress *throttle.Throttler[bool]
	started  bool
	stopped  bool

	// spawn runs a request; tests replace it to run synchronously.
	spawn func(func() error)
	wg    sync.WaitGroup
}

// NewReporter attaches to m right away. Progress is sent at most once per
// interval while playing.
func NewReporter(api PlaystateAPI, m media.Element, itemID, sessionID string, interval time.Duration, sched throttle.Scheduler) *Reporter {
	r := &Reporter{
		api:       api,
		media:     m,
		itemID:    itemID,
		sessionID: sessionID,
		reg:       event.NewRegistry(),
	}
	r.spawn = func(f func() error) {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			if err := f(); err != nil {
				log.Printf("Jellyfin: %v", err)
			}
		}()
	}
	r.progress = throttle.New(r.sendProgress, interval, sched)

	r.reg.Register(m, event.Play, r.onPlay, event.Options{})
	r.reg.Register(m, event.Pause, func(*event.Event) {
		if r.started {
			r.progress.Cancel()
			r.sendProgress(true)
		}
	}, event.Options{})
	r.reg.Register(m, event.TimeUpdate, func(*event.Event) {
		if r.started && !r.media.Paused() {
			r.progress.Call(false)
		}
	}, event.Options{})
	r.reg.Register(m, event.Ended, func(*event.Event) { r.Stop() }, event.Options{})
	return r
}

func (r *Reporter) onPlay(*event.Event) {
	if r.started {
		r.sendProgress(false)
		return
	}
	r.started = true
	ticks := r.ticks()
	r.spawn(func() error {
		return r.api.ReportPlaybackStart(r.itemID, r.sessionID, ticks)
	})
}

func (r *Reporter) sendProgress(paused bool) {
	if r.stopped {
		return
	}
	ticks := r.ticks()
	r.spawn(func() error {
		return r.api.ReportPlaybackProgress(r.itemID, r.sessionID, ticks, paused)
	})
}

// Stop reports the final position once and detaches from the element.
func (r *Reporter) Stop() {
	if r.stopped {
		return
	}
	r.stopped = true
	r.progress.Cancel()
	r.reg.TeardownAll()
	if !r.started {
		return
	}
	ticks := r.ticks()
	r.spawn(func() error {
		return r.api.ReportPlaybackStopped(r.itemID, r.sessionID, ticks)
	})
}

// Wait blocks until every request sent so far has finished.
func (r *Reporter) Wait() {
	r.wg.Wait()
}

func (r *Reporter) ticks() int64 {
	return constants.SecondsToTicks(r.media.CurrentTime())
}
