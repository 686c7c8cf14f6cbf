// Package media defines the media element the player controls drive, and a
// simulated implementation used by the demo command and tests.
package media

import "github.com/depeter/scrubbar/internal/event"

// ReadyState mirrors HTMLMediaElement.readyState.
type ReadyState int

const (
	HaveNothing ReadyState = iota
	HaveMetadata
	HaveCurrentData
	HaveFutureData
	HaveEnoughData
)

// TimeRange is a buffered span in seconds.
type TimeRange struct {
	Start, End float64
}

// Element is a playable media source. Events are dispatched on the UI thread:
// play, pause, ended, timeupdate, progress, loadedmetadata and canplay.
type Element interface {
	event.Listenable

	// CurrentTime returns the playback position in seconds.
	CurrentTime() float64
	// SetCurrentTime seeks to an absolute position in seconds.
	SetCurrentTime(seconds float64)
	// Duration returns the total length in seconds, or NaN before metadata loads.
	Duration() float64
	// Buffered returns the buffered ranges in ascending order.
	Buffered() []TimeRange
	Play() error
	Pause() error
	Paused() bool
	ReadyState() ReadyState
}
