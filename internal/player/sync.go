package player

import (
	"log"
	"math"

	"github.com/depeter/scrubbar/internal/event"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/timefmt"
	"github.com/depeter/scrubbar/internal/widget"
)

// Forward jumps of at least this many seconds are applied absolutely, since
// the clock only carries one unit per advance.
const maxIncrement = 60

func (ct *Controller) bindSync() {
	m := ct.media
	if m.ReadyState() >= media.HaveMetadata {
		ct.onMetadata()
	} else {
		ct.reg.Register(m, event.LoadedMetadata, func(*event.Event) { ct.onMetadata() }, event.Options{Once: true})
	}
	if m.ReadyState() == media.HaveEnoughData {
		ct.el.playButton.AddClass(widget.ClassReady)
	} else {
		ct.reg.Register(m, event.CanPlay, func(*event.Event) {
			ct.el.playButton.AddClass(widget.ClassReady)
		}, event.Options{Once: true})
	}

	ct.reg.Register(m, event.Play, func(*event.Event) {
		ct.playing = true
		ct.syncPlayIcon()
	}, event.Options{})
	ct.reg.Register(m, event.Pause, func(*event.Event) {
		ct.playing = false
		ct.syncPlayIcon()
	}, event.Options{})
	ct.reg.Register(ct.el.playButton, event.Click, ct.togglePlayback, event.Options{})
	ct.reg.Register(m, event.Ended, ct.onEnded, event.Options{})
	ct.reg.Register(m, event.TimeUpdate, ct.onTimeUpdate, event.Options{})
	ct.reg.Register(m, event.Progress, ct.onProgress, event.Options{})
}

func (ct *Controller) onMetadata() {
	d := ct.media.Duration()
	formatted := timefmt.Format(d)
	ct.el.duration.SetText(formatted)
	ct.el.cancelSeekDuration.SetText(formatted)
	ct.singleSecond = singleSecondPercentage(d)
	ct.clock.Reset(d >= 3600)
	ct.second = 0
	ct.progress = 0
	if n := int(math.Floor(ct.media.CurrentTime())); n > 0 {
		ct.setAbsolute(n)
	}
	ct.renderCommitted()
}

// singleSecondPercentage is the share of the bar, in percent rounded to four
// decimals, covered by one second of a track of the given duration.
func singleSecondPercentage(duration float64) float64 {
	total := math.Floor(duration)
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0
	}
	return math.Round(100/total*10000) / 10000
}

func (ct *Controller) syncPlayIcon() {
	if ct.playing {
		ct.el.playButton.SetIcon(widget.IconPause)
	} else {
		ct.el.playButton.SetIcon(widget.IconPlay)
	}
}

func (ct *Controller) togglePlayback(e *event.Event) {
	e.PreventDefault()
	e.StopPropagation()
	if err := toggle(ct.media, ct.playing); err != nil {
		log.Printf("Failed to toggle playback: %v", err)
	}
}

func (ct *Controller) onEnded(*event.Event) {
	ct.progress = 100
	if ct.drag == nil {
		ct.moveBar(100)
	}
}

func (ct *Controller) onTimeUpdate(*event.Event) {
	n := int(math.Floor(ct.media.CurrentTime()))
	diff := n - ct.second
	switch {
	case diff == 0:
		return
	case diff < 0 || diff >= maxIncrement:
		ct.setAbsolute(n)
	default:
		ct.clock.Advance(diff)
		ct.progress += float64(diff) * ct.singleSecond
		ct.second = n
	}

	if ct.drag != nil {
		ct.el.currentTime.SetText(ct.clock.String())
		return
	}
	ct.schedulePaint()
}

// setAbsolute moves the committed state to n seconds without accumulating.
func (ct *Controller) setAbsolute(n int) {
	ct.clock.Set(timefmt.Format(float64(n)))
	if !ct.clock.HasHours() && ct.media.Duration() >= 3600 {
		ct.clock.Hours = "00"
	}
	ct.progress = float64(n) * ct.singleSecond
	ct.second = n
}

func (ct *Controller) onProgress(*event.Event) {
	d := ct.media.Duration()
	if !(d > 0) || math.IsInf(d, 0) {
		return
	}
	r := ct.media.Buffered()
	if len(r) == 0 {
		return
	}
	ct.el.bufferBar.SetWidth(r[len(r)-1].End / d * 100)
}

// schedulePaint writes the clock and bar on the next frame. Requests made
// before that frame coalesce, and the frame reads the latest state.
func (ct *Controller) schedulePaint() {
	if ct.framePending {
		return
	}
	ct.framePending = true
	ct.frame = ct.host.RequestFrame(ct.paint)
}

func (ct *Controller) paint() {
	ct.framePending = false
	if ct.drag != nil {
		ct.el.currentTime.SetText(ct.clock.String())
		return
	}
	ct.renderCommitted()
}

func (ct *Controller) renderCommitted() {
	ct.el.currentTime.SetText(ct.clock.String())
	ct.moveBar(ct.progress)
}

func (ct *Controller) moveBar(percent float64) {
	ct.el.progressBar.SetLeft(percent)
	ct.el.circleHolder.SetLeft(percent)
}

func (ct *Controller) skip(delta float64) {
	pos := ct.media.CurrentTime() + delta
	if pos < 0 {
		pos = 0
	}
	if d := ct.media.Duration(); d > 0 && pos > d {
		pos = d
	}
	ct.media.SetCurrentTime(pos)
}
