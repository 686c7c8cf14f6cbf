package player

import (
	"math"
	"testing"
	"time"

	"github.com/depeter/scrubbar/internal/event"
	"github.com/depeter/scrubbar/internal/loop/looptest"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/widget"
)

// Layout geometry for a 440x224 window: the bar spans x 16..424 at y 124..148,
// the cancel button spans y 60..108 and the play button is centred at 220,184.
const (
	barLeft  = 16.0
	barWidth = 408.0
	barY     = 130.0
	cancelY  = 80.0
	playX    = 220.0
	playY    = 184.0
)

type rig struct {
	c  *widget.Container
	m  *media.Sim
	h  *looptest.Host
	ct *Controller
}

func newRig(duration float64) *rig {
	r := &rig{
		c: widget.NewPlayerLayout(440, 224, []int{-10, 10}),
		m: media.NewSim(),
		h: looptest.New(),
	}
	r.m.BufferRate = 0
	if duration > 0 {
		r.m.Load(duration)
	}
	r.ct = Mount(r.c, r.m, r.h)
	return r
}

func barX(percent float64) float64 { return barLeft + barWidth*percent/100 }

func (r *rig) pointer(kind event.PointerKind, typ event.Type, x, y float64) {
	r.c.DispatchPointer(1, typ, kind, x, y)
}

func (r *rig) click(x, y float64) {
	r.pointer(event.Mouse, event.PointerDown, x, y)
	r.pointer(event.Mouse, event.PointerUp, x, y)
}

func (r *rig) text(id string) string { return r.c.Lookup(id).Text() }

func (r *rig) left(id string) string { return r.c.Lookup(id).LeftStyle() }

func (r *rig) has(id, class string) bool { return r.c.Lookup(id).HasClass(class) }

// listeners counts listeners on the media element, the window and every
// element of the layout.
func (r *rig) listeners() int {
	n := r.m.ListenerCount("") + r.c.Window().ListenerCount("")
	r.c.Walk(func(e *widget.Element) bool {
		n += e.ListenerCount("")
		return true
	})
	return n
}

func TestSingleSecondPercentage(t *testing.T) {
	tests := []struct {
		duration float64
		want     float64
	}{
		{200, 0.5},
		{3, 33.3333},
		{7.9, 14.2857},
		{4000, 0.025},
		{0, 0},
		{0.4, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := singleSecondPercentage(tt.duration); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("singleSecondPercentage(%v) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}

func TestMetadataAfterMount(t *testing.T) {
	r := newRig(0)
	if r.has(widget.IDPlayButton, widget.ClassReady) {
		t.Fatal("play button ready before canplay")
	}

	r.m.Load(200)
	if got := r.text(widget.IDDuration); got != "03:20" {
		t.Errorf("duration = %q, want 03:20", got)
	}
	if got := r.text(widget.IDCancelSeekDuration); got != "03:20" {
		t.Errorf("cancel duration = %q, want 03:20", got)
	}
	if r.ct.SingleSecond() != 0.5 {
		t.Errorf("SingleSecond = %v, want 0.5", r.ct.SingleSecond())
	}
	if !r.has(widget.IDPlayButton, widget.ClassReady) {
		t.Error("play button not ready after canplay")
	}
	if n := r.m.ListenerCount(event.LoadedMetadata) + r.m.ListenerCount(event.CanPlay); n != 0 {
		t.Errorf("%d once-only listeners left on media", n)
	}
}

func TestMetadataBeforeMount(t *testing.T) {
	r := newRig(200)
	if got := r.text(widget.IDDuration); got != "03:20" {
		t.Errorf("duration = %q, want 03:20", got)
	}
	if !r.has(widget.IDPlayButton, widget.ClassReady) {
		t.Error("play button not ready for an element that can already play")
	}
}

func TestMetadataHourTrack(t *testing.T) {
	r := newRig(4000)
	if got := r.text(widget.IDDuration); got != "01:06:40" {
		t.Errorf("duration = %q", got)
	}
	if got := r.text(widget.IDCurrentTime); got != "00:00:00" {
		t.Errorf("clock = %q, want 00:00:00", got)
	}
	r.m.SetCurrentTime(100)
	r.h.RunFrame()
	if got := r.text(widget.IDCurrentTime); got != "00:01:40" {
		t.Errorf("clock = %q, want 00:01:40", got)
	}
}

func TestTimeUpdateCoalescesIntoOneFrame(t *testing.T) {
	r := newRig(200)
	r.m.Play()
	for i := 0; i < 3; i++ {
		r.m.Advance(time.Second)
	}
	if r.h.PendingFrames() != 1 {
		t.Fatalf("PendingFrames = %d, want 1", r.h.PendingFrames())
	}
	if got := r.text(widget.IDCurrentTime); got != "00:00" {
		t.Errorf("clock painted before frame: %q", got)
	}

	r.h.RunFrame()
	if got := r.text(widget.IDCurrentTime); got != "00:03" {
		t.Errorf("clock = %q, want 00:03", got)
	}
	if got := r.left(widget.IDProgressBar); got != "1.5%" {
		t.Errorf("progress left = %q, want 1.5%%", got)
	}
	if got := r.left(widget.IDCircleHolder); got != "1.5%" {
		t.Errorf("handle left = %q, want 1.5%%", got)
	}
}

func TestTimeUpdateSubSecondIsNoop(t *testing.T) {
	r := newRig(200)
	r.m.Play()
	r.m.Advance(400 * time.Millisecond)
	r.m.Advance(400 * time.Millisecond)
	if r.h.PendingFrames() != 0 {
		t.Errorf("frame requested for a sub-second change")
	}
}

func TestTimeUpdateJumps(t *testing.T) {
	tests := []struct {
		name     string
		seek     float64
		clock    string
		progress float64
	}{
		{"backward", 1, "00:01", 0.5},
		{"forward small", 30, "00:30", 15},
		{"forward large", 150, "02:30", 75},
		{"to end", 200, "03:20", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(200)
			r.m.SetCurrentTime(10)
			r.h.RunFrame()

			r.m.SetCurrentTime(tt.seek)
			r.h.RunFrame()
			if got := r.text(widget.IDCurrentTime); got != tt.clock {
				t.Errorf("clock = %q, want %q", got, tt.clock)
			}
			if math.Abs(r.ct.Progress()-tt.progress) > 1e-9 {
				t.Errorf("progress = %v, want %v", r.ct.Progress(), tt.progress)
			}
		})
	}
}

func TestBufferProgress(t *testing.T) {
	r := newRig(200)
	r.m.SetBuffered(150)
	if got := r.c.Lookup(widget.IDBufferBar).WidthStyle(); got != "75%" {
		t.Errorf("buffer width = %q, want 75%%", got)
	}
}

func TestBufferProgressWithoutDuration(t *testing.T) {
	r := newRig(0)
	r.m.SetBuffered(150)
	if got := r.c.Lookup(widget.IDBufferBar).WidthStyle(); got != "0%" {
		t.Errorf("buffer width = %q, want untouched 0%%", got)
	}
}

func TestEndedSnapsToEnd(t *testing.T) {
	r := newRig(3)
	r.m.Play()
	r.m.Advance(5 * time.Second)
	r.h.RunFrame()
	if got := r.left(widget.IDProgressBar); got != "100%" {
		t.Errorf("progress left = %q, want 100%%", got)
	}
	if got := r.c.Lookup(widget.IDPlayButton).Icon(); got != widget.IconPlay {
		t.Errorf("icon = %q after end, want play", got)
	}
}

func TestPlayButtonToggles(t *testing.T) {
	r := newRig(200)
	btn := r.c.Lookup(widget.IDPlayButton)

	r.click(playX, playY)
	if r.m.Paused() || btn.Icon() != widget.IconPause {
		t.Fatalf("after first click paused=%v icon=%q", r.m.Paused(), btn.Icon())
	}
	r.click(playX, playY)
	if !r.m.Paused() || btn.Icon() != widget.IconPlay {
		t.Fatalf("after second click paused=%v icon=%q", r.m.Paused(), btn.Icon())
	}
}

func TestSkipButtonsClamp(t *testing.T) {
	r := newRig(200)
	fwd := r.c.Lookup(widget.SkipID(10)).BoundingClientRect()
	back := r.c.Lookup(widget.SkipID(-10)).BoundingClientRect()

	r.click(fwd.X+1, fwd.Y+1)
	r.click(back.X+1, back.Y+1)
	r.click(back.X+1, back.Y+1)
	want := []float64{10, 0, 0}
	if len(r.m.Seeks) != len(want) {
		t.Fatalf("Seeks = %v, want %v", r.m.Seeks, want)
	}
	for i := range want {
		if r.m.Seeks[i] != want[i] {
			t.Fatalf("Seeks = %v, want %v", r.m.Seeks, want)
		}
	}

	r.m.SetCurrentTime(195)
	r.click(fwd.X+1, fwd.Y+1)
	if got := r.m.Seeks[len(r.m.Seeks)-1]; got != 200 {
		t.Errorf("forward skip near the end seeked to %v, want 200", got)
	}
}

func TestWithoutSkips(t *testing.T) {
	c := widget.NewPlayerLayout(440, 224, []int{10})
	m := media.NewSim()
	m.Load(200)
	Init(c, m, looptest.New(), WithoutSkips())
	fwd := c.Lookup(widget.SkipID(10)).BoundingClientRect()
	c.DispatchPointer(1, event.PointerDown, event.Mouse, fwd.X+1, fwd.Y+1)
	c.DispatchPointer(1, event.PointerUp, event.Mouse, fwd.X+1, fwd.Y+1)
	if len(m.Seeks) != 0 {
		t.Errorf("Seeks = %v, want none", m.Seeks)
	}
}

func TestInitBasic(t *testing.T) {
	c := widget.NewPlayerLayout(440, 224, nil)
	m := media.NewSim()
	m.Load(200)
	teardown := InitBasic(c, m)
	btn := c.Lookup(widget.IDPlayButton)
	r := btn.BoundingClientRect()

	c.DispatchPointer(1, event.PointerDown, event.Mouse, r.X+1, r.Y+1)
	c.DispatchPointer(1, event.PointerUp, event.Mouse, r.X+1, r.Y+1)
	if m.Paused() || btn.Icon() != widget.IconPause {
		t.Fatalf("paused=%v icon=%q after click", m.Paused(), btn.Icon())
	}

	teardown()
	if n := m.ListenerCount("") + btn.ListenerCount(""); n != 0 {
		t.Errorf("%d listeners left after teardown", n)
	}
}
