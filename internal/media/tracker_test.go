package media

import (
	"testing"

	"github.com/depeter/scrubbar/internal/event"
)

func recordTracker(tr *Tracker) *[]event.Type {
	var got []event.Type
	for _, typ := range []event.Type{
		event.LoadedMetadata, event.CanPlay, event.Play, event.Pause,
		event.TimeUpdate, event.Progress, event.Ended,
	} {
		typ := typ
		tr.AddEventListener(typ, func(*event.Event) { got = append(got, typ) }, event.Options{})
	}
	return &got
}

func equalTypes(a, b []event.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackerReadiness(t *testing.T) {
	tests := []struct {
		name  string
		steps func(*Tracker)
		want  []event.Type
	}{
		{
			name:  "duration then file loaded",
			steps: func(tr *Tracker) { tr.SetDuration(200); tr.FileLoaded() },
			want:  []event.Type{event.LoadedMetadata, event.CanPlay},
		},
		{
			name:  "file loaded then duration",
			steps: func(tr *Tracker) { tr.FileLoaded(); tr.SetDuration(200) },
			want:  []event.Type{event.LoadedMetadata, event.CanPlay},
		},
		{
			name:  "duration repeats",
			steps: func(tr *Tracker) { tr.SetDuration(200); tr.SetDuration(200.5); tr.FileLoaded() },
			want:  []event.Type{event.LoadedMetadata, event.CanPlay},
		},
		{
			name:  "unknown duration",
			steps: func(tr *Tracker) { tr.FileLoaded(); tr.SetDuration(0) },
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			got := recordTracker(tr)
			tt.steps(tr)
			if !equalTypes(*got, tt.want) {
				t.Errorf("events = %v, want %v", *got, tt.want)
			}
		})
	}
}

func TestTrackerPlayback(t *testing.T) {
	tr := NewTracker()
	tr.SetDuration(3)
	tr.FileLoaded()
	got := recordTracker(tr)

	tr.SetPaused(false)
	tr.SetPaused(false)
	tr.SetPosition(1)
	tr.SetPosition(1)
	tr.SetCached(3)
	tr.SetPaused(true)
	tr.SetEOF(true)
	tr.SetEOF(true)

	want := []event.Type{
		event.Play, event.TimeUpdate, event.Progress, event.Pause,
		event.TimeUpdate, event.Ended,
	}
	if !equalTypes(*got, want) {
		t.Fatalf("events = %v, want %v", *got, want)
	}
	if tr.CurrentTime() != 3 || !tr.Ended() {
		t.Errorf("position %v ended %v", tr.CurrentTime(), tr.Ended())
	}
	if r := tr.Buffered(); len(r) != 1 || r[0].End != 3 {
		t.Errorf("Buffered = %v", r)
	}

	tr.Reset()
	if tr.ReadyState() != HaveNothing || tr.Buffered() != nil || tr.Ended() {
		t.Error("Reset kept file state")
	}
}

func TestTrackerDropsPositionsDuringSeek(t *testing.T) {
	tr := NewTracker()
	tr.SetDuration(200)
	tr.FileLoaded()
	tr.SetPosition(30)
	got := recordTracker(tr)

	tr.Seeked(100)
	tr.SetPosition(30.4)
	if tr.CurrentTime() != 100 || len(*got) != 0 {
		t.Fatalf("stale report applied: position %v, events %v", tr.CurrentTime(), *got)
	}

	tr.SeekDone()
	tr.SetPosition(100.2)
	if tr.CurrentTime() != 100.2 || !equalTypes(*got, []event.Type{event.TimeUpdate}) {
		t.Errorf("position %v, events %v after the seek finished", tr.CurrentTime(), *got)
	}

	tr.Seeked(50)
	tr.Reset()
	tr.SetPosition(1)
	if tr.CurrentTime() != 1 {
		t.Error("Reset left a seek pending")
	}
}
