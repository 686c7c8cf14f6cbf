package media

import (
	"math"
	"testing"
	"time"

	"github.com/depeter/scrubbar/internal/event"
)

func record(s *Sim, types ...event.Type) *[]event.Type {
	var got []event.Type
	for _, typ := range types {
		typ := typ
		s.AddEventListener(typ, func(*event.Event) { got = append(got, typ) }, event.Options{})
	}
	return &got
}

func TestSimLifecycle(t *testing.T) {
	s := NewSim()
	s.BufferRate = 0
	if !math.IsNaN(s.Duration()) || s.ReadyState() != HaveNothing {
		t.Fatal("new Sim should have no metadata")
	}
	got := record(s, event.LoadedMetadata, event.CanPlay, event.Play, event.TimeUpdate, event.Pause, event.Ended)

	s.Load(3)
	s.Advance(time.Second) // paused: no timeupdate
	s.Play()
	s.Advance(time.Second)
	s.Advance(5 * time.Second)

	want := []event.Type{
		event.LoadedMetadata, event.CanPlay, event.Play,
		event.TimeUpdate, event.TimeUpdate, event.Pause, event.Ended,
	}
	if len(*got) != len(want) {
		t.Fatalf("events = %v, want %v", *got, want)
	}
	for i := range want {
		if (*got)[i] != want[i] {
			t.Fatalf("events = %v, want %v", *got, want)
		}
	}
	if s.CurrentTime() != 3 || !s.Paused() {
		t.Errorf("position %v paused %v at end", s.CurrentTime(), s.Paused())
	}
}

func TestSimSeekClamps(t *testing.T) {
	s := NewSim()
	s.Load(200)
	s.SetCurrentTime(500)
	if s.CurrentTime() != 200 {
		t.Errorf("CurrentTime = %v, want 200", s.CurrentTime())
	}
	s.SetCurrentTime(-3)
	if s.CurrentTime() != 0 {
		t.Errorf("CurrentTime = %v, want 0", s.CurrentTime())
	}
	if len(s.Seeks) != 2 {
		t.Errorf("Seeks = %v", s.Seeks)
	}
}

func TestSimBuffering(t *testing.T) {
	s := NewSim()
	s.Load(10)
	s.BufferRate = 4
	s.Advance(time.Second)
	r := s.Buffered()
	if len(r) != 1 || r[0].End != 4 {
		t.Fatalf("Buffered = %v", r)
	}
	s.Advance(10 * time.Second)
	if r := s.Buffered(); r[0].End != 10 {
		t.Errorf("buffer end = %v, want clamp to 10", r[0].End)
	}
}
