package app

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/scrubbar/internal/config"
	"github.com/depeter/scrubbar/internal/media"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"Space", ebiten.KeySpace, true},
		{"right", ebiten.KeyArrowRight, true},
		{"Q", ebiten.KeyQ, true},
		{"Esc", ebiten.KeyEscape, true},
		{"7", ebiten.KeyDigit7, true},
		{"hyper", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseKey(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseKey(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultKeybindsParse(t *testing.T) {
	kb := config.DefaultConfig().Keybinds
	for _, name := range []string{kb.PlayPause, kb.SeekForward, kb.SeekBackward, kb.VolumeUp, kb.VolumeDown, kb.Quit} {
		if _, ok := parseKey(name); !ok {
			t.Errorf("default key %q does not parse", name)
		}
	}
}

type volumeSim struct {
	*media.Sim
	set []int
}

func (v *volumeSim) SetVolume(vol int) error {
	v.set = append(v.set, vol)
	return nil
}

func TestControlsSeek(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		action Action
		want   float64
	}{
		{"forward", 10, ActionSeekForward, 15},
		{"backward", 10, ActionSeekBackward, 5},
		{"clamp start", 3, ActionSeekBackward, 0},
		{"clamp end", 98, ActionSeekForward, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := media.NewSim()
			sim.Load(100)
			sim.SetCurrentTime(tt.start)
			c := controls{media: sim}
			if err := c.apply(tt.action); err != nil {
				t.Fatal(err)
			}
			if got := sim.CurrentTime(); got != tt.want {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControlsSeekWithoutMetadata(t *testing.T) {
	sim := media.NewSim()
	c := controls{media: sim}
	c.apply(ActionSeekForward)
	if len(sim.Seeks) != 0 {
		t.Errorf("seeked before metadata: %v", sim.Seeks)
	}
}

func TestControlsPlayPause(t *testing.T) {
	sim := media.NewSim()
	sim.Load(100)
	c := controls{media: sim}

	c.apply(ActionPlayPause)
	if sim.Paused() {
		t.Fatal("still paused after toggle")
	}
	c.apply(ActionPlayPause)
	if !sim.Paused() {
		t.Fatal("still playing after second toggle")
	}
}

func TestControlsVolume(t *testing.T) {
	v := &volumeSim{Sim: media.NewSim()}
	c := controls{media: v, volume: 145}

	c.apply(ActionVolumeUp)
	c.apply(ActionVolumeUp)
	c.apply(ActionVolumeDown)

	want := []int{150, 145}
	if len(v.set) != len(want) || v.set[0] != want[0] || v.set[1] != want[1] {
		t.Errorf("volumes = %v, want %v", v.set, want)
	}
	if c.volume != 145 {
		t.Errorf("volume = %d, want 145", c.volume)
	}
}

func TestControlsVolumeWithoutOutput(t *testing.T) {
	c := controls{media: media.NewSim(), volume: 50}
	c.apply(ActionVolumeUp)
	if c.volume != 50 {
		t.Errorf("volume changed to %d on an element without output", c.volume)
	}
}

func TestControlsQuit(t *testing.T) {
	c := controls{media: media.NewSim()}
	if err := c.apply(ActionQuit); !errors.Is(err, ebiten.Termination) {
		t.Errorf("quit returned %v, want ebiten.Termination", err)
	}
	if err := c.apply(ActionNone); err != nil {
		t.Errorf("no-op returned %v", err)
	}
}

func TestRepeatFires(t *testing.T) {
	tests := []struct {
		held int
		want bool
	}{
		{0, true},
		{1, false},
		{repeatDelay - 1, false},
		{repeatDelay, true},
		{repeatDelay + 1, false},
		{repeatDelay + repeatInterval, true},
		{repeatDelay + 2*repeatInterval, true},
		{repeatDelay + 2*repeatInterval - 1, false},
	}
	for _, tt := range tests {
		if got := repeatFires(tt.held); got != tt.want {
			t.Errorf("repeatFires(%d) = %v, want %v", tt.held, got, tt.want)
		}
	}
}

func TestNamedKeysUnique(t *testing.T) {
	seen := make(map[ebiten.Key]bool)
	for _, k := range namedKeys {
		if seen[k] {
			t.Errorf("key %v listed twice", k)
		}
		seen[k] = true
	}
	if !seen[ebiten.KeyEnter] || !seen[ebiten.KeyEscape] {
		t.Error("aliased keys missing")
	}
}
