package app

import (
	"image"
	"testing"

	"github.com/depeter/scrubbar/internal/config"
	"github.com/depeter/scrubbar/internal/event"
	"github.com/depeter/scrubbar/internal/loop"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/widget"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Controls.MediaKeys = false
	return cfg
}

func TestNewGameMountsPlayer(t *testing.T) {
	sim := media.NewSim()
	g, err := NewGame(testConfig(), sim, loop.New())
	if err != nil {
		t.Fatal(err)
	}
	if sim.ListenerCount(event.TimeUpdate) != 1 {
		t.Errorf("timeupdate listeners = %d, want 1", sim.ListenerCount(event.TimeUpdate))
	}
	if g.container.Lookup(widget.IDBarHolder).ListenerCount(event.PointerDown) != 1 {
		t.Error("seek bar is not wired")
	}

	sim.Load(125)
	if got := g.container.Lookup(widget.IDDuration).Text(); got != "02:05" {
		t.Errorf("duration label = %q, want 02:05", got)
	}

	g.Close()
	g.Close()
	if n := sim.ListenerCount(""); n != 0 {
		t.Errorf("%d media listeners after Close", n)
	}
}

func TestNewGameBasicControls(t *testing.T) {
	cfg := testConfig()
	cfg.Controls.Pointer = false
	sim := media.NewSim()
	g, err := NewGame(cfg, sim, loop.New())
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	if g.container.Lookup(widget.IDBarHolder).ListenerCount("") != 0 {
		t.Error("seek bar wired with pointer controls off")
	}
	if sim.ListenerCount(event.Play) != 1 {
		t.Errorf("play listeners = %d, want 1", sim.ListenerCount(event.Play))
	}
}

func TestNewGameSize(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Width, cfg.UI.Height = 10, 10
	g, err := NewGame(cfg, media.NewSim(), loop.New())
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	w, h := widget.MinSize()
	if g.Width != w || g.Height != h {
		t.Errorf("size = %dx%d, want %dx%d", g.Width, g.Height, w, h)
	}
	if lw, lh := g.Layout(1920, 1080); lw != w || lh != h {
		t.Errorf("Layout = %dx%d", lw, lh)
	}
}

func TestNewGameUnknownTheme(t *testing.T) {
	cfg := testConfig()
	cfg.UI.Theme = "neon"
	if _, err := NewGame(cfg, media.NewSim(), loop.New()); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestGameTrackInfo(t *testing.T) {
	g, err := NewGame(testConfig(), media.NewSim(), loop.New())
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	g.SetTitle("Artist - Song")
	if got := g.container.Lookup(widget.IDCurrentlyPlaying).Text(); got != "Artist - Song" {
		t.Errorf("title = %q", got)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	g.SetArtwork(img)
	if g.container.Lookup(widget.IDArtwork).Image != img {
		t.Error("artwork not set")
	}
}
