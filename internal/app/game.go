// Package app hosts the player widget in an ebiten window.
package app

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/scrubbar/assets/icon"
	"github.com/depeter/scrubbar/internal/config"
	"github.com/depeter/scrubbar/internal/loop"
	"github.com/depeter/scrubbar/internal/media"
	"github.com/depeter/scrubbar/internal/player"
	"github.com/depeter/scrubbar/internal/ui"
	"github.com/depeter/scrubbar/internal/widget"
)

// Game implements ebiten.Game around one mounted player.
type Game struct {
	Config *config.Config
	Loop   *loop.Loop
	Media  media.Element

	// OnTick runs at the start of every Update with the tick length. The demo
	// uses it to advance a simulated element.
	OnTick func(dt time.Duration)

	Width, Height int

	container *widget.Container
	input     *widget.Input
	renderer  *ui.Renderer
	controls  controls
	keyboard  *keyboard
	keys      *mediaKeys
	teardown  func()
	touchIDs  []ebiten.TouchID
}

// NewGame builds the player layout and mounts the controls on m.
func NewGame(cfg *config.Config, m media.Element, l *loop.Loop) (*Game, error) {
	theme, err := ui.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	minW, minH := widget.MinSize()
	g := &Game{
		Config:   cfg,
		Loop:     l,
		Media:    m,
		Width:    max(cfg.UI.Width, minW),
		Height:   max(cfg.UI.Height, minH),
		renderer: ui.NewRenderer(theme),
		controls: controls{media: m, volume: cfg.Playback.Volume},
		keyboard: newKeyboard(),
	}
	if cfg.Controls.MediaKeys {
		g.keys = watchMediaKeys()
	}
	g.mount()
	return g, nil
}

func (g *Game) mount() {
	g.container = widget.NewPlayerLayout(float64(g.Width), float64(g.Height), g.Config.Controls.SkipSeconds)
	g.input = widget.NewInput(g.container)

	if !g.Config.Controls.Pointer {
		g.teardown = player.InitBasic(g.container, g.Media)
		return
	}
	throttle := time.Duration(g.Config.Controls.ThrottleMS) * time.Millisecond
	g.teardown = player.Init(g.container, g.Media, g.Loop, player.WithThrottle(throttle))
}

// SetTitle shows the track name next to the artwork. Call on the UI thread.
func (g *Game) SetTitle(title string) {
	g.container.Lookup(widget.IDCurrentlyPlaying).SetText(title)
}

// SetArtwork shows the track artwork. Call on the UI thread.
func (g *Game) SetArtwork(img image.Image) {
	g.container.Lookup(widget.IDArtwork).Image = img
}

// Close detaches the player controls.
func (g *Game) Close() {
	if g.teardown != nil {
		g.teardown()
		g.teardown = nil
	}
}

func (g *Game) Update() error {
	if g.OnTick != nil {
		g.OnTick(time.Second / time.Duration(ebiten.TPS()))
	}
	g.Loop.RunPending()

	g.input.Apply(g.sample())

	action := g.keyboard.poll(g.Config.Keybinds)
	if action == ActionNone {
		action = g.keys.poll()
	}
	return g.controls.apply(action)
}

// sample reads the mouse and touch state for this tick.
func (g *Game) sample() widget.Snapshot {
	x, y := ebiten.CursorPosition()
	s := widget.Snapshot{
		Mouse:     widget.Point{X: float64(x), Y: float64(y)},
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		s.Touches = make(map[int]widget.Point, len(g.touchIDs))
		for _, id := range g.touchIDs {
			tx, ty := ebiten.TouchPosition(id)
			s.Touches[int(id)] = widget.Point{X: float64(tx), Y: float64(ty)}
		}
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Loop.RunFrame()

	x, y := ebiten.CursorPosition()
	g.renderer.Cursor = widget.Point{X: float64(x), Y: float64(y)}
	g.renderer.Draw(screen, g.container)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// Run opens the window and blocks until it is closed or the quit key is pressed.
func Run(g *Game, title string) error {
	defer g.Close()

	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if g.Config.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	if err != nil {
		log.Printf("Window closed with error: %v", err)
	}
	return err
}
