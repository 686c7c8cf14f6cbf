package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/scrubbar/internal/config"
	"github.com/depeter/scrubbar/internal/media"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"home":      ebiten.KeyHome,
	"end":       ebiten.KeyEnd,
	"minus":     ebiten.KeyMinus,
	"equal":     ebiten.KeyEqual,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
	"backspace": ebiten.KeyBackspace,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionPlayPause
	ActionSeekForward
	ActionSeekBackward
	ActionVolumeUp
	ActionVolumeDown
	ActionQuit
)

const (
	seekStep   = 5
	volumeStep = 5
	maxVolume  = 150
)

const (
	repeatDelay    = 18 // ticks before repeat starts (~300ms at 60 TPS)
	repeatInterval = 4  // ticks between repeats (~67ms at 60 TPS)
)

// keyboard tracks how long keys have been held so seek and volume keys
// auto-repeat.
type keyboard struct {
	held map[ebiten.Key]int
}

func newKeyboard() *keyboard {
	return &keyboard{held: make(map[ebiten.Key]int)}
}

// poll returns the first configured action whose key fired this tick.
func (kb *keyboard) poll(keys config.KeybindConfig) Action {
	defer kb.update()

	switch {
	case keyJustPressed(keys.PlayPause):
		return ActionPlayPause
	case kb.repeating(keys.SeekForward):
		return ActionSeekForward
	case kb.repeating(keys.SeekBackward):
		return ActionSeekBackward
	case kb.repeating(keys.VolumeUp):
		return ActionVolumeUp
	case kb.repeating(keys.VolumeDown):
		return ActionVolumeDown
	case keyJustPressed(keys.Quit):
		return ActionQuit
	}
	return ActionNone
}

func (kb *keyboard) repeating(name string) bool {
	k, ok := parseKey(name)
	if !ok || !ebiten.IsKeyPressed(k) {
		return false
	}
	return repeatFires(kb.held[k])
}

// namedKeys lists each key in keyMap once.
var namedKeys = func() []ebiten.Key {
	seen := make(map[ebiten.Key]bool)
	var keys []ebiten.Key
	for _, k := range keyMap {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}()

// update counts held ticks for every key the config can name.
func (kb *keyboard) update() {
	for _, k := range namedKeys {
		if ebiten.IsKeyPressed(k) {
			kb.held[k]++
		} else {
			delete(kb.held, k)
		}
	}
}

// repeatFires reports whether a key held for the given number of previous
// ticks fires this tick.
func repeatFires(held int) bool {
	if held == 0 {
		return true
	}
	return held >= repeatDelay && (held-repeatDelay)%repeatInterval == 0
}

// volumeSetter is implemented by elements with an audible output.
type volumeSetter interface {
	SetVolume(vol int) error
}

// controls applies keyboard actions to a media element.
type controls struct {
	media  media.Element
	volume int
}

// apply runs a. It returns ebiten.Termination for ActionQuit.
func (c *controls) apply(a Action) error {
	switch a {
	case ActionPlayPause:
		var err error
		if c.media.Paused() {
			err = c.media.Play()
		} else {
			err = c.media.Pause()
		}
		if err != nil {
			log.Printf("Failed to toggle playback: %v", err)
		}
	case ActionSeekForward:
		c.seek(seekStep)
	case ActionSeekBackward:
		c.seek(-seekStep)
	case ActionVolumeUp:
		c.setVolume(c.volume + volumeStep)
	case ActionVolumeDown:
		c.setVolume(c.volume - volumeStep)
	case ActionQuit:
		return ebiten.Termination
	}
	return nil
}

func (c *controls) seek(delta float64) {
	d := c.media.Duration()
	if !(d > 0) {
		return
	}
	pos := min(max(c.media.CurrentTime()+delta, 0), d)
	c.media.SetCurrentTime(pos)
}

func (c *controls) setVolume(vol int) {
	vol = min(max(vol, 0), maxVolume)
	vs, ok := c.media.(volumeSetter)
	if !ok || vol == c.volume {
		return
	}
	if err := vs.SetVolume(vol); err != nil {
		log.Printf("Failed to set volume: %v", err)
		return
	}
	c.volume = vol
}
