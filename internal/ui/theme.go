package ui

import (
	"fmt"
	"image/color"
)

// Theme is the palette the player is drawn with.
type Theme struct {
	Background    color.RGBA
	Surface       color.RGBA
	Track         color.RGBA
	Buffer        color.RGBA
	Fill          color.RGBA
	Knob          color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
	Button        color.RGBA
	ButtonIdle    color.RGBA
	Overlay       color.RGBA
	Cancel        color.RGBA
	CancelActive  color.RGBA
}

// Dark is the default theme, inspired by Jellyfin branding.
var Dark = Theme{
	Background:    color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF},
	Surface:       color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF},
	Track:         color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF},
	Buffer:        color.RGBA{R: 0x48, G: 0x48, B: 0x58, A: 0xFF},
	Fill:          color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}, // Jellyfin blue
	Knob:          color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF},
	Text:          color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF},
	TextSecondary: color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF},
	Button:        color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF},
	ButtonIdle:    color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF},
	Overlay:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0},
	Cancel:        color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF},
	CancelActive:  color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF},
}

// Purple swaps the blue accent for the purple one.
var Purple = Theme{
	Background:    color.RGBA{R: 0x16, G: 0x10, B: 0x1C, A: 0xFF},
	Surface:       color.RGBA{R: 0x22, G: 0x1A, B: 0x2A, A: 0xFF},
	Track:         color.RGBA{R: 0x34, G: 0x28, B: 0x3E, A: 0xFF},
	Buffer:        color.RGBA{R: 0x58, G: 0x48, B: 0x66, A: 0xFF},
	Fill:          color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF},
	Knob:          color.RGBA{R: 0xF0, G: 0xE6, B: 0xF6, A: 0xFF},
	Text:          color.RGBA{R: 0xF0, G: 0xE6, B: 0xF6, A: 0xFF},
	TextSecondary: color.RGBA{R: 0xA8, G: 0x96, B: 0xB4, A: 0xFF},
	Button:        color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF},
	ButtonIdle:    color.RGBA{R: 0x6C, G: 0x5A, B: 0x78, A: 0xFF},
	Overlay:       color.RGBA{R: 0x10, G: 0x00, B: 0x18, A: 0xC0},
	Cancel:        color.RGBA{R: 0x34, G: 0x28, B: 0x3E, A: 0xFF},
	CancelActive:  color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF},
}

// White is a light theme.
var White = Theme{
	Background:    color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF},
	Surface:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Track:         color.RGBA{R: 0xDC, G: 0xDC, B: 0xE2, A: 0xFF},
	Buffer:        color.RGBA{R: 0xB8, G: 0xB8, B: 0xC4, A: 0xFF},
	Fill:          color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF},
	Knob:          color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF},
	Text:          color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xFF},
	TextSecondary: color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF},
	Button:        color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0xFF},
	ButtonIdle:    color.RGBA{R: 0xA0, G: 0xA0, B: 0xAC, A: 0xFF},
	Overlay:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE0},
	Cancel:        color.RGBA{R: 0xDC, G: 0xDC, B: 0xE2, A: 0xFF},
	CancelActive:  color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF},
}

// ThemeByName returns the named theme. An empty name selects Dark.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return Dark, nil
	case "purple":
		return Purple, nil
	case "white":
		return White, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Text sizes of basicfont.Face7x13.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
)
