package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

func DrawText(dst *ebiten.Image, txt string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, clr color.Color) {
	w, h := text.Measure(txt, face, 0)
	DrawText(dst, txt, cx-w/2, cy-h/2, clr)
}

func MeasureText(txt string) (float64, float64) {
	return text.Measure(txt, face, 0)
}

// Ellipsize shortens txt to fit maxWidth pixels of the fixed-width face.
func Ellipsize(txt string, maxWidth float64) string {
	r := []rune(txt)
	n := int(maxWidth / GlyphWidth)
	if len(r) <= n {
		return txt
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}
