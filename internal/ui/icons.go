package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrubbar/internal/widget"
)

var whiteSubImage *ebiten.Image

// solid returns a 1x1 white source for DrawTriangles. It is created on first
// use so importing the package does not touch the graphics driver.
func solid() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillTriangle draws a solid triangle through three points.
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float32, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff
	vs := []ebiten.Vertex{
		{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, solid(), op)
}

// drawPlayIcon draws a right-pointing triangle centered at (cx, cy).
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Nudge right so the triangle looks centered in a circle
	cx += r * 0.15
	fillTriangle(dst, cx-r*0.6, cy-r*0.7, cx-r*0.6, cy+r*0.7, cx+r*0.7, cy, clr)
}

// drawPauseIcon draws two vertical bars.
func drawPauseIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	w := r * 0.35
	h := r * 1.3
	vector.DrawFilledRect(dst, cx-r*0.5, cy-h/2, w, h, clr, false)
	vector.DrawFilledRect(dst, cx+r*0.5-w, cy-h/2, w, h, clr, false)
}

// drawReplayIcon draws a double left-pointing chevron.
func drawReplayIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	h := r * 0.55
	fillTriangle(dst, cx, cy-h, cx, cy+h, cx-r*0.7, cy, clr)
	fillTriangle(dst, cx+r*0.7, cy-h, cx+r*0.7, cy+h, cx, cy, clr)
}

// drawForwardIcon draws a double right-pointing chevron.
func drawForwardIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	h := r * 0.55
	fillTriangle(dst, cx-r*0.7, cy-h, cx-r*0.7, cy+h, cx, cy, clr)
	fillTriangle(dst, cx, cy-h, cx, cy+h, cx+r*0.7, cy, clr)
}

// drawNoteIcon draws an eighth note, used when a track has no artwork.
func drawNoteIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx-r*0.3, cy+r*0.45, r*0.3, clr, true)
	vector.StrokeLine(dst, cx, cy+r*0.45, cx, cy-r*0.7, 2, clr, true)
	vector.StrokeLine(dst, cx, cy-r*0.7, cx+r*0.45, cy-r*0.35, 2, clr, true)
}

func iconFunc(name string) func(*ebiten.Image, float32, float32, float32, color.Color) {
	switch name {
	case widget.IconPlay:
		return drawPlayIcon
	case widget.IconPause:
		return drawPauseIcon
	case widget.IconReplay:
		return drawReplayIcon
	case widget.IconForward:
		return drawForwardIcon
	}
	return nil
}

// drawIconButton draws a round button with an icon and an optional caption
// under the icon.
func drawIconButton(dst *ebiten.Image, b widget.Rect, icon, caption string, bg, fg color.Color) {
	cx := float32(b.X + b.W/2)
	cy := float32(b.Y + b.H/2)
	r := float32(min(b.W, b.H) / 2)
	vector.DrawFilledCircle(dst, cx, cy, r, bg, true)

	fn := iconFunc(icon)
	if fn == nil {
		return
	}
	if caption == "" {
		fn(dst, cx, cy, r*0.5, fg)
		return
	}
	fn(dst, cx, cy-r*0.25, r*0.4, fg)
	DrawTextCentered(dst, caption, float64(cx), float64(cy+r*0.45), fg)
}
