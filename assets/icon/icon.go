// Package icon draws the window icon: a play button over a seek bar.
package icon

import (
	"image"
	"image/color"
)

var (
	accent  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	trackBG = color.RGBA{R: 0x48, G: 0x48, B: 0x58, A: 0xFF}
	darkBG  = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	knob    = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	glow    = color.NRGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, darkBG)

	// Play button in the upper half
	fillCircle(img, s*0.5, s*0.38, s*0.24, glow)
	fillCircle(img, s*0.5, s*0.38, s*0.2, accent)
	fillTriangle(img,
		s*0.45, s*0.28,
		s*0.45, s*0.48,
		s*0.61, s*0.38,
		darkBG)

	// Seek bar, two fifths played
	barY := s * 0.76
	barH := s * 0.06
	fillRoundedRect(img, s*0.12, barY, s*0.76, barH, barH/2, trackBG)
	fillRoundedRect(img, s*0.12, barY, s*0.30, barH, barH/2, accent)
	fillCircle(img, s*0.42, barY+barH/2, s*0.07, knob)

	return img
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	for y := int(yf); y < int(yf+hf+1); y++ {
		for x := int(xf); x < int(xf+wf+1); x++ {
			if insideRounded(float64(x)+0.5, float64(y)+0.5, xf, yf, wf, hf, r) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// insideRounded reports whether (px, py) lies in the rectangle with corners
// rounded to radius r.
func insideRounded(px, py, x, y, w, h, r float64) bool {
	if px < x || py < y || px > x+w || py > y+h {
		return false
	}
	cx := min(max(px, x+r), x+w-r)
	cy := min(max(py, y+r), y+h-r)
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	r2 := r * r
	for y := int(cy - r); y <= int(cy+r+1); y++ {
		for x := int(cx - r); x <= int(cx+r+1); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for y := int(minY); y <= int(maxY); y++ {
		for x := int(minX); x <= int(maxX); x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257
	ea := uint32(existing.A) * 257

	// c.RGBA is premultiplied
	inv := 0xFFFF - a0
	nr := r0 + er*inv/0xFFFF
	ng := g0 + eg*inv/0xFFFF
	nb := b0 + eb*inv/0xFFFF
	na := a0 + ea*inv/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: uint8(na >> 8),
	})
}
