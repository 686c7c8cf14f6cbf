package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrubbar/internal/widget"
)

const (
	trackThickness = 6
	knobRadius     = 9
)

// Renderer draws a player widget tree.
type Renderer struct {
	Theme Theme

	// Cursor is the mouse position, used for hover feedback.
	Cursor widget.Point

	artwork    image.Image
	artworkImg *ebiten.Image
}

// NewRenderer returns a renderer using theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// Draw paints every visible element of c onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, c *widget.Container) {
	dst.Fill(r.Theme.Background)

	c.Walk(func(e *widget.Element) bool {
		if !e.Visible() {
			return false
		}
		r.drawElement(dst, c, e)
		return true
	})
}

func (r *Renderer) drawElement(dst *ebiten.Image, c *widget.Container, e *widget.Element) {
	b := e.Bounds
	switch e.ID() {
	case widget.IDArtwork:
		r.drawArtwork(dst, e)

	case widget.IDCurrentlyPlaying:
		DrawText(dst, Ellipsize(e.Text(), b.W), b.X, b.Y+(b.H-GlyphHeight)/2, r.Theme.Text)

	case widget.IDCurrentTime, widget.IDCancelSeekCurrentTime:
		DrawTextCentered(dst, e.Text(), b.X+b.W/2, b.Y+b.H/2, r.Theme.Text)

	case widget.IDDuration, widget.IDCancelSeekDuration:
		DrawTextCentered(dst, e.Text(), b.X+b.W/2, b.Y+b.H/2, r.Theme.TextSecondary)

	case widget.IDCancelSeek:
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.Theme.Overlay, false)

	case widget.IDCancelSeekButton:
		clr := r.Theme.Cancel
		overlay := c.Lookup(widget.IDCancelSeek)
		if (overlay != nil && overlay.HasClass(widget.ClassCancel)) || b.Contains(r.Cursor.X, r.Cursor.Y) {
			clr = r.Theme.CancelActive
		}
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		DrawTextCentered(dst, "Release here to cancel", b.X+b.W/2, b.Y+b.H/2, r.Theme.Text)

	case widget.IDNormBar:
		drawTrack(dst, b, 100, r.Theme.Track)

	case widget.IDBufferBar:
		drawTrack(dst, b, e.Width(), r.Theme.Buffer)

	case widget.IDProgressBar:
		drawTrack(dst, b, e.Left(), r.Theme.Fill)

	case widget.IDCircle:
		holder := e.Parent()
		if holder == nil {
			return
		}
		hb := holder.Bounds
		x := hb.X + hb.W*clampPercent(holder.Left())/100
		vector.DrawFilledCircle(dst, float32(x), float32(hb.Y+hb.H/2), knobRadius, r.Theme.Knob, true)

	case widget.IDPlayButton:
		bg := r.Theme.ButtonIdle
		if e.HasClass(widget.ClassReady) {
			bg = r.Theme.Button
		}
		drawIconButton(dst, b, e.Icon(), "", bg, r.Theme.Background)

	default:
		if e.HasClass(widget.ClassSkip) {
			drawIconButton(dst, b, e.Icon(), e.Text(), r.Theme.Surface, r.Theme.Text)
		}
	}
}

func (r *Renderer) drawArtwork(dst *ebiten.Image, e *widget.Element) {
	b := e.Bounds
	img := r.artworkImage(e.Image)
	if img == nil {
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.Theme.Surface, false)
		drawNoteIcon(dst, float32(b.X+b.W/2), float32(b.Y+b.H/2), float32(b.H/3), r.Theme.TextSecondary)
		return
	}
	op := &ebiten.DrawImageOptions{}
	bounds := img.Bounds()
	op.GeoM.Scale(b.W/float64(bounds.Dx()), b.H/float64(bounds.Dy()))
	op.GeoM.Translate(b.X, b.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// artworkImage converts decoded artwork to a GPU image once per source image.
func (r *Renderer) artworkImage(src image.Image) *ebiten.Image {
	if src == nil {
		return nil
	}
	if img, ok := src.(*ebiten.Image); ok {
		return img
	}
	if src != r.artwork {
		if r.artworkImg != nil {
			r.artworkImg.Deallocate()
		}
		r.artwork = src
		r.artworkImg = ebiten.NewImageFromImage(src)
	}
	return r.artworkImg
}

// drawTrack fills percent of the bar box as a thin horizontal strip.
func drawTrack(dst *ebiten.Image, b widget.Rect, percent float64, clr color.Color) {
	w := b.W * clampPercent(percent) / 100
	if w <= 0 {
		return
	}
	y := b.Y + (b.H-trackThickness)/2
	vector.DrawFilledRect(dst, float32(b.X), float32(y), float32(w), trackThickness, clr, true)
}

func clampPercent(p float64) float64 {
	return min(max(p, 0), 100)
}
