package widget

import (
	"fmt"
	"sort"
	"strconv"
)

// Stable element identifiers shared by the layout, the controller and the renderer.
const (
	IDPlayer           = "player"
	IDArtwork          = "artwork"
	IDCurrentlyPlaying = "currentlyPlaying"
	IDCurrentTime      = "currentTime"
	IDDuration         = "duration"
	IDPlayButton       = "playButton"
	IDBarHolder        = "barHolder"
	IDNormBar          = "normBar"
	IDBufferBar        = "bufferBar"
	IDProgressBar      = "progressBar"
	IDCircleHolder     = "circleHolder"
	IDCircle           = "circle"

	IDCancelSeek            = "cancelSeek"
	IDCancelSeekCurrentTime = "cancelSeekCurrentTime"
	IDCancelSeekButton      = "cancelSeekButton"
	IDCancelSeekDuration    = "cancelSeekDuration"
	IDDropOverlay           = "dropOverlay"
)

// Class names toggled by the controller.
const (
	ClassDisplay = "display"
	ClassCancel  = "cancel"
	ClassReady   = "ready"
	ClassSkip    = "skip"
)

// DataSeconds is the dataset key holding a skip button's offset.
const DataSeconds = "seconds"

// Icon names understood by the renderer.
const (
	IconPlay    = "play"
	IconPause   = "pause"
	IconReplay  = "replay"
	IconForward = "forward"
)

// Layout metrics in pixels.
const (
	pad         = 16
	infoH       = 40
	overlayH    = 56
	barH        = 24
	buttonSize  = 48
	buttonGap   = 12
	timeLabelW  = 64
	labelGap    = 8
	minWidth    = 7*buttonSize + 6*buttonGap + 2*pad
	layoutTotal = pad + infoH + overlayH + 12 + barH + 12 + buttonSize + pad
)

// MinSize returns the smallest window the layout fits in.
func MinSize() (w, h int) {
	return minWidth, layoutTotal
}

// SkipID returns the element id of the skip button for an offset in seconds.
func SkipID(seconds int) string {
	if seconds < 0 {
		return fmt.Sprintf("replay%d", -seconds)
	}
	return fmt.Sprintf("forward%d", seconds)
}

// NewPlayerLayout builds the player markup for a window of the given size.
// Skip buttons are placed around the play button: replays left, forwards right.
func NewPlayerLayout(width, height float64, skips []int) *Container {
	if width < minWidth {
		width = minWidth
	}
	if height < layoutTotal {
		height = layoutTotal
	}
	c := NewContainer(IDPlayer, Rect{0, 0, width, height})
	root := c.Root()
	inner := width - 2*pad

	// Info row: artwork, title, clock.
	y := float64(pad)
	c.Add(root, IDArtwork, Rect{pad, y, infoH, infoH})
	c.Add(root, IDCurrentlyPlaying, Rect{pad + infoH + labelGap, y, inner - infoH - 2*labelGap - 2*timeLabelW - labelGap, infoH})
	cur := c.Add(root, IDCurrentTime, Rect{width - pad - 2*timeLabelW - labelGap, y, timeLabelW, infoH})
	cur.SetText("00:00")
	dur := c.Add(root, IDDuration, Rect{width - pad - timeLabelW, y, timeLabelW, infoH})
	dur.SetText("00:00")

	// Cancel-seek overlay, shown only while dragging.
	y += infoH
	overlay := c.Add(root, IDCancelSeek, Rect{pad, y, inner, overlayH})
	overlay.ShowWithClass = ClassDisplay
	c.Add(overlay, IDDropOverlay, Rect{pad, y, inner, overlayH})
	st := c.Add(overlay, IDCancelSeekCurrentTime, Rect{pad, y, timeLabelW, overlayH})
	st.SetText("00:00")
	c.Add(overlay, IDCancelSeekButton, Rect{pad + timeLabelW + labelGap, y + 4, inner - 2*timeLabelW - 2*labelGap, overlayH - 8})
	sd := c.Add(overlay, IDCancelSeekDuration, Rect{width - pad - timeLabelW, y, timeLabelW, overlayH})
	sd.SetText("00:00")

	// Seek bar.
	y += overlayH + 12
	track := Rect{pad, y, inner, barH}
	bar := c.Add(root, IDBarHolder, track)
	c.Add(bar, IDNormBar, track)
	buf := c.Add(bar, IDBufferBar, track)
	buf.SetWidth(0)
	prog := c.Add(bar, IDProgressBar, track)
	prog.SetLeft(0)
	handle := c.Add(bar, IDCircleHolder, track)
	handle.SetLeft(0)
	knob := c.Add(handle, IDCircle, Rect{track.X - barH/2, y, barH, barH})
	knob.ShowWithClass = ClassDisplay

	// Controls row.
	y += barH + 12
	addControls(c, root, width, y, skips)

	return c
}

func addControls(c *Container, root *Element, width, y float64, skips []int) {
	var back, fwd []int
	for _, s := range skips {
		switch {
		case s < 0:
			back = append(back, s)
		case s > 0:
			fwd = append(fwd, s)
		}
	}
	sort.Ints(back)
	sort.Ints(fwd)

	n := len(back) + 1 + len(fwd)
	rowW := float64(n)*buttonSize + float64(n-1)*buttonGap
	x := (width - rowW) / 2

	place := func(id string) *Element {
		el := c.Add(root, id, Rect{x, y, buttonSize, buttonSize})
		x += buttonSize + buttonGap
		return el
	}
	for _, s := range back {
		b := place(SkipID(s))
		b.AddClass(ClassSkip)
		b.SetData(DataSeconds, strconv.Itoa(s))
		b.SetIcon(IconReplay)
		b.SetText(strconv.Itoa(-s))
	}
	play := place(IDPlayButton)
	play.SetIcon(IconPlay)
	for _, s := range fwd {
		b := place(SkipID(s))
		b.AddClass(ClassSkip)
		b.SetData(DataSeconds, strconv.Itoa(s))
		b.SetIcon(IconForward)
		b.SetText(strconv.Itoa(s))
	}
}
