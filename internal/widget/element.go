// Package widget is the retained element tree the player controls live in.
// Elements carry the state the renderer draws (text, icon, classes and
// percentage offsets) and are event targets for pointer and click events.
package widget

import (
	"image"
	"strconv"

	"github.com/depeter/scrubbar/internal/event"
)

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Element is a node in the widget tree.
type Element struct {
	event.Target

	id       string
	parent   *Element
	children []*Element

	// Bounds is the layout box in window coordinates.
	Bounds Rect
	// Hidden removes the element and its subtree from rendering and hit-testing.
	Hidden bool
	// ShowWithClass, when set, hides the element unless it carries that class.
	ShowWithClass string
	// Image is optional artwork. *ebiten.Image values are drawn directly.
	Image image.Image

	text    string
	icon    string
	classes map[string]bool
	data    map[string]string

	left, width       float64
	hasLeft, hasWidth bool
}

// NewElement creates a detached element.
func NewElement(id string, bounds Rect) *Element {
	return &Element{id: id, Bounds: bounds}
}

// ID implements event.Node.
func (e *Element) ID() string { return e.id }

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the child elements in paint order.
func (e *Element) Children() []*Element { return e.children }

// Append adds child as the topmost child of e.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return child
}

func (e *Element) Text() string        { return e.text }
func (e *Element) SetText(text string) { e.text = text }

func (e *Element) Icon() string        { return e.icon }
func (e *Element) SetIcon(icon string) { e.icon = icon }

// AddClass adds a class name.
func (e *Element) AddClass(name string) {
	if e.classes == nil {
		e.classes = make(map[string]bool)
	}
	e.classes[name] = true
}

// RemoveClass removes a class name if present.
func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	return e.classes[name]
}

// SetData stores a dataset value.
func (e *Element) SetData(key, value string) {
	if e.data == nil {
		e.data = make(map[string]string)
	}
	e.data[key] = value
}

// Data returns a dataset value, or "" when unset.
func (e *Element) Data(key string) string {
	return e.data[key]
}

// SetLeft sets the horizontal offset as a percentage of the parent track.
func (e *Element) SetLeft(percent float64) {
	e.left, e.hasLeft = percent, true
}

// Left returns the horizontal offset percentage.
func (e *Element) Left() float64 { return e.left }

// SetWidth sets the width as a percentage of the parent track.
func (e *Element) SetWidth(percent float64) {
	e.width, e.hasWidth = percent, true
}

// Width returns the width percentage.
func (e *Element) Width() float64 { return e.width }

// LeftStyle renders the offset the way a stylesheet would, e.g. "50%".
// It is "" until SetLeft is called.
func (e *Element) LeftStyle() string {
	if !e.hasLeft {
		return ""
	}
	return percent(e.left)
}

// WidthStyle renders the width, e.g. "75%". It is "" until SetWidth is called.
func (e *Element) WidthStyle() string {
	if !e.hasWidth {
		return ""
	}
	return percent(e.width)
}

// Visible reports whether the element and all its ancestors are shown.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.Hidden {
			return false
		}
		if n.ShowWithClass != "" && !n.HasClass(n.ShowWithClass) {
			return false
		}
	}
	return true
}

// BoundingClientRect returns the element's box in window coordinates.
func (e *Element) BoundingClientRect() Rect { return e.Bounds }

// OffsetLeft returns the left edge in window coordinates.
func (e *Element) OffsetLeft() float64 { return e.Bounds.X }

// ClientWidth returns the element width in pixels.
func (e *Element) ClientWidth() float64 { return e.Bounds.W }

func percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
