// Package input tracks the latest pointer position, normalized to [-1, 1] on
// both axes with the vertical axis pointing up.
package input

import (
	"sync/atomic"
)

// Pointer is a normalized pointer position. The zero value is the viewport centre.
type Pointer struct {
	X float32
	Y float32
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether both sides are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Normalize converts a pixel position into a Pointer:
// x = -1 + 2*px/width, y = 1 - 2*py/height, each clamped to [-1, 1].
// It returns false if the viewport is not valid.
func Normalize(px, py float32, vp Viewport) (Pointer, bool) {
	if !vp.Valid() {
		return Pointer{}, false
	}
	p := Pointer{
		X: -1 + 2*(px/float32(vp.Width)),
		Y: 1 - 2*(py/float32(vp.Height)),
	}
	p.X = min(max(p.X, -1), 1)
	p.Y = min(max(p.Y, -1), 1)
	return p, true
}

// Tracker holds the latest pointer and viewport. Each update replaces the whole
// value, so readers never observe a half-written pair.
type Tracker struct {
	pointer  atomic.Pointer[Pointer]
	viewport atomic.Pointer[Viewport]
}

// NewTracker returns a tracker for a viewport of the given size, pointer at {0, 0}.
func NewTracker(width, height int) *Tracker {
	t := &Tracker{}
	t.Resize(width, height)
	return t
}

// Resize records a new viewport size. Non-positive sizes are ignored and the
// previous viewport is kept.
func (t *Tracker) Resize(width, height int) bool {
	vp := Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return false
	}
	t.viewport.Store(&vp)
	return true
}

// Move records a pointer move at pixel (px, py). It is ignored until a valid
// viewport is known.
func (t *Tracker) Move(px, py float32) bool {
	p, ok := Normalize(px, py, t.Viewport())
	if !ok {
		return false
	}
	t.pointer.Store(&p)
	return true
}

// Pointer returns the latest normalized pointer position.
func (t *Tracker) Pointer() Pointer {
	if p := t.pointer.Load(); p != nil {
		return *p
	}
	return Pointer{}
}

// Viewport returns the latest valid viewport, or the zero Viewport.
func (t *Tracker) Viewport() Viewport {
	if v := t.viewport.Load(); v != nil {
		return *v
	}
	return Viewport{}
}
