// Package geom provides float-coordinate geometry helpers for boundary
// constraints. It has no dependencies so game logic stays pure and testable.
package geom

// Rect is an axis-aligned rectangle in real-valued coordinates. It is an
// immutable value type: derived operations return new rectangles. Width and
// height are never negative.
type Rect struct {
	X, Y float64 // top-left corner position
	W, H float64 // width and height
}

// NewRect creates a rectangle. Negative dimensions are a contract violation
// and panic eagerly rather than propagating malformed geometry downstream.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 || h < 0 {
		panic("geom: negative rectangle dimensions")
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// MoveInside clamps r into parent without changing its size, independently
// per axis: a leading edge before the parent's snaps to the parent's leading
// edge; a trailing edge at or beyond the parent's snaps so the trailing
// edges coincide; otherwise the coordinate is unchanged. Returns false when
// r cannot fit inside parent at all (wider or taller), signalling a
// configuration error the caller decides how to handle.
func (r Rect) MoveInside(parent Rect) (Rect, bool) {
	if r.W > parent.W || r.H > parent.H {
		return Rect{}, false
	}

	out := r
	switch {
	case out.X < parent.X:
		out.X = parent.X
	case out.Right() >= parent.Right():
		out.X = parent.Right() - out.W
	}
	switch {
	case out.Y < parent.Y:
		out.Y = parent.Y
	case out.Bottom() >= parent.Bottom():
		out.Y = parent.Bottom() - out.H
	}
	return out, true
}
