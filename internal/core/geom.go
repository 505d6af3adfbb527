// Package core provides fundamental types and utilities for flapfish.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Vec2 is a 2D vector in play-field units. Y grows upward.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box described by its center and half extents.
// Used for play-field collision tests, where positions are entity centers.
type Box struct {
	Center Vec2
	Half   Vec2
}

// BoxAt builds a box centered on pos with the given full width and height.
func BoxAt(pos Vec2, w, h float32) Box {
	return Box{Center: pos, Half: Vec2{X: w / 2, Y: h / 2}}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float32 { return b.Center.X - b.Half.X }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float32 { return b.Center.X + b.Half.X }

// Top returns the y-coordinate of the top edge (Y up).
func (b Box) Top() float32 { return b.Center.Y + b.Half.Y }

// Bottom returns the y-coordinate of the bottom edge (Y up).
func (b Box) Bottom() float32 { return b.Center.Y - b.Half.Y }

// Overlaps reports whether the two boxes share interior area.
// Touching edges do not count as overlap. The test is symmetric.
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() &&
		b.Right() > o.Left() &&
		b.Top() > o.Bottom() &&
		b.Bottom() < o.Top()
}

// Rect is an integer rectangle in screen cells, used by the Screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF32 restricts a float32 value to be within [lo, hi].
func ClampF32(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
