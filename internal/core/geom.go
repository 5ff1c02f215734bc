// Package core provides fundamental types and utilities shared by the engine
// and its front ends. It has no UI dependencies so simulation code stays pure
// and testable.
package core

// Rect is an integer cell rectangle, used when drawing into a Screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
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

// Box is an axis-aligned bounding box in world (pixel) coordinates.
// Y grows downward.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// CenteredBox builds a square box of the given size centered at (cx, cy).
func CenteredBox(cx, cy, size float64) Box {
	half := size / 2
	return Box{Left: cx - half, Top: cy - half, Width: size, Height: size}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

// OverlapsX reports whether the horizontal spans [left, right) of both boxes
// overlap. Touching edges do not overlap.
func (b Box) OverlapsX(left, right float64) bool {
	return b.Right() > left && b.Left < right
}

// WithinY reports whether the box lies vertically inside [top, bottom].
// Touching either bound counts as inside.
func (b Box) WithinY(top, bottom float64) bool {
	return b.Top >= top && b.Bottom() <= bottom
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
