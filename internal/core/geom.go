// Package core provides fundamental types and utilities shared by the simulation
// and its drivers. It has no UI dependencies (no Bubble Tea, no ebiten) so the
// simulation stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned box in field units, anchored at its top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Circle is a circle in field units.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// OverlapsBoxExtents reports whether the circle center lies within the box's
// half-extents grown by the radius on both axes.
//
// This is the center-distance test, not a closest-point test: near a corner it
// reports hits that a true box-circle test would not.
func (c Circle) OverlapsBoxExtents(b Box) bool {
	cx, cy := b.Center()
	distX := math.Abs(c.X - cx)
	distY := math.Abs(c.Y - cy)
	return distX < b.W/2+c.R && distY < b.H/2+c.R
}

// Overlaps reports whether two circles intersect (strictly).
func (c Circle) Overlaps(o Circle) bool {
	return math.Hypot(c.X-o.X, c.Y-o.Y) < c.R+o.R
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
