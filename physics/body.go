// Package physics holds the kinematic body shared by every moving entity and
// the axis-separated collision resolver.
//
// World space is screen space: x grows right and y grows down. Boxes use
// cp.BB with L/R as the x extents and B/T as the min/max y, so B is the top
// edge on screen. Top and Bottom exist to keep call sites readable.
package physics

import "github.com/jakecoffman/cp"

// Body is position, velocity and box size. Pos is the top-left corner.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector
	W   float64
	H   float64
}

// NewBody creates a body with its top-left corner at (x, y).
func NewBody(x, y, w, h float64) Body {
	return Body{Pos: cp.Vector{X: x, Y: y}, W: w, H: h}
}

// Bounds returns the body's bounding box.
func (b *Body) Bounds() cp.BB {
	return cp.BB{L: b.Pos.X, B: b.Pos.Y, R: b.Pos.X + b.W, T: b.Pos.Y + b.H}
}

func (b *Body) Left() float64   { return b.Pos.X }
func (b *Body) Right() float64  { return b.Pos.X + b.W }
func (b *Body) Top() float64    { return b.Pos.Y }
func (b *Body) Bottom() float64 { return b.Pos.Y + b.H }

func (b *Body) SetLeft(x float64)   { b.Pos.X = x }
func (b *Body) SetRight(x float64)  { b.Pos.X = x - b.W }
func (b *Body) SetTop(y float64)    { b.Pos.Y = y }
func (b *Body) SetBottom(y float64) { b.Pos.Y = y - b.H }

// Center returns the middle of the box.
func (b *Body) Center() cp.Vector {
	return cp.Vector{X: b.Pos.X + b.W/2, Y: b.Pos.Y + b.H/2}
}

// MoveX integrates horizontal velocity.
func (b *Body) MoveX(dt float64) {
	b.Pos.X += b.Vel.X * dt
}

// MoveY integrates vertical velocity.
func (b *Body) MoveY(dt float64) {
	b.Pos.Y += b.Vel.Y * dt
}

// Top returns the on-screen top edge of bb.
func Top(bb cp.BB) float64 { return bb.B }

// Bottom returns the on-screen bottom edge of bb.
func Bottom(bb cp.BB) float64 { return bb.T }

// Box builds a bounding box from a top-left corner and size.
func Box(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Overlaps reports whether a and b share interior area. Touching edges do not
// overlap, so a body resting exactly on a tile is not in contact with it.
func Overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}

// OverlapX returns the width of the horizontal intersection of a and b.
func OverlapX(a, b cp.BB) float64 {
	w := min(a.R, b.R) - max(a.L, b.L)
	if w < 0 {
		return 0
	}
	return w
}
