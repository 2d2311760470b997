package geometry

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned rectangle positioned by its center point.
// It describes both vehicles and the intersection region.
type Box struct {
	Pos mgl64.Vec2 // Center point
	Vel mgl64.Vec2 // Added to Pos once per tick
	W   int        // Width in pixels
	H   int        // Height in pixels
}

// NewBox creates a stationary box centered at (x, y)
func NewBox(x, y float64, w, h int) Box {
	return Box{
		Pos: mgl64.Vec2{x, y},
		W:   w,
		H:   h,
	}
}

// Half extents use integer division by shift, so odd sizes lose a pixel on each side.
func (b Box) halfW() float64 { return float64(b.W >> 1) }
func (b Box) halfH() float64 { return float64(b.H >> 1) }

// Left returns the x-coordinate of the left edge
func (b Box) Left() float64 { return b.Pos.X() - b.halfW() }

// Right returns the x-coordinate of the right edge
func (b Box) Right() float64 { return b.Pos.X() + b.halfW() }

// Top returns the y-coordinate of the top edge (screen Y grows downward)
func (b Box) Top() float64 { return b.Pos.Y() - b.halfH() }

// Bottom returns the y-coordinate of the bottom edge
func (b Box) Bottom() float64 { return b.Pos.Y() + b.halfH() }

// Advance returns the box moved by one tick of its velocity
func (b Box) Advance() Box {
	b.Pos = b.Pos.Add(b.Vel)
	return b
}

// Rect returns the integer screen rectangle the box covers.
// Coordinates are truncated toward zero the same way a pixel draw call would.
func (b Box) Rect() image.Rectangle {
	x := int(b.Pos.X() - b.halfW())
	y := int(b.Pos.Y() - b.halfH())
	return image.Rect(x, y, x+b.W, y+b.H)
}

// Overlaps reports whether two boxes intersect.
// Boxes are rejected only when one lies strictly beyond the other along an axis,
// so edges that exactly touch still count as overlapping.
func Overlaps(a, b Box) bool {
	if a.Right() < b.Left() {
		return false
	}
	if a.Left() > b.Right() {
		return false
	}
	if a.Bottom() < b.Top() {
		return false
	}
	if a.Top() > b.Bottom() {
		return false
	}
	return true
}

// Front returns the strip of Rect, depth pixels deep, on the side the box is
// moving toward. A stationary box has no front.
func (b Box) Front(depth int) image.Rectangle {
	r := b.Rect()
	switch {
	case b.Vel.X() > 0:
		r.Min.X = r.Max.X - depth
	case b.Vel.X() < 0:
		r.Max.X = r.Min.X + depth
	case b.Vel.Y() > 0:
		r.Min.Y = r.Max.Y - depth
	case b.Vel.Y() < 0:
		r.Max.Y = r.Min.Y + depth
	default:
		return image.Rectangle{}
	}
	return r.Intersect(b.Rect())
}
