package tui

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// projection scales field pixels down to terminal cells
type projection struct {
	cols, rows    int
	width, height int
}

func newProjection(cols, rows, width, height int) projection {
	return projection{
		cols:   max(cols, 1),
		rows:   max(rows, 1),
		width:  max(width, 1),
		height: max(height, 1),
	}
}

func (p projection) sx() float64 { return float64(p.cols) / float64(p.width) }
func (p projection) sy() float64 { return float64(p.rows) / float64(p.height) }

// point returns the cell holding a field position
func (p projection) point(v mgl64.Vec2) image.Point {
	return image.Pt(
		int(math.Floor(v.X()*p.sx())),
		int(math.Floor(v.Y()*p.sy())),
	)
}

// rect returns every cell a field rectangle touches, clipped to the screen.
// A non-empty rectangle always covers at least one cell.
func (p projection) rect(r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	cells := image.Rect(
		int(math.Floor(float64(r.Min.X)*p.sx())),
		int(math.Floor(float64(r.Min.Y)*p.sy())),
		int(math.Ceil(float64(r.Max.X)*p.sx())),
		int(math.Ceil(float64(r.Max.Y)*p.sy())),
	)
	return cells.Intersect(image.Rect(0, 0, p.cols, p.rows))
}

// line returns the cells on the segment between two cells, end points included
func line(from, to image.Point) []image.Point {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	points := make([]image.Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for p := from; ; {
		points = append(points, p)
		if p == to {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
