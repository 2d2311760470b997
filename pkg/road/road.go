package road

import (
	"image"

	"github.com/golangdaddy/crossroads/pkg/geometry"
)

// Layout is the static scenery of a four way crossing: the road surface of
// each arm, the dashed centre lines and the intersection outline.
type Layout struct {
	Arms    [4]image.Rectangle // Indexed by Arm
	Dashes  []image.Rectangle
	Outline image.Rectangle // Inclusive of its right and bottom edge
}

// NewLayout lays the roads out for a field of the given size around the
// intersection. Arms shrink to nothing when the field is too small.
func NewLayout(fieldWidth, fieldHeight int, intersection geometry.Box) Layout {
	r := intersection.Rect()
	cx, cy := int(intersection.Pos.X()), int(intersection.Pos.Y())

	layout := Layout{
		Outline: image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1),
		Dashes:  make([]image.Rectangle, 0, 4*DashCount),
	}

	layout.Arms[ArmNorth] = span(r.Min.X, 0, r.Max.X, r.Min.Y-nearGap)
	layout.Arms[ArmSouth] = span(r.Min.X, r.Max.Y+farGap, r.Max.X, fieldHeight)
	layout.Arms[ArmWest] = span(0, r.Min.Y, r.Min.X-nearGap, r.Max.Y)
	layout.Arms[ArmEast] = span(r.Max.X+farGap, r.Min.Y, fieldWidth, r.Max.Y)

	half := DashWidth / 2
	for i := 0; i < DashCount; i++ {
		near := i * DashPitch
		far := DashLength + i*DashPitch

		// north, from the top edge down
		layout.Dashes = append(layout.Dashes, image.Rect(cx-half, near, cx+half, near+DashLength))
		// south, from the bottom edge up
		y := fieldHeight - 1 - far
		layout.Dashes = append(layout.Dashes, image.Rect(cx-half, y, cx+half, y+DashLength))
		// west, from the left edge
		layout.Dashes = append(layout.Dashes, image.Rect(near, cy-half, near+DashLength, cy+half))
		// east, from the right edge
		x := fieldWidth - 1 - far
		layout.Dashes = append(layout.Dashes, image.Rect(x, cy-half, x+DashLength, cy+half))
	}
	return layout
}

// span returns the rectangle between two corners, or an empty one when the
// corners are inverted
func span(x0, y0, x1, y1 int) image.Rectangle {
	if x1 <= x0 || y1 <= y0 {
		return image.Rectangle{}
	}
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// IsVisible checks if a rectangle is at least partly inside the field
func IsVisible(r image.Rectangle, fieldWidth, fieldHeight int) bool {
	return !r.Empty() && r.Overlaps(image.Rect(0, 0, fieldWidth, fieldHeight))
}
