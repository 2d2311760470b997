// Package palette holds the colors shared by every renderer.
package palette

import "image/color"

// Scene colors
var (
	Background   = color.RGBA{0x05, 0x05, 0x05, 255}
	Roadway      = color.RGBA{0x33, 0x33, 0x33, 255}
	LaneMarking  = color.RGBA{0x66, 0x66, 0x55, 255}
	Intersection = color.RGBA{0xaa, 0xaa, 0x55, 255}
	Help         = color.RGBA{0x00, 0xff, 0x00, 255}
	Counter      = color.RGBA{0xff, 0xff, 0x00, 255}
)

// Cars holds one color per vehicle id
var Cars = []color.RGBA{
	{0xff, 0x00, 0x00, 255}, // Red
	{0x00, 0xff, 0x00, 255}, // Green
	{0x44, 0x44, 0xff, 255}, // Blue
	{0xff, 0x00, 0xff, 255}, // Magenta
	{0xff, 0xcc, 0x88, 255}, // Peach
	{0x96, 0xf7, 0xe4, 255}, // Mint
	{0x6f, 0x11, 0xf1, 255}, // Violet
	{0xdd, 0x77, 0x53, 255}, // Terracotta
}

// Car returns the color of a vehicle. Ids beyond the palette wrap around.
func Car(id int) color.RGBA {
	if id < 0 {
		id = -id
	}
	return Cars[id%len(Cars)]
}
