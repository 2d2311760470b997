package car

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/crossroads/pkg/geometry"
)

const windshieldDepth = 4

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 200}
)

// RenderCar renders a top-down view of a vehicle box, with the windshield on
// the side it is driving toward
func RenderCar(screen *ebiten.Image, b geometry.Box, carColor color.Color) {
	body := b.Rect()
	fillRect(screen, body, carColor)

	// Outline
	vector.StrokeRect(screen,
		float32(body.Min.X), float32(body.Min.Y),
		float32(body.Dx()), float32(body.Dy()),
		1, outlineColor, false)

	// Windshield, inset from the outline
	if front := b.Front(windshieldDepth); !front.Empty() {
		fillRect(screen, front.Inset(1), windshieldColor)
	}
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		clr, false)
}
