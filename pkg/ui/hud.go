package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/crossroads/pkg/palette"
	"github.com/golangdaddy/crossroads/pkg/physics"
)

// HUD placement, in screen pixels
const (
	hudX         = 20.0
	hudY         = 20.0
	hudLinePitch = 16.0
	hudTextSize  = 16.0
)

// HUD draws the key help and counters in the top left corner
type HUD struct {
	face text.Face
}

// NewHUD creates a HUD using the bitmap font bundled with ebiten
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(bitmapfont.Face)}
}

// Draw renders the overlay lines of a snapshot
func (h *HUD) Draw(screen *ebiten.Image, lines []physics.OverlayLine) {
	for i, line := range lines {
		clr := palette.Help
		if line.Kind == physics.KindCounter {
			clr = palette.Counter
		}
		drawTextAt(screen, line.Text, hudX, hudY+float64(i)*hudLinePitch, hudTextSize, clr, h.face)
	}
}

func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color, face text.Face) {
	scale := size / 16.0
	scaledHeight := 16.0 * scale

	textY := y - scaledHeight/2 + 8

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x/scale, textY/scale)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, face, op)
}
