package background

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/crossroads/pkg/palette"
	"github.com/golangdaddy/crossroads/pkg/road"
)

// Generator renders the static scenery behind the vehicles and keeps the
// result until the field size changes
type Generator struct {
	Width  int
	Height int
	Seed   int64

	cached *ebiten.Image
}

// NewGenerator creates a new background generator
func NewGenerator(seed int64) *Generator {
	return &Generator{Seed: seed}
}

// Scene returns the scenery for a field of the given size, regenerating it
// only after a resize
func (g *Generator) Scene(width, height int, layout road.Layout) *ebiten.Image {
	if g.cached != nil && g.Width == width && g.Height == height {
		return g.cached
	}
	if g.cached != nil {
		g.cached.Deallocate()
	}
	g.Width, g.Height = width, height
	g.cached = g.generate(layout)
	return g.cached
}

func (g *Generator) generate(layout road.Layout) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(g.Seed))

	img.Fill(palette.Background)

	for _, arm := range layout.Arms {
		if !road.IsVisible(arm, g.Width, g.Height) {
			continue
		}
		fill(img, arm, palette.Roadway)
		g.drawGrit(img, arm, rng)
	}

	for _, dash := range layout.Dashes {
		if road.IsVisible(dash, g.Width, g.Height) {
			fill(img, dash, palette.LaneMarking)
		}
	}

	// Intersection outline, one pixel wide
	o := layout.Outline
	vector.StrokeRect(img,
		float32(o.Min.X)+0.5, float32(o.Min.Y)+0.5,
		float32(o.Dx()-1), float32(o.Dy()-1),
		1, palette.Intersection, false)

	return img
}

// drawGrit speckles a road surface with slightly varied shades of grey
func (g *Generator) drawGrit(img *ebiten.Image, r image.Rectangle, rng *rand.Rand) {
	r = r.Intersect(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < r.Dx()*r.Dy()/40; i++ {
		x := r.Min.X + rng.Intn(r.Dx())
		y := r.Min.Y + rng.Intn(r.Dy())
		shade := palette.Roadway.R - 4 + uint8(rng.Intn(9))
		img.Set(x, y, color.RGBA{shade, shade, shade, 255})
	}
}

func fill(img *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(img,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		clr, false)
}
