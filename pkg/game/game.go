package game

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/crossroads/pkg/background"
	"github.com/golangdaddy/crossroads/pkg/car"
	"github.com/golangdaddy/crossroads/pkg/models"
	"github.com/golangdaddy/crossroads/pkg/palette"
	"github.com/golangdaddy/crossroads/pkg/physics"
	"github.com/golangdaddy/crossroads/pkg/road"
	"github.com/golangdaddy/crossroads/pkg/ui"
)

// keySignals maps edge-triggered keys to the signals they raise
var keySignals = map[ebiten.Key]models.Signal{
	ebiten.KeyC:      models.SignalToggleCollisions,
	ebiten.KeyS:      models.SignalToggleSlowMode,
	ebiten.KeyEscape: models.SignalTerminate,
}

// Game implements the ebiten.Game interface and draws the world once per tick
type Game struct {
	world *models.World
	agg   *physics.Aggregator
	title string

	scenery *background.Generator
	hud     *ui.HUD
	layout  road.Layout
	snap    physics.Snapshot

	// OnExit runs before the game loop is asked to stop, while the window is
	// still open. A non-nil error is returned from RunGame.
	OnExit func() error

	log *logrus.Entry
}

// NewGame creates a new game instance. The window closing handler must be
// enabled so closing the window is treated as a terminate signal.
func NewGame(world *models.World, agg *physics.Aggregator, title string, seed int64, log *logrus.Entry) *Game {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	width, height := world.Field()
	return &Game{
		world:   world,
		agg:     agg,
		title:   title,
		scenery: background.NewGenerator(seed),
		hud:     ui.NewHUD(),
		layout:  road.NewLayout(width, height, world.Intersection),
		log:     log.WithField("component", "game"),
	}
}

// Update handles input and takes this frame's snapshot
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.log.Info("window closed")
		g.world.Apply(models.SignalTerminate)
		return g.terminate()
	}

	for key, sig := range keySignals {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if g.world.Apply(sig) {
			return g.terminate()
		}
	}

	g.snap = g.agg.Step()
	return nil
}

func (g *Game) terminate() error {
	if g.OnExit != nil {
		if err := g.OnExit(); err != nil {
			return err
		}
	}
	return ebiten.Termination
}

// Draw renders the scenery, the vehicles and the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	// Nothing to draw before the first Update
	if g.snap.Width == 0 || g.snap.Height == 0 {
		return
	}
	screen.DrawImage(g.scenery.Scene(g.snap.Width, g.snap.Height, g.layout), nil)

	for i, b := range g.snap.Vehicles {
		car.RenderCar(screen, b, palette.Car(i))
	}

	g.hud.Draw(screen, g.snap.Overlay())

	for _, line := range g.snap.CollisionLines() {
		vector.StrokeLine(screen,
			float32(line.From.X()), float32(line.From.Y()),
			float32(line.To.X()), float32(line.To.Y()),
			1, palette.Car(line.Vehicle), false)
	}
}

// Layout follows the window size so the field always fills the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if g.world.Resize(outsideWidth, outsideHeight) {
		g.layout = road.NewLayout(outsideWidth, outsideHeight, g.world.Intersection)
		ebiten.SetWindowTitle(WindowTitle(g.title, outsideWidth, outsideHeight))
	}
	width, height := g.world.Field()
	return width, height
}

// WindowTitle formats the window title with the field size
func WindowTitle(title string, width, height int) string {
	return fmt.Sprintf("%s %dx%d", title, width, height)
}
