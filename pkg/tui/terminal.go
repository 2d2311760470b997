// Package tui draws the intersection on a terminal. The field keeps its
// configured size and is scaled down onto the terminal cells.
package tui

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/crossroads/pkg/models"
	"github.com/golangdaddy/crossroads/pkg/palette"
	"github.com/golangdaddy/crossroads/pkg/physics"
	"github.com/golangdaddy/crossroads/pkg/road"
)

// Terminal renders snapshots onto a tcell screen and turns key presses into
// signals. The caller owns the screen and must Init it before Run and Fini it
// afterwards.
type Terminal struct {
	screen   tcell.Screen
	world    *models.World
	agg      *physics.Aggregator
	interval time.Duration

	// OnExit runs when Run is about to return, while the screen is still up
	OnExit func() error

	log *logrus.Entry
}

// NewTerminal creates a terminal renderer drawing one frame per interval
func NewTerminal(screen tcell.Screen, world *models.World, agg *physics.Aggregator, interval time.Duration, log *logrus.Entry) *Terminal {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	return &Terminal{
		screen:   screen,
		world:    world,
		agg:      agg,
		interval: interval,
		log:      log.WithField("component", "tui"),
	}
}

// Run draws frames until a terminate signal arrives or ctx is cancelled
func (t *Terminal) Run(ctx context.Context) error {
	err := t.loop(ctx)
	if t.OnExit != nil {
		err = errors.Join(err, t.OnExit())
	}
	return err
}

func (t *Terminal) loop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.log.Info("terminal renderer started")
	for {
		select {
		case <-ctx.Done():
			t.log.Info("terminal renderer cancelled")
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				sig, ok := keySignal(ev)
				if !ok {
					continue
				}
				if t.world.Apply(sig) {
					return nil
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				t.log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
				t.screen.Sync()
			}
		case <-ticker.C:
			t.Draw(t.agg.Step())
			t.screen.Show()
		}
	}
}

// Draw paints one snapshot onto the screen without showing it
func (t *Terminal) Draw(snap physics.Snapshot) {
	cols, rows := t.screen.Size()
	proj := newProjection(cols, rows, snap.Width, snap.Height)
	layout := road.NewLayout(snap.Width, snap.Height, snap.Intersection)

	t.screen.Fill(' ', styleOn(palette.Background))

	for _, arm := range layout.Arms {
		t.fill(proj.rect(arm), ' ', styleOn(palette.Roadway))
	}
	for _, dash := range layout.Dashes {
		t.fill(proj.rect(dash), ' ', styleOn(palette.LaneMarking))
	}
	t.border(proj.rect(layout.Outline), styleOn(palette.Roadway).Foreground(rgb(palette.Intersection)))

	for i, b := range snap.Vehicles {
		cells := proj.rect(b.Rect())
		t.fill(cells, ' ', styleOn(palette.Car(i)))
		if !cells.Empty() {
			label := []rune(strconv.Itoa(i + 1))[0]
			mid := cells.Min.Add(cells.Size().Div(2))
			t.screen.SetContent(mid.X, mid.Y, label, nil, styleOn(palette.Car(i)).Foreground(tcell.ColorBlack))
		}
	}

	for i, line := range snap.Overlay() {
		clr := palette.Help
		if line.Kind == physics.KindCounter {
			clr = palette.Counter
		}
		t.text(1, 1+i, line.Text, styleOn(palette.Background).Foreground(rgb(clr)))
	}

	t.text(1, rows-1, snap.GuardStatus(), styleOn(palette.Background).Foreground(rgb(palette.Help)))

	for _, l := range snap.CollisionLines() {
		style := styleOn(palette.Background).Foreground(rgb(palette.Car(l.Vehicle)))
		for _, p := range line(proj.point(l.From), proj.point(l.To)) {
			t.screen.SetContent(p.X, p.Y, '*', nil, style)
		}
	}
}

func (t *Terminal) fill(r image.Rectangle, ch rune, style tcell.Style) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// border draws a box along the outermost cells of r
func (t *Terminal) border(r image.Rectangle, style tcell.Style) {
	if r.Dx() < 2 || r.Dy() < 2 {
		t.fill(r, tcell.RuneBlock, style)
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		t.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		t.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func styleOn(bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(rgb(bg))
}
