package models

import (
	"io"
	"math/rand"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/crossroads/pkg/geometry"
	"github.com/golangdaddy/crossroads/pkg/intersection"
	"github.com/golangdaddy/crossroads/pkg/vehicle"
)

// World is the state shared by the vehicle goroutines, the frame aggregator
// and the renderer for the lifetime of the process.
type World struct {
	// Fixed at startup
	Intersection geometry.Box
	Vehicles     []*vehicle.Vehicle

	// Field dimensions, changed only by resize notifications
	width  atomic.Int64
	height atomic.Int64

	// Diagnostic toggles driven by user input
	showCollisions atomic.Bool
	slowMode       atomic.Bool

	log *logrus.Entry
}

// NewWorld creates a world with the intersection centered in the field and
// the cars spawned around it
func NewWorld(width, height int, speedScale float64, rng *rand.Rand, log *logrus.Entry) *World {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}

	region := intersection.Centered(width, height)
	w := &World{
		Intersection: region,
		Vehicles:     vehicle.NewCars(width, height, region, speedScale, rng),
		log:          log.WithField("component", "world"),
	}
	w.width.Store(int64(width))
	w.height.Store(int64(height))

	for _, v := range w.Vehicles {
		b := v.Box()
		w.log.WithFields(logrus.Fields{
			"vehicle": v.ID,
			"heading": v.Heading.String(),
			"x":       b.Pos.X(),
			"y":       b.Pos.Y(),
			"w":       b.W,
			"h":       b.H,
		}).Debug("spawned vehicle")
	}
	return w
}

// Field returns the current field dimensions
func (w *World) Field() (width, height int) {
	return int(w.width.Load()), int(w.height.Load())
}

// Resize updates the field dimensions and reports whether they changed.
// The intersection stays where it was placed at startup.
func (w *World) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	oldW := w.width.Swap(int64(width))
	oldH := w.height.Swap(int64(height))
	if oldW == int64(width) && oldH == int64(height) {
		return false
	}
	w.log.WithFields(logrus.Fields{"width": width, "height": height}).Info("field resized")
	return true
}

// ShowCollisions reports whether collision diagnostics are displayed
func (w *World) ShowCollisions() bool {
	return w.showCollisions.Load()
}

// SlowMode reports whether crossings are slowed down
func (w *World) SlowMode() bool {
	return w.slowMode.Load()
}

// Apply handles an input signal and reports whether the simulation should stop
func (w *World) Apply(sig Signal) bool {
	switch sig {
	case SignalToggleCollisions:
		on := toggle(&w.showCollisions)
		w.log.WithField("enabled", on).Info("collision diagnostics toggled")
	case SignalToggleSlowMode:
		on := toggle(&w.slowMode)
		w.log.WithField("enabled", on).Info("slow mode toggled")
	case SignalTerminate:
		w.log.Info("terminate requested")
		return true
	}
	return false
}

// Passes returns the pass counter of every vehicle in id order
func (w *World) Passes() []uint64 {
	return lo.Map(w.Vehicles, func(v *vehicle.Vehicle, _ int) uint64 {
		return v.Passes()
	})
}

// Boxes returns the published box of every vehicle in id order
func (w *World) Boxes() []geometry.Box {
	return lo.Map(w.Vehicles, func(v *vehicle.Vehicle, _ int) geometry.Box {
		return v.Box()
	})
}

// toggle flips b and returns the new value
func toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
