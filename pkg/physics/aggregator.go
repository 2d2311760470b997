// Package physics scans the vehicles once per frame for collisions and
// produces the snapshot the renderers draw from.
package physics

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/crossroads/pkg/geometry"
	"github.com/golangdaddy/crossroads/pkg/intersection"
	"github.com/golangdaddy/crossroads/pkg/models"
)

// Pair is two vehicles found overlapping, with their positions at the time
type Pair struct {
	A, B       int
	PosA, PosB mgl64.Vec2
}

// Snapshot is everything a renderer needs to draw one frame.
// It is a copy and stays valid after the next Step.
type Snapshot struct {
	Collision  bool   // A pair overlapped this frame
	Last       Pair   // Last overlapping pair found, valid when Collision is set
	Collisions uint64 // Overlapping ordered pairs seen since start

	Passes       []uint64
	Vehicles     []geometry.Box
	Intersection geometry.Box

	Width, Height  int
	SlowMode       bool
	ShowCollisions bool

	Occupant  int // Vehicle holding the intersection, -1 when free
	Crossings uint64
}

// Aggregator keeps the running collision total between frames.
// It is driven from the single render loop and is not safe for concurrent use.
type Aggregator struct {
	world      *models.World
	guard      *intersection.Guard
	collisions uint64

	log *logrus.Entry
}

// NewAggregator creates an aggregator. guard may be nil when no vehicles are
// being driven.
func NewAggregator(world *models.World, guard *intersection.Guard, log *logrus.Entry) *Aggregator {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	return &Aggregator{
		world: world,
		guard: guard,
		log:   log.WithField("component", "physics"),
	}
}

// Step scans every ordered pair of vehicles and returns this frame's snapshot.
//
// Every overlapping ordered pair adds one to the collision total, so two
// vehicles touching each other add two. Only the last pair in scan order is
// kept for display.
func (a *Aggregator) Step() Snapshot {
	boxes := a.world.Boxes()
	width, height := a.world.Field()

	snap := Snapshot{
		Passes:         a.world.Passes(),
		Vehicles:       boxes,
		Intersection:   a.world.Intersection,
		Width:          width,
		Height:         height,
		SlowMode:       a.world.SlowMode(),
		ShowCollisions: a.world.ShowCollisions(),
		Occupant:       -1,
	}

	for i := range boxes {
		for j := range boxes {
			if i == j {
				continue
			}
			if geometry.Overlaps(boxes[i], boxes[j]) {
				snap.Collision = true
				snap.Last = Pair{A: i, B: j, PosA: boxes[i].Pos, PosB: boxes[j].Pos}
				a.collisions++
			}
		}
	}
	snap.Collisions = a.collisions

	if a.guard != nil {
		if id, held := a.guard.Occupant(); held {
			snap.Occupant = id
		}
		snap.Crossings = a.guard.Crossings()
	}

	if snap.Collision {
		a.log.WithFields(logrus.Fields{
			"a":     snap.Last.A,
			"b":     snap.Last.B,
			"total": snap.Collisions,
		}).Trace("collision")
	}
	return snap
}

// Collisions returns the running collision total
func (a *Aggregator) Collisions() uint64 {
	return a.collisions
}
