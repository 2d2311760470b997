package vehicle

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/crossroads/pkg/geometry"
)

// SpeedScale converts the integer speed range [1,3] into pixels per tick.
const SpeedScale = 0.0002

// Exit and re-entry margins around the visible field.
const (
	ExitMargin    = 20.0
	ReentryMargin = 40.0
)

// Heading is the direction a vehicle travels in.
type Heading int

const (
	West Heading = iota
	East
	South
	North
)

func (h Heading) String() string {
	switch h {
	case West:
		return "west"
	case East:
		return "east"
	case South:
		return "south"
	case North:
		return "north"
	}
	return "unknown"
}

// Vehicle is a box that moves across the field and through the intersection.
//
// Position and velocity are written only by the goroutine driving the vehicle.
// Each coordinate is published atomically so renderers may read them at any time;
// a reader can see x and y from different ticks.
type Vehicle struct {
	ID      int
	Heading Heading

	w, h       int
	speedScale float64

	x, y   atomic.Uint64
	vx, vy atomic.Uint64

	passes atomic.Uint64
}

// New creates a vehicle from an initial box
func New(id int, heading Heading, box geometry.Box, speedScale float64) *Vehicle {
	v := &Vehicle{
		ID:         id,
		Heading:    heading,
		w:          box.W,
		h:          box.H,
		speedScale: speedScale,
	}
	v.store(box.Pos, box.Vel)
	return v
}

func (v *Vehicle) store(pos, vel mgl64.Vec2) {
	v.x.Store(math.Float64bits(pos.X()))
	v.y.Store(math.Float64bits(pos.Y()))
	v.vx.Store(math.Float64bits(vel.X()))
	v.vy.Store(math.Float64bits(vel.Y()))
}

// Box returns the most recently published state of the vehicle
func (v *Vehicle) Box() geometry.Box {
	return geometry.Box{
		Pos: mgl64.Vec2{
			math.Float64frombits(v.x.Load()),
			math.Float64frombits(v.y.Load()),
		},
		Vel: mgl64.Vec2{
			math.Float64frombits(v.vx.Load()),
			math.Float64frombits(v.vy.Load()),
		},
		W: v.w,
		H: v.h,
	}
}

// Advance moves the vehicle by its velocity and returns the new box.
// Only the owning goroutine may call it.
func (v *Vehicle) Advance() geometry.Box {
	b := v.Box().Advance()
	v.x.Store(math.Float64bits(b.Pos.X()))
	v.y.Store(math.Float64bits(b.Pos.Y()))
	return b
}

// Place teleports the vehicle without changing its velocity
func (v *Vehicle) Place(pos mgl64.Vec2) {
	v.x.Store(math.Float64bits(pos.X()))
	v.y.Store(math.Float64bits(pos.Y()))
}

// Pass records one completed traversal of the intersection
func (v *Vehicle) Pass() {
	v.passes.Add(1)
}

// Passes returns the number of completed traversals
func (v *Vehicle) Passes() uint64 {
	return v.passes.Load()
}

// Wraparound re-enters a vehicle on the opposite edge once it has left the field
// in the direction it is heading, with a fresh speed in the same direction.
// It reports whether the vehicle was moved.
func (v *Vehicle) Wraparound(fieldWidth, fieldHeight int, rng *rand.Rand) bool {
	b := v.Box()
	w, h := float64(fieldWidth), float64(fieldHeight)
	wrapped := false

	// left
	if b.Pos[0] < -ExitMargin && b.Vel[0] < 0 {
		b.Pos[0] += w + ReentryMargin
		b.Vel[0] = -v.speed(rng)
		wrapped = true
	}
	// top
	if b.Pos[1] < -ExitMargin && b.Vel[1] < 0 {
		b.Pos[1] += h + ReentryMargin
		b.Vel[1] = -v.speed(rng)
		wrapped = true
	}
	// right
	if b.Pos[0] > w+ExitMargin && b.Vel[0] > 0 {
		b.Pos[0] -= w + ReentryMargin
		b.Vel[0] = v.speed(rng)
		wrapped = true
	}
	// bottom
	if b.Pos[1] > h+ExitMargin && b.Vel[1] > 0 {
		b.Pos[1] -= h + ReentryMargin
		b.Vel[1] = v.speed(rng)
		wrapped = true
	}

	if wrapped {
		v.store(b.Pos, b.Vel)
	}
	return wrapped
}

// speed draws a speed magnitude in pixels per tick
func (v *Vehicle) speed(rng *rand.Rand) float64 {
	return RandomSpeed(rng, v.speedScale)
}

// RandomSpeed returns a speed of 1, 2 or 3 units multiplied by scale
func RandomSpeed(rng *rand.Rand, scale float64) float64 {
	return float64(rng.Intn(3)+1) * scale
}
