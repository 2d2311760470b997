package vehicle

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/crossroads/pkg/geometry"
)

// Count is the number of cars on the field: two per heading.
const Count = 8

// Car sizing and lane placement in pixels
const (
	BaseSize    = 18
	LaneOffset  = 15
	LaneSpacing = 21
)

// Spawn distances outside the field
const (
	spawnAhead  = 30.0 // west and north bound cars start past the far edge
	spawnBehind = 40.0 // east bound cars start before the near edge
)

// Headings in spawn order. Vehicle i travels headings[i%4] in lane i/4.
var headings = [4]Heading{West, East, South, North}

// NewCars spawns the fleet around the given intersection.
//
//	        6 2
//	        | |
//	        v v
//	      +-----+
//	      |     | <-- 4 0
//	1 5-> |     |
//	      +-----+
//	         ^ ^
//	         | |
//	         3 7
func NewCars(fieldWidth, fieldHeight int, intersection geometry.Box, speedScale float64, rng *rand.Rand) []*Vehicle {
	cars := make([]*Vehicle, 0, Count)
	for i := 0; i < Count; i++ {
		heading := headings[i%len(headings)]
		lane := float64(LaneOffset + (i/len(headings))*LaneSpacing)
		box := spawnBox(heading, lane, fieldWidth, fieldHeight, intersection, speedScale, rng)
		cars = append(cars, New(i, heading, box, speedScale))
	}
	return cars
}

func spawnBox(heading Heading, lane float64, fieldWidth, fieldHeight int, intersection geometry.Box, speedScale float64, rng *rand.Rand) geometry.Box {
	cx, cy := intersection.Pos.X(), intersection.Pos.Y()
	box := geometry.NewBox(cx, cy, BaseSize, BaseSize)

	// Cars are stretched along their direction of travel
	jitter := rng.Intn(4) + 14
	speed := RandomSpeed(rng, speedScale)

	switch heading {
	case West:
		box.W += jitter
		box.Pos = mgl64.Vec2{float64(fieldWidth) + spawnAhead, cy - lane}
		box.Vel = mgl64.Vec2{-speed, 0}
	case East:
		box.W += jitter
		box.Pos = mgl64.Vec2{-spawnBehind, cy + lane}
		box.Vel = mgl64.Vec2{speed, 0}
	case South:
		box.H += jitter
		box.Pos = mgl64.Vec2{cx - lane, -spawnAhead}
		box.Vel = mgl64.Vec2{0, speed}
	case North:
		box.H += jitter
		box.Pos = mgl64.Vec2{cx + lane, float64(fieldHeight) + spawnAhead}
		box.Vel = mgl64.Vec2{0, -speed}
	}
	return box
}
