// Package intersection serializes vehicles through the single shared
// intersection region.
package intersection

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/crossroads/pkg/geometry"
)

// Default size of the intersection region in pixels
const Size = 112

// Crosser is a vehicle that can be driven through the intersection
type Crosser interface {
	Box() geometry.Box
	Advance() geometry.Box
	Pass()
}

// Guard owns the intersection region and the one lock that grants entry to it.
// Holding the lock is what occupying the intersection means; there is no
// separate occupancy flag. Every vehicle waits on the same lock, so only one
// vehicle at a time may even test whether it has cleared the region.
type Guard struct {
	region geometry.Box
	mu     sync.Mutex

	occupant  atomic.Int64 // vehicle id + 1, zero while free
	inside    atomic.Int32
	peak      atomic.Int32
	crossings atomic.Uint64

	log *logrus.Entry
}

// NewGuard creates a guard for a fixed region
func NewGuard(region geometry.Box, log *logrus.Entry) *Guard {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	return &Guard{
		region: region,
		log:    log.WithField("component", "guard"),
	}
}

// Centered returns the square intersection region in the middle of the field
func Centered(fieldWidth, fieldHeight int) geometry.Box {
	return geometry.NewBox(float64(fieldWidth/2), float64(fieldHeight/2), Size, Size)
}

// Region returns the intersection box
func (g *Guard) Region() geometry.Box {
	return g.region
}

// Overlaps reports whether a box touches the intersection region
func (g *Guard) Overlaps(b geometry.Box) bool {
	return geometry.Overlaps(b, g.region)
}

// Acquire blocks until the vehicle holds the intersection
func (g *Guard) Acquire(id int) {
	g.mu.Lock()
	g.occupant.Store(int64(id) + 1)

	n := g.inside.Add(1)
	for {
		peak := g.peak.Load()
		if n <= peak || g.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	g.log.WithField("vehicle", id).Trace("entered intersection")
}

// Release gives up the intersection. Releasing a guard held by another
// vehicle is a programming error and panics.
func (g *Guard) Release(id int) {
	if holder := g.occupant.Load(); holder != int64(id)+1 {
		panic(fmt.Sprintf("intersection: vehicle %d released guard held by %d", id, holder-1))
	}
	g.occupant.Store(0)
	g.inside.Add(-1)
	g.log.WithField("vehicle", id).Trace("left intersection")
	g.mu.Unlock()
}

// Cross drives a vehicle that has reached the intersection until it is clear
// of the region, holding the guard the whole way. delay runs before every
// step. A pass is counted only once the vehicle no longer overlaps.
// Cross returns false without counting a pass if done is closed first.
func (g *Guard) Cross(id int, v Crosser, done <-chan struct{}, delay func()) bool {
	g.Acquire(id)
	defer g.Release(id)

	for g.Overlaps(v.Box()) {
		select {
		case <-done:
			return false
		default:
		}
		if delay != nil {
			delay()
		}
		v.Advance()
	}

	v.Pass()
	g.crossings.Add(1)
	return true
}

// Occupant returns the id of the vehicle holding the intersection
func (g *Guard) Occupant() (int, bool) {
	holder := g.occupant.Load()
	if holder == 0 {
		return -1, false
	}
	return int(holder - 1), true
}

// Crossings returns the number of completed traversals across all vehicles
func (g *Guard) Crossings() uint64 {
	return g.crossings.Load()
}

// PeakOccupancy returns the most vehicles ever seen inside the guarded
// section at once. Anything above one means mutual exclusion was broken.
func (g *Guard) PeakOccupancy() int {
	return int(g.peak.Load())
}
