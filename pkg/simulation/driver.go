// Package simulation runs one goroutine per vehicle. Each goroutine moves its
// vehicle, waits its turn at the intersection and wraps it around the field
// until the simulation is stopped.
package simulation

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/golangdaddy/crossroads/pkg/intersection"
	"github.com/golangdaddy/crossroads/pkg/models"
	"github.com/golangdaddy/crossroads/pkg/vehicle"
)

// ErrShutdownTimeout is returned by Stop when vehicles do not stop in time
var ErrShutdownTimeout = errors.New("simulation: vehicles did not stop in time")

// Driver runs the vehicles of a world
type Driver struct {
	world *models.World
	guard *intersection.Guard
	work  Work
	seed  int64

	cancel context.CancelFunc
	group  *errgroup.Group

	log *logrus.Entry
}

// NewDriver creates a driver. The guard protects world.Intersection.
func NewDriver(world *models.World, work Work, seed int64, log *logrus.Entry) *Driver {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	return &Driver{
		world: world,
		guard: intersection.NewGuard(world.Intersection, log),
		work:  work,
		seed:  seed,
		log:   log.WithField("component", "driver"),
	}
}

// Guard returns the intersection guard the vehicles share
func (d *Driver) Guard() *intersection.Guard {
	return d.guard
}

// Start launches one goroutine per vehicle. They run until ctx is cancelled
// or Stop is called.
func (d *Driver) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	d.group, ctx = errgroup.WithContext(ctx)

	for _, v := range d.world.Vehicles {
		v := v // per-iteration copy; go.mod targets go 1.21 loop semantics
		// Each goroutine owns its generator; rand.Rand is not safe to share
		rng := rand.New(rand.NewSource(d.seed + int64(v.ID) + 1))
		d.group.Go(func() error {
			return d.drive(ctx, v, rng)
		})
	}
	d.log.WithField("vehicles", len(d.world.Vehicles)).Info("simulation started")
}

// Stop cancels every vehicle and waits up to timeout for them to return
func (d *Driver) Stop(timeout time.Duration) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()

	stopped := make(chan error, 1)
	go func() {
		stopped <- d.group.Wait()
	}()

	select {
	case err := <-stopped:
		d.log.WithFields(logrus.Fields{
			"crossings": d.guard.Crossings(),
			"peak":      d.guard.PeakOccupancy(),
		}).Info("simulation stopped")
		return err
	case <-time.After(timeout):
		return ErrShutdownTimeout
	}
}

// drive is the loop of a single vehicle
func (d *Driver) drive(ctx context.Context, v *vehicle.Vehicle, rng *rand.Rand) error {
	log := d.log.WithField("vehicle", v.ID)
	log.Debug("vehicle started")

	done := ctx.Done()
	var sink uint64
	defer func() {
		log.WithField("work", sink).Debug("vehicle stopped")
	}()

	delay := func() {
		sink += d.work.Tick(rng)
		if d.world.SlowMode() {
			sink += d.work.Slow()
		}
	}

	for {
		select {
		case <-done:
			return nil
		default:
		}

		sink += d.work.Tick(rng)
		box := v.Advance()

		if d.guard.Overlaps(box) {
			if !d.guard.Cross(v.ID, v, done, delay) {
				return nil
			}
			log.WithField("passes", v.Passes()).Trace("crossed intersection")
		}

		width, height := d.world.Field()
		v.Wraparound(width, height, rng)
	}
}
