package simulation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/golangdaddy/crossroads/pkg/models"
)

// Fast vehicles and no spin work keep crossings in the millisecond range
func newTestDriver(seed int64) (*models.World, *Driver) {
	world := models.NewWorld(460, 460, 0.02, rand.New(rand.NewSource(seed)), nil)
	driver := NewDriver(world, Work{}, seed, nil)
	return world, driver
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestEveryVehicleCrosses(t *testing.T) {
	world, driver := newTestDriver(1)
	driver.Start(context.Background())
	defer driver.Stop(5 * time.Second)

	allCrossed := waitFor(t, 30*time.Second, func() bool {
		for _, v := range world.Vehicles {
			if v.Passes() < 2 {
				return false
			}
		}
		return true
	})
	if !allCrossed {
		t.Fatalf("Expected every vehicle to cross twice, passes = %v", world.Passes())
	}

	if peak := driver.Guard().PeakOccupancy(); peak != 1 {
		t.Errorf("Expected at most one vehicle in the intersection, peak was %d", peak)
	}
}

func TestPassesNeverDecrease(t *testing.T) {
	world, driver := newTestDriver(2)
	driver.Start(context.Background())

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		last := make([]uint64, len(world.Vehicles))
		for {
			select {
			case <-stop:
				return
			default:
			}
			for i, p := range world.Passes() {
				if p < last[i] {
					t.Errorf("Vehicle %d pass count went from %d to %d", i, last[i], p)
				}
				last[i] = p
			}
		}
	}()

	waitFor(t, 10*time.Second, func() bool {
		return driver.Guard().Crossings() >= 20
	})
	close(stop)
	wg.Wait()

	if err := driver.Stop(5 * time.Second); err != nil {
		t.Fatalf("Failed to stop driver: %v", err)
	}

	var total uint64
	for _, p := range world.Passes() {
		total += p
	}
	if total != driver.Guard().Crossings() {
		t.Errorf("Expected pass counts to sum to %d crossings, got %d", driver.Guard().Crossings(), total)
	}
}

func TestSlowModeStillCrosses(t *testing.T) {
	world, _ := newTestDriver(3)
	driver := NewDriver(world, Work{MinSpins: 1, MaxSpins: 4, SlowSpins: 50}, 3, nil)
	world.Apply(models.SignalToggleSlowMode)

	driver.Start(context.Background())
	defer driver.Stop(5 * time.Second)

	if !waitFor(t, 30*time.Second, func() bool { return driver.Guard().Crossings() >= 8 }) {
		t.Fatalf("Expected crossings in slow mode, got %d", driver.Guard().Crossings())
	}
	if peak := driver.Guard().PeakOccupancy(); peak != 1 {
		t.Errorf("Expected peak occupancy 1, got %d", peak)
	}
}

func TestStopReleasesGuard(t *testing.T) {
	world, driver := newTestDriver(4)
	driver.Start(context.Background())

	waitFor(t, 10*time.Second, func() bool { return driver.Guard().Crossings() >= 1 })

	if err := driver.Stop(5 * time.Second); err != nil {
		t.Fatalf("Expected clean stop, got %v", err)
	}
	if _, held := driver.Guard().Occupant(); held {
		t.Error("Expected guard to be free after stop")
	}

	// Vehicles no longer move once stopped
	before := world.Boxes()
	time.Sleep(20 * time.Millisecond)
	after := world.Boxes()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Expected vehicle %d to stay put after stop", i)
		}
	}
}

func TestParentContextCancelStopsVehicles(t *testing.T) {
	_, driver := newTestDriver(5)
	ctx, cancel := context.WithCancel(context.Background())
	driver.Start(ctx)
	cancel()

	if err := driver.Stop(5 * time.Second); err != nil {
		t.Errorf("Expected clean stop, got %v", err)
	}
}

func TestStopWithoutStart(t *testing.T) {
	_, driver := newTestDriver(6)
	if err := driver.Stop(time.Second); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}
