package models

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/crossroads/pkg/intersection"
	"github.com/golangdaddy/crossroads/pkg/vehicle"
)

func newTestWorld() *World {
	return NewWorld(460, 460, vehicle.SpeedScale, rand.New(rand.NewSource(1)), nil)
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld()

	if w.Intersection.Pos != (mgl64.Vec2{230, 230}) {
		t.Errorf("Expected intersection at (230, 230), got %v", w.Intersection.Pos)
	}
	if w.Intersection.W != intersection.Size || w.Intersection.H != intersection.Size {
		t.Errorf("Expected %dx%d intersection, got %dx%d",
			intersection.Size, intersection.Size, w.Intersection.W, w.Intersection.H)
	}
	if w.Intersection != intersection.Centered(460, 460) {
		t.Errorf("Expected the centered intersection region, got %+v", w.Intersection)
	}
	if w.Intersection.Vel != (mgl64.Vec2{}) {
		t.Errorf("Expected a stationary intersection, got velocity %v", w.Intersection.Vel)
	}
	if len(w.Vehicles) != vehicle.Count {
		t.Errorf("Expected %d vehicles, got %d", vehicle.Count, len(w.Vehicles))
	}
	if width, height := w.Field(); width != 460 || height != 460 {
		t.Errorf("Expected field 460x460, got %dx%d", width, height)
	}
}

func TestResize(t *testing.T) {
	w := newTestWorld()

	if w.Resize(460, 460) {
		t.Error("Expected resize to the same size to report no change")
	}
	if !w.Resize(800, 600) {
		t.Error("Expected resize to report a change")
	}
	if width, height := w.Field(); width != 800 || height != 600 {
		t.Errorf("Expected field 800x600, got %dx%d", width, height)
	}
	if w.Resize(0, 600) {
		t.Error("Expected a zero width to be ignored")
	}
	if w.Intersection.Pos != (mgl64.Vec2{230, 230}) {
		t.Error("Expected the intersection to stay in place after resize")
	}
}

func TestApply(t *testing.T) {
	w := newTestWorld()

	if w.ShowCollisions() || w.SlowMode() {
		t.Fatal("Expected diagnostics to start disabled")
	}

	if w.Apply(SignalToggleCollisions) {
		t.Error("Expected toggle not to terminate")
	}
	if !w.ShowCollisions() {
		t.Error("Expected collisions to be shown after toggle")
	}
	w.Apply(SignalToggleCollisions)
	if w.ShowCollisions() {
		t.Error("Expected collisions to be hidden after second toggle")
	}

	w.Apply(SignalToggleSlowMode)
	if !w.SlowMode() {
		t.Error("Expected slow mode after toggle")
	}

	if !w.Apply(SignalTerminate) {
		t.Error("Expected terminate signal to stop the simulation")
	}
}

func TestPassesAndBoxes(t *testing.T) {
	w := newTestWorld()
	w.Vehicles[2].Pass()
	w.Vehicles[2].Pass()
	w.Vehicles[7].Pass()

	passes := w.Passes()
	want := []uint64{0, 0, 2, 0, 0, 0, 0, 1}
	for i := range want {
		if passes[i] != want[i] {
			t.Errorf("Expected vehicle %d to have %d passes, got %d", i, want[i], passes[i])
		}
	}

	boxes := w.Boxes()
	if len(boxes) != len(w.Vehicles) {
		t.Fatalf("Expected %d boxes, got %d", len(w.Vehicles), len(boxes))
	}
	if boxes[3] != w.Vehicles[3].Box() {
		t.Error("Expected boxes in vehicle id order")
	}
}

func TestSignalString(t *testing.T) {
	if SignalTerminate.String() != "terminate" || Signal(42).String() != "unknown" {
		t.Error("Unexpected signal names")
	}
}
