package simulation

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/crossroads/pkg/config"
)

func TestNewWork(t *testing.T) {
	w := NewWork(config.WorkConfig{MinSpins: 1, MaxSpins: 3, SlowSpins: 9})
	if w.MinSpins != 1 || w.MaxSpins != 3 || w.SlowSpins != 9 {
		t.Errorf("Unexpected work settings %+v", w)
	}
}

func TestSpinIsDeterministic(t *testing.T) {
	if spin(0) != spin(0) || spin(25) != spin(25) {
		t.Error("Expected spin to be deterministic")
	}
	if spin(1) == spin(2) {
		t.Error("Expected different spin counts to produce different values")
	}
}

func TestTickWithFixedSpins(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w := Work{MinSpins: 5, MaxSpins: 5}
	if w.Tick(rng) != spin(5) {
		t.Error("Expected exactly MinSpins when min equals max")
	}
	if (Work{SlowSpins: 7}).Slow() != spin(7) {
		t.Error("Expected slow work to spin SlowSpins times")
	}
}
