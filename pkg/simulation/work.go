package simulation

import (
	"math/rand"

	"github.com/golangdaddy/crossroads/pkg/config"
)

// Work is the busy computation a vehicle performs every tick. It keeps the
// goroutine on the CPU instead of sleeping so a slowed vehicle really does
// hold the intersection longer.
type Work struct {
	MinSpins  int
	MaxSpins  int
	SlowSpins int
}

// NewWork creates work settings from config
func NewWork(c config.WorkConfig) Work {
	return Work{
		MinSpins:  c.MinSpins,
		MaxSpins:  c.MaxSpins,
		SlowSpins: c.SlowSpins,
	}
}

// Tick performs one tick of ordinary work
func (w Work) Tick(rng *rand.Rand) uint64 {
	n := w.MinSpins
	if w.MaxSpins > w.MinSpins {
		n += rng.Intn(w.MaxSpins - w.MinSpins + 1)
	}
	return spin(n)
}

// Slow performs the extra work of a tick in slow mode
func (w Work) Slow() uint64 {
	return spin(w.SlowSpins)
}

// spin burns n rounds of an xorshift generator
func spin(n int) uint64 {
	x := uint64(88172645463325252)
	for i := 0; i < n; i++ {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
	}
	return x
}
