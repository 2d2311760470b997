package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
)

// LineKind selects how an overlay line is colored
type LineKind int

const (
	KindHelp LineKind = iota
	KindCounter
)

// OverlayLine is one line of the text overlay
type OverlayLine struct {
	Text string
	Kind LineKind
}

// Line is a segment from a fixed screen corner to a colliding vehicle
type Line struct {
	From, To mgl64.Vec2
	Vehicle  int // Colored like this vehicle
}

// Overlay returns the key help and counters shown over the scene
func (s Snapshot) Overlay() []OverlayLine {
	lines := []OverlayLine{
		{Text: "'C' = see collisions", Kind: KindHelp},
		{Text: "'S' = slow mode", Kind: KindHelp},
	}
	lines = append(lines, lo.Map(s.Passes, func(p uint64, i int) OverlayLine {
		return OverlayLine{Text: fmt.Sprintf("Car %d passes: %d", i+1, p), Kind: KindCounter}
	})...)
	lines = append(lines, OverlayLine{Text: fmt.Sprintf(" n collisions: %d", s.Collisions), Kind: KindCounter})
	return lines
}

// CollisionLines returns the two lines marking the last collision, drawn from
// the top right corner. There are none unless diagnostics are shown and a
// collision happened this frame.
func (s Snapshot) CollisionLines() []Line {
	if !s.ShowCollisions || !s.Collision {
		return nil
	}
	corner := mgl64.Vec2{float64(s.Width - 1), 0}
	return []Line{
		{From: corner, To: s.Last.PosA, Vehicle: s.Last.A},
		{From: corner, To: s.Last.PosB, Vehicle: s.Last.B},
	}
}

// GuardStatus describes who holds the intersection and how many crossings
// have completed
func (s Snapshot) GuardStatus() string {
	occupant := "free"
	if s.Occupant >= 0 {
		occupant = fmt.Sprintf("car %d", s.Occupant+1)
	}
	return fmt.Sprintf("intersection: %s, crossings: %d", occupant, s.Crossings)
}
