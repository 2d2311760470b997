package palette

import "testing"

func TestCarColorsAreDistinct(t *testing.T) {
	seen := make(map[[3]uint8]int)
	for i, c := range Cars {
		key := [3]uint8{c.R, c.G, c.B}
		if j, ok := seen[key]; ok {
			t.Errorf("Cars %d and %d share color %v", j, i, c)
		}
		seen[key] = i
	}
	if len(Cars) != 8 {
		t.Errorf("Expected 8 car colors, got %d", len(Cars))
	}
}

func TestCarWraps(t *testing.T) {
	if Car(8) != Cars[0] || Car(3) != Cars[3] || Car(-1) != Cars[1] {
		t.Error("Expected car colors to wrap around the palette")
	}
}
