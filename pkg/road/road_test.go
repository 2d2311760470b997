package road

import (
	"image"
	"testing"

	"github.com/golangdaddy/crossroads/pkg/geometry"
)

func TestNewLayout(t *testing.T) {
	layout := NewLayout(460, 460, geometry.NewBox(230, 230, 112, 112))

	if want := image.Rect(174, 174, 287, 287); layout.Outline != want {
		t.Errorf("Expected outline %v, got %v", want, layout.Outline)
	}

	arms := map[Arm]image.Rectangle{
		ArmNorth: image.Rect(174, 0, 286, 173),
		ArmSouth: image.Rect(174, 288, 286, 460),
		ArmWest:  image.Rect(0, 174, 173, 286),
		ArmEast:  image.Rect(288, 174, 460, 286),
	}
	for arm, want := range arms {
		if got := layout.Arms[arm]; got != want {
			t.Errorf("Expected arm %d to be %v, got %v", arm, want, got)
		}
	}

	if len(layout.Dashes) != 4*DashCount {
		t.Fatalf("Expected %d dashes, got %d", 4*DashCount, len(layout.Dashes))
	}
	// First dash of each arm, in north, south, west, east order
	first := []image.Rectangle{
		image.Rect(228, 0, 232, 20),
		image.Rect(228, 439, 232, 459),
		image.Rect(0, 228, 20, 232),
		image.Rect(439, 228, 459, 232),
	}
	for i, want := range first {
		if layout.Dashes[i] != want {
			t.Errorf("Expected dash %d to be %v, got %v", i, want, layout.Dashes[i])
		}
	}
	// Dashes repeat every DashPitch pixels
	if got := layout.Dashes[4].Min.Y - layout.Dashes[0].Min.Y; got != DashPitch {
		t.Errorf("Expected dash pitch %d, got %d", DashPitch, got)
	}
}

func TestNewLayoutTinyField(t *testing.T) {
	// The intersection fills the field, so there is no room for the far arms
	layout := NewLayout(200, 200, geometry.NewBox(100, 100, 196, 196))

	if !layout.Arms[ArmSouth].Empty() || !layout.Arms[ArmEast].Empty() {
		t.Errorf("Expected empty far arms, got %v and %v", layout.Arms[ArmSouth], layout.Arms[ArmEast])
	}
	if IsVisible(layout.Arms[ArmSouth], 200, 200) {
		t.Error("Expected an empty arm to be invisible")
	}
}

func TestIsVisible(t *testing.T) {
	if !IsVisible(image.Rect(-10, -10, 5, 5), 100, 100) {
		t.Error("Expected a partly visible rectangle to be visible")
	}
	if IsVisible(image.Rect(120, 0, 140, 20), 100, 100) {
		t.Error("Expected a rectangle right of the field to be invisible")
	}
}
