package camera

import (
	gomath "math"
	"testing"
)

func TestOrbitPositionDistance(t *testing.T) {
	c := NewOrbitCamera()

	pos := c.Position()
	dx := float64(pos.X - c.Center.X)
	dy := float64(pos.Y - c.Center.Y)
	dz := float64(pos.Z - c.Center.Z)
	dist := gomath.Sqrt(dx*dx + dy*dy + dz*dz)

	if gomath.Abs(dist-float64(c.Distance)) > 1e-4 {
		t.Errorf("position is %v from center, expected %v", dist, c.Distance)
	}
}

func TestOrbitZoomClamped(t *testing.T) {
	c := NewOrbitCamera()

	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("zoom in should clamp at %v, got %v", c.MinDistance, c.Distance)
	}

	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("zoom out should clamp at %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestOrbitDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch should clamp at %v, got %v", c.MaxPitch, c.RotationX)
	}

	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch should clamp at %v, got %v", c.MinPitch, c.RotationX)
	}
}
