package math

import (
	"math"
	"testing"
)

func TestMat3x4Identity(t *testing.T) {
	m := Mat3x4Identity()
	p := m.TransformPoint(Vec3{X: 1, Y: 2, Z: 3})
	if p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Errorf("Identity transform changed point: got %+v", p)
	}
}

func TestTRSTranslation(t *testing.T) {
	m := TRS(QuatIdentity(), Vec3{X: 4, Y: 5, Z: 6}, 1)
	tr := m.Translation()
	if tr.X != 4 || tr.Y != 5 || tr.Z != 6 {
		t.Errorf("Translation column: expected (4,5,6), got %+v", tr)
	}
}

func TestTRSColumnNorms(t *testing.T) {
	// Rotation columns must have magnitude equal to the uniform scale.
	rot := QuatFromAxisAngle(Vec3{X: 0.267, Y: 0.535, Z: 0.802}, 1.3)
	scale := float32(0.25)
	m := TRS(rot, Vec3{}, scale)

	for i := 0; i < 3; i++ {
		norm := m.Column(i).Length()
		if math.Abs(float64(norm-scale)) > 0.0001 {
			t.Errorf("column %d norm: expected %v, got %v", i, scale, norm)
		}
	}
}

func TestTRSMatchesQuatRotate(t *testing.T) {
	rot := QuatFromAxisAngle(Vec3{Y: 1}, 0.9).Mul(QuatFromAxisAngle(Vec3{X: 1}, -0.3))
	pos := Vec3{X: 1, Y: -2, Z: 0.5}
	m := TRS(rot, pos, 1)

	v := Vec3{X: 0.2, Y: 1.4, Z: -0.7}
	got := m.TransformPoint(v)
	want := rot.Rotate(v).Add(pos)

	if got.Distance(want) > 0.0001 {
		t.Errorf("TRS transform mismatch: got %+v, want %+v", got, want)
	}
}
