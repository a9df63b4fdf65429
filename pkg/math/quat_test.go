package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatFromYRotation(t *testing.T) {
	angle := float32(0.7)
	a := QuatFromYRotation(angle)
	b := QuatFromAxisAngle(Vec3{Y: 1}, angle)

	if math.Abs(float64(a.Y-b.Y)) > 0.0001 || math.Abs(float64(a.W-b.W)) > 0.0001 {
		t.Errorf("QuatFromYRotation should match axis-angle around Y: got %+v, want %+v", a, b)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees around Z maps +Y to -X
	q := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	v := q.Rotate(Vec3{Y: 1})

	if math.Abs(float64(v.X+1)) > 0.0001 || math.Abs(float64(v.Y)) > 0.0001 || math.Abs(float64(v.Z)) > 0.0001 {
		t.Errorf("Rotating +Y by 90deg around Z should give (-1,0,0), got (%v,%v,%v)", v.X, v.Y, v.Z)
	}

	// Identity leaves vectors untouched
	id := QuatIdentity().Rotate(Vec3{X: 1, Y: 2, Z: 3})
	if id.X != 1 || id.Y != 2 || id.Z != 3 {
		t.Errorf("Identity rotation changed vector: got (%v,%v,%v)", id.X, id.Y, id.Z)
	}
}

func TestQuatMulComposition(t *testing.T) {
	// (a*b).Rotate(v) must equal a.Rotate(b.Rotate(v))
	a := QuatFromAxisAngle(Vec3{X: 1}, 0.4)
	b := QuatFromAxisAngle(Vec3{Y: 1}, 1.1)
	v := Vec3{X: 0.3, Y: -0.8, Z: 0.5}

	lhs := a.Mul(b).Rotate(v)
	rhs := a.Rotate(b.Rotate(v))

	if lhs.Distance(rhs) > 0.0001 {
		t.Errorf("Mul composition mismatch: (a*b)v = %+v, a(bv) = %+v", lhs, rhs)
	}
}

func TestQuatNormalizeDegenerate(t *testing.T) {
	q := Quat{}.Normalize()
	if q != QuatIdentity() {
		t.Errorf("Normalizing a zero quaternion should return identity, got %+v", q)
	}
}
