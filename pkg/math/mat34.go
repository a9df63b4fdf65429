package math

// Mat3x4 is a 3x4 affine transform stored as three rows of four floats:
//
//	[m0 m1 m2  m3 ]
//	[m4 m5 m6  m7 ]
//	[m8 m9 m10 m11]
//
// The left 3x3 block holds the (possibly uniformly scaled) rotation, the
// fourth column holds the translation. This is the per-instance layout
// handed to the GPU, three vec4 rows per instance.
type Mat3x4 [12]float32

// Mat3x4Identity returns an identity transform.
func Mat3x4Identity() Mat3x4 {
	return Mat3x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// TRS builds an affine transform from a rotation, a translation and a
// uniform scale. The quaternion is expected to be unit length.
func TRS(rot Quat, pos Vec3, scale float32) Mat3x4 {
	xx := rot.X * rot.X
	xy := rot.X * rot.Y
	xz := rot.X * rot.Z
	xw := rot.X * rot.W
	yy := rot.Y * rot.Y
	yz := rot.Y * rot.Z
	yw := rot.Y * rot.W
	zz := rot.Z * rot.Z
	zw := rot.Z * rot.W

	return Mat3x4{
		scale * (1 - 2*(yy+zz)), scale * 2 * (xy - zw), scale * 2 * (xz + yw), pos.X,
		scale * 2 * (xy + zw), scale * (1 - 2*(xx+zz)), scale * 2 * (yz - xw), pos.Y,
		scale * 2 * (xz - yw), scale * 2 * (yz + xw), scale * (1 - 2*(xx+yy)), pos.Z,
	}
}

// Translation returns the fourth column.
func (m Mat3x4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// Column returns basis column i (0..2) of the 3x3 block.
func (m Mat3x4) Column(i int) Vec3 {
	return Vec3{m[i], m[4+i], m[8+i]}
}

// TransformPoint applies the affine transform to a point.
func (m Mat3x4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}
