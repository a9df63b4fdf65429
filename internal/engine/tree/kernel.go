package tree

import "github.com/Faultbox/canopy/pkg/math"

// updateRange runs the per-node update for nodes [lo,hi) of the given
// level. It reads only the parent level's fully-written state and writes
// only its own indices, so any partition of a level can run concurrently.
func (t *Tree) updateRange(level, lo, hi int, dt, scale float32) {
	parents := t.store.parts[level-1]
	parts := t.store.parts[level]
	matrices := t.store.matrices[level]

	for i := lo; i < hi; i++ {
		part := &parts[i]
		parent := &parents[ParentIndex(i)]

		part.SpinAngle += part.SpinVelocity * dt

		// Sag tilts the branch away from its parent toward the ground,
		// scaled by how far its up axis has drifted from world up.
		upAxis := parent.WorldRotation.Mul(part.Rotation).Rotate(math.Up)
		sagAxis := math.Up.Cross(upAxis)

		baseRotation := parent.WorldRotation
		if magnitude := sagAxis.Length(); magnitude > 0 {
			axis := sagAxis.Scale(1 / magnitude)
			sagRotation := math.QuatFromAxisAngle(axis, part.MaxSagAngle*magnitude)
			baseRotation = sagRotation.Mul(parent.WorldRotation)
		}

		part.WorldRotation = baseRotation.Mul(
			part.Rotation.Mul(math.QuatFromYRotation(part.SpinAngle)))
		part.WorldPosition = parent.WorldPosition.Add(
			part.WorldRotation.Rotate(math.Vec3{Y: 1.5 * scale}))

		matrices[i] = math.TRS(part.WorldRotation, part.WorldPosition, scale)
	}
}

// updateRoot updates level 0. The root's parent is the external object
// pose; it spins like every other part but never sags.
func (t *Tree) updateRoot(dt float32, pose Pose) {
	root := &t.store.parts[0][0]

	root.SpinAngle += root.SpinVelocity * dt
	root.WorldRotation = pose.Rotation.Mul(
		root.Rotation.Mul(math.QuatFromYRotation(root.SpinAngle)))
	root.WorldPosition = pose.Position

	t.store.matrices[0][0] = math.TRS(root.WorldRotation, root.WorldPosition, pose.Scale)
}
