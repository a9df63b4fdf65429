// Package tree implements a procedurally animated fractal tree: a fixed
// 5-ary hierarchy of rigid transforms stored as flat per-level arrays,
// updated level by level each frame and flattened into per-instance render
// matrices for an instanced draw sink.
package tree

import (
	gomath "math"

	"github.com/Faultbox/canopy/pkg/math"
)

// BranchFactor is the number of children per node.
const BranchFactor = 5

// Supported depth range. Depth 8 is 97k parts at the leaf level; beyond
// that instance counts grow faster than any GPU budget we target.
const (
	MinDepth = 3
	MaxDepth = 8
)

// slotRotations maps a child slot (0..BranchFactor-1) to its fixed local
// orientation relative to the parent: straight up, two side tilts, two
// fore/aft tilts. Assigned once at creation, never recomputed per frame.
var slotRotations [BranchFactor]math.Quat

func init() {
	halfPi := float32(gomath.Pi / 2)
	slotRotations = [BranchFactor]math.Quat{
		math.QuatIdentity(),
		math.QuatFromAxisAngle(math.Vec3{Z: 1}, -halfPi),
		math.QuatFromAxisAngle(math.Vec3{Z: 1}, halfPi),
		math.QuatFromAxisAngle(math.Vec3{X: 1}, halfPi),
		math.QuatFromAxisAngle(math.Vec3{X: 1}, -halfPi),
	}
}

// LevelSize returns the number of nodes at the given level: 5^level.
func LevelSize(level int) int {
	n := 1
	for i := 0; i < level; i++ {
		n *= BranchFactor
	}
	return n
}

// TotalNodes returns the node count of a whole tree of the given depth.
func TotalNodes(depth int) int {
	total := 0
	for level := 0; level < depth; level++ {
		total += LevelSize(level)
	}
	return total
}

// ParentIndex maps a node index at level L to its parent index at L-1.
// Siblings are stored in contiguous groups of BranchFactor.
func ParentIndex(i int) int {
	return i / BranchFactor
}

// SlotIndex returns the child slot (0..BranchFactor-1) of a node index.
func SlotIndex(i int) int {
	return i % BranchFactor
}
