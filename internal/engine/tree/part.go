package tree

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/canopy/pkg/math"
)

// Part is the per-node state of one rigid segment of the tree.
//
// Rotation, MaxSagAngle and SpinVelocity are assigned at creation and never
// mutated afterward. WorldPosition, WorldRotation and SpinAngle are written
// exactly once per frame by the update kernel, by the node that owns them.
type Part struct {
	WorldPosition math.Vec3

	// Rotation is the fixed local orientation for the part's child slot.
	Rotation      math.Quat
	WorldRotation math.Quat

	// MaxSagAngle is the droop angle in radians reached when the part's
	// up axis is perpendicular to world up.
	MaxSagAngle float32

	// SpinAngle accumulates SpinVelocity*dt; it wraps implicitly through
	// quaternion periodicity and is never clamped.
	SpinAngle    float32
	SpinVelocity float32
}

// store owns every per-level array for the lifetime of a tree session: one
// contiguous Part slice and one matrix slice per level, parent/child linked
// purely by index arithmetic.
type store struct {
	parts    [][]Part
	matrices [][]math.Mat3x4
}

func degToRad(deg float32) float32 {
	return deg * (gomath.Pi / 180)
}

// newStore allocates and populates all levels for the given config. The
// root occupies slot 0; every subsequent level is filled in contiguous
// sibling groups of BranchFactor using the fixed slot table.
func newStore(cfg Config, rng *rand.Rand) *store {
	s := &store{
		parts:    make([][]Part, cfg.Depth),
		matrices: make([][]math.Mat3x4, cfg.Depth),
	}

	for level := 0; level < cfg.Depth; level++ {
		size := LevelSize(level)
		s.parts[level] = make([]Part, size)
		s.matrices[level] = make([]math.Mat3x4, size)

		for i := range s.parts[level] {
			s.parts[level][i] = newPart(cfg, rng, SlotIndex(i))
		}
	}

	return s
}

// newPart creates one part for the given child slot, drawing its sag and
// spin parameters from the configured ranges.
func newPart(cfg Config, rng *rand.Rand, slot int) Part {
	sag := cfg.SagAngleMin + rng.Float32()*(cfg.SagAngleMax-cfg.SagAngleMin)
	speed := cfg.SpinSpeedMin + rng.Float32()*(cfg.SpinSpeedMax-cfg.SpinSpeedMin)
	if rng.Float32() < cfg.ReverseSpinChance {
		speed = -speed
	}

	return Part{
		Rotation:      slotRotations[slot],
		WorldRotation: math.QuatIdentity(),
		MaxSagAngle:   degToRad(sag),
		SpinVelocity:  degToRad(speed),
	}
}

// release drops every per-level array. Safe to call repeatedly.
func (s *store) release() {
	s.parts = nil
	s.matrices = nil
}

// released reports whether the store has been torn down.
func (s *store) released() bool {
	return s.parts == nil
}
