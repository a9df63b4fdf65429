package tree

import "github.com/Faultbox/canopy/pkg/math"

// LevelData is one level's hand-off to the instanced draw sink: a flat
// buffer of per-instance matrices plus the level's constant shading
// inputs. Matrices are fully overwritten every frame; Seed and Gradient
// are fixed at creation.
type LevelData struct {
	Matrices []math.Mat3x4
	Seed     [4]float32

	// Gradient is the level's normalized color-interpolation position
	// in [0,1]. Ignored for the leaf level, which uses its own coloring.
	Gradient float32

	// Leaf marks the deepest level, drawn with the leaf mesh.
	Leaf bool
}

// RenderData is the per-frame output of Tree.Update, consumed by an
// external "draw N instances" sink. The bounding sphere covers the whole
// animated tree for culling.
type RenderData struct {
	Levels       []LevelData
	BoundsCenter math.Vec3
	BoundsRadius float32
}

func (t *Tree) renderData(pose Pose) *RenderData {
	data := &RenderData{
		Levels:       make([]LevelData, t.cfg.Depth),
		BoundsCenter: t.store.parts[0][0].WorldPosition,
		BoundsRadius: 3 * pose.Scale,
	}

	for level := 0; level < t.cfg.Depth; level++ {
		data.Levels[level] = LevelData{
			Matrices: t.store.matrices[level],
			Seed:     t.seeds[level],
			Gradient: t.gradients[level],
			Leaf:     level == t.cfg.Depth-1,
		}
	}

	return data
}
