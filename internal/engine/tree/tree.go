package tree

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Faultbox/canopy/pkg/math"
)

// minParallelNodes is the level size below which fanning out across
// goroutines costs more than the update itself. Levels 1 and 2 (5 and 25
// nodes) always run inline.
const minParallelNodes = 125

// Pose is the external object pose the root level inherits from.
type Pose struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    float32
}

// IdentityPose returns a unit-scale pose at the origin.
func IdentityPose() Pose {
	return Pose{Rotation: math.QuatIdentity(), Scale: 1}
}

// Tree is the frame orchestrator: it owns the part store, drives the root
// update, then schedules each level's kernel strictly after the previous
// level has fully finished. Within a level the kernel fans out over a
// fixed number of workers with disjoint index ranges, so no locking is
// needed anywhere in the update.
type Tree struct {
	cfg     Config
	store   *store
	workers int

	// Per-level constants computed once at creation.
	seeds     [][4]float32
	gradients []float32
}

// New creates a tree from a validated config. Topology changes (depth)
// require Release followed by New; there is no partial resize.
func New(cfg Config) (*Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	t := &Tree{
		cfg:       cfg,
		store:     newStore(cfg, rng),
		workers:   runtime.NumCPU(),
		seeds:     make([][4]float32, cfg.Depth),
		gradients: make([]float32, cfg.Depth),
	}

	for level := 0; level < cfg.Depth; level++ {
		t.seeds[level] = [4]float32{rng.Float32(), rng.Float32(), rng.Float32(), rng.Float32()}
		t.gradients[level] = gradientPosition(level, cfg.Depth)
	}

	return t, nil
}

// gradientPosition maps a level to its color-interpolation position. The
// last interior level lands on 1; deeper indices clamp.
func gradientPosition(level, depth int) float32 {
	if depth <= 2 {
		return 0
	}
	g := float32(level) / float32(depth-2)
	if g > 1 {
		g = 1
	}
	return g
}

// Depth returns the number of levels.
func (t *Tree) Depth() int {
	return t.cfg.Depth
}

// Update advances the whole tree by dt seconds under the given external
// pose and returns the frame's render data. dt must be >= 0; with dt == 0
// every pose is recomputed to the same deterministic values.
//
// The returned data borrows the tree's matrix buffers and is valid until
// the next Update or Release.
func (t *Tree) Update(dt float32, pose Pose) *RenderData {
	if t.store.released() {
		panic("tree: Update after Release")
	}

	t.updateRoot(dt, pose)

	scale := pose.Scale
	for level := 1; level < t.cfg.Depth; level++ {
		scale *= 0.5
		t.runLevel(level, dt, scale)
	}

	return t.renderData(pose)
}

// runLevel executes the update kernel across one level, joining all
// workers before returning so the next level never observes a
// partially-written parent level.
func (t *Tree) runLevel(level int, dt, scale float32) {
	parts := t.store.parts[level]
	if len(parts) != len(t.store.parts[level-1])*BranchFactor {
		panic(fmt.Sprintf("tree: level %d has %d parts for %d parents",
			level, len(parts), len(t.store.parts[level-1])))
	}

	n := len(parts)
	if t.workers <= 1 || n < minParallelNodes {
		t.updateRange(level, 0, n, dt, scale)
		return
	}

	chunk := (n + t.workers - 1) / t.workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			t.updateRange(level, lo, hi, dt, scale)
		}(lo, hi)
	}
	wg.Wait()
}

// Release tears down every per-level array. Idempotent; the tree must be
// recreated with New before any further Update.
func (t *Tree) Release() {
	t.store.release()
}
