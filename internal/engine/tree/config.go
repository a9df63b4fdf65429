package tree

import "fmt"

// Config describes the shape and motion parameters of a tree. All angles
// are in degrees, matching the on-disk configuration; they are converted
// to radians when parts are created.
type Config struct {
	// Depth is the number of levels, including the root level.
	Depth int

	// SagAngleMin/Max bound each part's maximum droop angle, drawn
	// uniformly per part at creation.
	SagAngleMin float32
	SagAngleMax float32

	// SpinSpeedMin/Max bound each part's spin speed magnitude in
	// degrees per second.
	SpinSpeedMin float32
	SpinSpeedMax float32

	// ReverseSpinChance is the probability in [0,1] that a part spins
	// in the negative direction.
	ReverseSpinChance float32

	// Seed seeds the per-part randomization. Zero means a time-based seed.
	Seed int64
}

// DefaultConfig returns the tree parameters used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Depth:             6,
		SagAngleMin:       15,
		SagAngleMax:       25,
		SpinSpeedMin:      10,
		SpinSpeedMax:      20,
		ReverseSpinChance: 0.25,
	}
}

// Validate rejects configurations the engine cannot run with. A failed
// validation is fatal to startup, never recoverable mid-session.
func (c Config) Validate() error {
	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return fmt.Errorf("tree: depth %d outside supported range [%d,%d]", c.Depth, MinDepth, MaxDepth)
	}
	if c.SagAngleMin > c.SagAngleMax {
		return fmt.Errorf("tree: sag angle range [%v,%v] has min > max", c.SagAngleMin, c.SagAngleMax)
	}
	if c.SpinSpeedMin > c.SpinSpeedMax {
		return fmt.Errorf("tree: spin speed range [%v,%v] has min > max", c.SpinSpeedMin, c.SpinSpeedMax)
	}
	if c.ReverseSpinChance < 0 || c.ReverseSpinChance > 1 {
		return fmt.Errorf("tree: reverse spin chance %v outside [0,1]", c.ReverseSpinChance)
	}
	return nil
}
