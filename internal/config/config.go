// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/canopy/internal/engine/tree"
)

// Config holds all viewer settings.
type Config struct {
	Tree     TreeConfig     `yaml:"tree"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Colors   ColorConfig    `yaml:"colors"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TreeConfig holds the fractal tree shape and motion parameters.
// Angles are degrees, spin speeds degrees per second.
type TreeConfig struct {
	Depth             int     `yaml:"depth"`
	SagAngleMin       float32 `yaml:"sag_angle_min"`
	SagAngleMax       float32 `yaml:"sag_angle_max"`
	SpinSpeedMin      float32 `yaml:"spin_speed_min"`
	SpinSpeedMax      float32 `yaml:"spin_speed_max"`
	ReverseSpinChance float32 `yaml:"reverse_spin_chance"`
	Seed              int64   `yaml:"seed"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ColorConfig holds the branch gradient endpoints and the leaf color,
// as RGB triples in [0,1].
type ColorConfig struct {
	BranchA [3]float32 `yaml:"branch_a"`
	BranchB [3]float32 `yaml:"branch_b"`
	Leaf    [3]float32 `yaml:"leaf"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Tree: TreeConfig{
			Depth:             6,
			SagAngleMin:       15,
			SagAngleMax:       25,
			SpinSpeedMin:      10,
			SpinSpeedMax:      20,
			ReverseSpinChance: 0.25,
			Seed:              0,
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Colors: ColorConfig{
			BranchA: [3]float32{0.45, 0.28, 0.12},
			BranchB: [3]float32{0.75, 0.6, 0.3},
			Leaf:    [3]float32{0.2, 0.65, 0.25},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Engine converts the yaml-facing tree settings into the engine config.
func (tc TreeConfig) Engine() tree.Config {
	return tree.Config{
		Depth:             tc.Depth,
		SagAngleMin:       tc.SagAngleMin,
		SagAngleMax:       tc.SagAngleMax,
		SpinSpeedMin:      tc.SpinSpeedMin,
		SpinSpeedMax:      tc.SpinSpeedMax,
		ReverseSpinChance: tc.ReverseSpinChance,
		Seed:              tc.Seed,
	}
}

// Validate rejects configurations the viewer cannot start with.
func (c *Config) Validate() error {
	if err := c.Tree.Engine().Validate(); err != nil {
		return err
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d is not positive", c.Graphics.Width, c.Graphics.Height)
	}
	for _, col := range [][3]float32{c.Colors.BranchA, c.Colors.BranchB, c.Colors.Leaf} {
		for _, ch := range col {
			if ch < 0 || ch > 1 {
				return fmt.Errorf("config: color channel %v outside [0,1]", ch)
			}
		}
	}
	return nil
}
