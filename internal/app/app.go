// Package app wires the window, renderer, camera and tree together and
// runs the main loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/canopy/internal/config"
	"github.com/Faultbox/canopy/internal/engine/camera"
	"github.com/Faultbox/canopy/internal/engine/input"
	"github.com/Faultbox/canopy/internal/engine/render"
	"github.com/Faultbox/canopy/internal/engine/tree"
	"github.com/Faultbox/canopy/internal/engine/window"
	"github.com/Faultbox/canopy/internal/logger"
	"github.com/Faultbox/canopy/pkg/math"
)

// maxFrameDt caps the simulation step so a stall (window drag, debugger)
// does not make the tree jump.
const maxFrameDt = float32(0.1)

// poseYawSpeed is the slow whole-tree rotation, radians per second.
const poseYawSpeed = float32(0.05)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool
	paused  bool

	window   *window.Window
	renderer *render.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	tree     *tree.Tree

	width    int
	height   int
	elapsed  float32
	dragging bool
}

// New creates the viewer: window first (the OpenGL context must exist
// before the renderer), then renderer, tree and camera.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("depth", cfg.Tree.Depth),
	)

	a := &App{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Canopy",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.tree, err = tree.New(cfg.Tree.Engine())
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create tree: %w", err)
	}

	a.renderer, err = render.New(render.Config{
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		BranchColorA: cfg.Colors.BranchA,
		BranchColorB: cfg.Colors.BranchB,
		LeafColor:    cfg.Colors.Leaf,
		MaxInstances: tree.LevelSize(cfg.Tree.Depth - 1),
	})
	if err != nil {
		a.tree.Release()
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.camera = camera.NewOrbitCamera()

	logger.Info("viewer initialized",
		zap.Int("nodes", tree.TotalNodes(cfg.Tree.Depth)),
	)
	return a, nil
}

// Run starts the main loop and blocks until the viewer quits.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		if !a.running {
			break
		}

		a.frame(dt)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies this frame's input events.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.width = event.Width
			a.height = event.Height
			a.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_SPACE:
				a.paused = !a.paused
				logger.Debug("animation paused", zap.Bool("paused", a.paused))
			}

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(event.Wheel)
		}
	}
}

// frame advances the animation one step and draws it.
func (a *App) frame(dt float32) {
	if a.paused {
		dt = 0
	}
	a.elapsed += dt

	pose := tree.Pose{
		Rotation: math.QuatFromYRotation(poseYawSpeed * a.elapsed),
		Scale:    1,
	}
	data := a.tree.Update(dt, pose)

	aspect := float32(a.width) / float32(a.height)
	proj := math.Perspective(math.Radians(60), aspect, 0.1, 200)
	viewProj := proj.Mul(a.camera.ViewMatrix())

	a.renderer.Begin()
	a.renderer.Draw(data, viewProj)
}

// Close cleans up viewer resources.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.tree != nil {
		a.tree.Release()
	}
	if a.renderer != nil {
		a.renderer.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
