// Package demo wires the window, input, renderer and camera controller into
// the demo application.
package demo

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/TanukiSharp/OrbitalCamera/internal/config"
	"github.com/TanukiSharp/OrbitalCamera/internal/engine/input"
	"github.com/TanukiSharp/OrbitalCamera/internal/engine/mesh"
	"github.com/TanukiSharp/OrbitalCamera/internal/engine/renderer"
	"github.com/TanukiSharp/OrbitalCamera/internal/engine/window"
	"github.com/TanukiSharp/OrbitalCamera/internal/logger"
	"github.com/TanukiSharp/OrbitalCamera/pkg/camera"
	"github.com/TanukiSharp/OrbitalCamera/pkg/math"
)

const (
	fovY = gomath.Pi / 4
	near = 0.1
	far  = 500.0
)

// Demo is the demo application instance.
type Demo struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	controller      *camera.Controller
	initialPosition math.Vec3
	initialTarget   math.Vec3

	ground  *renderer.Mesh
	cube    *renderer.Mesh
	pyramid *renderer.Mesh
}

// New creates the demo application.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{
		cfg: cfg,
	}

	var err error
	d.window, err = window.New(window.Config{
		Title:      "Orbital Camera",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	d.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		d.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	d.input = input.New()

	d.initialPosition = math.Vec3{
		X: cfg.Camera.Position[0],
		Y: cfg.Camera.Position[1],
		Z: cfg.Camera.Position[2],
	}
	d.initialTarget = math.Vec3{
		X: cfg.Camera.Target[0],
		Y: cfg.Camera.Target[1],
		Z: cfg.Camera.Target[2],
	}
	d.controller = camera.NewWithOptions(
		d.initialPosition,
		d.initialTarget,
		camera.WorldUp,
		cfg.Camera.Options(),
	)

	if err := d.createScene(); err != nil {
		d.renderer.Close()
		d.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	logger.Info("demo initialized",
		zap.Float64s("position", cfg.Camera.Position[:]),
		zap.Float64s("target", cfg.Camera.Target[:]),
	)
	return d, nil
}

// createScene uploads the demo geometry: a checkered ground plane, a cube
// and a pyramid.
func (d *Demo) createScene() error {
	var err error

	d.ground, err = d.renderer.UploadMesh(mesh.GenerateGround(
		10, 20,
		mesh.Color{0.55, 0.55, 0.6},
		mesh.Color{0.35, 0.35, 0.4},
	))
	if err != nil {
		return err
	}

	d.cube, err = d.renderer.UploadMesh(mesh.GenerateCube(2, mesh.Color{0.8, 0.3, 0.25}))
	if err != nil {
		return err
	}

	d.pyramid, err = d.renderer.UploadMesh(mesh.GeneratePyramid(2, 2.5, mesh.Color{0.25, 0.5, 0.8}))
	if err != nil {
		return err
	}

	return nil
}

// Run starts the main loop: poll input, feed the pointer snapshot to the
// camera controller, render the scene with the published view.
func (d *Demo) Run() error {
	d.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting demo loop")

	for d.running {
		if d.input.Update() {
			d.running = false
			break
		}

		for _, event := range d.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				d.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				switch event.Key {
				case sdl.SCANCODE_ESCAPE:
					d.running = false
				case sdl.SCANCODE_R:
					d.resetCamera()
				}
			}
		}

		d.controller.Update(d.input.Pointer())

		d.render()
		d.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// resetCamera restores the initial camera pose from the configuration.
func (d *Demo) resetCamera() {
	d.controller.SetPosition(d.initialPosition)
	d.controller.SetTarget(d.initialTarget)
	logger.Debug("camera reset")
}

// render draws one frame using the controller's published view.
func (d *Demo) render() {
	d.renderer.Begin()

	view := d.controller.View()
	viewMatrix := math.LookAt(
		view.Position,
		view.Position.Add(view.LookDirection),
		view.UpDirection,
	)
	projection := math.Perspective(fovY, d.renderer.Aspect(), near, far)

	d.renderer.SetCamera(projection, viewMatrix, math.Vec3{X: -0.4, Y: -1, Z: -0.3})

	d.renderer.Draw(d.ground, math.Identity())
	d.renderer.Draw(d.cube, math.Translate(-2.5, 1, 0))
	d.renderer.Draw(d.pyramid, math.Translate(2.5, 0, 0))
}

// Close cleans up demo resources.
func (d *Demo) Close() {
	logger.Info("closing demo")

	if d.renderer != nil {
		d.renderer.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}
