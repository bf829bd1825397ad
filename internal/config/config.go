// Package config handles demo application configuration loading and management.
package config

import "github.com/TanukiSharp/OrbitalCamera/pkg/camera"

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig exposes the controller tuning knobs plus the initial pose.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	Target   [3]float64 `yaml:"target"`

	MinimumDirectionLength float64 `yaml:"minimum_direction_length"`
	MoveRatio              float64 `yaml:"move_ratio"`
	RotationRatio          float64 `yaml:"rotation_ratio"`
	RotationEpsilon        float64 `yaml:"rotation_epsilon"`
	ZoomRatio              float64 `yaml:"zoom_ratio"`
	MinimumZoom            float64 `yaml:"minimum_zoom"`
	MaximumZoom            float64 `yaml:"maximum_zoom"`
}

// Options converts the camera section to controller options.
func (c CameraConfig) Options() camera.Options {
	return camera.Options{
		MinimumDirectionLength: c.MinimumDirectionLength,
		MoveRatio:              c.MoveRatio,
		RotationRatio:          c.RotationRatio,
		RotationEpsilon:        c.RotationEpsilon,
		ZoomRatio:              c.ZoomRatio,
		MinimumZoom:            c.MinimumZoom,
		MaximumZoom:            c.MaximumZoom,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := camera.DefaultOptions()

	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Position: [3]float64{0, 3, 10},
			Target:   [3]float64{0, 0, 0},

			MinimumDirectionLength: opts.MinimumDirectionLength,
			MoveRatio:              opts.MoveRatio,
			RotationRatio:          opts.RotationRatio,
			RotationEpsilon:        opts.RotationEpsilon,
			ZoomRatio:              opts.ZoomRatio,
			MinimumZoom:            opts.MinimumZoom,
			MaximumZoom:            opts.MaximumZoom,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
