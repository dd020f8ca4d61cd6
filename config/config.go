// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package config defines the settings of the demo
// application and loads them from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func newErr(s string) error { return errors.New("config: " + s) }

// Duration is a time.Duration that is written in files as
// a string such as "16ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	x, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(x)
	return nil
}

// Seconds returns d as a floating point number of
// seconds.
func (d Duration) Seconds() float64 { return time.Duration(d).Seconds() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Camera holds the camera settings.
type Camera struct {
	// Vertical field of view, in degrees.
	Fov float32 `toml:"fov" yaml:"fov"`
	Far float32 `toml:"far" yaml:"far"`
	// Distance from the origin along +Z.
	Distance float32 `toml:"distance" yaml:"distance"`
}

// Scene holds the settings of the demo scene.
type Scene struct {
	Donuts int `toml:"donuts" yaml:"donuts"`
	// Rotation speed, in radians per second.
	Speed float64 `toml:"speed" yaml:"speed"`
	// Duration of the spin played on click.
	Spin Duration `toml:"spin" yaml:"spin"`
}

// Log holds the logging settings.
type Log struct {
	Level slog.Level `toml:"level" yaml:"level"`
	// Empty means no logging.
	File string `toml:"file" yaml:"file"`
}

// Config is the application configuration.
type Config struct {
	// Rate of the host's refresh signal, in frames per
	// second.
	FrameRate int `toml:"frame_rate" yaml:"frame_rate"`
	// Minimum interval between processed pointer motion
	// events.
	Throttle Duration `toml:"throttle" yaml:"throttle"`
	Camera   Camera   `toml:"camera" yaml:"camera"`
	Scene    Scene    `toml:"scene" yaml:"scene"`
	// Whether to draw bounding volumes.
	Debug bool `toml:"debug" yaml:"debug"`
	Log   Log  `toml:"log" yaml:"log"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		FrameRate: 60,
		Throttle:  Duration(16 * time.Millisecond),
		Camera: Camera{
			Fov:      45,
			Far:      100,
			Distance: 10,
		},
		Scene: Scene{
			Donuts: 8,
			Speed:  0.65,
			Spin:   Duration(time.Second),
		},
		Log: Log{Level: slog.LevelInfo},
	}
}

// Load reads the file at path, overlaying its contents on
// Default. The format is chosen by the file extension:
// ".toml", ".yaml" or ".yml".
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return cfg, newErr("unknown file extension " + ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that c is usable.
func (c *Config) Validate() error {
	switch {
	case c.FrameRate <= 0:
		return newErr("frame_rate must be positive")
	case c.Throttle <= 0:
		return newErr("throttle must be positive")
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return newErr("camera.fov must be in (0, 180)")
	case c.Camera.Far <= 0:
		return newErr("camera.far must be positive")
	case c.Camera.Distance <= 0 || c.Camera.Distance >= c.Camera.Far:
		return newErr("camera.distance must be in (0, camera.far)")
	case c.Scene.Donuts < 0:
		return newErr("scene.donuts must not be negative")
	case c.Scene.Spin <= 0:
		return newErr("scene.spin must be positive")
	}
	return nil
}

// Interval returns the period of the refresh signal.
func (c *Config) Interval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}
