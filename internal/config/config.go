// Package config loads the aviator's settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"aviator/internal/builder"
	"aviator/internal/frame"
	"aviator/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/aviator.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Window is the host window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
	Background string `yaml:"background"`
}

// Camera is the perspective camera. Fov is vertical, in degrees.
type Camera struct {
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
}

// Fog is linear distance fog.
type Fog struct {
	Color string  `yaml:"color"`
	Near  float32 `yaml:"near"`
	Far   float32 `yaml:"far"`
}

// Scene controls procedural generation.
type Scene struct {
	// Seed for cloud generation; 0 picks a new seed every run.
	Seed   uint64 `yaml:"seed"`
	Clouds int    `yaml:"clouds"`
	Fog    Fog    `yaml:"fog"`
}

// Debug toggles the on-screen overlays.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowPointer  bool `yaml:"show_pointer"`
}

// Log is where the line log is written.
type Log struct {
	Path string `yaml:"path"`
}

// Config is the whole settings file.
type Config struct {
	Window Window       `yaml:"window"`
	Camera Camera       `yaml:"camera"`
	Scene  Scene        `yaml:"scene"`
	Motion frame.Motion `yaml:"motion"`
	Debug  Debug        `yaml:"debug"`
	Log    Log          `yaml:"log"`
}

// Default returns the stock settings: a resizable 1280x720 window at 60 FPS,
// twenty clouds and the default motion.
func Default() Config {
	opts := world.DefaultOptions()
	cam := opts.Camera
	return Config{
		Window: Window{
			Title:      "The Aviator",
			Width:      1280,
			Height:     720,
			TargetFPS:  60,
			Resizable:  true,
			Background: hex(opts.Background),
		},
		Camera: Camera{
			Fov:      cam.Fov,
			Near:     cam.Near,
			Far:      cam.Far,
			Position: cam.Position,
			Target:   cam.Target,
		},
		Scene: Scene{
			Clouds: builder.DefaultClouds,
			Fog: Fog{
				Color: hex(opts.Fog.Color),
				Near:  opts.Fog.Near,
				Far:   opts.Fog.Far,
			},
		},
		Motion: frame.DefaultMotion(),
		Log:    Log{Path: "logs/aviator.txt"},
	}
}

// Load reads path over the defaults, so a partial file only overrides what it
// names. A missing file yields Default() and no error; a malformed or invalid
// file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode writes cfg as YAML to w.
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks everything the app would otherwise trip over at startup.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	}
	if c.Scene.Clouds < 0 {
		return fmt.Errorf("%w: clouds %d", ErrInvalid, c.Scene.Clouds)
	}
	if !(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far) {
		return fmt.Errorf("%w: camera clip range [%g, %g]", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if !(c.Camera.Fov > 0 && c.Camera.Fov < 180) {
		return fmt.Errorf("%w: camera fov %g", ErrInvalid, c.Camera.Fov)
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.Scene.Fog.Color); err != nil {
		return fmt.Errorf("%w: fog: %v", ErrInvalid, err)
	}
	if err := c.Motion.Validate(); err != nil {
		return fmt.Errorf("%w: motion %w", ErrInvalid, err)
	}
	return nil
}

// WorldOptions converts the scene, camera and window settings for world.Compose.
// Call Validate first; unparsable colours fall back to the defaults.
func (c Config) WorldOptions() world.Options {
	opts := world.DefaultOptions()
	opts.Clouds = c.Scene.Clouds
	opts.Camera.Fov = c.Camera.Fov
	opts.Camera.Near = c.Camera.Near
	opts.Camera.Far = c.Camera.Far
	opts.Camera.Position = mgl32.Vec3(c.Camera.Position)
	opts.Camera.Target = mgl32.Vec3(c.Camera.Target)
	opts.Camera.SetViewport(c.Window.Width, c.Window.Height)
	if bg, err := ParseColor(c.Window.Background); err == nil {
		opts.Background = bg
	}
	if fog, err := ParseColor(c.Scene.Fog.Color); err == nil {
		opts.Fog.Color = fog
	}
	opts.Fog.Near = c.Scene.Fog.Near
	opts.Fog.Far = c.Scene.Fog.Far
	return opts
}

// Environment variables read by ApplyEnv.
const (
	EnvSeed    = "AVIATOR_SEED"
	EnvClouds  = "AVIATOR_CLOUDS"
	EnvShowFPS = "AVIATOR_SHOW_FPS"
)

// ApplyEnv overrides settings from the environment. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvSeed, err)
		}
		c.Scene.Seed = seed
	}
	if v, ok := lookup(EnvClouds); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvClouds, v)
		}
		c.Scene.Clouds = n
	}
	if v, ok := lookup(EnvShowFPS); ok && v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvShowFPS, err)
		}
		c.Debug.ShowFPS = show
	}
	return nil
}

// ParseColor parses a "#rrggbb" hex colour into an opaque RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
