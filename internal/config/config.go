package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a config-friendly wrapper around time.Duration that accepts
// human readable strings such as "16ms" in JSON and YAML files while still
// allowing numeric nanosecond values.
type Duration time.Duration

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalJSON encodes the duration using the canonical string representation.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON decodes a duration from either a string (e.g. "250ms") or a
// numeric value representing nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("duration: empty value")
	}
	if string(b) == "null" {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("duration: decode string: %w", err)
		}
		return d.parse(s)
	}
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}
	return fmt.Errorf("duration: invalid value %s", string(b))
}

// MarshalYAML mirrors the JSON representation.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML decodes a duration from a YAML string or integer node.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		return d.parse(s)
	}
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}
	return fmt.Errorf("duration: invalid value %q", node.Value)
}

func (d *Duration) parse(s string) error {
	if s == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration: parse %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config captures the tunable parameters needed to bootstrap the engine.
type Config struct {
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Terrain TerrainConfig `json:"terrain" yaml:"terrain"`
	Render  RenderConfig  `json:"render" yaml:"render"`
}

// EngineConfig bounds the chunk streaming pipeline. Zero values for the pool
// related fields are filled in by ApplyRuntimeDefaults from the CPU count.
type EngineConfig struct {
	DrawDistance      int `json:"drawDistance" yaml:"drawDistance"`           // horizontal load radius, in chunks
	VerticalDistance  int `json:"verticalDistance" yaml:"verticalDistance"`   // vertical load radius, in chunks
	MeshBuildsPerTick int `json:"meshBuildsPerTick" yaml:"meshBuildsPerTick"` // mesh jobs dispatched per maintenance tick
	ChunkLoadsPerTick int `json:"chunkLoadsPerTick" yaml:"chunkLoadsPerTick"` // generation jobs dispatched per tick
	MaxInFlightLoads  int `json:"maxInFlightLoads" yaml:"maxInFlightLoads"`   // cap on simultaneous generation jobs
	Workers           int `json:"workers" yaml:"workers"`                     // worker pool size
	QueueDepth        int `json:"queueDepth" yaml:"queueDepth"`               // job and result channel capacity
}

type TerrainConfig struct {
	Seed        int64   `json:"seed" yaml:"seed"`
	Frequency   float64 `json:"frequency" yaml:"frequency"`
	Amplitude   float64 `json:"amplitude" yaml:"amplitude"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" yaml:"lacunarity"`
}

type RenderConfig struct {
	WindowWidth  int      `json:"windowWidth" yaml:"windowWidth"`
	WindowHeight int      `json:"windowHeight" yaml:"windowHeight"`
	FieldOfView  float64  `json:"fieldOfView" yaml:"fieldOfView"` // degrees
	NearPlane    float64  `json:"nearPlane" yaml:"nearPlane"`
	FarPlane     float64  `json:"farPlane" yaml:"farPlane"`
	VSync        bool     `json:"vsync" yaml:"vsync"`
	TickRate     Duration `json:"tickRate" yaml:"tickRate"` // maintenance cadence in headless mode
}

// Load reads configuration from a JSON or YAML file, chosen by extension.
// An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			DrawDistance:     4,
			VerticalDistance: 2,
		},
		Terrain: TerrainConfig{
			Seed:        1337,
			Frequency:   0.01,
			Amplitude:   24,
			Octaves:     4,
			Persistence: 0.45,
			Lacunarity:  2.0,
		},
		Render: RenderConfig{
			WindowWidth:  1280,
			WindowHeight: 720,
			FieldOfView:  70,
			NearPlane:    0.1,
			FarPlane:     350,
			VSync:        true,
			TickRate:     Duration(16 * time.Millisecond),
		},
	}
}

// ApplyRuntimeDefaults fills pool sizing fields left at zero from the
// machine's CPU count. The derived values are computed once at startup and
// handed to the engine explicitly rather than read from ambient state.
func (c *Config) ApplyRuntimeDefaults(cpus int) {
	if cpus < 2 {
		cpus = 2
	}
	e := &c.Engine
	if e.Workers <= 0 {
		e.Workers = cpus - 1
	}
	if e.MaxInFlightLoads <= 0 {
		// Keep simultaneous generations below the core count so meshing and
		// the main loop always have a core to run on.
		e.MaxInFlightLoads = cpus - 1
	}
	if e.MeshBuildsPerTick <= 0 {
		e.MeshBuildsPerTick = e.Workers * 2
	}
	if e.ChunkLoadsPerTick <= 0 {
		e.ChunkLoadsPerTick = e.Workers
	}
	if e.QueueDepth <= 0 {
		e.QueueDepth = e.Workers*8 + e.MaxInFlightLoads
	}
}

func (c *Config) Validate() error {
	if c.Engine.DrawDistance <= 0 {
		return errors.New("engine.drawDistance must be positive")
	}
	if c.Engine.VerticalDistance < 0 {
		return errors.New("engine.verticalDistance cannot be negative")
	}
	if c.Engine.MeshBuildsPerTick < 0 || c.Engine.ChunkLoadsPerTick < 0 {
		return errors.New("engine per-tick budgets cannot be negative")
	}
	if c.Engine.MaxInFlightLoads < 0 || c.Engine.Workers < 0 || c.Engine.QueueDepth < 0 {
		return errors.New("engine pool sizing cannot be negative")
	}
	if c.Terrain.Octaves < 0 {
		return errors.New("terrain.octaves cannot be negative")
	}
	if c.Terrain.Frequency < 0 || c.Terrain.Lacunarity < 0 || c.Terrain.Persistence < 0 {
		return errors.New("terrain noise parameters cannot be negative")
	}
	if c.Render.WindowWidth <= 0 || c.Render.WindowHeight <= 0 {
		return errors.New("render window dimensions must be positive")
	}
	if c.Render.FieldOfView <= 0 || c.Render.FieldOfView >= 180 {
		return errors.New("render.fieldOfView must be in (0, 180)")
	}
	if c.Render.NearPlane <= 0 || c.Render.FarPlane <= c.Render.NearPlane {
		return errors.New("render clip planes must satisfy 0 < near < far")
	}
	if c.Render.TickRate < 0 {
		return errors.New("render.tickRate cannot be negative")
	}
	return nil
}
