package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestApplyRuntimeDefaults(t *testing.T) {
	cfg := Default()
	cfg.ApplyRuntimeDefaults(8)

	if cfg.Engine.Workers != 7 {
		t.Fatalf("workers = %d, want 7", cfg.Engine.Workers)
	}
	if cfg.Engine.MaxInFlightLoads != 7 {
		t.Fatalf("maxInFlightLoads = %d, want 7", cfg.Engine.MaxInFlightLoads)
	}
	if cfg.Engine.MeshBuildsPerTick != 14 {
		t.Fatalf("meshBuildsPerTick = %d, want 14", cfg.Engine.MeshBuildsPerTick)
	}
	if cfg.Engine.ChunkLoadsPerTick != 7 {
		t.Fatalf("chunkLoadsPerTick = %d, want 7", cfg.Engine.ChunkLoadsPerTick)
	}
	if cfg.Engine.QueueDepth <= 0 {
		t.Fatalf("queueDepth not derived")
	}

	// Explicit values survive.
	cfg2 := Default()
	cfg2.Engine.Workers = 2
	cfg2.ApplyRuntimeDefaults(16)
	if cfg2.Engine.Workers != 2 {
		t.Fatalf("explicit workers overridden to %d", cfg2.Engine.Workers)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load empty path: %v", err)
	}
	if cfg.Engine.DrawDistance != Default().Engine.DrawDistance {
		t.Fatalf("unexpected draw distance %d", cfg.Engine.DrawDistance)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := `
engine:
  drawDistance: 6
  verticalDistance: 1
terrain:
  seed: 42
render:
  tickRate: "20ms"
  windowWidth: 800
  windowHeight: 600
`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load yaml config: %v", err)
	}
	if cfg.Engine.DrawDistance != 6 || cfg.Engine.VerticalDistance != 1 {
		t.Fatalf("engine section not applied: %+v", cfg.Engine)
	}
	if cfg.Terrain.Seed != 42 {
		t.Fatalf("terrain.seed = %d, want 42", cfg.Terrain.Seed)
	}
	if cfg.Render.TickRate.Duration() != 20*time.Millisecond {
		t.Fatalf("render.tickRate = %v, want 20ms", cfg.Render.TickRate.Duration())
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
  "engine": {"drawDistance": 3, "workers": 2},
  "render": {"tickRate": 33000000, "windowWidth": 640, "windowHeight": 480}
}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load json config: %v", err)
	}
	if cfg.Engine.DrawDistance != 3 || cfg.Engine.Workers != 2 {
		t.Fatalf("engine section not applied: %+v", cfg.Engine)
	}
	if cfg.Render.TickRate.Duration() != 33*time.Millisecond {
		t.Fatalf("numeric tickRate = %v, want 33ms", cfg.Render.TickRate.Duration())
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	payload := "engine:\n  drawDistance: -1\n"
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for negative draw distance")
	}
}
