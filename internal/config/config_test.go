package config

import (
	"os"
	"path/filepath"
	"testing"

	"aoc2023/internal/grid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
	if cfg.Cubes.Red != 12 || cfg.Cubes.Green != 13 || cfg.Cubes.Blue != 14 {
		t.Errorf("unexpected cube limits: %+v", cfg.Cubes)
	}
	if cfg.Grid.Markers != grid.DefaultGlyphs {
		t.Errorf("expected Markers=%s, got %s", grid.DefaultGlyphs, cfg.Grid.Markers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvInputDir, "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "aoc.yaml")

	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Cubes.Blue = 20
	cfg.Grid.Strict = true
	cfg.Policy = "skip_invalid"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", loaded.Logging.Level)
	}
	if loaded.Cubes.Blue != 20 {
		t.Errorf("expected Blue=20, got %d", loaded.Cubes.Blue)
	}
	if !loaded.Grid.Strict {
		t.Error("expected Strict=true")
	}
	if loaded.Policy != "skip_invalid" {
		t.Errorf("expected Policy=skip_invalid, got %s", loaded.Policy)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvInputDir, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Inputs.Dir != "inputs" {
		t.Errorf("expected default inputs dir, got %s", cfg.Inputs.Dir)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvInputDir, "")

	path := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(path, []byte("cubes:\n  red: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cubes.Red != 1 {
		t.Errorf("expected Red=1, got %d", cfg.Cubes.Red)
	}
	if cfg.Cubes.Green != 13 {
		t.Errorf("expected Green default 13, got %d", cfg.Cubes.Green)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level, got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(path, []byte("logging: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad policy", func(c *Config) { c.Policy = "retry" }},
		{"negative cubes", func(c *Config) { c.Cubes.Red = -1 }},
		{"empty markers", func(c *Config) { c.Grid.Markers = "" }},
		{"period marker", func(c *Config) { c.Grid.Markers = "*." }},
		{"digit marker", func(c *Config) { c.Grid.Markers = "*7" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestConfig_InputPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inputs.Dir = "/data"
	if got := cfg.InputPath(3); got != filepath.Join("/data", "day3.txt") {
		t.Errorf("unexpected input path %s", got)
	}
}

func TestConfig_ValidateAcceptsPolicyAliases(t *testing.T) {
	for _, policy := range []string{"fail_fast", "fail-fast", "skip_invalid", "skip-invalid", "skip"} {
		cfg := DefaultConfig()
		cfg.Policy = policy
		if err := cfg.Validate(); err != nil {
			t.Errorf("policy %q should validate: %v", policy, err)
		}
	}
}
