package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aoc2023/internal/grid"
	"aoc2023/internal/puzzle"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by applyEnvOverrides.
const (
	EnvLogLevel = "AOC_LOG"
	EnvInputDir = "AOC_INPUT_DIR"
)

// Config holds all solver configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`

	// Where puzzle inputs live when no explicit path is given
	Inputs InputsConfig `yaml:"inputs"`

	// Day 2 bag limits
	Cubes CubesConfig `yaml:"cubes"`

	// Day 3 schematic scanning
	Grid GridConfig `yaml:"grid"`

	// What to do with lines that fail to parse: fail_fast or skip_invalid
	Policy string `yaml:"policy"`
}

// InputsConfig locates puzzle inputs.
type InputsConfig struct {
	Dir string `yaml:"dir"`
}

// CubesConfig holds the bag contents a game is checked against.
type CubesConfig struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// GridConfig configures the engine schematic scanner.
type GridConfig struct {
	Markers string `yaml:"markers"` // closed set of symbol glyphs
	Strict  bool   `yaml:"strict"`  // reject glyphs that are neither digit, '.', nor marker
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Inputs: InputsConfig{
			Dir: "inputs",
		},
		Cubes: CubesConfig{
			Red:   12,
			Green: 13,
			Blue:  14,
		},
		Grid: GridConfig{
			Markers: grid.DefaultGlyphs,
		},
		Policy: "fail_fast",
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Logging.Level = level
	}
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.Inputs.Dir = dir
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}

	if _, err := puzzle.ParsePolicy(c.Policy); err != nil {
		return err
	}

	if c.Cubes.Red < 0 || c.Cubes.Green < 0 || c.Cubes.Blue < 0 {
		return fmt.Errorf("cube limits must be non-negative: %+v", c.Cubes)
	}

	if c.Grid.Markers == "" {
		return fmt.Errorf("grid markers must not be empty")
	}
	if i := strings.IndexAny(c.Grid.Markers, ".0123456789"); i >= 0 {
		return fmt.Errorf("grid markers must not contain digits or '.': found %q", c.Grid.Markers[i])
	}

	return nil
}

// InputPath returns the conventional input file for day: <inputs.dir>/day<N>.txt.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.Inputs.Dir, fmt.Sprintf("day%d.txt", day))
}
