package config

import (
	"fmt"
	"strings"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate checks the level and format strings.
func (c *LoggingConfig) Validate() error {
	level := strings.ToLower(c.Level)
	ok := false
	for _, l := range ValidLevels {
		if level == l {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Level, ValidLevels)
	}

	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Format)
	}
	return nil
}
