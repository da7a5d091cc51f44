package config

import (
	"fmt"
	"slices"
)

var (
	validLogFormats   = []string{"console", "json"}
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validStatsFormats = []string{"table", "json", "yaml"}
	validColorModes   = []string{"auto", "always", "never"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(validLogFormats, c.Logging.Format) {
		return fmt.Errorf("logging.format must be one of %v, got %q", validLogFormats, c.Logging.Format)
	}
	if !slices.Contains(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %v, got %q", validLogLevels, c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(validStatsFormats, c.Output.StatsFormat) {
		return fmt.Errorf("output.stats_format must be one of %v, got %q", validStatsFormats, c.Output.StatsFormat)
	}
	if !slices.Contains(validColorModes, c.Output.Color) {
		return fmt.Errorf("output.color must be one of %v, got %q", validColorModes, c.Output.Color)
	}
	return nil
}

// ValidStatsFormat reports whether format names a supported stats renderer.
func ValidStatsFormat(format string) bool {
	return slices.Contains(validStatsFormats, format)
}
