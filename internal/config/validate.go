package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateGeneration(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.DocsDir == "" {
		return errors.New("paths.docs_dir must be set")
	}
	return nil
}

func (c *Config) validateGeneration() error {
	if err := ensurePositiveMap(map[string]int{
		"generation.providers":      c.Generation.Providers,
		"generation.events":         c.Generation.Events,
		"generation.playlist_chunk": c.Generation.PlaylistChunk,
		"generation.name_attempts":  c.Generation.NameAttempts,
	}); err != nil {
		return err
	}
	if c.Generation.PlaylistChunk > maxPlaylistChunk {
		return fmt.Errorf("generation.playlist_chunk must be between 1 and %d, got %d", maxPlaylistChunk, c.Generation.PlaylistChunk)
	}
	if c.Generation.Providers < 2 {
		return errors.New("generation.providers must be at least 2 (events reference two or more providers)")
	}
	if c.Generation.WeekYear < 1 || c.Generation.WeekYear > 9999 {
		return errors.New("generation.week_year must be between 1 and 9999")
	}
	if c.Generation.BaseTime != "" {
		if _, err := time.Parse(time.RFC3339, c.Generation.BaseTime); err != nil {
			return fmt.Errorf("generation.base_time must be RFC3339: %w", err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	if slices.Contains(c.Logging.Outputs, logOutputStdout) {
		return errors.New("logging.outputs must not include stdout (reserved for the run summary)")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
