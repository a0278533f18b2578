package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeGeneration()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	c.Paths.DataDir = firstNonEmpty(c.Paths.DataDir, envValue("MULTIVIEW_DATA_DIR"), defaultDataDir)
	c.Paths.DocsDir = firstNonEmpty(c.Paths.DocsDir, envValue("MULTIVIEW_DOCS_DIR"), defaultDocsDir)

	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.DocsDir, err = expandPath(c.Paths.DocsDir); err != nil {
		return fmt.Errorf("paths.docs_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeGeneration() {
	c.Generation.BaseTime = strings.TrimSpace(c.Generation.BaseTime)
	if c.Generation.NameAttempts == 0 {
		c.Generation.NameAttempts = defaultNameAttempts
	}
	if c.Generation.PlaylistChunk == 0 {
		c.Generation.PlaylistChunk = defaultPlaylistChunk
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	outputs := make([]string, 0, len(c.Logging.Outputs))
	for _, output := range c.Logging.Outputs {
		output = strings.TrimSpace(output)
		switch output {
		case "":
			continue
		case logOutputStderr, logOutputStdout:
			outputs = append(outputs, output)
		default:
			expanded, err := expandPath(output)
			if err != nil {
				return fmt.Errorf("logging.outputs: %w", err)
			}
			outputs = append(outputs, expanded)
		}
	}
	c.Logging.Outputs = outputs
	return nil
}

func envValue(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
