package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	DocsDir string `toml:"docs_dir"`
}

// Generation contains the knobs that shape the synthesized catalog.
type Generation struct {
	Providers     int    `toml:"providers"`
	Events        int    `toml:"events"`
	PlaylistChunk int    `toml:"playlist_chunk"`
	Seed          uint64 `toml:"seed"`
	NameAttempts  int    `toml:"name_attempts"`
	WeekYear      int    `toml:"week_year"`
	// BaseTime anchors event windows (RFC3339). Empty means the current UTC
	// time truncated to the hour.
	BaseTime   string `toml:"base_time"`
	PruneStale bool   `toml:"prune_stale"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// Outputs lists log sinks: "stderr" or file paths. Empty means stderr.
	Outputs []string `toml:"outputs"`
}

// Config encapsulates all configuration values for multiview-seed.
type Config struct {
	Paths      Paths      `toml:"paths"`
	Generation Generation `toml:"generation"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the fixture and documentation directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range c.OutputDirectories() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// OutputDirectories lists every directory a generation run writes into.
func (c *Config) OutputDirectories() []string {
	return []string{
		c.ProvidersDir(),
		c.EventsDir(),
		c.PlaylistsDir(),
		c.Paths.DocsDir,
	}
}

// ProvidersDir is the directory holding one JSON file per provider.
func (c *Config) ProvidersDir() string {
	return filepath.Join(c.Paths.DataDir, "providers")
}

// EventsDir is the directory holding one JSON file per event.
func (c *Config) EventsDir() string {
	return filepath.Join(c.Paths.DataDir, "events")
}

// PlaylistsDir is the directory holding one JSON file per playlist.
func (c *Config) PlaylistsDir() string {
	return filepath.Join(c.Paths.DataDir, "playlists")
}

// Base returns the time event windows are anchored on. Validate guarantees a
// non-empty BaseTime parses.
func (c *Config) Base(now time.Time) time.Time {
	if c.Generation.BaseTime != "" {
		if ts, err := time.Parse(time.RFC3339, c.Generation.BaseTime); err == nil {
			return ts.UTC()
		}
	}
	return now.UTC().Truncate(time.Hour)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
