package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"multiview/internal/config"
)

// FixedBaseTime anchors event windows in test configs so output is stable.
const FixedBaseTime = "2025-03-01T12:00:00Z"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose output directories live in a unique temp
// directory per test. Counts default to a small run with a fixed base time.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.DocsDir = filepath.Join(base, "docs", "datasets")
	cfgVal.Generation.Providers = 5
	cfgVal.Generation.Events = 10
	cfgVal.Generation.BaseTime = FixedBaseTime

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCounts overrides the provider and event counts.
func WithCounts(providers, events int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Generation.Providers = providers
		b.cfg.Generation.Events = events
	}
}

// WithSeed overrides the generation seed.
func WithSeed(seed uint64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Generation.Seed = seed
	}
}

// WithPrune enables removal of stale fixture files.
func WithPrune() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Generation.PruneStale = true
	}
}

// WriteConfig marshals cfg to config.toml next to its data directory and
// returns the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	payload, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
