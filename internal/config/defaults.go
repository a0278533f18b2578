package config

const (
	defaultConfigPath    = "~/.config/multiview-seed/config.toml"
	projectConfigName    = "multiview-seed.toml"
	defaultDataDir       = "data"
	defaultDocsDir       = "docs/datasets"
	defaultProviders     = 60
	defaultEvents        = 90
	defaultPlaylistChunk = 5
	maxPlaylistChunk     = 5
	defaultSeed          = 42
	defaultNameAttempts  = 1000
	defaultWeekYear      = 2025
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	logOutputStderr      = "stderr"
	logOutputStdout      = "stdout"
)

// Default returns a Config populated with repository defaults. Paths are left
// empty so normalize can apply environment fallbacks before the defaults.
func Default() Config {
	return Config{
		Generation: Generation{
			Providers:     defaultProviders,
			Events:        defaultEvents,
			PlaylistChunk: defaultPlaylistChunk,
			Seed:          defaultSeed,
			NameAttempts:  defaultNameAttempts,
			WeekYear:      defaultWeekYear,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
