package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"multiview/internal/catalog"
	"multiview/internal/config"
	"multiview/internal/docs"
	"multiview/internal/fixtures"
	"multiview/internal/logging"
	"multiview/internal/preflight"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

type generateFlags struct {
	providers int
	events    int
	seed      uint64
	baseTime  string
	dataDir   string
	docsDir   string
	prune     bool
	format    string
	logLevel  string
	logFormat string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.providers, "providers", 0, "Number of providers to generate")
	fs.IntVar(&f.events, "events", 0, "Number of events to generate")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed")
	fs.StringVar(&f.baseTime, "base-time", "", "RFC3339 time event windows are anchored on")
	fs.StringVar(&f.dataDir, "data-dir", "", "Directory receiving the JSON fixtures")
	fs.StringVar(&f.docsDir, "docs-dir", "", "Directory receiving the dataset documentation")
	fs.BoolVar(&f.prune, "prune", false, "Remove fixture files not produced by this run")
	fs.StringVar(&f.format, "format", formatJSON, "Summary output format (json|table)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level override (debug|info|warn|error)")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format override (console|json)")
}

// apply copies explicitly set flags onto cfg and revalidates it.
func (f generateFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("providers") {
		cfg.Generation.Providers = f.providers
	}
	if fs.Changed("events") {
		cfg.Generation.Events = f.events
	}
	if fs.Changed("seed") {
		cfg.Generation.Seed = f.seed
	}
	if fs.Changed("base-time") {
		cfg.Generation.BaseTime = strings.TrimSpace(f.baseTime)
	}
	if fs.Changed("prune") {
		cfg.Generation.PruneStale = f.prune
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(f.logLevel))
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(f.logFormat))
	}
	for _, override := range []struct {
		flag   string
		value  string
		target *string
	}{
		{"data-dir", f.dataDir, &cfg.Paths.DataDir},
		{"docs-dir", f.docsDir, &cfg.Paths.DocsDir},
	} {
		if !fs.Changed(override.flag) {
			continue
		}
		expanded, err := config.ExpandPath(strings.TrimSpace(override.value))
		if err != nil {
			return fmt.Errorf("--%s: %w", override.flag, err)
		}
		*override.target = expanded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, ctx *commandContext, flags generateFlags) error {
	format := strings.ToLower(strings.TrimSpace(flags.format))
	if format != formatJSON && format != formatTable {
		return fmt.Errorf("unsupported --format %q (expected json or table)", flags.format)
	}

	loaded, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *loaded
	if err := flags.apply(cmd, &cfg); err != nil {
		return err
	}

	baseLogger, err := logging.NewFromConfig(&cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With(slog.String(logging.FieldRunID, uuid.NewString()))

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	if err := preflight.FirstFailure(preflight.RunAll(&cfg)); err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	lock, err := fixtures.AcquireLock(cfg.Paths.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release output lock", logging.FieldComponent, "fixtures", "error", err)
		}
	}()

	base := cfg.Base(time.Now())
	logger.Info("generating catalog",
		"providers", cfg.Generation.Providers,
		"events", cfg.Generation.Events,
		"seed", cfg.Generation.Seed,
		"base_time", base.Format(time.RFC3339),
	)

	generator := catalog.NewGenerator(catalog.Options{
		Providers:     cfg.Generation.Providers,
		Events:        cfg.Generation.Events,
		PlaylistChunk: cfg.Generation.PlaylistChunk,
		NameAttempts:  cfg.Generation.NameAttempts,
		WeekYear:      cfg.Generation.WeekYear,
		Seed:          cfg.Generation.Seed,
		Base:          base,
	}, nil, logging.NewComponentLogger(logger, "catalog"))

	dataset, err := generator.Generate()
	if err != nil {
		return err
	}

	writer := fixtures.NewWriter(fixtures.Layout{
		ProvidersDir: cfg.ProvidersDir(),
		EventsDir:    cfg.EventsDir(),
		PlaylistsDir: cfg.PlaylistsDir(),
	}, cfg.Generation.PruneStale, logging.NewComponentLogger(logger, "fixtures"))
	report, err := writer.Write(dataset)
	if err != nil {
		return err
	}

	written, err := docs.NewEmitter(cfg.Paths.DocsDir, generator.Vocabulary()).Write(dataset)
	if err != nil {
		return err
	}

	logger.Info("catalog written",
		"data_dir", cfg.Paths.DataDir,
		"docs", len(written),
		"pruned", report.Pruned,
	)

	summary := dataset.Summary()
	if format == formatTable {
		return writeSummaryTable(cmd, summary)
	}
	return writeJSON(cmd, summary)
}

func writeSummaryTable(cmd *cobra.Command, summary catalog.Summary) error {
	out := cmd.OutOrStdout()
	rows := [][]string{
		{"providers", strconv.Itoa(summary.Providers)},
		{"events", strconv.Itoa(summary.Events)},
		{"playlists", strconv.Itoa(summary.Playlists)},
	}
	_, err := fmt.Fprintln(out, renderTable(out, []string{"Entity", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	return err
}
