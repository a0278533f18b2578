package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"multiview/internal/catalog"
	"multiview/internal/config"
	"multiview/internal/docs"
	"multiview/internal/fixtures"
	"multiview/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("MULTIVIEW_DATA_DIR", "")
	t.Setenv("MULTIVIEW_DOCS_DIR", "")

	cfg := testsupport.NewConfig(t, opts...)
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, cfg),
		baseDir:    testsupport.BaseDir(cfg),
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (env *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, append([]string{"--config", env.configPath}, args...)...)
}

func jsonFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			names = append(names, entry.Name())
		}
	}
	return names
}

func decodeFile(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}

func TestGenerateSmallRun(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, stderr, err := env.run(t)
	if err != nil {
		t.Fatalf("generate: %v\nstderr: %s", err, stderr)
	}

	var summary catalog.Summary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("decode summary %q: %v", stdout, err)
	}
	if summary.Providers != 5 || summary.Events != 10 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if !strings.HasPrefix(stdout, "{\n  \"providers\": 5,") {
		t.Fatalf("summary should be indented JSON, got %q", stdout)
	}

	if got := len(jsonFiles(t, env.cfg.ProvidersDir())); got != 5 {
		t.Fatalf("expected 5 provider files, got %d", got)
	}
	eventFiles := jsonFiles(t, env.cfg.EventsDir())
	if len(eventFiles) != 10 {
		t.Fatalf("expected 10 event files, got %d", len(eventFiles))
	}
	playlistFiles := jsonFiles(t, env.cfg.PlaylistsDir())
	if len(playlistFiles) != summary.Playlists {
		t.Fatalf("summary reports %d playlists, found %d files", summary.Playlists, len(playlistFiles))
	}

	perSport := map[string]int{}
	for _, name := range eventFiles {
		var ev fixtures.EventRecord
		decodeFile(t, filepath.Join(env.cfg.EventsDir(), name), &ev)
		perSport[ev.Sport]++
	}
	expected := 0
	for _, n := range perSport {
		expected += (n + 4) / 5
	}
	if summary.Playlists != expected {
		t.Fatalf("expected %d playlists for %v, got %d", expected, perSport, summary.Playlists)
	}

	covered := map[string]bool{}
	for _, name := range playlistFiles {
		var pl fixtures.PlaylistRecord
		decodeFile(t, filepath.Join(env.cfg.PlaylistsDir(), name), &pl)
		covered[pl.Sport] = true
		if len(pl.Events) == 0 || len(pl.Events) > 5 {
			t.Fatalf("playlist %s has %d events", pl.ID, len(pl.Events))
		}
	}
	for sport := range perSport {
		if !covered[sport] {
			t.Fatalf("no playlist for category %s", sport)
		}
	}

	for _, name := range []string{docs.OverviewFile, docs.ProvidersFile, docs.PlaybookFile} {
		if _, err := os.Stat(filepath.Join(env.cfg.Paths.DocsDir, name)); err != nil {
			t.Fatalf("expected doc %s: %v", name, err)
		}
	}

	if !strings.Contains(stderr, "run_id=") {
		t.Fatalf("expected run_id in logs, got %q", stderr)
	}
	if strings.Contains(stdout, "run_id") {
		t.Fatalf("logs leaked to stdout: %q", stdout)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := setupCLITestEnv(t)
	second := setupCLITestEnv(t)

	for _, env := range []*cliTestEnv{first, second} {
		if _, stderr, err := env.run(t); err != nil {
			t.Fatalf("generate: %v\nstderr: %s", err, stderr)
		}
	}

	for _, dirs := range [][2]string{
		{first.cfg.ProvidersDir(), second.cfg.ProvidersDir()},
		{first.cfg.EventsDir(), second.cfg.EventsDir()},
		{first.cfg.PlaylistsDir(), second.cfg.PlaylistsDir()},
	} {
		names := jsonFiles(t, dirs[0])
		if !slices.Equal(names, jsonFiles(t, dirs[1])) {
			t.Fatalf("file sets differ between %s and %s", dirs[0], dirs[1])
		}
		for _, name := range names {
			a, _ := os.ReadFile(filepath.Join(dirs[0], name))
			b, _ := os.ReadFile(filepath.Join(dirs[1], name))
			if !bytes.Equal(a, b) {
				t.Fatalf("%s differs between runs", name)
			}
		}
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	env := setupCLITestEnv(t)
	dataDir := filepath.Join(env.baseDir, "override")

	stdout, stderr, err := env.run(t, "--providers", "3", "--events", "4", "--data-dir", dataDir, "--format", "table")
	if err != nil {
		t.Fatalf("generate: %v\nstderr: %s", err, stderr)
	}
	for _, want := range []string{"Entity", "Count", "providers", "events", "playlists"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in table output %q", want, stdout)
		}
	}
	if got := len(jsonFiles(t, filepath.Join(dataDir, "providers"))); got != 3 {
		t.Fatalf("expected 3 providers under override dir, got %d", got)
	}
	if got := len(jsonFiles(t, filepath.Join(dataDir, "events"))); got != 4 {
		t.Fatalf("expected 4 events under override dir, got %d", got)
	}
	if _, err := os.Stat(env.cfg.ProvidersDir()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("configured data dir should be untouched, stat err=%v", err)
	}
}

func TestGeneratePruneStale(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, stderr, err := env.run(t); err != nil {
		t.Fatalf("first run: %v\nstderr: %s", err, stderr)
	}
	if _, stderr, err := env.run(t, "--providers", "3"); err != nil {
		t.Fatalf("second run: %v\nstderr: %s", err, stderr)
	}
	if got := len(jsonFiles(t, env.cfg.ProvidersDir())); got != 5 {
		t.Fatalf("without prune stale providers remain, expected 5 got %d", got)
	}

	if _, stderr, err := env.run(t, "--providers", "3", "--prune"); err != nil {
		t.Fatalf("prune run: %v\nstderr: %s", err, stderr)
	}
	if got := len(jsonFiles(t, env.cfg.ProvidersDir())); got != 3 {
		t.Fatalf("expected 3 providers after prune, got %d", got)
	}
}

func TestGenerateRejectsLockedOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	lock, err := fixtures.AcquireLock(env.cfg.Paths.DataDir)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer lock.Release()

	_, _, err = env.run(t)
	if !errors.Is(err, fixtures.ErrOutputLocked) {
		t.Fatalf("expected ErrOutputLocked, got %v", err)
	}
	if _, err := os.Stat(env.cfg.ProvidersDir()); err == nil {
		if files := jsonFiles(t, env.cfg.ProvidersDir()); len(files) != 0 {
			t.Fatalf("locked run wrote %d provider files", len(files))
		}
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single provider", []string{"--providers", "1"}, "at least 2"},
		{"zero events", []string{"--events", "0"}, "generation.events"},
		{"bad format", []string{"--format", "xml"}, "unsupported --format"},
		{"bad base time", []string{"--base-time", "yesterday"}, "base_time"},
		{"positional args", []string{"extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateLogsToConfiguredFile(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := filepath.Join(env.baseDir, "logs", "seed.log")
	env.cfg.Logging.Outputs = []string{logPath}
	env.configPath = testsupport.WriteConfig(t, env.cfg)

	stdout, stderr, err := env.run(t)
	if err != nil {
		t.Fatalf("generate: %v\nstderr: %s", err, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected no stderr output with file-only logging, got %q", stderr)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "run_id=") || !strings.Contains(string(data), "catalog written") {
		t.Fatalf("unexpected log file contents %q", data)
	}
	if strings.Contains(stdout, "run_id") {
		t.Fatalf("logs leaked to stdout: %q", stdout)
	}
}

func TestGenerateRejectsOversizedPlaylistChunk(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Generation.PlaylistChunk = 50
	env.configPath = testsupport.WriteConfig(t, env.cfg)

	_, _, err := env.run(t, "--events", "60")
	if err == nil || !strings.Contains(err.Error(), "generation.playlist_chunk must be between 1 and 5") {
		t.Fatalf("expected playlist_chunk bound error, got %v", err)
	}
	if _, statErr := os.Stat(env.cfg.PlaylistsDir()); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("rejected run should not create output, stat err=%v", statErr)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	target := filepath.Join(dir, "multiview-seed.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("expected target path in output, got %q", stdout)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	stdout, _, err = runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(stdout, "Config path: "+target) || !strings.Contains(stdout, "Configuration valid") {
		t.Fatalf("unexpected validate output %q", stdout)
	}
	if !strings.Contains(stdout, "Data directory: "+filepath.Join(dir, "data")) {
		t.Fatalf("expected resolved data dir in %q", stdout)
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[generation]\nproviders = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, "--config", path, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "generation.providers") {
		t.Fatalf("expected providers validation error, got %v", err)
	}
}
