package fixtures

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"multiview/internal/catalog"
	"multiview/internal/fileutil"
	"multiview/internal/textutil"
)

// Layout names the per-entity output directories.
type Layout struct {
	ProvidersDir string
	EventsDir    string
	PlaylistsDir string
}

// Report counts what a write pass did.
type Report struct {
	Providers int
	Events    int
	Playlists int
	Pruned    int
}

// Writer serializes datasets into a Layout.
type Writer struct {
	layout Layout
	prune  bool
	logger *slog.Logger
}

// NewWriter builds a writer. With prune set, JSON files the dataset does not
// account for are removed from each entity directory after writing.
func NewWriter(layout Layout, prune bool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{layout: layout, prune: prune, logger: logger}
}

// Write emits every record of ds in generation order. Directories must
// already exist.
func (w *Writer) Write(ds *catalog.Dataset) (Report, error) {
	var report Report

	providerFiles, err := writeRecords(w, "provider", w.layout.ProvidersDir, ds.Providers,
		func(p catalog.Provider) (string, any) { return p.ID, NewProviderRecord(p) })
	report.Providers = len(providerFiles)
	if err != nil {
		return report, err
	}

	eventFiles, err := writeRecords(w, "event", w.layout.EventsDir, ds.Events,
		func(ev catalog.Event) (string, any) { return ev.ID, NewEventRecord(ev) })
	report.Events = len(eventFiles)
	if err != nil {
		return report, err
	}

	playlistFiles, err := writeRecords(w, "playlist", w.layout.PlaylistsDir, ds.Playlists,
		func(pl catalog.Playlist) (string, any) { return pl.ID, NewPlaylistRecord(pl) })
	report.Playlists = len(playlistFiles)
	if err != nil {
		return report, err
	}

	if !w.prune {
		return report, nil
	}
	for _, target := range []struct {
		dir  string
		keep map[string]struct{}
	}{
		{w.layout.ProvidersDir, providerFiles},
		{w.layout.EventsDir, eventFiles},
		{w.layout.PlaylistsDir, playlistFiles},
	} {
		removed, err := fileutil.RemoveStale(target.dir, ".json", target.keep)
		report.Pruned += len(removed)
		if err != nil {
			return report, fmt.Errorf("prune %s: %w", target.dir, err)
		}
		if len(removed) > 0 {
			w.logger.Info("pruned stale fixtures", "dir", target.dir, "count", len(removed))
		}
	}
	return report, nil
}

// writeRecords writes one file per item and returns the set of file names
// written.
func writeRecords[T any](w *Writer, kind, dir string, items []T, encode func(T) (string, any)) (map[string]struct{}, error) {
	written := make(map[string]struct{}, len(items))
	for _, item := range items {
		id, rec := encode(item)
		name := FileName(id)
		if err := fileutil.WriteJSON(filepath.Join(dir, name), rec); err != nil {
			return written, fmt.Errorf("write %s %s: %w", kind, id, err)
		}
		written[name] = struct{}{}
	}
	w.logger.Debug("fixtures written", "kind", kind, "dir", dir, "count", len(written))
	return written, nil
}

// FileName is the JSON file a record with the given id is stored in. Ids
// embed vocabulary values, so a hand-built Vocabulary with unsafe characters
// still yields flat file names.
func FileName(id string) string {
	return textutil.SanitizeFileName(id) + ".json"
}
