package catalog

import (
	"fmt"
	"slices"

	"multiview/internal/textutil"
)

// MaxPlaylistSize is the most events a single playlist may reference.
const MaxPlaylistSize = 5

// GeneratePlaylists groups events by category, shuffles each group, and emits
// one playlist per chunk of at most chunkSize events. Categories are visited
// in vocabulary order and playlist numbering runs across all of them.
func GeneratePlaylists(rng *Rand, vocab *Vocabulary, events []Event, chunkSize, weekYear int) ([]Playlist, error) {
	if chunkSize <= 0 || chunkSize > MaxPlaylistSize {
		return nil, fmt.Errorf("playlist chunk size: %w (got %d, want 1..%d)", ErrInvalidCount, chunkSize, MaxPlaylistSize)
	}

	bySport := make(map[string][]Event, len(vocab.Sports))
	for _, ev := range events {
		if !slices.Contains(vocab.Sports, ev.Sport) {
			return nil, fmt.Errorf("event %s: %w %q", ev.ID, ErrUnknownCategory, ev.Sport)
		}
		bySport[ev.Sport] = append(bySport[ev.Sport], ev)
	}

	var playlists []Playlist
	seq := 0
	for _, sport := range vocab.Sports {
		pool := bySport[sport]
		if len(pool) == 0 {
			continue
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		for chunk := range slices.Chunk(pool, chunkSize) {
			seq++
			ids := make([]string, len(chunk))
			for i, ev := range chunk {
				ids[i] = ev.ID
			}
			playlists = append(playlists, Playlist{
				ID:      fmt.Sprintf("playlist-%03d-%s", seq, sport),
				Sport:   sport,
				Title:   fmt.Sprintf("%s Weekly Mix #%02d", textutil.Humanize(sport), seq),
				Curator: pick(rng, vocab.Curators),
				Weeks:   drawWeeks(rng, weekYear, vocab.MaxISOWeek),
				Events:  ids,
			})
		}
	}
	return playlists, nil
}

// drawWeeks draws two to four ISO week labels and returns them sorted and
// deduplicated.
func drawWeeks(rng *Rand, year, maxWeek int) []string {
	n := rng.Between(2, 4)
	weeks := make([]string, 0, n)
	for range n {
		weeks = append(weeks, fmt.Sprintf("%04d-W%02d", year, rng.Between(1, maxWeek)))
	}
	slices.Sort(weeks)
	return slices.Compact(weeks)
}
