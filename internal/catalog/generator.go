package catalog

import (
	"fmt"
	"log/slog"
	"time"
)

// Options controls one generation run.
type Options struct {
	Providers     int
	Events        int
	PlaylistChunk int
	NameAttempts  int
	WeekYear      int
	Seed          uint64
	// Base anchors event windows; day offsets are added to it.
	Base time.Time
}

// Generator runs the provider, event, and playlist stages in order.
type Generator struct {
	opts   Options
	vocab  *Vocabulary
	logger *slog.Logger
}

// NewGenerator constructs a generator. A nil vocabulary selects
// DefaultVocabulary; a nil logger discards output.
func NewGenerator(opts Options, vocab *Vocabulary, logger *slog.Logger) *Generator {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{opts: opts, vocab: vocab, logger: logger}
}

// Vocabulary returns the value sets the generator draws from.
func (g *Generator) Vocabulary() *Vocabulary {
	return g.vocab
}

// Generate builds the full dataset from a fresh source seeded with Options.Seed.
func (g *Generator) Generate() (*Dataset, error) {
	rng := NewRand(g.opts.Seed)

	providers, err := GenerateProviders(rng, g.vocab, g.opts.Providers, g.opts.NameAttempts)
	if err != nil {
		return nil, fmt.Errorf("generate providers: %w", err)
	}
	g.logger.Debug("providers generated", "count", len(providers))

	events, err := GenerateEvents(rng, g.vocab, providers, g.opts.Events, g.opts.Base)
	if err != nil {
		return nil, fmt.Errorf("generate events: %w", err)
	}
	g.logger.Debug("events generated", "count", len(events))

	playlists, err := GeneratePlaylists(rng, g.vocab, events, g.opts.PlaylistChunk, g.opts.WeekYear)
	if err != nil {
		return nil, fmt.Errorf("generate playlists: %w", err)
	}
	g.logger.Debug("playlists generated", "count", len(playlists))

	return &Dataset{Providers: providers, Events: events, Playlists: playlists}, nil
}
