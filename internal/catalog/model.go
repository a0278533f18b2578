package catalog

// Protocol pairs a streaming protocol with the manifest extension it serves.
type Protocol struct {
	Name      string
	Extension string
}

// Provider is a distribution and ingest contract.
type Provider struct {
	ID        string
	Name      string
	Focus     []string
	Countries []string
	Languages []string
	CDN       string
	Endpoints []Endpoint
	Support   Support
}

// Endpoint is one playback entry point exposed by a provider.
type Endpoint struct {
	Protocol   string
	URL        string
	Auth       EndpointAuth
	Ingest     Ingest
	Monitoring Monitoring
	StreamKey  string
}

// EndpointAuth describes how playback URLs are protected.
type EndpointAuth struct {
	Type       string
	TTLSeconds int
}

// Ingest describes where an endpoint's contribution feed lands.
type Ingest struct {
	Region       string
	LatencyClass string
}

// Monitoring points at an endpoint's health surface.
type Monitoring struct {
	Healthcheck   string
	Observability string
}

// Support is the provider's escalation contact block.
type Support struct {
	StatusPage string
	Contact    string
	OnCall     string
}

// Event is a scheduled occurrence carried by two or more providers.
type Event struct {
	ID        string
	Sport     string
	Title     string
	Start     string
	End       string
	Venue     string
	Timezone  string
	Providers []string
	Notes     []string
}

// Playlist groups same-category events for editorial rotation.
type Playlist struct {
	ID      string
	Sport   string
	Title   string
	Curator string
	Weeks   []string
	Events  []string
}

// Dataset is the full output of one generation run.
type Dataset struct {
	Providers []Provider
	Events    []Event
	Playlists []Playlist
}

// Summary is the record count report printed at the end of a run.
type Summary struct {
	Providers int `json:"providers"`
	Events    int `json:"events"`
	Playlists int `json:"playlists"`
}

// Summary counts the records in the dataset.
func (d *Dataset) Summary() Summary {
	return Summary{
		Providers: len(d.Providers),
		Events:    len(d.Events),
		Playlists: len(d.Playlists),
	}
}

// CategoryCount is the per-category breakdown used by the dataset overview.
type CategoryCount struct {
	Sport     string
	Events    int
	Playlists int
}

// CategoryBreakdown counts events and playlists per category, in vocabulary
// order, skipping categories with no events.
func (d *Dataset) CategoryBreakdown(vocab *Vocabulary) []CategoryCount {
	events := make(map[string]int)
	for _, ev := range d.Events {
		events[ev.Sport]++
	}
	playlists := make(map[string]int)
	for _, pl := range d.Playlists {
		playlists[pl.Sport]++
	}
	out := make([]CategoryCount, 0, len(events))
	for _, sport := range vocab.Sports {
		if events[sport] == 0 {
			continue
		}
		out = append(out, CategoryCount{Sport: sport, Events: events[sport], Playlists: playlists[sport]})
	}
	return out
}
