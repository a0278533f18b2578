package fixtures

import "multiview/internal/catalog"

// ProviderRecord is the on-disk shape of a provider.
type ProviderRecord struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	SportsFocus        []string         `json:"sportsFocus"`
	CoverageCountries  []string         `json:"coverageCountries"`
	SupportedLanguages []string         `json:"supportedLanguages"`
	PrimaryCDN         string           `json:"primaryCdn"`
	ActiveEndpoints    []EndpointRecord `json:"activeEndpoints"`
	SupportModel       SupportRecord    `json:"supportModel"`
}

// EndpointRecord is the on-disk shape of a provider endpoint.
type EndpointRecord struct {
	Protocol   string           `json:"protocol"`
	URL        string           `json:"url"`
	Auth       AuthRecord       `json:"auth"`
	Ingest     IngestRecord     `json:"ingest"`
	Monitoring MonitoringRecord `json:"monitoring"`
	StreamKey  string           `json:"streamKey"`
}

// AuthRecord is the on-disk shape of an endpoint's playback protection.
type AuthRecord struct {
	Type       string `json:"type"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// IngestRecord is the on-disk shape of an endpoint's ingest placement.
type IngestRecord struct {
	Region       string `json:"region"`
	LatencyClass string `json:"latencyClass"`
}

// MonitoringRecord is the on-disk shape of an endpoint's health surface.
type MonitoringRecord struct {
	Healthcheck   string `json:"healthcheck"`
	Observability string `json:"observability"`
}

// SupportRecord is the on-disk shape of a provider's support model.
type SupportRecord struct {
	StatusPage string `json:"statusPage"`
	Contact    string `json:"contact"`
	OnCall     string `json:"onCall"`
}

// EventRecord is the on-disk shape of an event.
type EventRecord struct {
	ID                 string       `json:"id"`
	Sport              string       `json:"sport"`
	Title              string       `json:"title"`
	Window             WindowRecord `json:"window"`
	Venue              string       `json:"venue"`
	AvailableProviders []string     `json:"availableProviders"`
	PresentationNotes  []string     `json:"presentationNotes"`
}

// WindowRecord is the on-disk shape of an event's broadcast window.
type WindowRecord struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

// PlaylistRecord is the on-disk shape of a playlist.
type PlaylistRecord struct {
	ID          string   `json:"id"`
	Sport       string   `json:"sport"`
	Title       string   `json:"title"`
	Curator     string   `json:"curator"`
	TargetWeeks []string `json:"targetWeeks"`
	Events      []string `json:"events"`
}

// NewProviderRecord maps a generated provider onto the public schema.
func NewProviderRecord(p catalog.Provider) ProviderRecord {
	endpoints := make([]EndpointRecord, len(p.Endpoints))
	for i, ep := range p.Endpoints {
		endpoints[i] = EndpointRecord{
			Protocol:   ep.Protocol,
			URL:        ep.URL,
			Auth:       AuthRecord{Type: ep.Auth.Type, TTLSeconds: ep.Auth.TTLSeconds},
			Ingest:     IngestRecord{Region: ep.Ingest.Region, LatencyClass: ep.Ingest.LatencyClass},
			Monitoring: MonitoringRecord{Healthcheck: ep.Monitoring.Healthcheck, Observability: ep.Monitoring.Observability},
			StreamKey:  ep.StreamKey,
		}
	}
	return ProviderRecord{
		ID:                 p.ID,
		Name:               p.Name,
		SportsFocus:        p.Focus,
		CoverageCountries:  p.Countries,
		SupportedLanguages: p.Languages,
		PrimaryCDN:         p.CDN,
		ActiveEndpoints:    endpoints,
		SupportModel: SupportRecord{
			StatusPage: p.Support.StatusPage,
			Contact:    p.Support.Contact,
			OnCall:     p.Support.OnCall,
		},
	}
}

// NewEventRecord maps a generated event onto the public schema.
func NewEventRecord(ev catalog.Event) EventRecord {
	return EventRecord{
		ID:    ev.ID,
		Sport: ev.Sport,
		Title: ev.Title,
		Window: WindowRecord{
			Start:    ev.Start,
			End:      ev.End,
			Timezone: ev.Timezone,
		},
		Venue:              ev.Venue,
		AvailableProviders: ev.Providers,
		PresentationNotes:  ev.Notes,
	}
}

// NewPlaylistRecord maps a generated playlist onto the public schema.
func NewPlaylistRecord(pl catalog.Playlist) PlaylistRecord {
	return PlaylistRecord{
		ID:          pl.ID,
		Sport:       pl.Sport,
		Title:       pl.Title,
		Curator:     pl.Curator,
		TargetWeeks: pl.Weeks,
		Events:      pl.Events,
	}
}
