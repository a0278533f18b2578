package catalog

// Vocabulary holds every fixed value set the generators draw from. Tests shrink
// it to exercise exhaustion paths; production runs use DefaultVocabulary.
type Vocabulary struct {
	// Sports is the declared category order. Playlist numbering follows it.
	Sports      []string
	Countries   []string
	Languages   []string
	CDNs        []string
	Protocols   []Protocol
	Prefixes    []string
	Regions     []string
	Suffixes    []string
	Descriptors map[string][]string

	AuthTypes      []string
	TTLSeconds     []int
	LatencyClasses []string
	Observability  []string
	OnCall         []string

	StartHours   []int
	Durations    []int
	MaxDayOffset int
	Venues       []string
	Timezones    []string
	Notes        []string
	Curators     []string
	MaxISOWeek   int
}

// NameSpace is the number of distinct provider names the vocabulary can form.
func (v *Vocabulary) NameSpace() int {
	return len(v.Prefixes) * len(v.Regions) * len(v.Suffixes)
}

// DefaultVocabulary returns the catalog's standard value sets.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Sports: []string{
			"premier-league",
			"la-liga",
			"nba",
			"f1",
			"nfl",
			"mls",
			"champions-league",
			"rugby-championship",
			"cricket-world-series",
			"mma",
			"boxing",
			"tennis-tour",
			"golf-tour",
			"cycling-world-tour",
			"esports-league",
		},
		Countries: []string{"us", "uk", "de", "fr", "es", "it", "ca", "mx", "br", "au", "nz", "jp", "kr", "sg", "za"},
		Languages: []string{"en", "es", "fr", "de", "it", "pt", "ja", "ko", "zh", "ar", "hi"},
		CDNs:      []string{"akamai", "cloudfront", "fastly", "cloudflare", "limelight"},
		Protocols: []Protocol{
			{Name: "hls", Extension: "m3u8"},
			{Name: "dash", Extension: "mpd"},
			{Name: "webrtc", Extension: "sdp"},
		},
		Prefixes: []string{
			"Global", "Velocity", "Summit", "Edge", "Continental",
			"Metro", "AllStar", "Ultra", "Vantage", "Prime",
			"Aurora", "Pulse", "Optimum", "Voyager", "Auric",
		},
		Regions: []string{
			"Atlantic", "Pacific", "Central", "Nordic", "Iberian",
			"Balkan", "Alpine", "Andean", "Transatlantic", "Coastal",
			"Steppe", "Cascadia", "Sahara", "Baltic", "Panamerican",
		},
		Suffixes: []string{
			"Sports Network",
			"Streaming Cooperative",
			"Broadcast Exchange",
			"Media Collective",
			"Play Signals",
			"Multi-View",
			"Interactive",
			"Arena",
			"Digital Hub",
			"League Pass",
		},
		Descriptors: map[string][]string{
			"premier-league":       {"Matchweek Clash", "Derby Showdown", "Top Four Battle"},
			"la-liga":              {"Iberian Classic", "Catalan Fixture", "Madrid Derby"},
			"nba":                  {"Conference Spotlight", "Marquee Matchup", "Playoff Preview"},
			"f1":                   {"Grand Prix Qualifying", "Night Race Sprint", "Circuit Practice"},
			"nfl":                  {"Primetime Fixture", "Division Decider", "Wildcard Chase"},
			"mls":                  {"Derby Day", "Conference Battle", "Expansion Showcase"},
			"champions-league":     {"Group Stage Spotlight", "Knockout Thriller", "Final Rehearsal"},
			"rugby-championship":   {"Southern Hemisphere Test", "Tri-Nations Classic", "Rivalry Cup"},
			"cricket-world-series": {"Day/Night ODI", "Test Match Session", "T20 Showcase"},
			"mma":                  {"Title Eliminator", "Fight Night", "Contender Series"},
			"boxing":               {"Main Event Bout", "Undercard Showcase", "Title Defense"},
			"tennis-tour":          {"Masters Quarterfinal", "Grand Slam Warmup", "Doubles Spotlight"},
			"golf-tour":            {"Links Challenge", "Championship Round", "Ryder Preview"},
			"cycling-world-tour":   {"Mountain Stage", "Time Trial", "Sprint Finish"},
			"esports-league":       {"LAN Finale", "Regional Semifinal", "Showmatch"},
		},
		AuthTypes:      []string{"signed-url", "token", "mutual-tls"},
		TTLSeconds:     []int{900, 1800, 3600},
		LatencyClasses: []string{"ultra-low", "low", "standard"},
		Observability:  []string{"newrelic", "datadog", "grafana"},
		OnCall:         []string{"follow-the-sun", "regional-escalation", "hybrid"},
		StartHours:     []int{12, 15, 18, 20, 22},
		Durations:      []int{2, 3, 4},
		MaxDayOffset:   90,
		Venues: []string{
			"Metropolitan Arena",
			"Coastal Dome",
			"Summit Stadium",
			"Heritage Park",
			"Aurora Center",
			"Prime Pavilion",
			"Velocity Arena",
			"Union Ground",
			"Liberty Field",
			"Grand Prix Circuit",
		},
		Timezones: []string{"UTC", "America/New_York", "Europe/London", "Asia/Singapore", "Australia/Sydney"},
		Notes: []string{
			"4K SDR primary feed",
			"Dolby Atmos mix available",
			"Alternate commentary lane",
			"Player-specific iso cams",
			"Enhanced data overlays enabled",
			"VR companion experience",
		},
		Curators:   []string{"editorial-team", "automation-playbook", "regional-scouts", "audience-growth"},
		MaxISOWeek: 52,
	}
}
