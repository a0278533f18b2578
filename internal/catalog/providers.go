package catalog

import (
	"fmt"
	"slices"
)

// GenerateProviders returns exactly count providers with unique ids and names.
// Each provider gets at most attempts draws to find an unused name.
func GenerateProviders(rng *Rand, vocab *Vocabulary, count, attempts int) ([]Provider, error) {
	if count <= 0 {
		return nil, fmt.Errorf("providers: %w (got %d)", ErrInvalidCount, count)
	}
	if attempts <= 0 {
		return nil, fmt.Errorf("provider name attempts: %w (got %d)", ErrInvalidCount, attempts)
	}
	if space := vocab.NameSpace(); count > space {
		return nil, fmt.Errorf("%w: %d providers requested, vocabulary forms %d names", ErrNameSpaceExhausted, count, space)
	}

	providers := make([]Provider, 0, count)
	seen := make(map[string]struct{}, count)
	for idx := 1; idx <= count; idx++ {
		name, err := drawProviderName(rng, vocab, seen, attempts)
		if err != nil {
			return nil, fmt.Errorf("provider %d: %w", idx, err)
		}
		seen[name] = struct{}{}
		providers = append(providers, newProvider(rng, vocab, fmt.Sprintf("provider-%03d", idx), name))
	}
	return providers, nil
}

func drawProviderName(rng *Rand, vocab *Vocabulary, seen map[string]struct{}, attempts int) (string, error) {
	for range attempts {
		name := fmt.Sprintf("%s %s %s", pick(rng, vocab.Prefixes), pick(rng, vocab.Regions), pick(rng, vocab.Suffixes))
		if _, taken := seen[name]; !taken {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrNameSpaceExhausted, attempts)
}

func newProvider(rng *Rand, vocab *Vocabulary, id, name string) Provider {
	focus := sample(rng, vocab.Sports, rng.Between(2, 5))
	countries := sample(rng, vocab.Countries, rng.Between(2, 5))
	languages := sample(rng, vocab.Languages, rng.Between(1, 3))
	cdn := pick(rng, vocab.CDNs)

	protocols := sample(rng, vocab.Protocols, rng.Between(1, len(vocab.Protocols)))
	endpoints := make([]Endpoint, 0, len(protocols))
	for _, proto := range protocols {
		endpoints = append(endpoints, Endpoint{
			Protocol: proto.Name,
			URL:      fmt.Sprintf("https://streams.example.com/%s/%s/master.%s", id, proto.Name, proto.Extension),
			Auth: EndpointAuth{
				Type:       pick(rng, vocab.AuthTypes),
				TTLSeconds: pick(rng, vocab.TTLSeconds),
			},
			Ingest: Ingest{
				// Ingest lands in one of the provider's own coverage countries.
				Region:       pick(rng, countries),
				LatencyClass: pick(rng, vocab.LatencyClasses),
			},
			Monitoring: Monitoring{
				Healthcheck:   fmt.Sprintf("https://status.example.com/%s/%s", id, proto.Name),
				Observability: pick(rng, vocab.Observability),
			},
			StreamKey: fmt.Sprintf("%s-%s", id, proto.Name),
		})
	}

	support := Support{
		StatusPage: fmt.Sprintf("https://status.example.com/%s", id),
		Contact:    fmt.Sprintf("support@%s.example.com", id),
		OnCall:     pick(rng, vocab.OnCall),
	}

	slices.Sort(focus)
	slices.Sort(countries)
	slices.Sort(languages)

	return Provider{
		ID:        id,
		Name:      name,
		Focus:     focus,
		Countries: countries,
		Languages: languages,
		CDN:       cdn,
		Endpoints: endpoints,
		Support:   support,
	}
}
