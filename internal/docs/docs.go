package docs

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"multiview/internal/catalog"
	"multiview/internal/fileutil"
)

// File names written into the docs directory.
const (
	OverviewFile   = "README.md"
	ProvidersFile  = "providers.md"
	PlaybookFile   = "validation-playbook.md"
	highlightLimit = 10
)

const overviewIntro = "# Dataset Overview\n\n" +
	"This directory contains structured sample data used for testing multi-angle streaming orchestration.\n" +
	"The data has been automatically generated to resemble a real-world content catalog, with each JSON file\n" +
	"representing either a provider contract, scheduled event, or curated playlist.\n\n" +
	"## Contents\n\n" +
	"- `providers/`: Partner distribution and ingest contracts.\n" +
	"- `events/`: Notional live events linked to providers.\n" +
	"- `playlists/`: Rotating editorial collections referencing the events.\n\n" +
	"Each file is intentionally small so tests can load them quickly. Values are plausible but synthetic.\n"

const playbook = "# Data Validation Playbook\n\n" +
	"Consumers of the dataset should validate cross references to ensure nothing falls out of sync.\n\n" +
	"## Critical checks\n\n" +
	"1. Every event must reference at least two providers.\n" +
	"2. Playlists should only reference events that exist on disk.\n" +
	"3. Providers must expose at least one ingest endpoint.\n" +
	"4. Provider regions and languages should align with business requirements for the consuming feature.\n\n" +
	"## Suggested automation\n\n" +
	"- Run the `tests/data` suite for structural validation.\n" +
	"- Add schema validation if new properties are added.\n" +
	"- Sample a handful of files per run to ensure values remain plausible.\n"

// Emitter writes the dataset documentation into a directory.
type Emitter struct {
	dir   string
	vocab *catalog.Vocabulary
}

// NewEmitter returns an emitter writing into dir. A nil vocabulary selects
// catalog.DefaultVocabulary.
func NewEmitter(dir string, vocab *catalog.Vocabulary) *Emitter {
	if vocab == nil {
		vocab = catalog.DefaultVocabulary()
	}
	return &Emitter{dir: dir, vocab: vocab}
}

// Write renders and writes all three documents. It returns the paths written.
func (e *Emitter) Write(ds *catalog.Dataset) ([]string, error) {
	docs := []struct {
		name string
		body string
	}{
		{OverviewFile, Overview(ds, e.vocab)},
		{ProvidersFile, ProviderHighlights(ds.Providers)},
		{PlaybookFile, ValidationPlaybook()},
	}
	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(e.dir, doc.name)
		if err := fileutil.WriteFileAtomic(path, []byte(doc.body), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", doc.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Overview renders README.md: the fixed introduction followed by a category
// breakdown table.
func Overview(ds *catalog.Dataset, vocab *catalog.Vocabulary) string {
	var b strings.Builder
	b.WriteString(overviewIntro)

	breakdown := ds.CategoryBreakdown(vocab)
	if len(breakdown) == 0 {
		return b.String()
	}

	tw := table.NewWriter()
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"Category", "Events", "Playlists"})
	for _, c := range breakdown {
		tw.AppendRow(table.Row{c.Sport, c.Events, c.Playlists})
	}
	summary := ds.Summary()
	tw.AppendFooter(table.Row{"Total", summary.Events, summary.Playlists})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	fmt.Fprintf(&b, "\n## Category breakdown\n\n%d providers back %d events across %d categories.\n\n",
		summary.Providers, summary.Events, len(breakdown))
	b.WriteString(tw.RenderMarkdown())
	b.WriteString("\n")
	return b.String()
}

// TopProvidersByFocus returns up to limit providers ordered by focus count,
// descending. Ties keep input order.
func TopProvidersByFocus(providers []catalog.Provider, limit int) []catalog.Provider {
	ranked := slices.Clone(providers)
	slices.SortStableFunc(ranked, func(a, b catalog.Provider) int {
		return cmp.Compare(len(b.Focus), len(a.Focus))
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ProviderHighlights renders providers.md from the top ten providers by focus count.
func ProviderHighlights(providers []catalog.Provider) string {
	lines := []string{"# Provider Highlights", ""}
	for _, p := range TopProvidersByFocus(providers, highlightLimit) {
		lines = append(lines,
			"## "+p.Name,
			"- Sports focus: "+strings.Join(p.Focus, ", "),
			"- Coverage regions: "+strings.Join(p.Countries, ", "),
			"- Languages: "+strings.Join(p.Languages, ", "),
			"- Primary CDN: "+p.CDN,
			"",
		)
	}
	return strings.Join(lines, "\n") + "\n"
}

// ValidationPlaybook returns the fixed checklist text.
func ValidationPlaybook() string {
	return playbook
}
