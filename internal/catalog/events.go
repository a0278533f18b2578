package catalog

import (
	"fmt"
	"time"

	"multiview/internal/textutil"
)

const hoursPerDay = 24

const timestampLayout = "2006-01-02T15:04:05Z"

// ComputeWindow returns the day offset and hour-of-day an event ends at, given
// the day offset and hour it starts at and its duration in whole hours.
func ComputeWindow(startDay, startHour, durationHours int) (endDay, endHour int) {
	total := startHour + durationHours
	return startDay + total/hoursPerDay, total % hoursPerDay
}

// FormatTimestamp renders base shifted by dayOffset days, with the hour-of-day
// replaced by hour. Minutes and seconds are always zero.
func FormatTimestamp(base time.Time, dayOffset, hour int) string {
	day := base.UTC().AddDate(0, 0, dayOffset)
	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
	return ts.Format(timestampLayout)
}

// GenerateEvents returns exactly count events, each referencing two to four
// distinct providers from the supplied set.
func GenerateEvents(rng *Rand, vocab *Vocabulary, providers []Provider, count int, base time.Time) ([]Event, error) {
	if count <= 0 {
		return nil, fmt.Errorf("events: %w (got %d)", ErrInvalidCount, count)
	}
	if len(providers) < 2 {
		return nil, fmt.Errorf("events: %w (have %d)", ErrInsufficientProviders, len(providers))
	}

	providerIDs := make([]string, len(providers))
	for i, p := range providers {
		providerIDs[i] = p.ID
	}

	events := make([]Event, 0, count)
	for idx := 1; idx <= count; idx++ {
		sport := pick(rng, vocab.Sports)
		descriptors := vocab.Descriptors[sport]
		if len(descriptors) == 0 {
			return nil, fmt.Errorf("event %d: %w %q has no descriptors", idx, ErrUnknownCategory, sport)
		}
		descriptor := pick(rng, descriptors)

		startHour := pick(rng, vocab.StartHours)
		dayOffset := rng.Between(1, vocab.MaxDayOffset)
		duration := pick(rng, vocab.Durations)
		endDay, endHour := ComputeWindow(dayOffset, startHour, duration)

		venue := pick(rng, vocab.Venues)
		timezone := pick(rng, vocab.Timezones)
		refs := sample(rng, providerIDs, rng.Between(2, 4))

		notes := make([]string, rng.Between(2, 4))
		for i := range notes {
			notes[i] = pick(rng, vocab.Notes)
		}

		events = append(events, Event{
			ID:        fmt.Sprintf("event-%03d-%s", idx, sport),
			Sport:     sport,
			Title:     fmt.Sprintf("%s %s", textutil.Humanize(sport), descriptor),
			Start:     FormatTimestamp(base, dayOffset, startHour),
			End:       FormatTimestamp(base, endDay, endHour),
			Venue:     venue,
			Timezone:  timezone,
			Providers: refs,
			Notes:     notes,
		})
	}
	return events, nil
}
