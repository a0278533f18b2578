package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize converts a dash-separated slug into title-cased words.
func Humanize(slug string) string {
	words := strings.ReplaceAll(strings.TrimSpace(slug), "-", " ")
	if words == "" {
		return ""
	}
	return cases.Title(language.Und).String(words)
}
