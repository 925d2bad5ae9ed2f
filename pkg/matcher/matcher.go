// Package matcher locates occurrences of a search term inside arbitrarily
// shaped CMS records. Comparison is case-insensitive on normalized text, so
// entity spellings and typographic variants match their plain forms.
package matcher

import (
	"regexp"
	"strings"

	"github.com/cmstools/cmsgrep/models"
	"github.com/cmstools/cmsgrep/pkg/normalize"
	"github.com/cmstools/cmsgrep/pkg/traverse"
)

// snippetRadius is how many characters of context surround the first
// occurrence in a Match value.
const snippetRadius = 100

// Match walks record and returns one Match per leaf containing term. Counts
// are non-overlapping occurrences in the normalized leaf text.
//
// Occurrences are located with a case-insensitive pattern over the
// normalized text itself. Lowercasing a copy for offset math is not safe:
// case mapping changes byte length for some runes, so offsets found in the
// lowered copy can misalign against the original.
func Match(record interface{}, term string) []models.Match {
	needle := strings.TrimSpace(strings.ToLower(normalize.Normalize(term)))
	if needle == "" {
		return nil
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(needle))
	if err != nil {
		return nil
	}

	var matches []models.Match
	traverse.Walk(record, func(leaf traverse.Leaf) {
		text := normalize.Normalize(leaf.Value)

		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			return
		}

		matches = append(matches, models.Match{
			Path:  leaf.Path,
			Value: snippet(text, locs[0][0], locs[0][1]-locs[0][0]),
			Count: len(locs),
		})
	})
	return matches
}

// Contains reports whether record has at least one leaf matching term. It
// backs negated search, which includes or excludes whole records and never
// surfaces per-leaf matches.
func Contains(record interface{}, term string) bool {
	return len(Match(record, term)) > 0
}

// snippet cuts a window of snippetRadius runes either side of the
// occurrence at byte offset idx (length needleLen bytes), adding an
// ellipsis only on sides that were actually truncated.
func snippet(text string, idx, needleLen int) string {
	runes := []rune(text)
	runeIdx := len([]rune(text[:idx]))
	runeLen := len([]rune(text[idx : idx+needleLen]))

	start := runeIdx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := runeIdx + runeLen + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString("...")
	}
	sb.WriteString(string(runes[start:end]))
	if end < len(runes) {
		sb.WriteString("...")
	}
	return sb.String()
}
