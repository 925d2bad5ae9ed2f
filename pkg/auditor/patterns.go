package auditor

import (
	"regexp"
	"strings"
)

// Pattern is one markup-bloat signature. Substring patterns are matched
// case-insensitively; Regex is used when Substring is empty. The table is
// fixed at build time and not user-editable.
type Pattern struct {
	Label     string
	Substring string
	Regex     *regexp.Regexp
}

// Patterns are the signatures of markup pasted in from external tools:
// office suites (mso-), design tools (figma), Google Docs, ProseMirror
// editors, plus inline event handlers and generic data- attribute litter.
var Patterns = []Pattern{
	{Label: "mso-", Substring: "mso-"},
	{Label: "figma=", Substring: "figma="},
	{Label: "data-figma-", Substring: "data-figma-"},
	{Label: "google-", Substring: "google-"},
	{Label: "data-pm-slice", Substring: "data-pm-slice"},
	{Label: "data-*", Regex: regexp.MustCompile(`(?i)\bdata-[a-z0-9-]+=`)},
	{Label: "onclick=", Substring: "onclick="},
}

// Count returns the number of non-overlapping, case-insensitive occurrences
// of the pattern in s.
func (p Pattern) Count(s string) int {
	if p.Regex != nil {
		return len(p.Regex.FindAllStringIndex(s, -1))
	}
	return strings.Count(strings.ToLower(s), strings.ToLower(p.Substring))
}
