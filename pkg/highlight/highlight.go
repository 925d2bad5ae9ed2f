// Package highlight wraps search-term occurrences in <mark> tags for
// HTML-rendered output. It is presentation plumbing over the normalizer:
// the text is escaped, matching is variant-aware, and no business logic
// lives here.
package highlight

import (
	"html"
	"regexp"
	"strings"

	"github.com/cmstools/cmsgrep/pkg/normalize"
)

// Highlight escapes text for HTML and wraps every case-insensitive
// occurrence of term in <mark>...</mark>. Both sides are normalized first,
// so "&pound;50" in the text is found by the term "£50". The returned string
// is the normalized text, escaped.
func Highlight(text, term string) string {
	normText := normalize.Normalize(text)
	needle := normalize.Normalize(term)
	if strings.TrimSpace(needle) == "" {
		return html.EscapeString(normText)
	}

	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(needle))
	if err != nil {
		return html.EscapeString(normText)
	}

	var sb strings.Builder
	pos := 0
	for _, loc := range re.FindAllStringIndex(normText, -1) {
		sb.WriteString(html.EscapeString(normText[pos:loc[0]]))
		sb.WriteString("<mark>")
		sb.WriteString(html.EscapeString(normText[loc[0]:loc[1]]))
		sb.WriteString("</mark>")
		pos = loc[1]
	}
	sb.WriteString(html.EscapeString(normText[pos:]))
	return sb.String()
}
