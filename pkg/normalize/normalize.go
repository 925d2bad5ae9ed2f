// Package normalize canonicalizes text so that visually equivalent
// characters and their HTML entity spellings compare equal. CMS editors mix
// typographic quotes, non-breaking spaces and raw entities freely; matching
// on the normalized form makes "don’t" find "don&#39;t".
package normalize

import (
	"regexp"
	"strings"
)

// token matches everything Normalize rewrites: named entities
// (case-insensitive), their typographic Unicode counterparts, and runs of
// whitespace. Longer alternatives come first so entity names are not split.
var token = regexp.MustCompile(`(?i)&nbsp;|&quot;|&apos;|&#39;|&ndash;|&mdash;|&pound;|&euro;|&lt;|&gt;|&amp;|\x{00A0}|[“”‘’–—]|\s+`)

var replacements = map[string]string{
	"&nbsp;":  " ",
	"&quot;":  `"`,
	"“":       `"`,
	"”":       `"`,
	"&apos;":  "'",
	"&#39;":   "'",
	"‘":       "'",
	"’":       "'",
	"&ndash;": "-",
	"&mdash;": "-",
	"–":       "-",
	"—":       "-",
	"&pound;": "£",
	"&euro;":  "€",
	"&lt;":    "<",
	"&gt;":    ">",
	"&amp;":   "&",
	" ":  " ",
}

// Normalize returns the canonical form of text. It is idempotent:
// Normalize(Normalize(x)) == Normalize(x). Double-escaped entities such as
// "&amp;nbsp;" collapse all the way down, which is why substitution runs to
// a fixed point instead of a single pass. The loop terminates because every
// rewrite either shortens the string or turns a whitespace rune into a plain
// space, and neither can happen forever.
func Normalize(text string) string {
	for {
		next := normalizeOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func normalizeOnce(text string) string {
	return token.ReplaceAllStringFunc(text, func(m string) string {
		if r, ok := replacements[strings.ToLower(m)]; ok {
			return r
		}
		// Any other hit is a whitespace run.
		return " "
	})
}
