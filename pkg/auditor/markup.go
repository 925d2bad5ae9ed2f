package auditor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cmstools/cmsgrep/models"
)

// Stats parses fragment as HTML and reports its element count and the total
// bytes held in inline style attributes. It returns false for values that do
// not look like markup or contain no elements.
func Stats(fragment string) (*models.MarkupStats, bool) {
	if !strings.Contains(fragment, "<") {
		return nil, false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, false
	}

	// goquery wraps fragments in html/head/body; count only the content.
	elements := doc.Find("body *").Length()
	if elements == 0 {
		return nil, false
	}

	styleBytes := 0
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		if style, ok := s.Attr("style"); ok {
			styleBytes += len(style)
		}
	})

	return &models.MarkupStats{
		Elements:         elements,
		InlineStyleBytes: styleBytes,
	}, true
}
