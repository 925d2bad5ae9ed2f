// Package resource drains one CMS resource (a page type, the blog, or a
// collection) into a flat, page-ordered list of records.
package resource

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/cmstools/cmsgrep/models"
	"github.com/cmstools/cmsgrep/pkg/fetcher"
)

const (
	pageSize = 100
	// maxLevels is the JSON nesting depth the API expands inline.
	maxLevels = 5
)

// Fetcher builds resource URLs and walks their pagination until the API
// reports no next page.
type Fetcher struct {
	client  *fetcher.Client
	baseURL string
	logger  *slog.Logger
}

// NewFetcher wraps a retrying HTTP client. baseURL is the API root, with or
// without a trailing slash.
func NewFetcher(client *fetcher.Client, baseURL string, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/") + "/",
		logger:  logger,
	}
}

// Request identifies one scope fetch.
type Request struct {
	Token   string
	Preview bool
	Handle  models.ResourceHandle
}

// FetchAll returns every record of the resource, in page order. On any
// retry-exhausted fetch error the whole resource counts as unfetched: no
// partial accumulation is returned.
func (f *Fetcher) FetchAll(ctx context.Context, req Request) ([]interface{}, error) {
	var records []interface{}

	for page := 1; ; page++ {
		payload, err := f.client.GetJSON(ctx, f.buildURL(req, page))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", scopeLabel(req.Handle), err)
		}

		items := extractItems(payload, req.Handle)
		records = append(records, items...)
		f.logger.Debug("fetched page", "scope", req.Handle.String(), "page", page, "items", len(items))

		// An empty or malformed page means the resource is drained, even if
		// the metadata claims otherwise.
		if len(items) == 0 {
			break
		}
		if _, ok := nextPage(payload); !ok {
			break
		}
	}

	return records, nil
}

func (f *Fetcher) buildURL(req Request, page int) string {
	var path string
	switch req.Handle.Kind {
	case models.KindPageType:
		path = "pages/" + url.PathEscape(req.Handle.Name) + "/"
	case models.KindBlog:
		path = "posts/"
	case models.KindCollection:
		path = "content/" + url.PathEscape(req.Handle.Name) + "/"
	}

	params := url.Values{}
	params.Set("auth_token", req.Token)
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	params.Set("levels", strconv.Itoa(maxLevels))
	params.Set("alt_media_text", "1")
	if req.Preview {
		params.Set("preview", "1")
	}

	return f.baseURL + path + "?" + params.Encode()
}

// extractItems pulls the item array out of a response envelope. Collection
// payloads are nested one level deeper, under the collection key. A missing
// or non-array payload yields nil, which the caller treats as "no more
// data", not as an error.
func extractItems(payload map[string]interface{}, handle models.ResourceHandle) []interface{} {
	data, ok := payload["data"]
	if !ok {
		return nil
	}

	if handle.Kind == models.KindCollection {
		nested, ok := data.(map[string]interface{})
		if !ok {
			return nil
		}
		data = nested[handle.Name]
	}

	items, ok := data.([]interface{})
	if !ok {
		return nil
	}
	return items
}

// nextPage reads meta.next_page from the envelope. A null, missing or
// non-numeric value means there is no next page.
func nextPage(payload map[string]interface{}) (int, bool) {
	meta, ok := payload["meta"].(map[string]interface{})
	if !ok {
		return 0, false
	}
	n, ok := meta["next_page"].(float64)
	if !ok {
		return 0, false
	}
	return int(n), true
}

func scopeLabel(h models.ResourceHandle) string {
	if h.Name == "" {
		return string(h.Kind)
	}
	return string(h.Kind) + " " + h.Name
}
