// Package aggregate fans a search or audit run out across the selected
// scopes and merges the per-scope results. Scope failures are isolated: one
// scope exhausting its retries never cancels or blocks the others.
package aggregate

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/cmstools/cmsgrep/models"
	"github.com/cmstools/cmsgrep/pkg/auditor"
	"github.com/cmstools/cmsgrep/pkg/matcher"
	"github.com/cmstools/cmsgrep/pkg/resource"
)

// Aggregator runs one invocation against a set of scopes. It holds no state
// between runs.
type Aggregator struct {
	resources *resource.Fetcher
	logger    *slog.Logger
	workers   int
}

// New builds an Aggregator. workers bounds how many scopes are fetched at
// once; values below one fall back to sequential fetching.
func New(resources *resource.Fetcher, logger *slog.Logger, workers int) *Aggregator {
	if workers < 1 {
		workers = 1
	}
	return &Aggregator{
		resources: resources,
		logger:    logger,
		workers:   workers,
	}
}

// scopeJob pairs a handle with its position in the request, so results can
// be reassembled per selection even when the same scope is listed twice.
type scopeJob struct {
	index  int
	handle models.ResourceHandle
}

type scopeResult struct {
	index   int
	search  []models.SearchResult
	audit   []models.AuditResult
	scanned int
	err     error
}

// Run validates the request, fetches every scope, matches or audits each
// record, and merges everything into one outcome. Success is false only when
// the input is invalid or every selected scope failed; an empty result list
// from succeeded scopes means "clean", not "failed".
func (a *Aggregator) Run(ctx context.Context, req models.RunRequest) models.AggregatedOutcome {
	if strings.TrimSpace(req.Token) == "" {
		return models.AggregatedOutcome{Error: "an API token is required"}
	}
	if req.Mode == models.ModeSearch && strings.TrimSpace(req.Term) == "" {
		return models.AggregatedOutcome{Error: "a search term is required"}
	}

	if len(req.Scopes) == 0 {
		return models.AggregatedOutcome{Success: true}
	}

	var wg sync.WaitGroup
	jobs := make(chan scopeJob, len(req.Scopes))
	results := make(chan scopeResult, len(req.Scopes))

	workers := a.workers
	if workers > len(req.Scopes) {
		workers = len(req.Scopes)
	}
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go a.worker(ctx, w, req, &wg, jobs, results)
	}

	for i, handle := range req.Scopes {
		jobs <- scopeJob{index: i, handle: handle}
	}
	close(jobs)

	wg.Wait()
	close(results)

	// Reassemble in the order the scopes were requested so output is stable
	// regardless of which worker finished first.
	byIndex := make([]scopeResult, len(req.Scopes))
	for r := range results {
		byIndex[r.index] = r
	}

	outcome := models.AggregatedOutcome{}
	succeeded := 0
	lastErr := ""
	for i, handle := range req.Scopes {
		r := byIndex[i]
		if r.err != nil {
			a.logger.Warn("scope failed", "scope", handle.String(), "error", r.err)
			outcome.FailedScopes = append(outcome.FailedScopes, handle.String())
			lastErr = r.err.Error()
			continue
		}
		succeeded++
		outcome.TotalItemsScanned += r.scanned
		outcome.SearchResults = append(outcome.SearchResults, r.search...)
		outcome.AuditResults = append(outcome.AuditResults, r.audit...)
	}

	outcome.Success = succeeded > 0
	if !outcome.Success {
		outcome.Error = lastErr
	}
	return outcome
}

func (a *Aggregator) worker(ctx context.Context, id int, req models.RunRequest, wg *sync.WaitGroup, jobs <-chan scopeJob, results chan<- scopeResult) {
	defer wg.Done()
	for job := range jobs {
		handle := job.handle
		a.logger.Info("scope fetch started", "worker_id", id, "scope", handle.String())

		records, err := a.resources.FetchAll(ctx, resource.Request{
			Token:   req.Token,
			Preview: req.Preview,
			Handle:  handle,
		})
		if err != nil {
			results <- scopeResult{index: job.index, err: err}
			continue
		}

		r := scopeResult{index: job.index, scanned: len(records)}
		for _, record := range records {
			switch req.Mode {
			case models.ModeAudit:
				issues, stats := auditor.AuditRecord(record)
				if len(issues) == 0 {
					continue
				}
				result := buildAuditResult(record, handle)
				result.Issues = issues
				result.Markup = stats
				r.audit = append(r.audit, result)
			default:
				matches := matcher.Match(record, req.Term)
				if req.Negate {
					// Negated search includes whole records without any
					// match; there is nothing to highlight per leaf.
					if len(matches) == 0 {
						r.search = append(r.search, buildSearchResult(record, handle))
					}
					continue
				}
				if len(matches) > 0 {
					result := buildSearchResult(record, handle)
					result.Matches = matches
					r.search = append(r.search, result)
				}
			}
		}

		a.logger.Info("scope finished", "worker_id", id, "scope", handle.String(), "records", len(records))
		results <- r
	}
}

func buildSearchResult(record interface{}, handle models.ResourceHandle) models.SearchResult {
	return models.SearchResult{
		Title:      recordField(record, "title", "name"),
		Slug:       recordField(record, "slug", "url_slug"),
		SourceType: handle.String(),
	}
}

func buildAuditResult(record interface{}, handle models.ResourceHandle) models.AuditResult {
	return models.AuditResult{
		Title:      recordField(record, "title", "name"),
		Slug:       recordField(record, "slug", "url_slug"),
		SourceType: handle.String(),
	}
}

// recordField pulls the first present string field out of a record object.
// Records are schemaless, so this is best effort and degrades to "".
func recordField(record interface{}, keys ...string) string {
	obj, ok := record.(map[string]interface{})
	if !ok {
		return ""
	}
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
