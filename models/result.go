package models

// Match records one string leaf of a record that contains the search term.
// Value is a bounded context snippet, not the full leaf.
type Match struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Issue records one bloat pattern found in one string leaf. Value is the
// complete original string so the full offending markup is visible.
type Issue struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Path    string `json:"path" yaml:"path"`
	Value   string `json:"value" yaml:"value"`
	Count   int    `json:"count" yaml:"count"`
}

// MarkupStats summarizes the rendered weight of the worst flagged HTML
// fragment in a record.
type MarkupStats struct {
	Elements         int `json:"elements" yaml:"elements"`
	InlineStyleBytes int `json:"inline_style_bytes" yaml:"inline_style_bytes"`
}

// SearchResult is one record with at least one match, or, in negated mode,
// one record with no match at all (Matches is then empty).
type SearchResult struct {
	Title      string  `json:"title" yaml:"title"`
	Slug       string  `json:"slug" yaml:"slug"`
	SourceType string  `json:"source_type" yaml:"source_type"`
	Matches    []Match `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// AuditResult is one record with at least one bloat issue.
type AuditResult struct {
	Title      string       `json:"title" yaml:"title"`
	Slug       string       `json:"slug" yaml:"slug"`
	SourceType string       `json:"source_type" yaml:"source_type"`
	Issues     []Issue      `json:"issues" yaml:"issues"`
	Markup     *MarkupStats `json:"markup,omitempty" yaml:"markup,omitempty"`
}

// AggregatedOutcome is the merged result of one run across all selected
// scopes. Success is false only when the input was invalid or every scope
// failed; a clean run with zero results is still a success.
type AggregatedOutcome struct {
	SearchResults     []SearchResult `json:"results,omitempty" yaml:"results,omitempty"`
	AuditResults      []AuditResult  `json:"issues,omitempty" yaml:"issues,omitempty"`
	TotalItemsScanned int            `json:"total_items_scanned" yaml:"total_items_scanned"`
	FailedScopes      []string       `json:"failed_scopes,omitempty" yaml:"failed_scopes,omitempty"`
	Success           bool           `json:"success" yaml:"success"`
	Error             string         `json:"error,omitempty" yaml:"error,omitempty"`
}
