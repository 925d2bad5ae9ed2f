// Package auditor flags markup bloat inside CMS records: vendor-specific
// styles and attributes pasted in from office suites, design tools and rich
// text editors. It shares the matcher's traversal shape but reports the full
// offending string, since remediation needs the whole fragment.
package auditor

import (
	"github.com/cmstools/cmsgrep/models"
	"github.com/cmstools/cmsgrep/pkg/traverse"
)

// Audit walks record and returns one Issue per (pattern, leaf) pair with at
// least one occurrence. A single leaf can yield several Issues.
func Audit(record interface{}) []models.Issue {
	var issues []models.Issue
	traverse.Walk(record, func(leaf traverse.Leaf) {
		for _, p := range Patterns {
			count := p.Count(leaf.Value)
			if count == 0 {
				continue
			}
			issues = append(issues, models.Issue{
				Pattern: p.Label,
				Path:    leaf.Path,
				Value:   leaf.Value,
				Count:   count,
			})
		}
	})
	return issues
}

// AuditRecord audits one record and, when any issue was found, sizes the
// largest flagged fragment that parses as HTML.
func AuditRecord(record interface{}) ([]models.Issue, *models.MarkupStats) {
	issues := Audit(record)
	if len(issues) == 0 {
		return nil, nil
	}

	var worst string
	for _, issue := range issues {
		if len(issue.Value) > len(worst) {
			worst = issue.Value
		}
	}

	stats, ok := Stats(worst)
	if !ok {
		return issues, nil
	}
	return issues, stats
}
