package common

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/cmstools/cmsgrep/models"
)

// Render writes the outcome to stdout in the requested format. yaml is the
// default and the most faithful dump; table is for eyeballing.
func Render(format string, mode models.Mode, outcome models.AggregatedOutcome) error {
	switch format {
	case "", "yaml":
		data, err := yaml.Marshal(outcome)
		if err != nil {
			return fmt.Errorf("failed to marshal outcome: %w", err)
		}
		fmt.Print(string(data))
		return nil
	case "json":
		data, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal outcome: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case "table":
		renderTable(mode, outcome)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderTable(mode models.Mode, outcome models.AggregatedOutcome) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	if mode == models.ModeAudit {
		t.AppendHeader(table.Row{"Source", "Slug", "Pattern", "Path", "Count"})
		for _, r := range outcome.AuditResults {
			for _, issue := range r.Issues {
				t.AppendRow(table.Row{r.SourceType, r.Slug, issue.Pattern, issue.Path, issue.Count})
			}
		}
	} else {
		t.AppendHeader(table.Row{"Source", "Slug", "Path", "Count", "Snippet"})
		for _, r := range outcome.SearchResults {
			if len(r.Matches) == 0 {
				// Negated search: record-level hit, nothing to point at.
				t.AppendRow(table.Row{r.SourceType, r.Slug, "-", "-", "-"})
				continue
			}
			for _, m := range r.Matches {
				t.AppendRow(table.Row{r.SourceType, r.Slug, m.Path, m.Count, clip(m.Value, 60)})
			}
		}
	}
	t.Render()

	fmt.Printf("scanned %d items\n", outcome.TotalItemsScanned)
	if len(outcome.FailedScopes) > 0 {
		fmt.Printf("failed scopes: %v\n", outcome.FailedScopes)
	}
	if !outcome.Success && outcome.Error != "" {
		fmt.Printf("error: %s\n", outcome.Error)
	}
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
