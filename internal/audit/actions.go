// Package audit wires the audit command to the engine.
package audit

import (
	"github.com/urfave/cli/v2"

	"github.com/cmstools/cmsgrep/internal/common"
	"github.com/cmstools/cmsgrep/models"
	"github.com/cmstools/cmsgrep/pkg/aggregate"
	"github.com/cmstools/cmsgrep/pkg/fetcher"
	"github.com/cmstools/cmsgrep/pkg/resource"
)

// Action runs the markup-bloat audit across the selected scopes.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	req, cfg, err := common.BuildRequest(c, models.ModeAudit)
	if err != nil {
		return common.ExitError("failed to build request: %v", err)
	}

	resources := resource.NewFetcher(fetcher.New(), cfg.BaseURL, logger)
	agg := aggregate.New(resources, logger, cfg.WorkerCount())

	outcome := agg.Run(c.Context, req)
	if err := common.Render(c.String("format"), models.ModeAudit, outcome); err != nil {
		return common.ExitError("%v", err)
	}

	if !outcome.Success {
		return cli.Exit("", 1)
	}
	return nil
}
