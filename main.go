package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cmstools/cmsgrep/internal/audit"
	"github.com/cmstools/cmsgrep/internal/common"
	"github.com/cmstools/cmsgrep/internal/scopes"
	"github.com/cmstools/cmsgrep/internal/search"
)

func main() {
	app := &cli.App{
		Name:  "cmsgrep",
		Usage: "search and audit CMS content through the read-only API",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "find content containing (or, with --negate, missing) a term",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "term",
						Usage:    "text to search for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "negate",
						Usage: "list records that do NOT contain the term",
					},
				}, common.ScopeFlags()...),
				Action: search.Action,
			},
			{
				Name:   "audit",
				Usage:  "flag markup bloat pasted in from external tools",
				Flags:  common.ScopeFlags(),
				Action: audit.Action,
			},
			{
				Name:   "scopes",
				Usage:  "print the resolved scope selection and exit",
				Flags:  common.ScopeFlags(),
				Action: scopes.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
