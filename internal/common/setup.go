// Package common holds the glue shared by the CLI commands: logger setup,
// flag parsing into engine requests, and output rendering.
package common

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cmstools/cmsgrep/models"
)

// NewLogger builds the per-command logger. Logs go to stderr as JSON so
// stdout stays machine-readable; --quiet demotes everything below errors.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// BuildRequest turns CLI flags plus the config file into one engine request.
// Scope flags override the config lists; the blog is only included when
// --blog is passed.
func BuildRequest(c *cli.Context, mode models.Mode) (models.RunRequest, *models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return models.RunRequest{}, nil, err
	}

	token := cfg.Token
	if c.IsSet("token") || c.String("token") != "" {
		token = c.String("token")
	}

	pageTypes := cfg.PageTypes
	if c.IsSet("page-types") {
		pageTypes = splitList(c.String("page-types"))
	}
	collections := cfg.CollectionKeys
	if c.IsSet("collections") {
		collections = splitList(c.String("collections"))
	}

	var scopes []models.ResourceHandle
	for _, pt := range pageTypes {
		scopes = append(scopes, models.ResourceHandle{Kind: models.KindPageType, Name: pt})
	}
	for _, key := range collections {
		scopes = append(scopes, models.ResourceHandle{Kind: models.KindCollection, Name: key})
	}
	if c.Bool("blog") {
		scopes = append(scopes, models.ResourceHandle{Kind: models.KindBlog})
	}

	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}

	req := models.RunRequest{
		Token:   token,
		Preview: c.Bool("preview"),
		Scopes:  scopes,
		Mode:    mode,
		Term:    c.String("term"),
		Negate:  c.Bool("negate"),
	}
	return req, cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ScopeFlags are the flags every command that talks to the API shares.
func ScopeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "path to the YAML config file",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "read-only CMS API token (overrides config)",
			EnvVars: []string{"CMSGREP_TOKEN"},
		},
		&cli.StringFlag{
			Name:  "page-types",
			Usage: "comma-separated page types to scan (overrides config)",
		},
		&cli.StringFlag{
			Name:  "collections",
			Usage: "comma-separated collection keys to scan (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "blog",
			Usage: "include blog posts",
		},
		&cli.BoolFlag{
			Name:  "preview",
			Usage: "include unpublished (preview) content",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "concurrent scope fetches (overrides config)",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "yaml",
			Usage: "output format: yaml, json or table",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}
}

// ExitError wraps a message into the CLI error convention: message on
// stderr, non-zero exit.
func ExitError(format string, args ...interface{}) error {
	return cli.Exit(fmt.Sprintf(format, args...), 2)
}
