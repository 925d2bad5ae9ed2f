// Package scopes implements the scopes diagnostic command: print the
// resolved scope selection without touching the network.
package scopes

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/cmstools/cmsgrep/internal/common"
	"github.com/cmstools/cmsgrep/models"
)

// Action prints the ResourceHandle list the current flags and config
// resolve to.
func Action(c *cli.Context) error {
	req, _, err := common.BuildRequest(c, models.ModeSearch)
	if err != nil {
		return common.ExitError("failed to build request: %v", err)
	}

	data, err := yaml.Marshal(req.Scopes)
	if err != nil {
		return common.ExitError("failed to marshal scopes: %v", err)
	}
	fmt.Print(string(data))
	return nil
}
