package command

import (
	"fmt"
	"strings"
)

// VersionCommand prints the build version.
type VersionCommand struct {
	Meta

	Version string
}

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output(fmt.Sprintf("citygraph v%s", c.Version))
	return 0
}

func (c *VersionCommand) Help() string {
	helpText := `
Usage: citygraph version

  Print the citygraph version.
`
	return strings.TrimSpace(helpText)
}

func (c *VersionCommand) Synopsis() string {
	return "Print the citygraph version"
}
