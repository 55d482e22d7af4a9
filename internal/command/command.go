// Package command implements the citygraph subcommands: analyze runs
// the five-stage walkthrough over one dataset, generate writes the
// standard dataset suite, bench measures every dataset and renders the
// benchmark report, and version prints the build version.
//
// Commands follow one shape: flags parse into locals, user-facing
// output goes through the cli.Ui, diagnostics go through slog, and the
// return code is the process exit code (0 ok, 1 runtime failure,
// 2 usage error).
package command

import (
	"github.com/hashicorp/cli"
)

// Meta carries the options shared by every subcommand.
type Meta struct {
	Ui cli.Ui
}
