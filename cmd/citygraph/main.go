// Command citygraph analyzes smart-city task graphs: it finds strongly
// connected components, builds the condensation DAG, orders the
// component tasks topologically, and computes shortest and critical
// paths over the result.
package main

import (
	"log/slog"
	"os"

	"github.com/hashicorp/cli"

	"github.com/sajltaha/citygraph/internal/command"
)

// version is stamped at link time for releases.
var version = "0.1.0"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	slog.SetDefault(slog.New(newLogHandler()))

	meta := command.Meta{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
	}

	c := cli.NewCLI("citygraph", version)
	c.Args = os.Args[1:]
	c.HelpWriter = os.Stdout
	c.Commands = map[string]cli.CommandFactory{
		"analyze": func() (cli.Command, error) {
			return &command.AnalyzeCommand{Meta: meta}, nil
		},
		"generate": func() (cli.Command, error) {
			return &command.GenerateCommand{Meta: meta}, nil
		},
		"bench": func() (cli.Command, error) {
			return &command.BenchCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &command.VersionCommand{Meta: meta, Version: version}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		meta.Ui.Error("Error executing CLI: " + err.Error())
		return 1
	}

	return exitStatus
}

// newLogHandler builds the slog handler from the environment:
// CITYGRAPH_LOG_LEVEL selects debug, info, warn, or error (default
// info) and CITYGRAPH_LOG_FORMAT=json switches to JSON output.
// Diagnostics go to stderr so piped command output stays clean.
func newLogHandler() slog.Handler {
	var level slog.Level
	switch os.Getenv("CITYGRAPH_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if os.Getenv("CITYGRAPH_LOG_FORMAT") == "json" {
		return slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.NewTextHandler(os.Stderr, opts)
}
