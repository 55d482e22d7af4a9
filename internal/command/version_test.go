package command_test

import (
	"testing"

	"github.com/hashicorp/cli"
	"github.com/stretchr/testify/assert"

	"github.com/sajltaha/citygraph/internal/command"
)

func TestVersionCommand(t *testing.T) {
	ui := cli.NewMockUi()
	c := &command.VersionCommand{Meta: command.Meta{Ui: ui}, Version: "1.2.3"}

	assert.Equal(t, 0, c.Run(nil))
	assert.Equal(t, "citygraph v1.2.3\n", ui.OutputWriter.String())
}

func TestCommandHelp(t *testing.T) {
	ui := cli.NewMockUi()
	meta := command.Meta{Ui: ui}

	commands := []interface {
		Help() string
		Synopsis() string
	}{
		&command.AnalyzeCommand{Meta: meta},
		&command.GenerateCommand{Meta: meta},
		&command.BenchCommand{Meta: meta},
		&command.VersionCommand{Meta: meta},
	}

	for _, c := range commands {
		assert.NotEmpty(t, c.Synopsis())
		assert.Contains(t, c.Help(), "Usage: citygraph ")
	}
}
