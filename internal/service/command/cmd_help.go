package command

import (
	"context"
	"fmt"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

type commandLister interface {
	ListCommands() []core.Command
}

type HelpCommand struct {
	commands  commandLister
	formatter *ResponseFormatter
}

func NewHelpCommand(commands commandLister) *HelpCommand {
	return &HelpCommand{commands: commands, formatter: NewResponseFormatter()}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(context.Context, string, []string) (string, error) {
	cmds := c.commands.ListCommands()
	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		lines[i] = fmt.Sprintf("**/%s** %s", cmd.Name(), cmd.Description())
	}
	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(lines),
		c.formatter.Tip("Anything that is not a command is sent to the advisor"),
	), nil
}
