package core

import "context"

// CmdRouter resolves slash commands typed into any transport. Execute
// reports false when the input is not a command so the caller can hand it
// to the advisor instead.
type CmdRouter interface {
	Execute(ctx context.Context, sessionID, input string) (string, bool)
	ListCommands() []Command
}

// Command answers in Markdown; transports decide how to render it.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}
