package command

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

// Router dispatches "/name args" input to registered commands by name.
type Router struct {
	byName map[string]core.Command
}

// New registers cmds plus /help. A later command with the same name
// replaces an earlier one.
func New(cmds []core.Command) *Router {
	r := &Router{byName: make(map[string]core.Command, len(cmds)+1)}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	r.Register(NewHelpCommand(r))
	return r
}

func (r *Router) Register(cmd core.Command) {
	r.byName[strings.ToLower(cmd.Name())] = cmd
}

func (r *Router) Execute(ctx context.Context, sessionID, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	fields := strings.Fields(input)
	name := commandName(fields[0])

	cmd, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("Unknown command: /%s. Try /help", name), true
	}

	out, err := cmd.Execute(ctx, sessionID, fields[1:])
	if err != nil {
		return fmt.Sprintf("Error: %v", err), true
	}
	return out, true
}

// commandName lowercases "/Weather@outfit_bot" to "weather". Telegram adds
// the bot suffix in group chats.
func commandName(token string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(token, "/"), "@")
	return strings.ToLower(name)
}

// ListCommands returns commands sorted by name.
func (r *Router) ListCommands() []core.Command {
	out := make([]core.Command, 0, len(r.byName))
	for _, cmd := range r.byName {
		out = append(out, cmd)
	}
	slices.SortFunc(out, func(a, b core.Command) int { return cmp.Compare(a.Name(), b.Name()) })
	return out
}
