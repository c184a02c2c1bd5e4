package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/command"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/conv"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

const defaultSessionID = "cli-local"

type Advisor interface {
	Briefing(ctx context.Context, sessionID string) (advisor.Briefing, error)
	QuickActions(ctx context.Context, sessionID string) []string
	Ask(ctx context.Context, sessionID, text string, onUpdate func(core.Message)) (advisor.Reply, error)
	QuickAction(ctx context.Context, sessionID, prompt string, onUpdate func(core.Message)) (advisor.Reply, error)
}

type ReadLine struct {
	advisor Advisor
	router  core.CmdRouter
	rl      *readline.Instance
}

func NewReadLine(a Advisor, router core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "🧥 > ",
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{advisor: a, router: router, rl: rl}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine chat started. Type 'exit' to quit.")

	out := r.rl.Stdout()
	if b, err := r.advisor.Briefing(ctx, defaultSessionID); err != nil {
		logger.Error().Err(err).Msg("failed to load briefing")
	} else {
		r.print(out, renderBriefing(b))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		r.print(out, r.handle(ctx, line, func(msg core.Message) {
			for _, tc := range msg.ToolCalls {
				fmt.Fprintf(out, "\033[38;5;240m  > %s %s\033[0m\n", tc.Function.Name, tc.Function.Arguments)
			}
		}))
	}
}

// handle resolves one input line to the text that should be shown.
func (r *ReadLine) handle(ctx context.Context, line string, onUpdate func(core.Message)) string {
	if resp, ok := r.router.Execute(ctx, defaultSessionID, line); ok {
		return resp
	}

	var (
		reply advisor.Reply
		err   error
	)
	if prompt, ok := r.expandShortcut(ctx, line); ok {
		reply, err = r.advisor.QuickAction(ctx, defaultSessionID, prompt, onUpdate)
	} else {
		reply, err = r.advisor.Ask(ctx, defaultSessionID, line, onUpdate)
	}
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("ask failed")
		return fmt.Sprintf("Error: %v", err)
	}
	return reply.Text
}

// expandShortcut turns "2" into the second quick action.
func (r *ReadLine) expandShortcut(ctx context.Context, line string) (string, bool) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return "", false
	}
	prompts := r.advisor.QuickActions(ctx, defaultSessionID)
	if n > len(prompts) {
		return "", false
	}
	return prompts[n-1], true
}

func (r *ReadLine) print(out io.Writer, md string) {
	fmt.Fprintln(out, conv.MarkdownToText(md))
}

func renderBriefing(b advisor.Briefing) string {
	numbered := make([]string, len(b.Prompts))
	for i, p := range b.Prompts {
		numbered[i] = fmt.Sprintf("[%d] %s", i+1, p)
	}
	f := command.NewResponseFormatter()
	return f.Combine(
		b.Message+"\n",
		f.Weather(b.Weather),
		f.Outfit(b.Outfit),
		f.Section("💡", "Try asking (type a number)", strings.Join(numbered, "\n")),
	)
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
