package advisor

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

type TokenCounter interface {
	Count(text string) int
}

type tiktokenCounter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// NewTiktokenCounter counts cl100k_base tokens. When the encoding cannot be
// loaded it estimates four bytes per token.
func NewTiktokenCounter() TokenCounter {
	return &tiktokenCounter{}
}

func (c *tiktokenCounter) Count(text string) int {
	c.once.Do(func() {
		c.enc, c.err = tiktoken.GetEncoding("cl100k_base")
	})
	if c.err != nil {
		return len(text)/4 + 1
	}
	return len(c.enc.Encode(text, nil, nil))
}

func messageTokens(counter TokenCounter, msg core.Message) int {
	n := counter.Count(msg.Content) + 4
	for _, tc := range msg.ToolCalls {
		n += counter.Count(tc.Function.Name) + counter.Count(tc.Function.Arguments)
	}
	return n
}

// trimToBudget keeps the newest messages that fit in budget tokens. The
// last message is always kept.
func trimToBudget(counter TokenCounter, msgs []core.Message, budget int) []core.Message {
	if len(msgs) == 0 {
		return msgs
	}

	total := 0
	start := len(msgs)
	for i := len(msgs) - 1; i >= 0; i-- {
		total += messageTokens(counter, msgs[i])
		if total > budget && i < len(msgs)-1 {
			break
		}
		start = i
	}
	return msgs[start:]
}

// sanitizeToolCalls drops tool results that do not answer a call from the
// latest assistant message. A user message invalidates pending calls.
func sanitizeToolCalls(ctx context.Context, msgs []core.Message) []core.Message {
	if len(msgs) == 0 {
		return nil
	}

	logger := log.FromCtx(ctx)
	out := make([]core.Message, 0, len(msgs))
	pending := make(map[string]struct{})

	for _, msg := range msgs {
		switch msg.Role {
		case core.RoleAssistant:
			pending = make(map[string]struct{}, len(msg.ToolCalls))
			for _, tc := range msg.ToolCalls {
				pending[tc.ID] = struct{}{}
			}
		case core.RoleUser:
			pending = make(map[string]struct{})
		case core.RoleTool:
			if _, ok := pending[msg.ToolCallID]; !ok {
				logger.Debug().Str("tool_call_id", msg.ToolCallID).Msg("dropping orphaned tool result")
				continue
			}
		}
		out = append(out, msg)
	}
	return out
}

func (a *Advisor) history(ctx context.Context, sessionID string) ([]core.Message, error) {
	msgs, err := a.deps.Messages.GetMessages(ctx, sessionID, a.opts.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	msgs = trimToBudget(a.counter, msgs, a.opts.TokenBudget)
	return sanitizeToolCalls(ctx, msgs), nil
}
