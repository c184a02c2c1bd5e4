package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/metrics"
)

// Ask answers a typed message through the conversational provider.
// onUpdate, when set, receives every assistant message of the exchange.
func (a *Advisor) Ask(ctx context.Context, sessionID, text string, onUpdate func(core.Message)) (Reply, error) {
	return a.exchange(ctx, sessionID, text, onUpdate, false)
}

// QuickAction answers a suggested prompt the user picked. Prompts with a
// rule template are answered locally; the rest are delegated like Ask.
func (a *Advisor) QuickAction(ctx context.Context, sessionID, prompt string, onUpdate func(core.Message)) (Reply, error) {
	return a.exchange(ctx, sessionID, prompt, onUpdate, true)
}

func (a *Advisor) exchange(ctx context.Context, sessionID, text string, onUpdate func(core.Message), quick bool) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	ctx = core.WithSession(ctx, core.Session{UserID: a.opts.UserID, SessionID: sessionID})

	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		reply Reply
		err   error
	)
	if quick {
		reply, err = a.quickAction(ctx, s, sessionID, text, onUpdate)
	} else {
		reply, err = a.chat(ctx, s, sessionID, text, onUpdate)
	}
	if err != nil {
		return Reply{}, err
	}

	a.deps.Metrics.Inc(ctx, metrics.ChatRequests, metrics.Labels{"source": reply.Source}, 1)
	return reply, nil
}

func (a *Advisor) quickAction(ctx context.Context, s *session, sessionID, prompt string, onUpdate func(core.Message)) (Reply, error) {
	answer, err := advice.Synthesize(prompt, s.context(a.opts.DefaultCity))
	switch {
	case err == nil:
		a.deps.Metrics.Inc(ctx, metrics.QuickActions, metrics.Labels{"result": "handled"}, 1)
		a.store(ctx, sessionID, core.Message{Role: core.RoleUser, Content: prompt})
		a.store(ctx, sessionID, core.Message{Role: core.RoleAssistant, Content: answer})
		return Reply{Text: answer, Source: SourceQuickAction}, nil
	case !errors.Is(err, advice.ErrUnhandled):
		return Reply{}, err
	}
	a.deps.Metrics.Inc(ctx, metrics.QuickActions, metrics.Labels{"result": "delegated"}, 1)
	return a.chat(ctx, s, sessionID, prompt, onUpdate)
}

func (a *Advisor) chat(ctx context.Context, s *session, sessionID, text string, onUpdate func(core.Message)) (Reply, error) {
	prefs, err := a.Preferences(ctx)
	if err != nil {
		return Reply{}, err
	}

	if err := a.deps.Messages.AddMessage(ctx, sessionID, core.Message{Role: core.RoleUser, Content: text}); err != nil {
		return Reply{}, fmt.Errorf("failed to save user message: %w", err)
	}

	history, err := a.history(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}

	return a.converse(ctx, s, sessionID, text, history, prefs, onUpdate), nil
}

func (a *Advisor) converse(
	ctx context.Context,
	s *session,
	sessionID, text string,
	history []core.Message,
	prefs core.PreferenceSet,
	onUpdate func(core.Message),
) Reply {
	logger := log.FromCtx(ctx)
	c := s.context(a.opts.DefaultCity)
	exec := newExecutor(a, s.weather, prefs)
	system := core.Message{Role: core.RoleSystem, Content: systemPrompt(c, s.weather, prefs)}

	var finalContent string
	for round := 0; round < a.opts.MaxToolRounds; round++ {
		msg, err := a.deps.AI.Chat(ctx, append([]core.Message{system}, history...), tools)
		if errors.Is(err, core.ErrNoProvider) {
			answer := advice.ChatReply(text, c, prefs.PrimaryStyle())
			a.store(ctx, sessionID, core.Message{Role: core.RoleAssistant, Content: answer})
			return Reply{Text: answer, Source: SourceRules}
		}
		if err != nil {
			logger.Error().Err(err).Msg("ai chat error")
			return Reply{Text: advice.ChatFailure, Source: SourceFallback}
		}

		a.store(ctx, sessionID, msg)
		history = append(history, msg)

		if onUpdate != nil {
			onUpdate(msg)
		}
		if msg.Content != "" {
			finalContent = msg.Content
		}
		if len(msg.ToolCalls) == 0 {
			break
		}

		for _, res := range exec.Execute(ctx, msg.ToolCalls) {
			a.store(ctx, sessionID, res)
			history = append(history, res)
		}
	}

	if finalContent == "" {
		return Reply{Text: advice.ChatFailure, Source: SourceFallback}
	}

	if exec.outfit != nil {
		s.outfit = exec.outfit
	}
	return Reply{Text: finalContent, Source: SourceAssistant, Outfit: exec.outfit}
}

func (a *Advisor) store(ctx context.Context, sessionID string, msg core.Message) {
	if err := a.deps.Messages.AddMessage(ctx, sessionID, msg); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("role", msg.Role).Msg("failed to save message")
	}
}

func systemPrompt(c advice.Context, snap *core.WeatherSnapshot, prefs core.PreferenceSet) string {
	var b strings.Builder
	b.WriteString("You are a friendly assistant that recommends outfits based on the weather. ")
	b.WriteString("Keep answers short and practical, and use the tools to look up weather or build outfits.\n\n")

	if snap != nil {
		fmt.Fprintf(&b, "Current city: %s. Weather: %.0f°F (feels like %.0f°F), %s, wind %.0f mph, %.0f%% chance of rain.\n",
			snap.City, snap.TemperatureF, snap.FeelsLikeF, snap.Condition, snap.WindMph, snap.RainChance)
	} else {
		fmt.Fprintf(&b, "Current city: %s. Weather not loaded yet.\n", c.City)
	}

	fmt.Fprintf(&b, "User style: %s. Preferred clothing: %s. Preferred colors: %s.",
		joinOr(prefs.Style), joinOr(prefs.ClothingTypes), joinOr(prefs.ColorPalette))
	return b.String()
}

func joinOr(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
