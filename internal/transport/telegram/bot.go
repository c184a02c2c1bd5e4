package telegram

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/command"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

const (
	baseContextKey = "base_context"
	feedbackUnique = "feedback"
)

type Advisor interface {
	Briefing(ctx context.Context, sessionID string) (advisor.Briefing, error)
	QuickActions(ctx context.Context, sessionID string) []string
	Ask(ctx context.Context, sessionID, text string, onUpdate func(core.Message)) (advisor.Reply, error)
	QuickAction(ctx context.Context, sessionID, prompt string, onUpdate func(core.Message)) (advisor.Reply, error)
	Feedback(ctx context.Context, positive bool) string
}

type Bot struct {
	bot     *tele.Bot
	advisor Advisor
	router  core.CmdRouter
	sender  *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	a Advisor,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		advisor: a,
		router:  router,
		sender:  newSender(b),
		ownerID: cfg.OwnerID,
	}

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Only the owner may talk to the bot
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)
	b.Handle(&tele.Btn{Unique: feedbackUnique}, bot.handleFeedback)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func sessionID(c tele.Context) string {
	return fmt.Sprintf("telegram-%d", c.Chat().ID)
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	sid := sessionID(c)
	_ = c.Notify(tele.Typing)

	br, err := b.advisor.Briefing(ctx, sid)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load briefing")
		return c.Send(fmt.Sprintf("Error: %v", err))
	}

	f := command.NewResponseFormatter()
	md := f.Briefing(br.Message, br.Weather, br.Outfit, br.Prompts)
	return b.sender.sendMarkdown(ctx, c.Recipient(), md, quickActionKeyboard(br.Prompts))
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sid := sessionID(c)
	text := c.Text()

	if strings.HasPrefix(text, "/") {
		if resp, ok := b.router.Execute(ctx, sid, text); ok {
			return b.sender.sendMarkdown(ctx, c.Recipient(), resp, quickActionKeyboard(b.advisor.QuickActions(ctx, sid)))
		}
	}

	_ = c.Notify(tele.Typing)

	reply, err := b.answer(ctx, sid, text, func(msg core.Message) {
		for _, tc := range msg.ToolCalls {
			_ = c.Send(fmt.Sprintf("🛠 Checking: %s", tc.Function.Name))
			_ = c.Notify(tele.Typing)
		}
	})
	if err != nil {
		logger.Error().Err(err).Msg("ask failed")
		return c.Send(fmt.Sprintf("Error: %v", err))
	}

	return b.sender.sendMarkdown(ctx, c.Recipient(), reply.Text, feedbackKeyboard())
}

// answer treats a tap on one of the session's keyboard prompts as a quick
// action and everything else as chat.
func (b *Bot) answer(ctx context.Context, sid, text string, onUpdate func(core.Message)) (advisor.Reply, error) {
	if slices.Contains(b.advisor.QuickActions(ctx, sid), strings.TrimSpace(text)) {
		return b.advisor.QuickAction(ctx, sid, text, onUpdate)
	}
	return b.advisor.Ask(ctx, sid, text, onUpdate)
}

func (b *Bot) handleFeedback(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	msg := b.advisor.Feedback(ctx, c.Data() == "up")
	return c.Respond(&tele.CallbackResponse{Text: msg})
}

func quickActionKeyboard(prompts []string) *tele.ReplyMarkup {
	kb := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := make([]tele.Row, 0, len(prompts))
	for _, p := range prompts {
		rows = append(rows, kb.Row(kb.Text(p)))
	}
	kb.Reply(rows...)
	return kb
}

func feedbackKeyboard() *tele.ReplyMarkup {
	kb := &tele.ReplyMarkup{}
	kb.Inline(kb.Row(
		kb.Data("👍", feedbackUnique, "up"),
		kb.Data("👎", feedbackUnique, "down"),
	))
	return kb
}
