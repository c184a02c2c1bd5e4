package command

import (
	"context"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
)

type OutfitCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewOutfitCommand(a Advisor) *OutfitCommand {
	return &OutfitCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *OutfitCommand) Name() string {
	return "outfit"
}

func (c *OutfitCommand) Description() string {
	return "Suggest an outfit, optionally for an activity"
}

func (c *OutfitCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	activity := strings.Join(args, " ")
	items, err := c.advisor.Outfit(ctx, sessionID, activity)
	if err != nil {
		return "", err
	}

	sections := []string{c.formatter.Outfit(items)}
	if activity != "" {
		a := advice.ClassifyActivity(activity)
		sections = append(sections,
			c.formatter.Label("Activity", a.Category),
			c.formatter.Label("Formality", a.Formality),
			c.formatter.Tip(a.Notes),
		)
	}
	return c.formatter.Combine(sections...), nil
}

type ActionsCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewActionsCommand(a Advisor) *ActionsCommand {
	return &ActionsCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *ActionsCommand) Name() string {
	return "actions"
}

func (c *ActionsCommand) Description() string {
	return "Show suggested questions for the current weather"
}

func (c *ActionsCommand) Execute(ctx context.Context, sessionID string, _ []string) (string, error) {
	return c.formatter.Section("💡", "Try asking", c.formatter.List(c.advisor.QuickActions(ctx, sessionID))), nil
}

type PreferencesCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewPreferencesCommand(a Advisor) *PreferencesCommand {
	return &PreferencesCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *PreferencesCommand) Name() string {
	return "prefs"
}

func (c *PreferencesCommand) Description() string {
	return "Show or edit style, clothing and color preferences"
}

func (c *PreferencesCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) < 2 {
		prefs, err := c.advisor.Preferences(ctx)
		if err != nil {
			return "", err
		}
		return c.formatter.Combine(
			c.formatter.Info("Preferences"),
			c.formatter.Label("Style", strings.Join(prefs.Style, ", ")),
			c.formatter.Label("Types", strings.Join(prefs.ClothingTypes, ", ")),
			c.formatter.Label("Colors", strings.Join(prefs.ColorPalette, ", ")),
			c.formatter.Usage("/prefs [style|types|colors] [comma separated values]"),
			c.formatter.Examples([]string{"/prefs style Casual, Sporty", "/prefs colors Earth"}),
		), nil
	}

	value := strings.Join(args[1:], " ")
	var edit advisor.PreferenceEdit
	switch strings.ToLower(args[0]) {
	case "style":
		edit.Style = &value
	case "types":
		edit.ClothingTypes = &value
	case "colors":
		edit.ColorPalette = &value
	default:
		return c.formatter.Usage("/prefs [style|types|colors] [comma separated values]"), nil
	}

	prefs, err := c.advisor.UpdatePreferences(ctx, sessionID, edit)
	if err != nil {
		return "", err
	}
	return advice.PreferencesUpdated(prefs), nil
}

type FeedbackCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewFeedbackCommand(a Advisor) *FeedbackCommand {
	return &FeedbackCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *FeedbackCommand) Name() string {
	return "feedback"
}

func (c *FeedbackCommand) Description() string {
	return "Rate the last suggestion: up or down"
}

func (c *FeedbackCommand) Execute(ctx context.Context, _ string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Usage("/feedback [up|down]"), nil
	}
	switch strings.ToLower(args[0]) {
	case "up", "👍", "yes":
		return c.advisor.Feedback(ctx, true), nil
	case "down", "👎", "no":
		return c.advisor.Feedback(ctx, false), nil
	}
	return c.formatter.Usage("/feedback [up|down]"), nil
}
