package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

const maxListedModels = 15

var errOfflineModel = errors.New("the offline provider has no models; run `outfit install` to pick one")

// ModelCommand shows the active chat model, lists what the provider offers
// and switches between models.
type ModelCommand struct {
	cfg       core.ProviderConfig
	state     core.GlobalState
	models    core.ModelLister
	formatter *ResponseFormatter
}

func NewModelCommand(
	cfg core.ProviderConfig,
	state core.GlobalState,
	models core.ModelLister,
) *ModelCommand {
	return &ModelCommand{
		cfg:       cfg,
		state:     state,
		models:    models,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModelCommand) Name() string {
	return "model"
}

func (c *ModelCommand) Description() string {
	return "Show, list or change the chat model"
}

func (c *ModelCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	offline := c.cfg.GetProvider() == "" || c.cfg.GetProvider() == "offline"

	if len(args) == 0 {
		model := c.cfg.GetModel()
		if offline {
			model = "built-in rules"
		}
		return c.formatter.Combine(
			c.formatter.Info("Current Model"),
			c.formatter.Label("Provider", c.cfg.GetProvider()),
			c.formatter.Label("Model", model),
			c.formatter.Usage("/model [list | model]"),
			c.formatter.Examples([]string{
				"/model list",
				"/model gpt-4o-mini",
				"/model claude-3-5-haiku-latest",
			}),
		), nil
	}

	if offline {
		return "", errOfflineModel
	}

	if args[0] == "list" {
		return c.list(ctx)
	}

	if err := c.state.ChangeModel(ctx, args[0]); err != nil {
		return "", fmt.Errorf("failed to set model: %w", err)
	}

	return c.formatter.Success(fmt.Sprintf("Model changed to: `%s/%s`", c.cfg.GetProvider(), c.cfg.GetModel())), nil
}

func (c *ModelCommand) list(ctx context.Context) (string, error) {
	if c.models == nil {
		return "", fmt.Errorf("provider %q cannot list models", c.cfg.GetProvider())
	}

	models, err := c.models.Models(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to list models")
		return "", fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, maxListedModels)
	for _, m := range models {
		if len(ids) == maxListedModels {
			break
		}
		ids = append(ids, fmt.Sprintf("`%s`", m.ID))
	}

	sections := []string{c.formatter.Section("🤖", "Available models", c.formatter.List(ids))}
	if len(models) > maxListedModels {
		sections = append(sections, c.formatter.Tip(fmt.Sprintf("showing %d of %d models", maxListedModels, len(models))))
	}
	return c.formatter.Combine(sections...), nil
}
