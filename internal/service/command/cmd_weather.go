package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
)

type CityCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewCityCommand(a Advisor) *CityCommand {
	return &CityCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *CityCommand) Name() string {
	return "city"
}

func (c *CityCommand) Description() string {
	return "Switch city and refresh weather and outfit"
}

func (c *CityCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Usage("/city [name]"),
			c.formatter.Examples([]string{"/city Seattle, WA", "/city Miami"}),
		), nil
	}

	b, err := c.advisor.SetCity(ctx, sessionID, strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return c.formatter.Briefing(b.Message, b.Weather, b.Outfit, b.Prompts), nil
}

type WeatherCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewWeatherCommand(a Advisor) *WeatherCommand {
	return &WeatherCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *WeatherCommand) Name() string {
	return "weather"
}

func (c *WeatherCommand) Description() string {
	return "Show current weather for your city"
}

func (c *WeatherCommand) Execute(ctx context.Context, sessionID string, _ []string) (string, error) {
	b, err := c.advisor.Briefing(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return c.formatter.Weather(b.Weather), nil
}

type SafetyCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewSafetyCommand(a Advisor) *SafetyCommand {
	return &SafetyCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *SafetyCommand) Name() string {
	return "safety"
}

func (c *SafetyCommand) Description() string {
	return "Check weather safety warnings"
}

func (c *SafetyCommand) Execute(ctx context.Context, sessionID string, _ []string) (string, error) {
	report, err := c.advisor.Safety(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !report.HasWarnings() {
		return c.formatter.Success("No weather safety concerns right now"), nil
	}
	return c.formatter.Combine(
		c.formatter.Label("Risk", string(report.Risk)),
		c.formatter.List(report.Warnings),
	), nil
}

type FavoriteCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewFavoriteCommand(a Advisor) *FavoriteCommand {
	return &FavoriteCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *FavoriteCommand) Name() string {
	return "fav"
}

func (c *FavoriteCommand) Description() string {
	return "Toggle a favorite city (defaults to the current one)"
}

func (c *FavoriteCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	city, added, err := c.advisor.ToggleFavorite(ctx, sessionID, strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return c.formatter.Success(advice.FavoriteToggled(city, added)), nil
}

type FavoritesCommand struct {
	advisor   Advisor
	formatter *ResponseFormatter
}

func NewFavoritesCommand(a Advisor) *FavoritesCommand {
	return &FavoritesCommand{advisor: a, formatter: NewResponseFormatter()}
}

func (c *FavoritesCommand) Name() string {
	return "favorites"
}

func (c *FavoritesCommand) Description() string {
	return "List favorite cities"
}

func (c *FavoritesCommand) Execute(ctx context.Context, _ string, _ []string) (string, error) {
	favs, err := c.advisor.Favorites(ctx)
	if err != nil {
		return "", err
	}
	if len(favs) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Favorites"),
			c.formatter.Tip("Use /fav to save the current city"),
		), nil
	}
	return c.formatter.Combine(
		c.formatter.Info("Favorites"),
		c.formatter.Label("Saved", fmt.Sprintf("%d", len(favs))),
		c.formatter.List(favs),
	), nil
}

var _ core.Command = (*FavoritesCommand)(nil)
