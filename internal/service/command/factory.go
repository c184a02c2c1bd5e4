package command

import (
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func NewCommands(
	cfg core.ProviderConfig,
	state core.GlobalState,
	models core.ModelLister,
	advisor Advisor,
) []core.Command {
	return []core.Command{
		NewModelCommand(cfg, state, models),
		NewCityCommand(advisor),
		NewWeatherCommand(advisor),
		NewOutfitCommand(advisor),
		NewActionsCommand(advisor),
		NewPreferencesCommand(advisor),
		NewFavoriteCommand(advisor),
		NewFavoritesCommand(advisor),
		NewSafetyCommand(advisor),
		NewFeedbackCommand(advisor),
	}
}
