package command

import (
	"context"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
)

// Advisor is the part of the advisor service the commands drive.
type Advisor interface {
	SetCity(ctx context.Context, sessionID, city string) (advisor.Briefing, error)
	Briefing(ctx context.Context, sessionID string) (advisor.Briefing, error)
	Outfit(ctx context.Context, sessionID, activity string) ([]advice.DecoratedItem, error)
	QuickActions(ctx context.Context, sessionID string) []string
	Safety(ctx context.Context, sessionID string) (advice.SafetyReport, error)
	Preferences(ctx context.Context) (core.PreferenceSet, error)
	UpdatePreferences(ctx context.Context, sessionID string, edit advisor.PreferenceEdit) (core.PreferenceSet, error)
	ToggleFavorite(ctx context.Context, sessionID, city string) (string, bool, error)
	Favorites(ctx context.Context) ([]string, error)
	Feedback(ctx context.Context, positive bool) string
}
