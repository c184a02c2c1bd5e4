// Package outfit builds rule-based outfit suggestions from weather,
// activity and colour preferences.
package outfit

import (
	"context"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/keyword"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

const (
	coreWeatherItems = 6
	maxItems         = 10
)

var activities = keyword.NewTable(activityNone,
	keyword.Rules(activityHiking, "hiking", "camping"),
	keyword.Rules(activityFormal, "formal"),
	keyword.Rules(activityTravel, "travel"),
	keyword.Rules(activitySport, "sport", "gym", "exercise"),
	keyword.Rules(activityBeach, "beach", "pool"),
	keyword.Rules(activityCommute, "commut", "work", "city"),
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Suggest(ctx context.Context, req core.OutfitRequest) ([]core.GarmentItem, error) {
	palette := PrimaryPalette(req.Preferences.ColorPalette)
	items := Compose(req.TemperatureF, req.Condition, req.Activity, palette)

	log.FromCtx(ctx).Debug().
		Str("city", req.City).
		Str("activity", req.Activity).
		Str("palette", string(palette)).
		Int("items", len(items)).
		Msg("outfit generated")
	return items, nil
}

// Compose returns between 6 and 10 items. Formal activities get a
// weather-aware formal set; other activities keep the first six weather
// items and append activity items not already present.
func Compose(tempF float64, condition, activity string, palette Palette) []core.GarmentItem {
	if strings.Contains(strings.ToLower(activity), "formal") {
		return capItems(render(formalPieces(tempF, condition), palette))
	}

	items := render(weatherPieces[WeatherCategory(tempF, condition)], palette)
	if activity == "" {
		return capItems(items)
	}

	if len(items) > coreWeatherItems {
		items = items[:coreWeatherItems]
	}

	type key struct{ category, name string }
	seen := make(map[key]bool, maxItems)
	for _, it := range items {
		seen[key{it.Category, it.Name}] = true
	}

	for _, it := range render(activityPieces[activities.Match(activity)], palette) {
		k := key{it.Category, it.Name}
		if seen[k] || len(items) >= maxItems {
			continue
		}
		items = append(items, it)
		seen[k] = true
	}
	return items
}

func formalPieces(tempF float64, condition string) []piece {
	switch {
	case tempF < 50:
		return formalCold
	case keyword.Contains(condition, "rain"):
		return formalRain
	case tempF > 70 || keyword.Contains(condition, "sunny", "clear"):
		return formalSunny
	default:
		return formalMild
	}
}

func capItems(items []core.GarmentItem) []core.GarmentItem {
	if len(items) > maxItems {
		return items[:maxItems]
	}
	return items
}
