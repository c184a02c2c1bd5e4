package advice

import (
	"fmt"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

const (
	FeedbackPositive = "Glad you like it! Let me know if you need anything else."
	FeedbackNegative = "Thanks for the feedback! Would you like me to suggest something different?"
	ChatFailure      = "Sorry, I had trouble processing that. Could you try again?"
)

// Greeting opens a session. An empty condition reads as "current".
func Greeting(style, condition, city string) string {
	if condition == "" {
		condition = "current"
	}
	return fmt.Sprintf("Hi! Based on your preferences, here's a %s outfit for the %s weather in %s. Anything you'd like to change?",
		strings.ToLower(style), condition, city)
}

func CityChanged(city string) string {
	return fmt.Sprintf("I've updated the outfit suggestions for %s. How does this look?", city)
}

func WeatherFailure(city string) string {
	return fmt.Sprintf("Sorry, I couldn't fetch weather data for %s. Using default suggestions.", city)
}

// PreferencesUpdated summarizes a saved preference set.
func PreferencesUpdated(p core.PreferenceSet) string {
	return fmt.Sprintf("Perfect! I've updated your preferences:\n\n• Style: %s\n• Types: %s\n• Colors: %s\n\nYour outfit suggestions have been refreshed!",
		strings.Join(p.Style, ", "), strings.Join(p.ClothingTypes, ", "), strings.Join(p.ColorPalette, ", "))
}

func FavoriteToggled(city string, added bool) string {
	if added {
		return fmt.Sprintf("Added %s to favorites!", city)
	}
	return fmt.Sprintf("Removed %s from favorites.", city)
}

func Feedback(positive bool) string {
	if positive {
		return FeedbackPositive
	}
	return FeedbackNegative
}

// SplitList parses a comma separated preference edit, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
