package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func TestGreeting(t *testing.T) {
	assert.Equal(t,
		"Hi! Based on your preferences, here's a casual outfit for the Light rain weather in Seattle. Anything you'd like to change?",
		Greeting("Casual", "Light rain", "Seattle"))
	assert.Contains(t, Greeting("Sporty", "", "Denver"), "for the current weather in Denver")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Casual", "Sporty"}, SplitList(" Casual, ,Sporty ,"))
	assert.Nil(t, SplitList(" , "))
}

func TestPreferencesUpdated(t *testing.T) {
	got := PreferencesUpdated(core.DefaultPreferences())
	assert.Contains(t, got, "• Style: Casual, Minimalist")
	assert.Contains(t, got, "• Colors: Neutral, Blues")
}

func TestFavoriteToggled(t *testing.T) {
	assert.Equal(t, "Added Denver to favorites!", FavoriteToggled("Denver", true))
	assert.Equal(t, "Removed Denver from favorites.", FavoriteToggled("Denver", false))
}
