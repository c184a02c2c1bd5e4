package advice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptTopic(t *testing.T) {
	tests := []struct {
		prompt string
		want   Topic
	}{
		{"Good for hiking?", TopicHiking},
		{"Mountain hiking?", TopicHiking},
		{"Camping tonight?", TopicCamping},
		{"What if it snows?", TopicSnow},
		{"Skiing outfit?", TopicSnow},
		{"Pool party?", TopicBeach},
		{"Outdoor activities?", TopicOutdoor},
		{"Will rain continue?", TopicRain},
		{"City walking?", TopicCity},
		{"What about layering?", TopicLayering},
		{"Any FORMAL options?", TopicFormal},
		{"What if it gets colder?", TopicColder},
		{"Mountain trip?", TopicMountain},
		{"Cold weather gear?", TopicNone},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, PromptTopic(tt.prompt))
		})
	}
}

func TestSynthesize_Unhandled(t *testing.T) {
	_, err := Synthesize("tell me a joke", Context{City: "Denver", TemperatureF: 42, Condition: "clear"})
	assert.True(t, errors.Is(err, ErrUnhandled))
}

func TestSynthesize_CampingRating(t *testing.T) {
	got, err := Synthesize("Camping tonight?", Context{City: "Denver", TemperatureF: 42, Condition: "clear"})
	require.NoError(t, err)
	assert.Contains(t, got, "For camping in Denver tonight (42°F):")
	assert.Contains(t, got, "sleeping bag rated for 32°F")
}

func TestSynthesize_HikingExact(t *testing.T) {
	got, err := Synthesize("Good for hiking?", Context{City: "Seattle", TemperatureF: 70, Condition: "clear"})
	require.NoError(t, err)

	want := "Great for hiking in Seattle (70°F)!\n\n" +
		"• Moisture-wicking base layer\n" +
		"• Lightweight hiking pants or athletic joggers\n" +
		"• Waterproof hiking boots\n" +
		"• Fleece or windbreaker jacket\n" +
		"• Backpack with water and snacks\n" +
		"\n\n\nStay safe and enjoy the trail!"
	assert.Equal(t, want, got)
}

func TestSynthesize_ConditionalClauses(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		ctx        Context
		contains   []string
		notContain []string
	}{
		{
			name:     "hiking cold and wet",
			prompt:   "Good for hiking?",
			ctx:      Context{City: "Seattle", TemperatureF: 55, Condition: "Light rain"},
			contains: []string{"Extra layer", "Rain jacket and waterproof pack cover essential!"},
		},
		{
			name:       "hiking warm and dry",
			prompt:     "Good for hiking?",
			ctx:        Context{City: "Seattle", TemperatureF: 60, Condition: "clear"},
			notContain: []string{"Extra layer", "Rain jacket"},
		},
		{
			name:     "rain expected",
			prompt:   "Rain gear needed?",
			ctx:      Context{City: "Tacoma", TemperatureF: 50, Condition: "Moderate rain"},
			contains: []string{"Yes, rain gear needed in Tacoma!", "Rain is expected - stay dry!"},
		},
		{
			name:       "no rain",
			prompt:     "Rain gear needed?",
			ctx:        Context{City: "Tacoma", TemperatureF: 50, Condition: "Overcast"},
			contains:   []string{"No rain expected in Tacoma right now", "Better safe than soggy!"},
			notContain: []string{"Yes, rain gear"},
		},
		{
			name:     "formal cool",
			prompt:   "Any formal options?",
			ctx:      Context{City: "Boston", TemperatureF: 59.4, Condition: "clear"},
			contains: []string{"For formal occasions in Boston (59°F)", "light overcoat"},
		},
		{
			name:       "formal just under threshold displays rounded",
			prompt:     "Any formal options?",
			ctx:        Context{City: "Boston", TemperatureF: 59.5, Condition: "clear"},
			contains:   []string{"For formal occasions in Boston (60°F)", "light overcoat"},
			notContain: []string{"skip the jacket"},
		},
		{
			name:       "formal warm",
			prompt:     "Any formal options?",
			ctx:        Context{City: "Boston", TemperatureF: 60, Condition: "clear"},
			contains:   []string{"For a formal setting in Boston (60°F)", "skip the jacket"},
			notContain: []string{"overcoat"},
		},
		{
			name:     "hiking extra layer just under threshold",
			prompt:   "Good for hiking?",
			ctx:      Context{City: "Seattle", TemperatureF: 59.6, Condition: "cloudy"},
			contains: []string{"(60°F)", "Extra layer"},
		},
		{
			name:     "outdoor hydration just over threshold",
			prompt:   "Outdoor activities?",
			ctx:      Context{City: "Austin", TemperatureF: 75.3, Condition: "sunny"},
			contains: []string{"(75°F)", "Stay hydrated - bring water!"},
		},
		{
			name:       "city no scarf at threshold",
			prompt:     "City walking?",
			ctx:        Context{City: "Chicago", TemperatureF: 60, Condition: "clear"},
			notContain: []string{"Light scarf"},
		},
		{
			name:     "outdoor hydration when hot",
			prompt:   "Outdoor activities?",
			ctx:      Context{City: "Miami", TemperatureF: 88, Condition: "sunny"},
			contains: []string{"(88°F)", "Stay hydrated - bring water!"},
		},
		{
			name:     "city scarf when cool",
			prompt:   "City walking?",
			ctx:      Context{City: "Chicago", TemperatureF: 45, Condition: "clear"},
			contains: []string{"Light scarf for style and warmth"},
		},
		{
			name:       "colder has no temperature",
			prompt:     "What if it gets colder?",
			ctx:        Context{City: "Chicago", TemperatureF: 45, Condition: "clear"},
			contains:   []string{"If it gets colder in Chicago:", "below 45°F"},
			notContain: []string{"(45°F)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Synthesize(tt.prompt, tt.ctx)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContain {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestSynthesize_RoundsHalfUp(t *testing.T) {
	got, err := Synthesize("Beach ready?", Context{City: "Tampa", TemperatureF: 64.5})
	require.NoError(t, err)
	assert.Contains(t, got, "(65°F)")

	got, err = Synthesize("Beach ready?", Context{City: "Tampa", TemperatureF: -2.5})
	require.NoError(t, err)
	assert.Contains(t, got, "(-2°F)")
}

func TestSynthesize_Idempotent(t *testing.T) {
	ctx := Context{City: "Denver", TemperatureF: 28.7, Condition: "snow"}
	for _, p := range GeneratePrompts(ctx) {
		a, errA := Synthesize(p, ctx)
		b, errB := Synthesize(p, ctx)
		assert.Equal(t, a, b)
		assert.Equal(t, errA, errB)
	}
}
