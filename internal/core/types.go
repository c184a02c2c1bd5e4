package core

import (
	"encoding/json"
	"errors"
)

const (
	AppName          = "Outfit Advisor"
	AppUserAgent     = "OutfitAdvisor/0.1"
	AppRepositoryURL = "https://github.com/tabitha-dev/weather-outfit-advisor"
	AppVersion       = "0.1.0"

	DefaultCity         = "Redmond"
	DefaultTemperatureF = 65.0
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

var (
	ErrWeatherUnavailable = errors.New("weather data unavailable")
	ErrNotFound           = errors.New("not found")
	// ErrNoProvider is returned by Chat when no conversational back-end is
	// configured.
	ErrNoProvider         = errors.New("no conversational provider configured")
)

// WeatherSnapshot is read-only input to the rule engine.
type WeatherSnapshot struct {
	City         string  `json:"city"`
	TemperatureF float64 `json:"temperature"`
	FeelsLikeF   float64 `json:"feels_like"`
	Condition    string  `json:"condition"`
	WindMph      float64 `json:"wind_mph,omitempty"`
	RainChance   float64 `json:"rain_chance,omitempty"`
	Fallback     bool    `json:"fallback,omitempty"`
}

type GarmentItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type PreferenceSet struct {
	Style         []string `json:"style"`
	ClothingTypes []string `json:"clothingTypes"`
	ColorPalette  []string `json:"colorPalette"`
}

func DefaultPreferences() PreferenceSet {
	return PreferenceSet{
		Style:         []string{"Casual", "Minimalist"},
		ClothingTypes: []string{"Jackets", "Jeans", "Sneakers"},
		ColorPalette:  []string{"Neutral", "Blues"},
	}
}

// PrimaryStyle returns the first style or "casual".
func (p PreferenceSet) PrimaryStyle() string {
	if len(p.Style) == 0 {
		return "casual"
	}
	return p.Style[0]
}

type Model struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength int    `json:"context_length"`
}

type Function struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"` // JSON Schema
}

type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}
