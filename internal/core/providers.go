package core

import "context"

type WeatherProvider interface {
	Current(ctx context.Context, city string) (WeatherSnapshot, error)
}

type OutfitRequest struct {
	City         string
	TemperatureF float64
	Condition    string
	Activity     string
	Preferences  PreferenceSet
}

type OutfitProvider interface {
	Suggest(ctx context.Context, req OutfitRequest) ([]GarmentItem, error)
}

type AIProvider interface {
	Chat(ctx context.Context, history []Message, tools []Tool) (Message, error)
}

// ModelLister is implemented by providers that can enumerate models.
type ModelLister interface {
	Models(ctx context.Context) ([]Model, error)
}
