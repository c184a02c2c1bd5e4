package weather

import (
	"context"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

// FallbackSnapshot is served when no provider can answer.
func FallbackSnapshot(city string) core.WeatherSnapshot {
	return core.WeatherSnapshot{
		City:         city,
		TemperatureF: core.DefaultTemperatureF,
		FeelsLikeF:   63.0,
		Condition:    "partly cloudy",
		WindMph:      8.0,
		RainChance:   20.0,
		Fallback:     true,
	}
}

// Fallback never fails: provider errors are logged and replaced with
// FallbackSnapshot.
type Fallback struct {
	next       core.WeatherProvider
	onFallback func(city string, err error)
}

func NewFallback(next core.WeatherProvider, onFallback func(city string, err error)) *Fallback {
	return &Fallback{next: next, onFallback: onFallback}
}

func (f *Fallback) Current(ctx context.Context, city string) (core.WeatherSnapshot, error) {
	snap, err := f.next.Current(ctx, city)
	if err == nil {
		return snap, nil
	}

	log.FromCtx(ctx).Warn().Err(err).Str("city", city).Msg("weather lookup failed, using fallback")
	if f.onFallback != nil {
		f.onFallback(city, err)
	}
	return FallbackSnapshot(city), nil
}
