package config

import (
	"context"
	"time"
)

type WeatherConfig struct {
	ForecastURL  string        `env:"OUTFIT_WEATHER_FORECAST_URL" envDefault:"https://api.open-meteo.com"`
	GeocodingURL string        `env:"OUTFIT_WEATHER_GEOCODING_URL" envDefault:"https://geocoding-api.open-meteo.com"`
	Timeout      time.Duration `env:"OUTFIT_WEATHER_TIMEOUT" envDefault:"10s"`
	CacheTTL     time.Duration `env:"OUTFIT_WEATHER_CACHE_TTL" envDefault:"5m"`
	MaxRetries   int           `env:"OUTFIT_WEATHER_MAX_RETRIES" envDefault:"2"`
}

func NewWeatherConfig(ctx context.Context) *WeatherConfig {
	c := &WeatherConfig{}
	mustParse(ctx, "weather", c)
	return c
}
