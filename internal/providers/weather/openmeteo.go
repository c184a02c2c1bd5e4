package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/retry"
)

// OpenMeteo reads current conditions from the free Open-Meteo API.
type OpenMeteo struct {
	forecastURL  string
	geocodingURL string
	client       *http.Client
	retrier      *retry.Retrier
}

func NewOpenMeteo(cfg *config.WeatherConfig) *OpenMeteo {
	rc := retry.NewDefaultConfig()
	rc.MaxRetries = cfg.MaxRetries

	return &OpenMeteo{
		forecastURL:  strings.TrimRight(cfg.ForecastURL, "/"),
		geocodingURL: strings.TrimRight(cfg.GeocodingURL, "/"),
		client:       &http.Client{Timeout: cfg.Timeout},
		retrier:      retry.NewRetrier(rc),
	}
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature   float64  `json:"temperature_2m"`
		ApparentTemp  *float64 `json:"apparent_temperature"`
		WeatherCode   int      `json:"weather_code"`
		WindSpeed     float64  `json:"wind_speed_10m"`
		Precipitation float64  `json:"precipitation_probability"`
	} `json:"current"`
}

func (o *OpenMeteo) Current(ctx context.Context, city string) (core.WeatherSnapshot, error) {
	coords, err := o.Geocode(ctx, city)
	if err != nil {
		return core.WeatherSnapshot{}, fmt.Errorf("%w: %w", core.ErrWeatherUnavailable, err)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', 4, 64))
	q.Set("current", "temperature_2m,apparent_temperature,weather_code,wind_speed_10m,precipitation_probability")
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")

	var resp forecastResponse
	if err := o.getJSON(ctx, o.forecastURL+"/v1/forecast?"+q.Encode(), &resp); err != nil {
		return core.WeatherSnapshot{}, fmt.Errorf("%w: forecast for %q: %w", core.ErrWeatherUnavailable, city, err)
	}

	temp := round1(resp.Current.Temperature)
	feels := round1(resp.Current.Temperature - 2)
	if resp.Current.ApparentTemp != nil {
		feels = round1(*resp.Current.ApparentTemp)
	}

	snap := core.WeatherSnapshot{
		City:         city,
		TemperatureF: temp,
		FeelsLikeF:   feels,
		Condition:    ConditionForCode(resp.Current.WeatherCode),
		WindMph:      round1(resp.Current.WindSpeed),
		RainChance:   resp.Current.Precipitation,
	}

	log.FromCtx(ctx).Debug().
		Str("city", city).
		Float64("temp", snap.TemperatureF).
		Str("condition", snap.Condition).
		Msg("weather loaded")
	return snap, nil
}

// Geocode resolves well-known cities locally and asks the geocoding API
// for the rest.
func (o *OpenMeteo) Geocode(ctx context.Context, city string) (Coordinates, error) {
	if c, ok := lookupKnown(city); ok {
		return c, nil
	}

	name := strings.TrimSpace(city)
	if name == "" {
		return Coordinates{}, fmt.Errorf("empty city: %w", core.ErrNotFound)
	}

	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp geocodingResponse
	if err := o.getJSON(ctx, o.geocodingURL+"/v1/search?"+q.Encode(), &resp); err != nil {
		return Coordinates{}, fmt.Errorf("failed to geocode %q: %w", city, err)
	}
	if len(resp.Results) == 0 {
		return Coordinates{}, fmt.Errorf("city %q: %w", city, core.ErrNotFound)
	}

	r := resp.Results[0]
	return Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}, nil
}

func (o *OpenMeteo) getJSON(ctx context.Context, endpoint string, dst any) error {
	return o.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("User-Agent", core.AppUserAgent)

		resp, err := o.client.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return retry.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			err := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
				return retry.Permanent(err)
			}
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
