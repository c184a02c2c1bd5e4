package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func newTestClient(srv *httptest.Server) *OpenMeteo {
	return NewOpenMeteo(&config.WeatherConfig{
		ForecastURL:  srv.URL,
		GeocodingURL: srv.URL,
		Timeout:      time.Second,
		MaxRetries:   0,
	})
}

func TestConditionForCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{3, "Overcast"},
		{63, "Moderate rain"},
		{75, "Heavy snow"},
		{96, "Thunderstorm with hail"},
		{42, "Partly cloudy"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConditionForCode(tt.code))
	}
}

func TestCityKey(t *testing.T) {
	assert.Equal(t, "seattle", cityKey(" Seattle, WA"))
	assert.Equal(t, "new york", cityKey("New York"))

	c, ok := lookupKnown("Denver, CO")
	require.True(t, ok)
	assert.InDelta(t, 39.7392, c.Latitude, 0.0001)

	_, ok = lookupKnown("Tokyo")
	assert.False(t, ok)
}

func TestOpenMeteo_CurrentKnownCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "47.6062", r.URL.Query().Get("latitude"))
		assert.Equal(t, "fahrenheit", r.URL.Query().Get("temperature_unit"))
		assert.Equal(t, core.AppUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{"current":{"temperature_2m":52.36,"apparent_temperature":49.94,"weather_code":61,"wind_speed_10m":12.04,"precipitation_probability":80}}`))
	}))
	defer srv.Close()

	snap, err := newTestClient(srv).Current(context.Background(), "Seattle")
	require.NoError(t, err)
	assert.Equal(t, core.WeatherSnapshot{
		City:         "Seattle",
		TemperatureF: 52.4,
		FeelsLikeF:   49.9,
		Condition:    "Slight rain",
		WindMph:      12,
		RainChance:   80,
	}, snap)
}

func TestOpenMeteo_FeelsLikeDefaultsToTempMinusTwo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{"temperature_2m":70,"weather_code":0}}`))
	}))
	defer srv.Close()

	snap, err := newTestClient(srv).Current(context.Background(), "Austin")
	require.NoError(t, err)
	assert.Equal(t, 68.0, snap.FeelsLikeF)
	assert.Equal(t, "Clear sky", snap.Condition)
}

func TestOpenMeteo_Geocodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/search":
			assert.Equal(t, "Tokyo", r.URL.Query().Get("name"))
			assert.Equal(t, "1", r.URL.Query().Get("count"))
			w.Write([]byte(`{"results":[{"name":"Tokyo","latitude":35.6895,"longitude":139.6917}]}`))
		case "/v1/forecast":
			assert.Equal(t, "35.6895", r.URL.Query().Get("latitude"))
			w.Write([]byte(`{"current":{"temperature_2m":80,"weather_code":2}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	snap, err := newTestClient(srv).Current(context.Background(), "Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Overcast", snap.Condition)
}

func TestOpenMeteo_UnknownCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Current(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, core.ErrWeatherUnavailable)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestOpenMeteo_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewOpenMeteo(&config.WeatherConfig{
		ForecastURL:  srv.URL,
		GeocodingURL: srv.URL,
		Timeout:      time.Second,
		MaxRetries:   3,
	})
	_, err := client.Current(context.Background(), "Seattle")
	assert.ErrorIs(t, err, core.ErrWeatherUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

type stubProvider struct {
	calls int
	snap  core.WeatherSnapshot
	err   error
}

func (s *stubProvider) Current(_ context.Context, city string) (core.WeatherSnapshot, error) {
	s.calls++
	if s.err != nil {
		return core.WeatherSnapshot{}, s.err
	}
	snap := s.snap
	snap.City = city
	return snap, nil
}

func TestCached(t *testing.T) {
	stub := &stubProvider{snap: core.WeatherSnapshot{TemperatureF: 40, Condition: "Clear sky"}}
	cache := NewCached(stub, 5*time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	ctx := context.Background()
	_, err := cache.Current(ctx, "Seattle")
	require.NoError(t, err)

	snap, err := cache.Current(ctx, "  SEATTLE ")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "  SEATTLE ", snap.City)

	now = now.Add(5*time.Minute + time.Second)
	_, err = cache.Current(ctx, "seattle")
	require.NoError(t, err)
	assert.Equal(t, 2, stub.calls)

	cache.Invalidate()
	_, err = cache.Current(ctx, "seattle")
	require.NoError(t, err)
	assert.Equal(t, 3, stub.calls)
}

func TestCached_ErrorsNotCached(t *testing.T) {
	stub := &stubProvider{err: errors.New("boom")}
	cache := NewCached(stub, time.Minute)

	_, err := cache.Current(context.Background(), "x")
	assert.Error(t, err)
	_, err = cache.Current(context.Background(), "x")
	assert.Error(t, err)
	assert.Equal(t, 2, stub.calls)
}

func TestFallback(t *testing.T) {
	var failedCity string
	fb := NewFallback(&stubProvider{err: core.ErrWeatherUnavailable}, func(city string, err error) {
		failedCity = city
	})

	snap, err := fb.Current(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Equal(t, FallbackSnapshot("Nowhere"), snap)
	assert.True(t, snap.Fallback)
	assert.Equal(t, 65.0, snap.TemperatureF)
	assert.Equal(t, 63.0, snap.FeelsLikeF)
	assert.Equal(t, "partly cloudy", snap.Condition)
	assert.Equal(t, "Nowhere", failedCity)
}

func TestFallback_PassesThrough(t *testing.T) {
	fb := NewFallback(&stubProvider{snap: core.WeatherSnapshot{TemperatureF: 90}}, nil)

	snap, err := fb.Current(context.Background(), "Miami")
	require.NoError(t, err)
	assert.False(t, snap.Fallback)
	assert.Equal(t, 90.0, snap.TemperatureF)
}
