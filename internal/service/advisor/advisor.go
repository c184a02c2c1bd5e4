// Package advisor owns per-session state and ties the weather, outfit and
// conversational collaborators to the advice rules.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/providers/weather"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/metrics"
)

var (
	ErrEmptyCity    = errors.New("city is required")
	ErrEmptyMessage = errors.New("message is required")
)

type Options struct {
	UserID        string
	DefaultCity   string
	HistoryWindow int
	TokenBudget   int
	MaxToolRounds int
}

func (o *Options) setDefaults() {
	if o.UserID == "" {
		o.UserID = "local"
	}
	if o.DefaultCity == "" {
		o.DefaultCity = core.DefaultCity
	}
	if o.HistoryWindow <= 0 {
		o.HistoryWindow = 30
	}
	if o.TokenBudget <= 0 {
		o.TokenBudget = 3000
	}
	if o.MaxToolRounds <= 0 {
		o.MaxToolRounds = 4
	}
}

type Deps struct {
	Weather     core.WeatherProvider
	Outfits     core.OutfitProvider
	AI          core.AIProvider
	Preferences core.PreferencesRepository
	Favorites   core.FavoritesRepository
	Messages    core.MessagesRepository
	Metrics     *metrics.Registry
}

type Advisor struct {
	opts    Options
	deps    Deps
	counter TokenCounter

	mu       sync.Mutex
	sessions map[string]*session
}

func New(opts Options, deps Deps) *Advisor {
	opts.setDefaults()
	return &Advisor{
		opts:     opts,
		deps:     deps,
		counter:  NewTiktokenCounter(),
		sessions: make(map[string]*session),
	}
}

type session struct {
	mu      sync.Mutex
	city    string
	weather *core.WeatherSnapshot
	outfit  []advice.DecoratedItem
}

// context falls back to the default city and 65°F until weather is known.
func (s *session) context(defaultCity string) advice.Context {
	if s.weather != nil {
		return advice.Context{City: s.weather.City, TemperatureF: s.weather.TemperatureF, Condition: s.weather.Condition}
	}
	city := s.city
	if city == "" {
		city = defaultCity
	}
	return advice.Context{City: city, TemperatureF: core.DefaultTemperatureF}
}

// session returns the state for id, creating it on first use. The caller
// must lock the returned session.
func (a *Advisor) session(id string) *session {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, ok := a.sessions[id]
	if !ok {
		s = &session{}
		a.sessions[id] = s
	}
	return s
}

type Briefing struct {
	Weather        core.WeatherSnapshot   `json:"weather"`
	Classification advice.Classification  `json:"classification"`
	Outfit         []advice.DecoratedItem `json:"outfit"`
	Prompts        []string               `json:"prompts"`
	Message        string                 `json:"message"`
}

type Reply struct {
	Text   string                 `json:"response"`
	Source string                 `json:"source"`
	Outfit []advice.DecoratedItem `json:"outfit,omitempty"`
}

const (
	SourceQuickAction = "quick_action"
	SourceAssistant   = "assistant"
	SourceRules       = "rules"
	SourceFallback    = "fallback"
)

func (a *Advisor) briefing(s *session, message string) Briefing {
	snap := *s.weather
	return Briefing{
		Weather:        snap,
		Classification: advice.Classify(snap.Condition, snap.TemperatureF),
		Outfit:         s.outfit,
		Prompts:        advice.GeneratePrompts(s.context(a.opts.DefaultCity)),
		Message:        message,
	}
}

func (a *Advisor) loadWeather(ctx context.Context, city string) core.WeatherSnapshot {
	snap, err := a.deps.Weather.Current(ctx, city)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("city", city).Msg("weather provider failed")
		snap = weather.FallbackSnapshot(city)
	}
	if snap.Fallback {
		a.deps.Metrics.Inc(ctx, metrics.WeatherFallbacks, nil, 1)
	}
	return snap
}

func (a *Advisor) suggest(ctx context.Context, snap core.WeatherSnapshot, activity string, prefs core.PreferenceSet) ([]advice.DecoratedItem, error) {
	items, err := a.deps.Outfits.Suggest(ctx, core.OutfitRequest{
		City:         snap.City,
		TemperatureF: snap.TemperatureF,
		Condition:    snap.Condition,
		Activity:     activity,
		Preferences:  prefs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to suggest outfit: %w", err)
	}
	return advice.DecorateOutfit(items), nil
}

// setCity must be called with s locked.
func (a *Advisor) setCity(ctx context.Context, s *session, city string) error {
	prefs, err := a.Preferences(ctx)
	if err != nil {
		return err
	}

	snap := a.loadWeather(ctx, city)
	outfit, err := a.suggest(ctx, snap, "", prefs)
	if err != nil {
		return err
	}

	s.city = city
	s.weather = &snap
	s.outfit = outfit
	return nil
}

// ensureWeather loads the default city for a fresh session. It must be
// called with s locked.
func (a *Advisor) ensureWeather(ctx context.Context, s *session) error {
	if s.weather != nil {
		return nil
	}
	city := s.city
	if city == "" {
		city = a.opts.DefaultCity
	}
	return a.setCity(ctx, s, city)
}

func (a *Advisor) SetCity(ctx context.Context, sessionID, city string) (Briefing, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Briefing{}, ErrEmptyCity
	}

	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := a.setCity(ctx, s, city); err != nil {
		return Briefing{}, err
	}

	msg := advice.CityChanged(city)
	if s.weather.Fallback {
		msg = advice.WeatherFailure(city)
	}
	return a.briefing(s, msg), nil
}

// Briefing returns the current state with a greeting, loading the default
// city on first use.
func (a *Advisor) Briefing(ctx context.Context, sessionID string) (Briefing, error) {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := a.ensureWeather(ctx, s); err != nil {
		return Briefing{}, err
	}

	prefs, err := a.Preferences(ctx)
	if err != nil {
		return Briefing{}, err
	}

	msg := advice.Greeting(prefs.PrimaryStyle(), s.weather.Condition, s.weather.City)
	if s.weather.Fallback {
		msg = advice.WeatherFailure(s.weather.City)
	}
	return a.briefing(s, msg), nil
}

func (a *Advisor) Weather(ctx context.Context, sessionID string) (core.WeatherSnapshot, error) {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := a.ensureWeather(ctx, s); err != nil {
		return core.WeatherSnapshot{}, err
	}
	return *s.weather, nil
}

// Outfit regenerates the session outfit for an optional activity.
func (a *Advisor) Outfit(ctx context.Context, sessionID, activity string) ([]advice.DecoratedItem, error) {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := a.ensureWeather(ctx, s); err != nil {
		return nil, err
	}

	prefs, err := a.Preferences(ctx)
	if err != nil {
		return nil, err
	}

	outfit, err := a.suggest(ctx, *s.weather, strings.TrimSpace(activity), prefs)
	if err != nil {
		return nil, err
	}
	s.outfit = outfit
	return outfit, nil
}

// City reports the session city without fetching weather.
func (a *Advisor) City(sessionID string) string {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.context(a.opts.DefaultCity).City
}

// QuickActions never fetches weather.
func (a *Advisor) QuickActions(_ context.Context, sessionID string) []string {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	return advice.GeneratePrompts(s.context(a.opts.DefaultCity))
}

func (a *Advisor) Safety(ctx context.Context, sessionID string) (advice.SafetyReport, error) {
	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := a.ensureWeather(ctx, s); err != nil {
		return advice.SafetyReport{}, err
	}
	w := s.weather
	return advice.CheckSafety(w.TemperatureF, w.WindMph, w.RainChance, w.Condition), nil
}

func (a *Advisor) Preferences(ctx context.Context) (core.PreferenceSet, error) {
	prefs, err := a.deps.Preferences.GetPreferences(ctx, a.opts.UserID)
	if err != nil {
		return core.PreferenceSet{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// PreferenceEdit holds comma separated lists; nil fields are left as is.
type PreferenceEdit struct {
	Style         *string
	ClothingTypes *string
	ColorPalette  *string
}

func (a *Advisor) UpdatePreferences(ctx context.Context, sessionID string, edit PreferenceEdit) (core.PreferenceSet, error) {
	prefs, err := a.Preferences(ctx)
	if err != nil {
		return core.PreferenceSet{}, err
	}
	if edit.Style != nil {
		prefs.Style = advice.SplitList(*edit.Style)
	}
	if edit.ClothingTypes != nil {
		prefs.ClothingTypes = advice.SplitList(*edit.ClothingTypes)
	}
	if edit.ColorPalette != nil {
		prefs.ColorPalette = advice.SplitList(*edit.ColorPalette)
	}
	return a.SavePreferences(ctx, sessionID, prefs)
}

// SavePreferences stores a full set, dropping blank entries, and refreshes
// the session outfit when weather is known.
func (a *Advisor) SavePreferences(ctx context.Context, sessionID string, prefs core.PreferenceSet) (core.PreferenceSet, error) {
	prefs = core.PreferenceSet{
		Style:         advice.SplitList(strings.Join(prefs.Style, ",")),
		ClothingTypes: advice.SplitList(strings.Join(prefs.ClothingTypes, ",")),
		ColorPalette:  advice.SplitList(strings.Join(prefs.ColorPalette, ",")),
	}
	if err := a.deps.Preferences.SavePreferences(ctx, a.opts.UserID, prefs); err != nil {
		return core.PreferenceSet{}, fmt.Errorf("failed to save preferences: %w", err)
	}

	s := a.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.weather != nil {
		outfit, err := a.suggest(ctx, *s.weather, "", prefs)
		if err != nil {
			return prefs, err
		}
		s.outfit = outfit
	}
	return prefs, nil
}

// ToggleFavorite uses the session city when city is empty. It returns the
// city acted on and whether it is now a favorite.
func (a *Advisor) ToggleFavorite(ctx context.Context, sessionID, city string) (string, bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		s := a.session(sessionID)
		s.mu.Lock()
		city = s.context(a.opts.DefaultCity).City
		s.mu.Unlock()
	}

	added, err := a.deps.Favorites.ToggleFavorite(ctx, a.opts.UserID, city)
	if err != nil {
		return "", false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return city, added, nil
}

func (a *Advisor) Favorites(ctx context.Context) ([]string, error) {
	favs, err := a.deps.Favorites.ListFavorites(ctx, a.opts.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favs, nil
}

func (a *Advisor) Feedback(ctx context.Context, positive bool) string {
	vote := "down"
	if positive {
		vote = "up"
	}
	a.deps.Metrics.Inc(ctx, metrics.FeedbackSubmitted, metrics.Labels{"vote": vote}, 1)
	log.FromCtx(ctx).Info().Bool("positive", positive).Msg("feedback received")
	return advice.Feedback(positive)
}
