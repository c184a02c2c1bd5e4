// Package api serves the advisor over a JSON HTTP API.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/metrics"
)

type Advisor interface {
	SetCity(ctx context.Context, sessionID, city string) (advisor.Briefing, error)
	Briefing(ctx context.Context, sessionID string) (advisor.Briefing, error)
	Weather(ctx context.Context, sessionID string) (core.WeatherSnapshot, error)
	Outfit(ctx context.Context, sessionID, activity string) ([]advice.DecoratedItem, error)
	City(sessionID string) string
	QuickActions(ctx context.Context, sessionID string) []string
	Ask(ctx context.Context, sessionID, text string, onUpdate func(core.Message)) (advisor.Reply, error)
	QuickAction(ctx context.Context, sessionID, prompt string, onUpdate func(core.Message)) (advisor.Reply, error)
	Safety(ctx context.Context, sessionID string) (advice.SafetyReport, error)
	Preferences(ctx context.Context) (core.PreferenceSet, error)
	SavePreferences(ctx context.Context, sessionID string, prefs core.PreferenceSet) (core.PreferenceSet, error)
	ToggleFavorite(ctx context.Context, sessionID, city string) (string, bool, error)
	Favorites(ctx context.Context) ([]string, error)
	Feedback(ctx context.Context, positive bool) string
}

type Server struct {
	cfg  *config.HTTPConfig
	echo *echo.Echo
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, a Advisor, reg *metrics.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// every request starts from the service logger
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(log.WithLogger(req.Context(), *log.FromCtx(ctx))))
			return next(c)
		}
	})
	e.Use(RequestLogger(reg))
	e.Use(middleware.Recover())

	h := &handlers{advisor: a}
	e.GET("/health", h.health)
	e.GET("/api/briefing", h.briefing)
	e.GET("/api/weather", h.weather)
	e.GET("/api/outfit", h.outfit)
	e.GET("/api/actions", h.actions)
	e.POST("/api/actions", h.runAction)
	e.POST("/api/chat", h.chat)
	e.GET("/api/safety", h.safety)
	e.GET("/api/preferences", h.preferences)
	e.PUT("/api/preferences", h.savePreferences)
	e.GET("/api/favorites", h.favorites)
	e.POST("/api/favorites", h.toggleFavorite)
	e.POST("/api/feedback", h.feedback)
	e.GET("/api/metrics", reg.EchoHandlerText)

	return &Server{cfg: cfg, echo: e}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("address", s.cfg.Address).Msg("starting http api")
	if err := s.echo.Start(s.cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}
