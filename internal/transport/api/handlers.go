package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
)

const (
	headerSessionID  = "X-Session-ID"
	defaultSessionID = "http-default"
)

type handlers struct {
	advisor Advisor
}

type errorResponse struct {
	Error string `json:"error"`
}

func sessionID(c echo.Context) string {
	if id := c.Request().Header.Get(headerSessionID); id != "" {
		return id
	}
	if id := c.QueryParam("session_id"); id != "" {
		return id
	}
	return defaultSessionID
}

func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, advisor.ErrEmptyCity), errors.Is(err, advisor.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return err
	}
}

// withCity switches the session city when the request names one.
func (h *handlers) withCity(c echo.Context, city string) error {
	if strings.TrimSpace(city) == "" {
		return nil
	}
	_, err := h.advisor.SetCity(c.Request().Context(), sessionID(c), city)
	return err
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "outfit-advisor"})
}

func (h *handlers) briefing(c echo.Context) error {
	ctx := c.Request().Context()
	if city := c.QueryParam("city"); strings.TrimSpace(city) != "" {
		b, err := h.advisor.SetCity(ctx, sessionID(c), city)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, b)
	}

	b, err := h.advisor.Briefing(ctx, sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

type weatherResponse struct {
	core.WeatherSnapshot
	Classification advice.Classification `json:"classification"`
}

func (h *handlers) weather(c echo.Context) error {
	if err := h.withCity(c, c.QueryParam("city")); err != nil {
		return fail(c, err)
	}

	w, err := h.advisor.Weather(c.Request().Context(), sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, weatherResponse{
		WeatherSnapshot: w,
		Classification:  advice.Classify(w.Condition, w.TemperatureF),
	})
}

type outfitResponse struct {
	City         string                 `json:"city"`
	TemperatureF float64                `json:"temperature"`
	Items        []advice.DecoratedItem `json:"items"`
}

func (h *handlers) outfit(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.withCity(c, c.QueryParam("city")); err != nil {
		return fail(c, err)
	}

	items, err := h.advisor.Outfit(ctx, sessionID(c), c.QueryParam("activity"))
	if err != nil {
		return fail(c, err)
	}
	w, err := h.advisor.Weather(ctx, sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, outfitResponse{City: w.City, TemperatureF: w.TemperatureF, Items: items})
}

func (h *handlers) actions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"prompts": h.advisor.QuickActions(c.Request().Context(), sessionID(c)),
	})
}

type actionRequest struct {
	Prompt string `json:"prompt"`
}

func (h *handlers) runAction(c echo.Context) error {
	var req actionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No prompt provided"})
	}

	reply, err := h.advisor.QuickAction(c.Request().Context(), sessionID(c), req.Prompt, nil)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}

type chatRequest struct {
	Message   string `json:"message"`
	City      string `json:"city"`
	SessionID string `json:"session_id"`
}

func (h *handlers) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No message provided"})
	}

	sid := req.SessionID
	if sid == "" {
		sid = sessionID(c)
	}

	ctx := c.Request().Context()
	if city := strings.TrimSpace(req.City); city != "" && !strings.EqualFold(h.advisor.City(sid), city) {
		if _, err := h.advisor.SetCity(ctx, sid, city); err != nil {
			return fail(c, err)
		}
	}

	reply, err := h.advisor.Ask(ctx, sid, req.Message, nil)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reply)
}

func (h *handlers) safety(c echo.Context) error {
	if err := h.withCity(c, c.QueryParam("city")); err != nil {
		return fail(c, err)
	}
	report, err := h.advisor.Safety(c.Request().Context(), sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *handlers) preferences(c echo.Context) error {
	prefs, err := h.advisor.Preferences(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, prefs)
}

func (h *handlers) savePreferences(c echo.Context) error {
	var prefs core.PreferenceSet
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	saved, err := h.advisor.SavePreferences(c.Request().Context(), sessionID(c), prefs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"preferences": saved,
		"message":     advice.PreferencesUpdated(saved),
	})
}

func (h *handlers) favorites(c echo.Context) error {
	favs, err := h.advisor.Favorites(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string][]string{"favorites": favs})
}

type favoriteRequest struct {
	City string `json:"city"`
}

func (h *handlers) toggleFavorite(c echo.Context) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	city, added, err := h.advisor.ToggleFavorite(c.Request().Context(), sessionID(c), req.City)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"city":     city,
		"favorite": added,
		"message":  advice.FavoriteToggled(city, added),
	})
}

type feedbackRequest struct {
	Positive bool `json:"positive"`
}

func (h *handlers) feedback(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": h.advisor.Feedback(c.Request().Context(), req.Positive),
	})
}
