// Package mcpsrv exposes the advisor as Model Context Protocol tools over
// stdio.
package mcpsrv

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

const defaultSessionID = "mcp"

type Advisor interface {
	SetCity(ctx context.Context, sessionID, city string) (advisor.Briefing, error)
	Briefing(ctx context.Context, sessionID string) (advisor.Briefing, error)
	Weather(ctx context.Context, sessionID string) (core.WeatherSnapshot, error)
	Outfit(ctx context.Context, sessionID, activity string) ([]advice.DecoratedItem, error)
	QuickActions(ctx context.Context, sessionID string) []string
	Ask(ctx context.Context, sessionID, text string, onUpdate func(core.Message)) (advisor.Reply, error)
	QuickAction(ctx context.Context, sessionID, prompt string, onUpdate func(core.Message)) (advisor.Reply, error)
	Safety(ctx context.Context, sessionID string) (advice.SafetyReport, error)
	Preferences(ctx context.Context) (core.PreferenceSet, error)
	UpdatePreferences(ctx context.Context, sessionID string, edit advisor.PreferenceEdit) (core.PreferenceSet, error)
	ToggleFavorite(ctx context.Context, sessionID, city string) (string, bool, error)
	Favorites(ctx context.Context) ([]string, error)
}

type Server struct {
	mcp     *server.MCPServer
	advisor Advisor
	in      io.Reader
	out     io.Writer
}

func NewServer(a Advisor, in io.Reader, out io.Writer) *Server {
	s := &Server{
		mcp:     server.NewMCPServer(core.AppName, core.AppVersion, server.WithToolCapabilities(false)),
		advisor: a,
		in:      in,
		out:     out,
	}
	s.registerTools()
	return s
}

// Start serves until ctx is cancelled or the input closes.
func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting mcp stdio server")
	err := server.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) registerTools() {
	sessionArg := mcp.WithString("session_id", mcp.Description("Conversation to use; defaults to a shared one"))
	cityArg := mcp.WithString("city", mcp.Description("City name, e.g. Seattle, WA. Defaults to the session city"))

	s.mcp.AddTool(mcp.NewTool("get_briefing",
		mcp.WithDescription("Weather, outfit and suggested questions for the session city"),
		cityArg, sessionArg,
	), s.briefing)

	s.mcp.AddTool(mcp.NewTool("get_weather",
		mcp.WithDescription("Current weather in Fahrenheit with an icon and alert"),
		cityArg, sessionArg,
	), s.weather)

	s.mcp.AddTool(mcp.NewTool("suggest_outfit",
		mcp.WithDescription("Outfit for the current weather, optionally for an activity"),
		cityArg,
		mcp.WithString("activity", mcp.Description("e.g. hiking, formal dinner, commute")),
		sessionArg,
	), s.outfit)

	s.mcp.AddTool(mcp.NewTool("quick_actions",
		mcp.WithDescription("Suggested questions for the session's weather and region"),
		sessionArg,
	), s.quickActions)

	s.mcp.AddTool(mcp.NewTool("quick_action",
		mcp.WithDescription("Run one of the suggested questions from quick_actions"),
		mcp.WithString("prompt", mcp.Required(), mcp.Description("The suggested question")),
		sessionArg,
	), s.quickAction)

	s.mcp.AddTool(mcp.NewTool("ask",
		mcp.WithDescription("Ask the outfit advisor a question"),
		mcp.WithString("message", mcp.Required(), mcp.Description("The question")),
		sessionArg,
	), s.ask)

	s.mcp.AddTool(mcp.NewTool("check_safety",
		mcp.WithDescription("Weather safety warnings and risk level"),
		cityArg, sessionArg,
	), s.safety)

	s.mcp.AddTool(mcp.NewTool("get_preferences",
		mcp.WithDescription("Stored style, clothing type and color preferences"),
	), s.preferences)

	s.mcp.AddTool(mcp.NewTool("set_preferences",
		mcp.WithDescription("Replace preference lists; each value is comma separated and omitted ones are kept"),
		mcp.WithString("style"),
		mcp.WithString("clothing_types"),
		mcp.WithString("color_palette"),
		sessionArg,
	), s.setPreferences)

	s.mcp.AddTool(mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Add or remove a favorite city"),
		cityArg, sessionArg,
	), s.toggleFavorite)

	s.mcp.AddTool(mcp.NewTool("list_favorites",
		mcp.WithDescription("Favorite cities in the order they were added"),
	), s.favorites)
}

func sessionID(req mcp.CallToolRequest) string {
	return req.GetString("session_id", defaultSessionID)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

// withCity switches the session city when the call names one.
func (s *Server) withCity(ctx context.Context, req mcp.CallToolRequest) error {
	if city := req.GetString("city", ""); city != "" {
		_, err := s.advisor.SetCity(ctx, sessionID(req), city)
		return err
	}
	return nil
}

func (s *Server) briefing(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if city := req.GetString("city", ""); city != "" {
		b, err := s.advisor.SetCity(ctx, sessionID(req), city)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(b)
	}

	b, err := s.advisor.Briefing(ctx, sessionID(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(b)
}

func (s *Server) weather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.withCity(ctx, req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	w, err := s.advisor.Weather(ctx, sessionID(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(struct {
		core.WeatherSnapshot
		Classification advice.Classification `json:"classification"`
	}{w, advice.Classify(w.Condition, w.TemperatureF)})
}

func (s *Server) outfit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.withCity(ctx, req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items, err := s.advisor.Outfit(ctx, sessionID(req), req.GetString("activity", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(items)
}

func (s *Server) quickActions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.advisor.QuickActions(ctx, sessionID(req)))
}

func (s *Server) quickAction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reply, err := s.advisor.QuickAction(ctx, sessionID(req), prompt, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reply.Text), nil
}

func (s *Server) ask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reply, err := s.advisor.Ask(ctx, sessionID(req), message, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reply.Text), nil
}

func (s *Server) safety(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.withCity(ctx, req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	report, err := s.advisor.Safety(ctx, sessionID(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(report)
}

func (s *Server) preferences(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs, err := s.advisor.Preferences(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(prefs)
}

func optional(req mcp.CallToolRequest, name string) *string {
	args := req.GetArguments()
	if _, ok := args[name]; !ok {
		return nil
	}
	v := req.GetString(name, "")
	return &v
}

func (s *Server) setPreferences(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefs, err := s.advisor.UpdatePreferences(ctx, sessionID(req), advisor.PreferenceEdit{
		Style:         optional(req, "style"),
		ClothingTypes: optional(req, "clothing_types"),
		ColorPalette:  optional(req, "color_palette"),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(advice.PreferencesUpdated(prefs)), nil
}

func (s *Server) toggleFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, added, err := s.advisor.ToggleFavorite(ctx, sessionID(req), req.GetString("city", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(advice.FavoriteToggled(city, added)), nil
}

func (s *Server) favorites(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	favs, err := s.advisor.Favorites(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(favs)
}
