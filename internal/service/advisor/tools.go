package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

const (
	ToolGetWeather       = "get_weather"
	ToolSuggestOutfit    = "suggest_outfit"
	ToolClassifyActivity = "classify_activity"
	ToolCheckSafety      = "check_safety"
)

func function(name, description, schema string) core.Tool {
	return core.Tool{
		Type: "function",
		Function: core.Function{
			Name:        name,
			Description: description,
			Parameters:  json.RawMessage(schema),
		},
	}
}

var tools = []core.Tool{
	function(ToolGetWeather, "Current weather for a city in Fahrenheit and mph.",
		`{"type":"object","properties":{"city":{"type":"string","description":"City name, e.g. Seattle, WA"}},"required":["city"]}`),
	function(ToolSuggestOutfit, "Build an outfit for a city and optional activity. Defaults to the user's current city.",
		`{"type":"object","properties":{"city":{"type":"string"},"activity":{"type":"string","description":"e.g. hiking, formal dinner, commute"}}}`),
	function(ToolClassifyActivity, "Classify an activity by formality and movement.",
		`{"type":"object","properties":{"activity":{"type":"string"}},"required":["activity"]}`),
	function(ToolCheckSafety, "Weather safety warnings for a city. Defaults to the user's current city.",
		`{"type":"object","properties":{"city":{"type":"string"}}}`),
}

type toolArgs struct {
	City     string `json:"city"`
	Activity string `json:"activity"`
}

// executor runs tool calls for one conversation turn and remembers the last
// outfit it produced.
type executor struct {
	a      *Advisor
	base   *core.WeatherSnapshot
	prefs  core.PreferenceSet
	outfit []advice.DecoratedItem
}

func newExecutor(a *Advisor, base *core.WeatherSnapshot, prefs core.PreferenceSet) *executor {
	return &executor{a: a, base: base, prefs: prefs}
}

func (e *executor) Execute(ctx context.Context, toolCalls []core.ToolCall) []core.Message {
	logger := log.FromCtx(ctx)

	var results []core.Message
	for _, tc := range toolCalls {
		logger.Info().Str("tool", tc.Function.Name).Msg("executing tool")

		res, err := e.call(ctx, tc.Function.Name, tc.Function.Arguments)
		if err != nil {
			res = fmt.Sprintf("Error: %v", err)
		}

		results = append(results, core.Message{
			Role:       core.RoleTool,
			Content:    e.truncate(res),
			ToolCallID: tc.ID,
		})
	}
	return results
}

func (e *executor) call(ctx context.Context, name, rawArgs string) (string, error) {
	var args toolArgs
	if strings.TrimSpace(rawArgs) != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
	}

	switch name {
	case ToolGetWeather:
		if strings.TrimSpace(args.City) == "" {
			return "", fmt.Errorf("city is required")
		}
		snap := e.a.loadWeather(ctx, strings.TrimSpace(args.City))
		return encode(struct {
			core.WeatherSnapshot
			Classification advice.Classification `json:"classification"`
		}{snap, advice.Classify(snap.Condition, snap.TemperatureF)})

	case ToolSuggestOutfit:
		snap := e.weather(ctx, args.City)
		outfit, err := e.a.suggest(ctx, snap, strings.TrimSpace(args.Activity), e.prefs)
		if err != nil {
			return "", err
		}
		e.outfit = outfit
		return encode(struct {
			City   string                 `json:"city"`
			Outfit []advice.DecoratedItem `json:"outfit"`
		}{snap.City, outfit})

	case ToolClassifyActivity:
		return encode(advice.ClassifyActivity(args.Activity))

	case ToolCheckSafety:
		snap := e.weather(ctx, args.City)
		return encode(advice.CheckSafety(snap.TemperatureF, snap.WindMph, snap.RainChance, snap.Condition))
	}

	return "", fmt.Errorf("unknown tool: %s", name)
}

// weather reuses the session snapshot when city is empty or names it.
func (e *executor) weather(ctx context.Context, city string) core.WeatherSnapshot {
	city = strings.TrimSpace(city)
	if e.base != nil && (city == "" || strings.EqualFold(city, e.base.City)) {
		return *e.base
	}
	if city == "" {
		city = e.a.opts.DefaultCity
	}
	return e.a.loadWeather(ctx, city)
}

func (e *executor) truncate(input string) string {
	const maxLen = 2000
	if len(input) <= maxLen {
		return input
	}

	head := input[:500]
	tail := input[len(input)-(maxLen-500):]
	return fmt.Sprintf("%s\n\n... [TRUNCATED %d bytes] ...\n\n%s", head, len(input)-maxLen, tail)
}

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
