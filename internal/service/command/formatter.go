package command

import (
	"fmt"
	"strings"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("⚙️ **%s**\n\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ **%s**\n", message)
}

func (f *ResponseFormatter) Error(operation string, err error) string {
	return fmt.Sprintf("❌ **%s failed**\n\n**Issue**: %s\n", operation, err.Error())
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**:\n```%s```\n", command)
}

func (f *ResponseFormatter) Examples(examples []string) string {
	var sb strings.Builder
	sb.WriteString("**Examples**:\n")
	for _, ex := range examples {
		sb.WriteString(fmt.Sprintf("`%s`\n", ex))
	}
	return sb.String()
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

func (f *ResponseFormatter) Tip(text string) string {
	return fmt.Sprintf("**Tip**: %s\n", text)
}

func (f *ResponseFormatter) Section(emoji, title, content string) string {
	return fmt.Sprintf("%s **%s**\n%s\n", emoji, title, content)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

func (f *ResponseFormatter) Weather(w core.WeatherSnapshot) string {
	c := advice.Classify(w.Condition, w.TemperatureF)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s **%s**: %.0f°F, %s\n", c.Icon, w.City, w.TemperatureF, w.Condition))
	sb.WriteString(fmt.Sprintf("Feels like %.0f°F · wind %.0f mph · %.0f%% rain\n", w.FeelsLikeF, w.WindMph, w.RainChance))
	if c.Alert != advice.AlertNone {
		sb.WriteString(c.Alert.Message() + "\n")
	}
	if w.Fallback {
		sb.WriteString("_Live weather unavailable, showing estimates._\n")
	}
	return sb.String()
}

func (f *ResponseFormatter) Outfit(items []advice.DecoratedItem) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%s **%s** (%s)", item.Icon, item.Name, item.Category)
		if item.Description != "" {
			lines[i] += ": " + item.Description
		}
	}
	return f.Section("👕", "Outfit", f.List(lines))
}

func (f *ResponseFormatter) Briefing(message string, w core.WeatherSnapshot, items []advice.DecoratedItem, prompts []string) string {
	return f.Combine(
		message+"\n",
		f.Weather(w),
		f.Outfit(items),
		f.Section("💡", "Try asking", f.List(prompts)),
	)
}
