package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advice"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
)

type fakeAdvisor struct {
	asked   []string
	actions []string
	err     error
}

func (f *fakeAdvisor) Briefing(context.Context, string) (advisor.Briefing, error) {
	return advisor.Briefing{}, nil
}

func (f *fakeAdvisor) QuickActions(context.Context, string) []string {
	return []string{"Beach day outfit?", "Hiking outfit ideas?"}
}

func (f *fakeAdvisor) Ask(_ context.Context, _, text string, _ func(core.Message)) (advisor.Reply, error) {
	if f.err != nil {
		return advisor.Reply{}, f.err
	}
	f.asked = append(f.asked, text)
	return advisor.Reply{Text: "reply: " + text}, nil
}

func (f *fakeAdvisor) QuickAction(_ context.Context, _, prompt string, _ func(core.Message)) (advisor.Reply, error) {
	if f.err != nil {
		return advisor.Reply{}, f.err
	}
	f.actions = append(f.actions, prompt)
	return advisor.Reply{Text: "action: " + prompt}, nil
}

type fakeRouter struct{}

func (fakeRouter) Execute(_ context.Context, _, input string) (string, bool) {
	if strings.HasPrefix(input, "/") {
		return "command " + input, true
	}
	return "", false
}

func (fakeRouter) ListCommands() []core.Command { return nil }

func TestReadLine_Handle(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		asked   []string
		actions []string
	}{
		{name: "command", line: "/weather", want: "command /weather"},
		{name: "free text", line: "what should I wear?", want: "reply: what should I wear?", asked: []string{"what should I wear?"}},
		{name: "typed prompt text goes to chat", line: "Hiking outfit ideas?", want: "reply: Hiking outfit ideas?", asked: []string{"Hiking outfit ideas?"}},
		{name: "shortcut", line: "2", want: "action: Hiking outfit ideas?", actions: []string{"Hiking outfit ideas?"}},
		{name: "shortcut out of range", line: "7", want: "reply: 7", asked: []string{"7"}},
		{name: "zero is not a shortcut", line: "0", want: "reply: 0", asked: []string{"0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAdvisor{}
			r := &ReadLine{advisor: fake, router: fakeRouter{}}

			assert.Equal(t, tt.want, r.handle(context.Background(), tt.line, nil))
			assert.Equal(t, tt.asked, fake.asked)
			assert.Equal(t, tt.actions, fake.actions)
		})
	}
}

func TestReadLine_HandleError(t *testing.T) {
	r := &ReadLine{advisor: &fakeAdvisor{err: errors.New("boom")}, router: fakeRouter{}}
	assert.Equal(t, "Error: boom", r.handle(context.Background(), "hello", nil))
}

func TestRenderBriefing(t *testing.T) {
	out := renderBriefing(advisor.Briefing{
		Message: "Good morning!",
		Weather: core.WeatherSnapshot{City: "Miami, FL", TemperatureF: 85, Condition: "Clear sky"},
		Outfit:  []advice.DecoratedItem{{GarmentItem: core.GarmentItem{Name: "Linen Shirt"}, Icon: advice.IconGarment}},
		Prompts: []string{"Beach day outfit?", "Stay cool tips?"},
	})

	assert.Contains(t, out, "Good morning!")
	assert.Contains(t, out, "Miami, FL")
	assert.Contains(t, out, "Linen Shirt")
	assert.Contains(t, out, "[1] Beach day outfit?")
	assert.Contains(t, out, "[2] Stay cool tips?")
}
