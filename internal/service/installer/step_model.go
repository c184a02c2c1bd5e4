package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/providers/llm"
)

var defaultModels = map[string]string{
	"openai":     "gpt-4o-mini",
	"anthropic":  "claude-3-5-haiku-latest",
	"openrouter": "openai/gpt-4o-mini",
	"ollama":     "llama3.2",
	"custom":     "gpt-4o-mini",
}

type fetchErrMsg struct{ err error }

// modelLister returns a lister for providers that can enumerate models.
func modelLister(state *InstallState) (core.ModelLister, bool) {
	cfg, err := config.ParseLLMConfig(state.EnvVars)
	if err != nil {
		return nil, false
	}
	p, err := llm.NewProvider(context.Background(), cfg)
	if err != nil {
		return nil, false
	}
	lister, ok := p.(core.ModelLister)
	return lister, ok
}

// ModelStep lets the user pick a model from the provider's catalog.
// Providers without a catalog get a default model.
type ModelStep struct {
	list     list.Model
	loading  bool
	fetching bool
	err      error
}

func NewModelStep() Step {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select chat model"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ModelStep{
		list:    l,
		loading: true,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *ModelStep) useDefault(state *InstallState) {
	if m, ok := defaultModels[state.Provider()]; ok && state.EnvVars[keyModel] == "" {
		state.EnvVars[keyModel] = m
	}
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.loading && !s.fetching {
		lister, ok := modelLister(state)
		if !ok {
			s.useDefault(state)
			return nil, nil
		}
		s.fetching = true

		return s, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			models, err := lister.Models(ctx)
			if err != nil {
				return fetchErrMsg{err: err}
			}

			var items []list.Item
			for _, mod := range models {
				desc := fmt.Sprintf("ID: %s", mod.ID)
				if mod.ContextLength > 0 {
					desc += fmt.Sprintf(" | Context: %d", mod.ContextLength)
				}
				items = append(items, item{id: mod.ID, title: mod.Name, desc: desc})
			}
			return modelsMsg(items)
		}
	}

	s.list.SetSize(width, height-4)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case modelsMsg:
		if len(msg) == 0 {
			s.useDefault(state)
			return nil, nil
		}
		s.list.SetItems(msg)
		s.loading = false
		s.fetching = false
		return s, nil

	case fetchErrMsg:
		s.loading = false
		s.fetching = false
		s.err = msg.err
		return s, nil

	case tea.KeyMsg:
		if s.err != nil {
			switch msg.String() {
			case "enter":
				s.err = nil
				s.loading = true
				s.fetching = false
			case "esc":
				s.useDefault(state)
				return nil, nil
			}
			return s, nil
		}

		if msg.String() == "enter" {
			wasFiltering := s.list.FilterState() == list.Filtering
			s.list, cmd = s.list.Update(msg)

			if wasFiltering || s.list.FilterState() == list.Filtering {
				return s, cmd
			}

			if i, ok := s.list.SelectedItem().(item); ok {
				state.EnvVars[keyModel] = i.id
				return nil, nil
			}
			return s, cmd
		}
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error fetching models: %v", s.err)) +
			"\n\nCheck your API key and connection.\n\n(press enter to retry, esc to use the default, ctrl+c to quit)\n"
	}
	if s.loading {
		return "Fetching models...\n"
	}
	return s.list.View()
}
