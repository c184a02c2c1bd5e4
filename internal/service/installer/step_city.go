package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

// CityStep collects the city shown when a session starts
type CityStep struct {
	input textinput.Model
}

func NewCityStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Placeholder = core.DefaultCity

	return &CityStep{input: ti}
}

func (s *CityStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *CityStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		city := strings.TrimSpace(s.input.Value())
		if city == "" {
			city = core.DefaultCity
		}
		state.EnvVars[keyDefaultCity] = city
		return nil, nil
	}
	return s, cmd
}

func (s *CityStep) View(state *InstallState) string {
	return "Which city should the advisor start with?\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
