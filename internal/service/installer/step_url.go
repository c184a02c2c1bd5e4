package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type urlTarget struct {
	provider    string
	envKey      string
	title       string
	placeholder string
	required    bool
}

var (
	ollamaURL = urlTarget{
		provider:    "ollama",
		envKey:      "OUTFIT_OLLAMA_BASE_URL",
		title:       "Ollama Base URL",
		placeholder: "http://127.0.0.1:11434",
	}
	customURL = urlTarget{
		provider:    "custom",
		envKey:      "OUTFIT_CUSTOM_OPENAI_BASE_URL",
		title:       "Custom OpenAI Base URL",
		placeholder: "https://api.example.com",
		required:    true,
	}
	coachURL = urlTarget{
		provider:    "coach",
		envKey:      "OUTFIT_COACH_AGENT_URL",
		title:       "Coach agent URL",
		placeholder: "http://localhost:8000",
		required:    true,
	}
)

// URLStep asks for a base URL when the chosen provider needs one. An empty
// optional answer takes the placeholder.
type URLStep struct {
	target urlTarget
	input  textinput.Model
}

func NewURLStep(target urlTarget) Step {
	ti := textinput.New()
	ti.Focus()
	ti.Placeholder = target.placeholder
	ti.Width = 50
	return &URLStep{target: target, input: ti}
}

func (s *URLStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *URLStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.Provider() != s.target.provider {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			if s.target.required {
				return s, cmd
			}
			val = s.target.placeholder
		}
		state.EnvVars[s.target.envKey] = val
		return nil, nil
	}
	return s, cmd
}

func (s *URLStep) View(state *InstallState) string {
	return "Enter " + s.target.title + ":\n\n" + s.input.View() + "\n\n(press enter to confirm)\n"
}
