package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ChannelStep allows selection of the chat channel/transport
type ChannelStep struct {
	choices []choice
	cursor  int
}

func NewChannelStep() Step {
	return &ChannelStep{
		choices: []choice{
			{"cli", "Terminal"},
			{"telegram", "Telegram bot"},
			{"http", "HTTP API"},
		},
		cursor: 0,
	}
}

func (s *ChannelStep) Init() tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars[keyChannel] = s.choices[s.cursor].id
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChannelStep) View(state *InstallState) string {
	return renderChoices("Where will you chat with the advisor?", s.choices, s.cursor)
}
