package installer

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/storage/sqlite"
	envfile "github.com/tabitha-dev/weather-outfit-advisor/pkg/env"
)

func fail(err error) tea.Cmd {
	return func() tea.Msg { return errMsg(err) }
}

// SaveEnvStep merges the collected configuration into the runtime .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	if err := envfile.MergeFile(config.GetEnvPath(), state.EnvVars); err != nil {
		s.err = fmt.Errorf("failed to save configuration: %w", err)
		return s, fail(s.err)
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// InitializeDatabaseStep creates the runtime database and applies migrations
type InitializeDatabaseStep struct {
	err  error
	done bool
}

func NewInitializeDatabaseStep() Step {
	return &InitializeDatabaseStep{}
}

func (s *InitializeDatabaseStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *InitializeDatabaseStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.done {
		return nil, nil
	}

	db, err := sqlite.NewDB(context.Background(), config.GetDatabasePath())
	if err != nil {
		s.err = fmt.Errorf("failed to create database: %w", err)
		return s, fail(s.err)
	}
	if err := db.Close(); err != nil {
		s.err = err
		return s, fail(err)
	}

	s.done = true
	return nil, nil
}

func (s *InitializeDatabaseStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n"
	}
	if s.done {
		return "Database initialized successfully!\n"
	}
	return "Initializing database...\n"
}
