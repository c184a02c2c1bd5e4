package installer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want map[string]string
	}{
		{
			name: "defaults to terminal and offline",
			vars: map[string]string{},
			want: map[string]string{
				keyEnableCLI:      "true",
				keyEnableHTTP:     "false",
				keyEnableTelegram: "false",
				keyProvider:       "offline",
				keyDebug:          "0",
			},
		},
		{
			name: "telegram with token",
			vars: map[string]string{keyChannel: "telegram", keyTelegramToken: "t", keyProvider: "openai"},
			want: map[string]string{
				keyEnableCLI:      "false",
				keyEnableTelegram: "true",
				keyProvider:       "openai",
				keyTelegramToken:  "t",
			},
		},
		{
			name: "http",
			vars: map[string]string{keyChannel: "http"},
			want: map[string]string{keyEnableHTTP: "true", keyEnableCLI: "false"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &InstallState{EnvVars: tt.vars}
			finalize(state)

			for k, v := range tt.want {
				assert.Equal(t, v, state.EnvVars[k], k)
			}
			assert.NotContains(t, state.EnvVars, keyChannel)
		})
	}
}

func TestProviderStep_SelectsWithArrows(t *testing.T) {
	state := NewInstallState()
	step := NewProviderStep()

	next, _ := step.Update(tea.KeyMsg{Type: tea.KeyDown}, state, 80, 24)
	assert.Same(t, step, next)

	next, _ = step.Update(enter(), state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "openai", state.Provider())
}

func TestProviderSpecificStepsSkip(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyProvider] = "offline"
	state.EnvVars[keyChannel] = "cli"

	for _, step := range []Step{
		NewAPIKeyStep(),
		NewURLStep(ollamaURL),
		NewURLStep(coachURL),
		NewTelegramTokenStep(),
		NewTelegramOwnerStep(),
	} {
		next, _ := step.Update(nextMsg{}, state, 80, 24)
		assert.Nil(t, next)
	}
	assert.Len(t, state.EnvVars, 2)
}

func TestModelStep_OfflineSkipsWithoutModel(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyProvider] = "offline"

	next, _ := NewModelStep().Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)
	assert.Empty(t, state.EnvVars[keyModel])
}

func TestModelStep_AnthropicUsesDefault(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyProvider] = "anthropic"

	next, _ := NewModelStep().Update(nextMsg{}, state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, defaultModels["anthropic"], state.EnvVars[keyModel])
}

func TestURLStep_OptionalTakesPlaceholder(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyProvider] = "ollama"
	step := NewURLStep(ollamaURL)

	next, _ := step.Update(enter(), state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, ollamaURL.placeholder, state.EnvVars[ollamaURL.envKey])
}

func TestURLStep_RequiredWaitsForValue(t *testing.T) {
	state := NewInstallState()
	state.EnvVars[keyProvider] = "coach"
	step := NewURLStep(coachURL)

	next, _ := step.Update(enter(), state, 80, 24)
	assert.Same(t, step, next)
	assert.NotContains(t, state.EnvVars, coachURL.envKey)
}

func TestCityStep_DefaultsToRedmond(t *testing.T) {
	state := NewInstallState()

	next, _ := NewCityStep().Update(enter(), state, 80, 24)
	assert.Nil(t, next)
	assert.Equal(t, "Redmond", state.EnvVars[keyDefaultCity])
}

func TestInstallState_SummaryMasksSecrets(t *testing.T) {
	s := NewInstallState()
	s.EnvVars[keyProvider] = "openai"
	s.EnvVars["OUTFIT_OPENAI_API_KEY"] = "sk-abcdef1234"
	s.EnvVars[keyTelegramToken] = "abc"

	assert.Equal(t,
		"OUTFIT_LLM_PROVIDER=openai\nOUTFIT_OPENAI_API_KEY=****1234\nOUTFIT_TELEGRAM_TOKEN=****\n",
		s.Summary())
}

func TestWizard_AdvancesPastSkippedSteps(t *testing.T) {
	m := model{
		steps: []Step{NewTelegramTokenStep(), NewCityStep()},
		state: NewInstallState(),
	}
	m.state.EnvVars[keyChannel] = "cli"

	next, _ := m.Update(nextMsg{})
	assert.Equal(t, 1, next.(model).currentStep)
}

func TestWizard_ErrorEndsRun(t *testing.T) {
	m := model{steps: []Step{NewCityStep()}, state: NewInstallState()}

	next, cmd := m.Update(errMsg(assert.AnError))
	assert.Equal(t, assert.AnError, next.(model).err)
	assert.NotNil(t, cmd)
	assert.Contains(t, next.(model).View(), assert.AnError.Error())
}
