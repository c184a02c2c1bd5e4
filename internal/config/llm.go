package config

import (
	"context"
	"sync"

	"github.com/caarlos0/env/v11"
	envfile "github.com/tabitha-dev/weather-outfit-advisor/pkg/env"
)

const modelEnvKey = "OUTFIT_LLM_MODEL"

// LLMConfig selects the conversational back-end. "offline" answers from
// built-in rules and needs no credentials.
type LLMConfig struct {
	Provider string `env:"OUTFIT_LLM_PROVIDER" envDefault:"offline"`
	Model    string `env:"OUTFIT_LLM_MODEL" envDefault:"gpt-4o-mini"`

	AnthropicAPIKey     string `env:"OUTFIT_ANTHROPIC_API_KEY"`
	OpenAIAPIKey        string `env:"OUTFIT_OPENAI_API_KEY"`
	OpenRouterAPIKey    string `env:"OUTFIT_OPENROUTER_API_KEY"`
	OllamaAPIKey        string `env:"OUTFIT_OLLAMA_API_KEY"`
	OllamaBaseURL       string `env:"OUTFIT_OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	CustomOpenAIBaseURL string `env:"OUTFIT_CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"OUTFIT_CUSTOM_OPENAI_API_KEY"`
	CoachAgentURL       string `env:"OUTFIT_COACH_AGENT_URL"`

	envPath string
	mu      sync.RWMutex
}

func NewLLMConfig(ctx context.Context, envPath string) *LLMConfig {
	c := &LLMConfig{envPath: envPath}
	mustParse(ctx, "llm", c)
	return c
}

func (c *LLMConfig) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Model
}

// SetModel switches the model and persists it to the runtime .env file.
func (c *LLMConfig) SetModel(model string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.envPath != "" {
		if err := envfile.MergeFile(c.envPath, map[string]string{modelEnvKey: model}); err != nil {
			return err
		}
	}
	c.Model = model
	return nil
}

func (c *LLMConfig) GetProvider() string            { return c.Provider }
func (c *LLMConfig) GetAnthropicAPIKey() string     { return c.AnthropicAPIKey }
func (c *LLMConfig) GetOpenAIAPIKey() string        { return c.OpenAIAPIKey }
func (c *LLMConfig) GetOpenRouterAPIKey() string    { return c.OpenRouterAPIKey }
func (c *LLMConfig) GetOllamaAPIKey() string        { return c.OllamaAPIKey }
func (c *LLMConfig) GetOllamaBaseURL() string       { return c.OllamaBaseURL }
func (c *LLMConfig) GetCustomOpenAIBaseURL() string { return c.CustomOpenAIBaseURL }
func (c *LLMConfig) GetCustomOpenAIAPIKey() string  { return c.CustomOpenAIAPIKey }
func (c *LLMConfig) GetCoachAgentURL() string       { return c.CoachAgentURL }

// ParseLLMConfig reads the LLM settings from values instead of the process
// environment. It is used before the .env file exists.
func ParseLLMConfig(values map[string]string) (*LLMConfig, error) {
	c := &LLMConfig{}
	if err := env.ParseWithOptions(c, env.Options{Environment: values}); err != nil {
		return nil, err
	}
	return c, nil
}
