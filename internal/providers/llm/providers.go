package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
)

func NewOpenAI(apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    "https://api.openai.com",
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}

func NewOpenRouter(apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    "https://openrouter.ai/api",
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
		ExtraHeaders: map[string]string{
			"HTTP-Referer": core.AppRepositoryURL,
			"X-Title":      core.AppName,
		},
	})
}

func NewCustomOpenAI(baseURL, apiKey, model string) *OpenAICompatible {
	return NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
}

// Ollama speaks the OpenAI chat API but lists models under /api/tags.
type Ollama struct {
	*OpenAICompatible
}

func NewOllama(baseURL, apiKey, model string) *Ollama {
	return &Ollama{OpenAICompatible: NewCustomOpenAI(baseURL, apiKey, model)}
}

func (o *Ollama) Models(ctx context.Context) ([]core.Model, error) {
	var result struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if _, err := o.call(ctx, http.MethodGet, "/api/tags", nil, o.headers(), &result); err != nil {
		return nil, fmt.Errorf("ollama not available: %w", err)
	}

	models := make([]core.Model, 0, len(result.Models))
	for _, m := range result.Models {
		models = append(models, core.Model{ID: m.Name, Name: m.Name, ContextLength: 32768})
	}
	return models, nil
}

// Offline is selected when no back-end is configured; callers answer from
// built-in rules on core.ErrNoProvider.
type Offline struct{}

func (Offline) Chat(context.Context, []core.Message, []core.Tool) (core.Message, error) {
	return core.Message{}, core.ErrNoProvider
}
