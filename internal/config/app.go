package config

import (
	"context"
	"path/filepath"
)

type AppConfig struct {
	RuntimePath string `env:"OUTFIT_RUNTIME_PATH" envDefault:".outfit"`
	UserID      string `env:"OUTFIT_USER_ID" envDefault:"local"`
	DefaultCity string `env:"OUTFIT_DEFAULT_CITY" envDefault:"Redmond"`

	// Transport Flags
	EnableTelegram bool `env:"OUTFIT_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"OUTFIT_ENABLE_CLI" envDefault:"true"`
	EnableHTTP     bool `env:"OUTFIT_ENABLE_HTTP" envDefault:"false"`

	// Conversation history sent to the chat provider
	HistoryWindow      int `env:"OUTFIT_HISTORY_WINDOW" envDefault:"30"`
	HistoryTokenBudget int `env:"OUTFIT_HISTORY_TOKENS" envDefault:"3000"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	mustParse(ctx, "app", c)
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "outfit.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}
