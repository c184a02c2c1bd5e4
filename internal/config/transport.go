package config

import (
	"context"
	"time"
)

// TelegramConfig is only read when OUTFIT_ENABLE_TELEGRAM is true.
type TelegramConfig struct {
	Token   string `env:"OUTFIT_TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"OUTFIT_TELEGRAM_OWNER_ID,required"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	mustParse(ctx, "telegram", c)
	return c
}

type HTTPConfig struct {
	Address         string        `env:"OUTFIT_HTTP_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"OUTFIT_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func NewHTTPConfig(ctx context.Context) *HTTPConfig {
	c := &HTTPConfig{}
	mustParse(ctx, "http", c)
	return c
}
