package config

import (
	"context"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

// IsDebug accepts any strconv.ParseBool truthy value for OUTFIT_DEBUG.
func IsDebug() bool {
	on, _ := strconv.ParseBool(os.Getenv("OUTFIT_DEBUG"))
	return on
}

// mustParse fills c from the process environment. A missing required
// variable is fatal since the service cannot start without it.
func mustParse(ctx context.Context, section string, c any) {
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Str("section", section).Msg("failed to parse config")
	}
}
