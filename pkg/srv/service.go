// Package srv runs long-lived parts of the process behind one interface.
package srv

import (
	"context"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices starts every service in its own goroutine. A start error is
// fatal.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			logger.Debug().Str("service", name(service)).Msg("starting service")
			if err := service.Start(ctx); err != nil {
				logger.Fatal().Err(err).Str("service", name(service)).Msg("service failed")
			}
		}(service)
	}
}

// ShutdownServices waits for ctx to end and stops services in reverse start
// order, so resources registered first (storage) are released last.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	logger := log.FromCtx(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			logger.Error().Err(err).Str("service", name(services[i])).Msg("failed to shutdown")
		}
	}
}
