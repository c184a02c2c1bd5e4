package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/providers/llm"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/providers/outfit"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/providers/weather"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/advisor"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/command"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/state"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/storage/sqlite"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/transport/api"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/transport/cli"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/transport/telegram"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/metrics"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/srv"
)

// app is the transport independent part of the process.
type app struct {
	cfg      *config.AppConfig
	llmCfg   *config.LLMConfig
	provider *llm.DynamicProvider
	metrics  *metrics.Registry
	advisor  *advisor.Advisor
	cleanup  []srv.Service
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetEnvPath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx, appCfg.GetEnvPath())
	weatherCfg := config.NewWeatherConfig(ctx)

	// 2. Storage
	if err := os.MkdirAll(appCfg.GetRuntimePath(), 0o755); err != nil {
		logger.Fatal().Err(err).Msg("failed to create runtime directory")
	}
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	// 3. Providers
	provider, err := llm.NewDynamicProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	weatherProvider := weather.NewFallback(
		weather.NewCached(weather.NewOpenMeteo(weatherCfg), weatherCfg.CacheTTL),
		nil,
	)

	// 4. Advisor
	reg := metrics.NewRegistry()
	adv := advisor.New(advisor.Options{
		UserID:        appCfg.UserID,
		DefaultCity:   appCfg.DefaultCity,
		HistoryWindow: appCfg.HistoryWindow,
		TokenBudget:   appCfg.HistoryTokenBudget,
	}, advisor.Deps{
		Weather:     weatherProvider,
		Outfits:     outfit.NewGenerator(),
		AI:          provider,
		Preferences: sqlite.NewPreferencesRepo(db),
		Favorites:   sqlite.NewFavoritesRepo(db),
		Messages:    sqlite.NewMessagesRepo(db),
		Metrics:     reg,
	})

	return &app{
		cfg:      appCfg,
		llmCfg:   llmCfg,
		provider: provider,
		metrics:  reg,
		advisor:  adv,
		cleanup:  []srv.Service{srv.NewCleanup("database", db.Close)},
	}
}

func NewServices(ctx context.Context, stop context.CancelFunc) []srv.Service {
	logger := log.FromCtx(ctx)

	a := newApp(ctx)
	services := append([]srv.Service{}, a.cleanup...)

	globalState := state.NewGlobalState(a.provider)
	router := command.New(command.NewCommands(a.llmCfg, globalState, a.provider, a.advisor))

	transports, err := initTransports(ctx, a, router, stop)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(transports) == 0 {
		logger.Warn().Msg("no transport enabled, set OUTFIT_ENABLE_CLI, OUTFIT_ENABLE_TELEGRAM or OUTFIT_ENABLE_HTTP")
	}
	services = append(services, transports...)

	return services
}

func initTransports(ctx context.Context, a *app, router *command.Router, stop context.CancelFunc) ([]srv.Service, error) {
	var services []srv.Service

	if a.cfg.EnableTelegram {
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), a.advisor, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if a.cfg.EnableHTTP {
		services = append(services, api.NewServer(ctx, config.NewHTTPConfig(ctx), a.advisor, a.metrics))
	}

	if a.cfg.EnableCLI {
		rl, err := cli.NewReadLine(a.advisor, router, a.cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, &stopOnExit{Service: rl, stop: stop})
	}

	return services, nil
}

// stopOnExit ends the process when an interactive service returns.
type stopOnExit struct {
	srv.Service
	stop context.CancelFunc
}

func (s *stopOnExit) Start(ctx context.Context) error {
	defer s.stop()
	return s.Service.Start(ctx)
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
