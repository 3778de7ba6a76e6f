package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/adapter"
	"github.com/mirae/creator-studio-go/internal/config"
	"github.com/mirae/creator-studio-go/internal/service"
	"github.com/mirae/creator-studio-go/internal/store"
)

// Container bundles the assembled pipeline services. All heavy-weight
// initialization (settings store, transport selection) happens in Build so
// the commands stay focused on orchestration.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Settings   store.Settings
	Resolver   *service.Resolver
	Client     service.CompletionClient
	Analyzer   *service.Analyzer
	Generator  *service.Generator
	Beautifier *service.Beautifier
	Pipeline   *service.Pipeline
	Formatter  *adapter.ResultFormatter

	closers []func()
}

func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	c := &Container{Config: cfg, Logger: logger}

	// Override store: Redis when configured, otherwise in-process only.
	if cfg.Redis.Host != "" {
		redisSettings, err := store.NewRedisSettings(store.RedisSettingsConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings store: %w", err)
		}
		c.Settings = redisSettings
		c.closers = append(c.closers, func() {
			_ = redisSettings.Close()
		})
	} else {
		logger.Info("REDIS_HOST not set, settings overrides will not persist")
		c.Settings = store.NewMemorySettings()
	}

	c.Resolver = service.NewResolver(c.Settings, cfg.AI, logger)

	// Transport strategy is fixed at startup, never branched per call.
	switch cfg.AI.Transport {
	case "relay":
		c.Client = service.NewRelayClient(cfg.AI.RelayURL, logger)
		logger.Info("Using relayed transport", zap.String("relay_url", cfg.AI.RelayURL))
	default:
		c.Client = service.NewDirectClient(c.Resolver, logger)
		logger.Info("Using direct transport", zap.String("base_url", cfg.AI.BaseURL))
	}

	if cfg.AI.MaxAttempts > 1 {
		c.Client = service.NewRetryClient(c.Client, cfg.AI.MaxAttempts, logger)
		logger.Info("Retry decorator enabled", zap.Int("max_attempts", cfg.AI.MaxAttempts))
	}

	c.Analyzer = service.NewAnalyzer(c.Client, logger)
	c.Generator = service.NewGenerator(c.Client, logger)
	c.Beautifier = service.NewBeautifier(c.Client, logger)
	c.Pipeline = service.NewPipeline(c.Analyzer, c.Generator, c.Beautifier, logger)
	c.Formatter = adapter.NewResultFormatter()

	return c, nil
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
