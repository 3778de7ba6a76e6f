package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/constants"
)

type RedisSettings struct {
	client *redis.Client
	logger *zap.Logger
}

type RedisSettingsConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewRedisSettings(cfg RedisSettingsConfig, logger *zap.Logger) (*RedisSettings, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  constants.RedisConfig.DialTimeout,
		ReadTimeout:  constants.RedisConfig.ReadTimeout,
		WriteTimeout: constants.RedisConfig.WriteTimeout,
		PoolSize:     constants.RedisConfig.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.RedisConfig.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &RedisSettings{client: client, logger: logger}, nil
}

func (r *RedisSettings) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // no override saved - not an error
	}
	if err != nil {
		r.logger.Error("Settings get failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("settings get %s: %w", key, err)
	}
	return value, nil
}

func (r *RedisSettings) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		r.logger.Error("Settings set failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("settings set %s: %w", key, err)
	}
	return nil
}

func (r *RedisSettings) Clear(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Settings clear failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("settings clear %s: %w", key, err)
	}
	return nil
}

func (r *RedisSettings) Close() error {
	return r.client.Close()
}
