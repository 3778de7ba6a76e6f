package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/config"
	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/internal/store"
	"github.com/mirae/creator-studio-go/pkg/errors"
)

// PlaceholderPrefix marks a build-time default key that was never filled in.
// Such a key counts as absent unless the user saved an override.
const PlaceholderPrefix = "your_"

// Resolver merges user-saved overrides with environment defaults into the
// effective ClientConfig. It is re-invoked on every call so a settings change
// mid-session takes effect immediately.
type Resolver struct {
	settings store.Settings
	defaults config.AIConfig
	logger   *zap.Logger
}

func NewResolver(settings store.Settings, defaults config.AIConfig, logger *zap.Logger) *Resolver {
	return &Resolver{
		settings: settings,
		defaults: defaults,
		logger:   logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context) (*domain.ClientConfig, error) {
	userKey := r.override(ctx, store.KeyAPIKey)
	userBaseURL := r.override(ctx, store.KeyBaseURL)
	userModel := r.override(ctx, store.KeyModel)

	apiKey := userKey
	if apiKey == "" {
		apiKey = r.defaults.APIKey
		if apiKey == "" || strings.HasPrefix(apiKey, PlaceholderPrefix) {
			return nil, errors.NewConfigError("未配置可用的 API Key，请在设置中填写或配置 AI_API_KEY")
		}
	}

	baseURL := userBaseURL
	if baseURL == "" {
		baseURL = r.defaults.BaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := userModel
	if model == "" {
		model = r.defaults.Model
	}

	return &domain.ClientConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
	}, nil
}

// override reads one saved value; a store failure degrades to "no override"
// rather than blocking the call.
func (r *Resolver) override(ctx context.Context, key string) string {
	value, err := r.settings.Get(ctx, key)
	if err != nil {
		r.logger.Warn("Settings read failed, using defaults", zap.String("key", key), zap.Error(err))
		return ""
	}
	return value
}
