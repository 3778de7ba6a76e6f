package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/config"
	"github.com/mirae/creator-studio-go/internal/store"
	studioerrors "github.com/mirae/creator-studio-go/pkg/errors"
)

func defaultsWith(apiKey string) config.AIConfig {
	return config.AIConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o-mini",
	}
}

func TestResolveFailsOnPlaceholderDefaultKey(t *testing.T) {
	resolver := NewResolver(store.NewMemorySettings(), defaultsWith("your_api_key_here"), zap.NewNop())

	_, err := resolver.Resolve(context.Background())

	var configErr *studioerrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError for placeholder default, got %v", err)
	}
}

func TestResolveFailsOnMissingKey(t *testing.T) {
	resolver := NewResolver(store.NewMemorySettings(), defaultsWith(""), zap.NewNop())

	_, err := resolver.Resolve(context.Background())

	var configErr *studioerrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError for missing key, got %v", err)
	}
}

func TestResolveOverrideBeatsPlaceholderDefault(t *testing.T) {
	settings := store.NewMemorySettings()
	if err := settings.Set(context.Background(), store.KeyAPIKey, "sk-user-key"); err != nil {
		t.Fatalf("settings.Set: %v", err)
	}
	resolver := NewResolver(settings, defaultsWith("your_api_key_here"), zap.NewNop())

	cfg, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("expected override to satisfy resolution, got %v", err)
	}
	if cfg.APIKey != "sk-user-key" {
		t.Fatalf("expected user key to win, got %q", cfg.APIKey)
	}
}

func TestResolveStripsTrailingSlashes(t *testing.T) {
	settings := store.NewMemorySettings()
	_ = settings.Set(context.Background(), store.KeyBaseURL, "https://api.deepseek.com/v1///")
	resolver := NewResolver(settings, defaultsWith("sk-default"), zap.NewNop())

	cfg, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.BaseURL != "https://api.deepseek.com/v1" {
		t.Fatalf("expected trailing slashes stripped, got %q", cfg.BaseURL)
	}
}

func TestResolveFieldsResolveIndependently(t *testing.T) {
	settings := store.NewMemorySettings()
	_ = settings.Set(context.Background(), store.KeyModel, "kimi-k2")
	resolver := NewResolver(settings, defaultsWith("sk-default"), zap.NewNop())

	cfg, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Model != "kimi-k2" {
		t.Fatalf("expected model override, got %q", cfg.Model)
	}
	if cfg.APIKey != "sk-default" || cfg.BaseURL != "https://api.openai.com/v1" {
		t.Fatalf("expected other fields from defaults, got %+v", cfg)
	}
}

func TestResolvePicksUpMidSessionChanges(t *testing.T) {
	settings := store.NewMemorySettings()
	resolver := NewResolver(settings, defaultsWith("sk-default"), zap.NewNop())

	first, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected initial model %q", first.Model)
	}

	_ = settings.Set(context.Background(), store.KeyModel, "deepseek-chat")

	second, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.Model != "deepseek-chat" {
		t.Fatalf("expected fresh resolution to see new model, got %q", second.Model)
	}
}
