package store

import (
	"context"
	"testing"
)

func TestMemorySettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	settings := NewMemorySettings()

	got, err := settings.Get(ctx, KeyAPIKey)
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if got != "" {
		t.Fatalf("expected missing value reported as empty string, got %q", got)
	}

	if err := settings.Set(ctx, KeyAPIKey, "sk-user"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err = settings.Get(ctx, KeyAPIKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "sk-user" {
		t.Fatalf("expected stored value, got %q", got)
	}

	if err := settings.Clear(ctx, KeyAPIKey); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, _ = settings.Get(ctx, KeyAPIKey)
	if got != "" {
		t.Fatalf("expected cleared value to read as empty, got %q", got)
	}
}

func TestMemorySettingsKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	settings := NewMemorySettings()

	_ = settings.Set(ctx, KeyBaseURL, "https://api.deepseek.com/v1")
	_ = settings.Set(ctx, KeyModel, "deepseek-chat")
	_ = settings.Clear(ctx, KeyBaseURL)

	model, _ := settings.Get(ctx, KeyModel)
	if model != "deepseek-chat" {
		t.Fatalf("expected model untouched by base-url clear, got %q", model)
	}
	baseURL, _ := settings.Get(ctx, KeyBaseURL)
	if baseURL != "" {
		t.Fatalf("expected base url cleared, got %q", baseURL)
	}
}
