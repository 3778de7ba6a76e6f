package store

import (
	"context"
	"sync"
)

// Fixed key names for the three persisted overrides.
const (
	KeyAPIKey  = "studio:settings:api_key"
	KeyBaseURL = "studio:settings:base_url"
	KeyModel   = "studio:settings:model"
)

// Settings is the persisted override store the config resolver reads on every
// call. Values are set and cleared only by explicit user action; a missing
// value is reported as "" with no error.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}

// MemorySettings is an in-process Settings used in tests and redis-less runs.
type MemorySettings struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string]string)}
}

func (m *MemorySettings) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MemorySettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemorySettings) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
