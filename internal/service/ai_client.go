package service

import (
	"context"

	"github.com/mirae/creator-studio-go/internal/domain"
)

// DefaultTemperature applies when a caller leaves ChatOptions.Temperature zero.
const DefaultTemperature = 0.7

// CompletionClient issues one chat-completion round trip and returns the
// assistant's raw text. Implementations: DirectClient (caller-held key),
// RelayClient (server-held key), RetryClient (decorator). Selected once at
// startup, never per call.
type CompletionClient interface {
	ChatCompletion(ctx context.Context, messages []domain.ChatMessage, opts domain.ChatOptions) (string, error)
}
