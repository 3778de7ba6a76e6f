package service

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/constants"
	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/pkg/errors"
)

// RetryClient is an opt-in decorator adding bounded exponential backoff.
// Only transport failures and 5xx upstream responses are retried; everything
// else (bad credentials, 4xx, empty content) surfaces immediately. Stage logic
// stays retry-free: wiring this is a deployment decision, not core behavior.
type RetryClient struct {
	inner       CompletionClient
	maxAttempts int
	logger      *zap.Logger
}

func NewRetryClient(inner CompletionClient, maxAttempts int, logger *zap.Logger) *RetryClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryClient{
		inner:       inner,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (c *RetryClient) ChatCompletion(ctx context.Context, messages []domain.ChatMessage, opts domain.ChatOptions) (string, error) {
	delay := constants.RetryConfig.BaseDelay

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		text, err := c.inner.ChatCompletion(ctx, messages, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == c.maxAttempts {
			return "", err
		}

		c.logger.Warn("Retrying chat completion",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > constants.RetryConfig.MaxDelay {
			delay = constants.RetryConfig.MaxDelay
		}
	}

	return "", lastErr
}

func isRetryable(err error) bool {
	var netErr *errors.NetworkError
	if stderrors.As(err, &netErr) {
		return true
	}
	var upErr *errors.UpstreamError
	if stderrors.As(err, &upErr) {
		return upErr.Retryable()
	}
	return false
}
