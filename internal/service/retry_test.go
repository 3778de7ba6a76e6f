package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/domain"
	studioerrors "github.com/mirae/creator-studio-go/pkg/errors"
)

func retryCall(t *testing.T, client CompletionClient) (string, error) {
	t.Helper()
	return client.ChatCompletion(context.Background(),
		[]domain.ChatMessage{domain.UserMessage("ping")},
		domain.ChatOptions{Temperature: 0.7},
	)
}

func TestRetryClientRecoversFromNetworkError(t *testing.T) {
	inner := &fakeClient{
		errs:      []error{studioerrors.NewNetworkError("unreachable", errors.New("dial tcp")), nil},
		responses: []string{"", "ok"},
	}
	client := NewRetryClient(inner, 3, zap.NewNop())

	text, err := retryCall(t, client)
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if text != "ok" {
		t.Fatalf("expected scripted response, got %q", text)
	}
	if len(inner.calls) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(inner.calls))
	}
}

func TestRetryClientDoesNotRetryClientSideUpstreamErrors(t *testing.T) {
	inner := &fakeClient{
		errs: []error{studioerrors.NewUpstreamError("unauthorized", 401, "{}")},
	}
	client := NewRetryClient(inner, 3, zap.NewNop())

	_, err := retryCall(t, client)

	var upErr *studioerrors.UpstreamError
	if !errors.As(err, &upErr) || upErr.StatusCode != 401 {
		t.Fatalf("expected 401 surfaced untouched, got %v", err)
	}
	if len(inner.calls) != 1 {
		t.Fatalf("expected single attempt for 4xx, got %d", len(inner.calls))
	}
}

func TestRetryClientRetriesServerSideUpstreamErrors(t *testing.T) {
	inner := &fakeClient{
		errs:      []error{studioerrors.NewUpstreamError("bad gateway", 502, ""), nil},
		responses: []string{"", "ok"},
	}
	client := NewRetryClient(inner, 2, zap.NewNop())

	if _, err := retryCall(t, client); err != nil {
		t.Fatalf("expected recovery after 502, got %v", err)
	}
	if len(inner.calls) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(inner.calls))
	}
}

func TestRetryClientStopsAtMaxAttempts(t *testing.T) {
	netErr := studioerrors.NewNetworkError("unreachable", errors.New("dial tcp"))
	inner := &fakeClient{errs: []error{netErr, netErr, netErr}}
	client := NewRetryClient(inner, 2, zap.NewNop())

	_, err := retryCall(t, client)
	if err == nil {
		t.Fatalf("expected failure after exhausting attempts")
	}
	if len(inner.calls) != 2 {
		t.Fatalf("expected exactly maxAttempts calls, got %d", len(inner.calls))
	}
}

func TestRetryClientDoesNotRetryValidationErrors(t *testing.T) {
	inner := &fakeClient{
		errs: []error{studioerrors.NewConfigError("no key")},
	}
	client := NewRetryClient(inner, 3, zap.NewNop())

	_, err := retryCall(t, client)

	var configErr *studioerrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError surfaced immediately, got %v", err)
	}
	if len(inner.calls) != 1 {
		t.Fatalf("expected single attempt, got %d", len(inner.calls))
	}
}
