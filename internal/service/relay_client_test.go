package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/domain"
	studioerrors "github.com/mirae/creator-studio-go/pkg/errors"
)

func relayMessages() []domain.ChatMessage {
	return []domain.ChatMessage{domain.UserMessage("帮我分析这段内容")}
}

func TestRelayClientPostsKeylessPayload(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "分析结果"}}]}`))
	}))
	defer upstream.Close()

	client := NewRelayClient(upstream.URL+"/", zap.NewNop())
	text, err := client.ChatCompletion(context.Background(), relayMessages(), domain.ChatOptions{Temperature: 0.7, JSONMode: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != "分析结果" {
		t.Fatalf("unexpected content %q", text)
	}

	if gotPath != "/api/chat" {
		t.Fatalf("expected POST to /api/chat, got %q", gotPath)
	}
	if gotAuth != "" {
		t.Fatalf("relay payload must be keyless, got Authorization %q", gotAuth)
	}
	if _, ok := gotBody["model"]; ok {
		t.Fatalf("relay payload must not carry a model, got %v", gotBody["model"])
	}
	if gotBody["temperature"] != 0.7 {
		t.Fatalf("expected temperature forwarded, got %v", gotBody["temperature"])
	}
	format, ok := gotBody["response_format"].(map[string]any)
	if !ok || format["type"] != "json_object" {
		t.Fatalf("expected json_object response format, got %v", gotBody["response_format"])
	}
}

func TestRelayClientOmitsFormatWithoutJSONMode(t *testing.T) {
	var gotBody map[string]any
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer upstream.Close()

	client := NewRelayClient(upstream.URL, zap.NewNop())
	if _, err := client.ChatCompletion(context.Background(), relayMessages(), domain.ChatOptions{Temperature: 0.9}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := gotBody["response_format"]; ok {
		t.Fatalf("expected response_format omitted, got %v", gotBody["response_format"])
	}
}

func TestRelayClientMapsNon2xxToUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error": "upstream down"}`))
	}))
	defer upstream.Close()

	client := NewRelayClient(upstream.URL, zap.NewNop())
	_, err := client.ChatCompletion(context.Background(), relayMessages(), domain.ChatOptions{Temperature: 0.7})

	var upErr *studioerrors.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", upErr.StatusCode)
	}
	if !upErr.Retryable() {
		t.Fatalf("expected 502 to be retryable")
	}
}

func TestRelayClientMapsEmptyChoicesToEmptyResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer upstream.Close()

	client := NewRelayClient(upstream.URL, zap.NewNop())
	_, err := client.ChatCompletion(context.Background(), relayMessages(), domain.ChatOptions{Temperature: 0.7})

	var emptyErr *studioerrors.EmptyResponseError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyResponseError, got %v", err)
	}
}

func TestRelayClientMapsConnectionFailureToNetworkError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	upstream.Close()

	client := NewRelayClient(upstream.URL, zap.NewNop())
	_, err := client.ChatCompletion(context.Background(), relayMessages(), domain.ChatOptions{Temperature: 0.7})

	var netErr *studioerrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}
