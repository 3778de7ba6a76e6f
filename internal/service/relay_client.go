package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/pkg/errors"
)

// relayChatRequest is the keyless payload forwarded by the relay. The relay
// attaches the provider credential server-side.
type relayChatRequest struct {
	Messages       []domain.ChatMessage `json:"messages"`
	Temperature    float64              `json:"temperature"`
	ResponseFormat *relayFormat         `json:"response_format,omitempty"`
}

type relayFormat struct {
	Type string `json:"type"`
}

type relayChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// RelayClient sends chat completions through the same-origin relay so the
// provider key never reaches this process.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewRelayClient(baseURL string, logger *zap.Logger) *RelayClient {
	return &RelayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

func (c *RelayClient) ChatCompletion(ctx context.Context, messages []domain.ChatMessage, opts domain.ChatOptions) (string, error) {
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	reqBody := relayChatRequest{
		Messages:    messages,
		Temperature: temperature,
	}
	if opts.JSONMode {
		reqBody.ResponseFormat = &relayFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal relay request: %w", err)
	}

	url := c.baseURL + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Relay request failed", zap.String("url", url), zap.Error(err))
		return "", errors.NewNetworkError("AI 服务暂时不可用，请确认中转服务是否在线", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("Relay returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(bodyBytes)),
		)
		return "", errors.NewUpstreamError(
			fmt.Sprintf("AI 服务暂时不可用，请确认服务器端 API Key 是否配置正确 (%d)", resp.StatusCode),
			resp.StatusCode,
			string(bodyBytes),
		)
	}

	var parsed relayChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		emptyErr := errors.NewEmptyResponseError("中转服务返回了无法解析的响应")
		emptyErr.Cause = err
		return "", emptyErr
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.NewEmptyResponseError("AI 返回内容为空，请重试")
	}

	return parsed.Choices[0].Message.Content, nil
}
