package service

import (
	"context"
	stderrors "errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/pkg/errors"
)

// DirectClient calls the configured OpenAI-compatible endpoint with a
// caller-held key. For local and trusted environments only; deployments that
// cannot hold a secret use RelayClient instead.
type DirectClient struct {
	resolver *Resolver
	logger   *zap.Logger
}

func NewDirectClient(resolver *Resolver, logger *zap.Logger) *DirectClient {
	return &DirectClient{
		resolver: resolver,
		logger:   logger,
	}
}

func (c *DirectClient) ChatCompletion(ctx context.Context, messages []domain.ChatMessage, opts domain.ChatOptions) (string, error) {
	cfg, err := c.resolver.Resolve(ctx)
	if err != nil {
		return "", err
	}

	// The SDK client is rebuilt per call on purpose: the resolved key, base
	// URL and model may change between calls via the settings store.
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(cfg.Model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(temperature),
	}

	if opts.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	c.logger.Debug("Direct chat completion",
		zap.String("model", cfg.Model),
		zap.Float64("temperature", temperature),
		zap.Bool("json_mode", opts.JSONMode),
	)

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if stderrors.As(err, &apierr) {
			c.logger.Error("Upstream rejected chat completion",
				zap.Int("status", apierr.StatusCode),
				zap.Error(err),
			)
			return "", errors.NewUpstreamError("AI 请求失败", apierr.StatusCode, apierr.Error())
		}
		c.logger.Error("Chat completion transport failed", zap.Error(err))
		return "", errors.NewNetworkError("AI 服务无法连接，请检查网络或代理", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.NewEmptyResponseError("AI 返回内容为空，请重试")
	}

	text := resp.Choices[0].Message.Content
	c.logger.Debug("Chat completion received",
		zap.Int("length", len(text)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return text, nil
}

func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case domain.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
