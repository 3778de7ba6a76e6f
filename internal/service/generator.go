package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/constants"
	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/internal/prompt"
	"github.com/mirae/creator-studio-go/pkg/errors"
)

type generationPayload struct {
	Variants []variantPayload `json:"variants"`
}

type variantPayload struct {
	ID          int    `json:"id"`
	EmotionHook string `json:"emotion_hook"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

// Generator runs the second pipeline stage, turning the analysis output into
// up to three differentiated content variants.
type Generator struct {
	client CompletionClient
	logger *zap.Logger
}

func NewGenerator(client CompletionClient, logger *zap.Logger) *Generator {
	return &Generator{client: client, logger: logger}
}

func (g *Generator) Generate(ctx context.Context, platform domain.Platform, style domain.Style, keywords []string, coreViews []domain.CoreView) (*domain.GenerationResult, error) {
	promptText := prompt.BuildGenerationPrompt(prompt.GenerationPromptVars{
		Platform:  platform,
		Style:     style,
		Keywords:  keywords,
		CoreViews: coreViews,
	})

	g.logger.Info("Generating content variants",
		zap.String("platform", platform.String()),
		zap.String("style", style.String()),
		zap.Int("keywords", len(keywords)),
	)

	// Higher creative variance is intentional for this stage only.
	text, err := g.client.ChatCompletion(ctx,
		[]domain.ChatMessage{domain.UserMessage(promptText)},
		domain.ChatOptions{Temperature: constants.StageTemperatures.Generate, JSONMode: true},
	)
	if err != nil {
		return nil, err
	}

	var payload generationPayload
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &payload); err != nil {
		g.logger.Error("Generation response is not valid JSON", zap.Error(err))
		return nil, errors.NewParseError("AI 返回的文案方案无法解析，请重试", err)
	}

	return repairGeneration(payload)
}

// repairGeneration clamps to three variants and drops any without both a
// title and a body. Unlike analyze and beautify, an empty survivor set is a
// hard failure: the next stage needs at least one variant to feed on.
func repairGeneration(payload generationPayload) (*domain.GenerationResult, error) {
	candidates := payload.Variants
	if len(candidates) > constants.ValidatorBounds.MaxVariants {
		candidates = candidates[:constants.ValidatorBounds.MaxVariants]
	}

	variants := make([]domain.ContentVariant, 0, len(candidates))
	for i, v := range candidates {
		if v.Title == "" || v.Body == "" {
			continue
		}

		id := v.ID
		if id <= 0 {
			id = i + 1
		}

		hook := domain.EmotionHook(v.EmotionHook)
		if !hook.IsValid() {
			hook = domain.HookGain
		}

		variants = append(variants, domain.ContentVariant{
			ID:          id,
			EmotionHook: hook,
			Title:       v.Title,
			Body:        v.Body,
		})
	}

	if len(variants) == 0 {
		return nil, errors.NewGenerationFailedError("AI 未能生成有效内容方案，请重试")
	}

	return &domain.GenerationResult{Variants: variants}, nil
}
