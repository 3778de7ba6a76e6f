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

type beautifyPayload struct {
	PhotographyGuide photographyGuidePayload `json:"photography_guide"`
	AigcPrompt       aigcPromptPayload       `json:"aigc_prompt"`
}

type photographyGuidePayload struct {
	Emotion        string `json:"emotion"`
	BreathingSpace string `json:"breathing_space"`
	Authenticity   string `json:"authenticity"`
	LightDirection string `json:"light_direction"`
	ColorTone      string `json:"color_tone"`
}

type aigcPromptPayload struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
	Ratio    string `json:"ratio"`
	StyleRef string `json:"style_ref"`
}

// Beautifier runs the final pipeline stage: visual guidance for the chosen
// variant, as a photography guide plus a ready-to-paste AIGC prompt.
type Beautifier struct {
	client CompletionClient
	logger *zap.Logger
}

func NewBeautifier(client CompletionClient, logger *zap.Logger) *Beautifier {
	return &Beautifier{client: client, logger: logger}
}

func (b *Beautifier) Beautify(ctx context.Context, input domain.BeautifyInput) (*domain.BeautifyResult, error) {
	promptText := prompt.BuildBeautifyPrompt(prompt.BeautifyPromptVars{
		Platform: input.Platform,
		Style:    input.Style,
		Title:    input.Title,
		Body:     input.Body,
	})

	b.logger.Info("Beautifying image guidance",
		zap.String("platform", input.Platform.String()),
		zap.String("style", input.Style.String()),
	)

	text, err := b.client.ChatCompletion(ctx,
		[]domain.ChatMessage{domain.UserMessage(promptText)},
		domain.ChatOptions{Temperature: constants.StageTemperatures.Beautify, JSONMode: true},
	)
	if err != nil {
		return nil, err
	}

	var payload beautifyPayload
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &payload); err != nil {
		b.logger.Error("Beautify response is not valid JSON", zap.Error(err))
		return nil, errors.NewParseError("AI 返回的视觉方案无法解析，请重试", err)
	}

	return repairBeautify(payload), nil
}

// repairBeautify defaults every missing field. Guide fields fall back to the
// empty string; the AIGC prompt's negative/ratio/style_ref get fixed fallbacks
// so the output is always paste-ready.
func repairBeautify(payload beautifyPayload) *domain.BeautifyResult {
	aigc := domain.AigcPrompt{
		Positive: payload.AigcPrompt.Positive,
		Negative: payload.AigcPrompt.Negative,
		Ratio:    payload.AigcPrompt.Ratio,
		StyleRef: payload.AigcPrompt.StyleRef,
	}
	if aigc.Negative == "" {
		aigc.Negative = constants.AigcDefaults.Negative
	}
	if aigc.Ratio == "" {
		aigc.Ratio = constants.AigcDefaults.Ratio
	}
	if aigc.StyleRef == "" {
		aigc.StyleRef = constants.AigcDefaults.StyleRef
	}

	return &domain.BeautifyResult{
		PhotographyGuide: domain.PhotographyGuide{
			Emotion:        payload.PhotographyGuide.Emotion,
			BreathingSpace: payload.PhotographyGuide.BreathingSpace,
			Authenticity:   payload.PhotographyGuide.Authenticity,
			LightDirection: payload.PhotographyGuide.LightDirection,
			ColorTone:      payload.PhotographyGuide.ColorTone,
		},
		AigcPrompt: aigc,
	}
}
