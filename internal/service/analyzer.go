package service

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/constants"
	"github.com/mirae/creator-studio-go/internal/domain"
	"github.com/mirae/creator-studio-go/internal/prompt"
	"github.com/mirae/creator-studio-go/pkg/errors"
)

// analysisPayload is the permissive first-pass decode of the model's JSON.
// Nothing in it is trusted until repairAnalysis has run.
type analysisPayload struct {
	Platform  string            `json:"platform"`
	Style     string            `json:"style"`
	Keywords  []string          `json:"keywords"`
	CoreViews []coreViewPayload `json:"core_views"`
}

type coreViewPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Analyzer runs the first pipeline stage: raw inspiration text in, keywords
// and core views out.
type Analyzer struct {
	client CompletionClient
	logger *zap.Logger
}

func NewAnalyzer(client CompletionClient, logger *zap.Logger) *Analyzer {
	return &Analyzer{client: client, logger: logger}
}

func (a *Analyzer) Analyze(ctx context.Context, rawInput string, platform domain.Platform) (*domain.AnalysisResult, error) {
	if platform == "" {
		platform = domain.PlatformXiaohongshu
	}

	trimmed := strings.TrimSpace(rawInput)
	if utf8.RuneCountInString(trimmed) < constants.AIInputLimits.MinAnalyzeLength {
		return nil, errors.NewValidationError("输入内容过短，请至少输入50个字", "raw_input", rawInput)
	}

	input := truncateRunes(rawInput, constants.AIInputLimits.MaxAnalyzeLength)

	promptText := prompt.BuildAnalysisPrompt(prompt.AnalysisPromptVars{
		RawInput: input,
		Platform: platform,
	})

	a.logger.Info("Analyzing content",
		zap.String("platform", platform.String()),
		zap.Int("input_runes", utf8.RuneCountInString(input)),
	)

	text, err := a.client.ChatCompletion(ctx,
		[]domain.ChatMessage{domain.UserMessage(promptText)},
		domain.ChatOptions{Temperature: constants.StageTemperatures.Analyze, JSONMode: true},
	)
	if err != nil {
		return nil, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &payload); err != nil {
		a.logger.Error("Analysis response is not valid JSON", zap.Error(err))
		return nil, errors.NewParseError("AI 返回的分析结果无法解析，请重试", err)
	}

	return repairAnalysis(payload), nil
}

// repairAnalysis clamps and defaults the untrusted payload. It always yields a
// usable result: degraded beats failed for this stage.
func repairAnalysis(payload analysisPayload) *domain.AnalysisResult {
	platform := domain.Platform(payload.Platform)
	if !platform.IsValid() {
		platform = domain.PlatformXiaohongshu
	}

	style := domain.Style(payload.Style)
	if !style.IsValid() {
		style = domain.StyleLifeSharing
	}

	seen := make(map[string]struct{}, len(payload.Keywords))
	keywords := make([]string, 0, constants.ValidatorBounds.MaxKeywords)
	for _, kw := range payload.Keywords {
		if len(keywords) == constants.ValidatorBounds.MaxKeywords {
			break
		}
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	views := payload.CoreViews
	if len(views) > constants.ValidatorBounds.MaxCoreViews {
		views = views[:constants.ValidatorBounds.MaxCoreViews]
	}
	coreViews := make([]domain.CoreView, 0, len(views))
	for _, v := range views {
		if v.Title == "" || v.Content == "" {
			continue
		}
		coreViews = append(coreViews, domain.CoreView{Title: v.Title, Content: v.Content})
	}

	return &domain.AnalysisResult{
		Platform:  platform,
		Style:     style,
		Keywords:  keywords,
		CoreViews: coreViews,
	}
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
