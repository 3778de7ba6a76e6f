package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/domain"
)

const pipelineGenerationJSON = `{"variants": [
	{"id": 1, "emotion_hook": "共鸣感", "title": "谁懂啊，这家咖啡店 ☕", "body": "正文一"},
	{"id": 2, "emotion_hook": "自由感", "title": "裸辞去旅行 ✈️", "body": "正文二"}
]}`

const pipelineBeautifyJSON = `{
	"photography_guide": {"emotion": "松弛", "breathing_space": "大量留白", "authenticity": "抓拍", "light_direction": "午后侧光", "color_tone": "暖调"},
	"aigc_prompt": {"positive": "cozy cafe, warm light", "ratio": "3:4"}
}`

func newTestPipeline(client CompletionClient) *Pipeline {
	logger := zap.NewNop()
	return NewPipeline(
		NewAnalyzer(client, logger),
		NewGenerator(client, logger),
		NewBeautifier(client, logger),
		logger,
	)
}

func pipelineInput() string {
	return strings.Repeat("去京都的咖啡馆坐了一下午，", 20)
}

func TestPipelineThreadsResultsForward(t *testing.T) {
	client := &fakeClient{responses: []string{validAnalysisJSON, pipelineGenerationJSON, pipelineBeautifyJSON}}
	pipeline := newTestPipeline(client)

	result, err := pipeline.Run(context.Background(), pipelineInput(), domain.PlatformXiaohongshu, 0)
	if err != nil {
		t.Fatalf("expected pipeline to succeed, got %v", err)
	}

	if len(client.calls) != 3 {
		t.Fatalf("expected 3 AI calls, got %d", len(client.calls))
	}

	// Generation prompt must embed the analysis keywords.
	if !strings.Contains(client.calls[1].messages[0].Content, "#咖啡 #旅行") {
		t.Fatalf("expected analysis keywords threaded into generation prompt")
	}

	// Beautify prompt must embed the selected variant's title.
	if !strings.Contains(client.calls[2].messages[0].Content, "谁懂啊，这家咖啡店") {
		t.Fatalf("expected first variant title threaded into beautify prompt")
	}

	if result.SelectedVariant == nil || result.SelectedVariant.ID != 1 {
		t.Fatalf("expected first variant selected by default, got %+v", result.SelectedVariant)
	}
	if result.Beautification.AigcPrompt.Ratio != "3:4" {
		t.Fatalf("unexpected beautification result: %+v", result.Beautification)
	}
	if result.Beautification.AigcPrompt.Negative == "" {
		t.Fatalf("expected negative prompt fallback to be filled")
	}
}

func TestPipelineSelectsRequestedVariant(t *testing.T) {
	client := &fakeClient{responses: []string{validAnalysisJSON, pipelineGenerationJSON, pipelineBeautifyJSON}}
	pipeline := newTestPipeline(client)

	result, err := pipeline.Run(context.Background(), pipelineInput(), domain.PlatformXiaohongshu, 2)
	if err != nil {
		t.Fatalf("expected pipeline to succeed, got %v", err)
	}
	if result.SelectedVariant.ID != 2 {
		t.Fatalf("expected variant 2 selected, got %d", result.SelectedVariant.ID)
	}
	if !strings.Contains(client.calls[2].messages[0].Content, "裸辞去旅行") {
		t.Fatalf("expected second variant title in beautify prompt")
	}
}

func TestPipelineStopsWhenAnalysisFails(t *testing.T) {
	client := &fakeClient{responses: []string{validAnalysisJSON}}
	pipeline := newTestPipeline(client)

	_, err := pipeline.Run(context.Background(), "太短", domain.PlatformXiaohongshu, 0)
	if err == nil {
		t.Fatalf("expected short-input failure to stop the pipeline")
	}
	if len(client.calls) != 0 {
		t.Fatalf("expected no AI calls after precondition failure, got %d", len(client.calls))
	}
}
