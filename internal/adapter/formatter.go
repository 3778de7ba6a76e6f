package adapter

import (
	"fmt"
	"strings"

	"github.com/mirae/creator-studio-go/internal/domain"
)

// ResultFormatter renders stage results as shareable markdown.
type ResultFormatter struct{}

func NewResultFormatter() *ResultFormatter {
	return &ResultFormatter{}
}

// FormatAnalysis formats an analysis result.
func (f *ResultFormatter) FormatAnalysis(result *domain.AnalysisResult) string {
	var sb strings.Builder
	sb.WriteString("## 素材分析\n\n")
	sb.WriteString(fmt.Sprintf("- 平台：%s\n", result.Platform))
	sb.WriteString(fmt.Sprintf("- 风格：%s\n", result.Style))

	if len(result.Keywords) > 0 {
		tags := make([]string, 0, len(result.Keywords))
		for _, kw := range result.Keywords {
			tags = append(tags, "#"+kw)
		}
		sb.WriteString(fmt.Sprintf("- 关键词：%s\n", strings.Join(tags, " ")))
	}

	if len(result.CoreViews) > 0 {
		sb.WriteString("\n### 核心观点\n\n")
		for i, v := range result.CoreViews {
			sb.WriteString(fmt.Sprintf("%d. 【%s】%s\n", i+1, v.Title, v.Content))
		}
	}

	return sb.String()
}

// FormatVariants formats generated content variants.
func (f *ResultFormatter) FormatVariants(result *domain.GenerationResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## 文案方案（%d 套）\n", len(result.Variants)))

	for _, v := range result.Variants {
		sb.WriteString(fmt.Sprintf("\n### 方案 %d · %s\n\n", v.ID, v.EmotionHook))
		sb.WriteString(fmt.Sprintf("**%s**\n\n", v.Title))
		sb.WriteString(v.Body)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatBeautify formats the visual guidance for the chosen variant.
func (f *ResultFormatter) FormatBeautify(result *domain.BeautifyResult) string {
	var sb strings.Builder
	guide := result.PhotographyGuide

	sb.WriteString("## 配图方案\n\n")
	sb.WriteString("### 实拍指导\n\n")
	sb.WriteString(fmt.Sprintf("- 情绪基调：%s\n", guide.Emotion))
	sb.WriteString(fmt.Sprintf("- 呼吸感：%s\n", guide.BreathingSpace))
	sb.WriteString(fmt.Sprintf("- 真实感：%s\n", guide.Authenticity))
	sb.WriteString(fmt.Sprintf("- 光源方向：%s\n", guide.LightDirection))
	sb.WriteString(fmt.Sprintf("- 色调：%s\n", guide.ColorTone))

	aigc := result.AigcPrompt
	sb.WriteString("\n### AI 绘图指令\n\n")
	sb.WriteString(fmt.Sprintf("```\n%s\n```\n\n", aigc.Positive))
	sb.WriteString(fmt.Sprintf("- 负向提示词：%s\n", aigc.Negative))
	sb.WriteString(fmt.Sprintf("- 画面比例：%s\n", aigc.Ratio))
	sb.WriteString(fmt.Sprintf("- 风格参考：%s\n", aigc.StyleRef))

	return sb.String()
}

// FormatPipeline renders a full run as one export document.
func (f *ResultFormatter) FormatPipeline(result *domain.PipelineResult) string {
	var sb strings.Builder
	sb.WriteString("# 创作方案\n\n")
	sb.WriteString(f.FormatAnalysis(result.Analysis))
	sb.WriteString("\n")
	sb.WriteString(f.FormatVariants(result.Generation))

	if result.SelectedVariant != nil {
		sb.WriteString(fmt.Sprintf("\n> 选定方案：%d\n\n", result.SelectedVariant.ID))
	}

	sb.WriteString(f.FormatBeautify(result.Beautification))
	return sb.String()
}
