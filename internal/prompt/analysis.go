package prompt

import (
	"fmt"

	"github.com/mirae/creator-studio-go/internal/domain"
)

// AnalysisPromptVars holds variables for the content-analysis prompt template
type AnalysisPromptVars struct {
	RawInput string
	Platform domain.Platform
}

// BuildAnalysisPrompt renders the keyword/insight extraction prompt.
// The model is instructed to emit strict JSON matching AnalysisResult.
func BuildAnalysisPrompt(vars AnalysisPromptVars) string {
	return fmt.Sprintf(`**Role:** 你是一位资深的内容策划与选题分析专家，擅长从零散的灵感素材中提炼出具有传播潜力的关键词与核心观点。

**Task:** 分析用户输入的原始灵感素材，提取关键词与核心观点，并判断最适配的内容风格。

---

## 输入信息

- **目标平台：** %s
- **原始素材：**
%s

---

## 分析要求

1. **关键词提取**：提取 5-8 个最具搜索与传播价值的关键词（不含 # 号，彼此不重复）
2. **风格判定**：从以下六种风格中选择最贴合素材气质的一种：
   生活分享 / 经验实操 / 精致美学 / 情感力量传递 / 随笔风 / 知识干货分享
3. **核心观点**：提炼 3-5 条核心观点，每条包含一句话小标题（title）与一段展开阐述（content），两者都不能为空

---

## 输出要求
严格按照以下 JSON 格式输出，不要包含任何额外说明文字：

{
  "platform": "%s",
  "style": "六种风格之一",
  "keywords": ["关键词1", "关键词2"],
  "core_views": [
    {
      "title": "观点一小标题",
      "content": "观点一展开阐述"
    }
  ]
}`,
		vars.Platform,
		vars.RawInput,
		vars.Platform,
	)
}
