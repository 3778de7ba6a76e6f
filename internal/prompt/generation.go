package prompt

import (
	"fmt"
	"strings"

	"github.com/mirae/creator-studio-go/internal/domain"
)

// GenerationPromptVars holds variables for the content-generation prompt template
type GenerationPromptVars struct {
	Platform  domain.Platform
	Style     domain.Style
	Keywords  []string
	CoreViews []domain.CoreView
}

// BuildGenerationPrompt renders the viral-copy generation prompt. Keywords are
// hashtag-joined and core views numbered, matching the JSON contract the
// generate validator expects back.
func BuildGenerationPrompt(vars GenerationPromptVars) string {
	tags := make([]string, 0, len(vars.Keywords))
	for _, k := range vars.Keywords {
		tags = append(tags, "#"+k)
	}

	views := make([]string, 0, len(vars.CoreViews))
	for i, v := range vars.CoreViews {
		views = append(views, fmt.Sprintf("  %d. 【%s】%s", i+1, v.Title, v.Content))
	}

	return fmt.Sprintf(`**Role:** 你是一位拥有千万粉丝、深谙流量密码的自媒体全案专家。你极度擅长捕捉网络情绪和流量算法，能够将枯燥的素材转化为极具点击欲望的爆款内容。

**Task:** 基于用户选定的关键词、核心观点、平台及细分风格，生成 3 套差异化的爆款标题及文案。

---

## 输入信息

- **目标平台：** %s
- **内容风格：** %s
- **关键词：** %s
- **核心观点：**
%s

---

## 工作流

### 1. 黄金标题生成
为每一套方案提供 1 个直击灵魂的标题：
- 必须包含"情绪钩子"（焦虑感 / 获得感 / 共鸣感 / 自由感，四选一）
- 必须使用 Emoji 增强视觉跳跃感
- 严禁出现"总之"、"综上所述"等 AI 陈词滥调，必须去 AI 化

### 2. 全平台 SEO 策略
撰写符合平台逻辑的博文正文：
- **小红书：** 大字报式标题 + 结构化分段 + 密集 Emoji + 底部 SEO 话题标签
- **抖音图文：** 强冲突开头 + 极短段落 + 引导滑动的悬念；正文前三行必须完成 Hook-留存-引导翻页
- **其他平台：** 自动切换为该平台的通用高转化格式

### 3. 人设对齐
语言风格严格匹配所选风格，参考典型句式如下：

| 风格 | 典型句式参考 |
|------|------------|
| 生活分享 / 经验实操 | "关于xx这件事，我有话要说"、"手把手教你xx"、"我不允许还有人不知道这个xx"、"我真的会谢，怎么没早点发现这个xx" |
| 精致美学 | "被xx硬控了一分钟"、"救命！这也太美了吧"、"高级感拉满"、"把氛围感拿捏得死死的"、"直接封神" |
| 情感力量传递 | "谁懂啊/谁懂这种感觉"、"狠狠共情了"、"这一刻，我突然懂了xx"、"少年感/松弛感yyds" |
| 知识干货分享 | "全文背诵"、"建议反复观看"、"听我一句劝"、"避雷/排雷"、"普通人也能抄的作业" |

---

## 输出要求
严格按照以下 JSON 格式输出 3 套方案，不要包含任何额外说明文字：

{
  "variants": [
    {
      "id": 1,
      "emotion_hook": "情绪钩子类型（焦虑感/获得感/共鸣感/自由感）",
      "title": "方案一标题（含 Emoji）",
      "body": "方案一正文（完整博文内容）"
    },
    {
      "id": 2,
      "emotion_hook": "情绪钩子类型",
      "title": "方案二标题（含 Emoji）",
      "body": "方案二正文（完整博文内容）"
    },
    {
      "id": 3,
      "emotion_hook": "情绪钩子类型",
      "title": "方案三标题（含 Emoji）",
      "body": "方案三正文（完整博文内容）"
    }
  ]
}`,
		vars.Platform,
		vars.Style,
		strings.Join(tags, " "),
		strings.Join(views, "\n"),
	)
}
