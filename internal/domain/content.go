package domain

type Platform string

const (
	PlatformXiaohongshu  Platform = "小红书"
	PlatformDouyin       Platform = "抖音"
	PlatformWeibo        Platform = "微博"
	PlatformGongzhonghao Platform = "公众号"
	PlatformShipinhao    Platform = "视频号"
)

func (p Platform) String() string {
	return string(p)
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformXiaohongshu, PlatformDouyin, PlatformWeibo, PlatformGongzhonghao, PlatformShipinhao:
		return true
	default:
		return false
	}
}

type Style string

const (
	StyleLifeSharing Style = "生活分享"
	StyleHandsOn     Style = "经验实操"
	StyleAesthetic   Style = "精致美学"
	StyleEmotional   Style = "情感力量传递"
	StyleEssay       Style = "随笔风"
	StyleKnowledge   Style = "知识干货分享"
)

func (s Style) String() string {
	return string(s)
}

func (s Style) IsValid() bool {
	switch s {
	case StyleLifeSharing, StyleHandsOn, StyleAesthetic, StyleEmotional, StyleEssay, StyleKnowledge:
		return true
	default:
		return false
	}
}

// EmotionHook is the categorical tag the generation prompt asks the model to
// assign per variant. Four fixed values, prompt-level contract.
type EmotionHook string

const (
	HookAnxiety   EmotionHook = "焦虑感"
	HookGain      EmotionHook = "获得感"
	HookResonance EmotionHook = "共鸣感"
	HookFreedom   EmotionHook = "自由感"
)

func (h EmotionHook) IsValid() bool {
	switch h {
	case HookAnxiety, HookGain, HookResonance, HookFreedom:
		return true
	default:
		return false
	}
}

type CoreView struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnalysisResult is the repaired output of the analyze stage: at most 8 unique
// keywords and at most 5 core views with both fields non-empty.
type AnalysisResult struct {
	Platform  Platform   `json:"platform"`
	Style     Style      `json:"style"`
	Keywords  []string   `json:"keywords"`
	CoreViews []CoreView `json:"core_views"`
}

type ContentVariant struct {
	ID          int         `json:"id"`
	EmotionHook EmotionHook `json:"emotion_hook"`
	Title       string      `json:"title"`
	Body        string      `json:"body"`
}

// GenerationResult holds 1-3 surviving variants; an empty set never leaves the
// generate stage (it escalates to GenerationFailedError instead).
type GenerationResult struct {
	Variants []ContentVariant `json:"variants"`
}

type BeautifyInput struct {
	Platform Platform
	Style    Style
	Title    string
	Body     string
}

type PhotographyGuide struct {
	Emotion        string `json:"emotion"`
	BreathingSpace string `json:"breathing_space"`
	Authenticity   string `json:"authenticity"`
	LightDirection string `json:"light_direction"`
	ColorTone      string `json:"color_tone"`
}

type AigcPrompt struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
	Ratio    string `json:"ratio"`
	StyleRef string `json:"style_ref"`
}

type BeautifyResult struct {
	PhotographyGuide PhotographyGuide `json:"photography_guide"`
	AigcPrompt       AigcPrompt       `json:"aigc_prompt"`
}

// PipelineResult bundles the forward-flowing state of one full run.
type PipelineResult struct {
	RawInput        string
	Analysis        *AnalysisResult
	Generation      *GenerationResult
	SelectedVariant *ContentVariant
	Beautification  *BeautifyResult
}
