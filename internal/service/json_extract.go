package service

import (
	"regexp"
	"strings"
)

// Fenced code block, optionally tagged "json" (compiled once)
var fencedBlockPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ExtractJSON recovers a JSON object from free-form model text. Models wrap
// JSON in markdown fences or surround it with commentary despite instructions,
// so: a fenced block wins, then the first-{ to last-} span, then the trimmed
// input as-is. Never fails; the caller's json.Unmarshal is the real gate.
func ExtractJSON(raw string) string {
	if match := fencedBlockPattern.FindStringSubmatch(raw); match != nil {
		return strings.TrimSpace(match[1])
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && end > start {
		return raw[start : end+1]
	}

	return strings.TrimSpace(raw)
}
