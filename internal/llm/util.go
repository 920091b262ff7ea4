package llm

import "strings"

// CleanJSONBlock strips a surrounding markdown code fence from a model
// response. Models wrap JSON in fences even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")

	// Drop a remaining language tag on the fence line.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 && idx < 20 && !strings.ContainsAny(text[:idx], "{ ") {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
