package llm

import "strings"

// ExtractJSON strips a surrounding markdown code fence from model output.
// Models asked for bare JSON frequently wrap it in ```json ... ``` anyway;
// callers strip the fence here before parsing. Text without a fence is
// returned trimmed and otherwise untouched.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+len("```"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}

	return text
}
