package llm

// Model aliases accepted in FUJI_*_MODEL variables. Aliases track the
// current cheap/capable tier per provider so configs don't go stale when
// a dated model ID is superseded; anything not listed is passed to the
// provider verbatim.
var (
	anthropicModels = map[string]string{
		"claude-haiku":  "claude-haiku-4-5-20251001",
		"claude-sonnet": "claude-sonnet-4-5-20250929",
	}

	openaiModels = map[string]string{
		"gpt-mini": "gpt-5-mini",
		"gpt":      "gpt-5.1",
	}

	geminiModels = map[string]string{
		"gemini-flash":      "gemini-2.5-flash",
		"gemini-flash-lite": "gemini-2.5-flash-lite",
		"gemini-pro":        "gemini-2.5-pro",
	}
)

// resolveModel expands an alias to its provider model ID. Unknown names
// pass through so users can pin exact model IDs.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
