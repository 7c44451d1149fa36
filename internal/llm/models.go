package llm

// modelAliases maps short names accepted in configuration to concrete
// vendor model IDs. Unknown names pass through unchanged.
var modelAliases = map[string]map[string]string{
	"anthropic": {
		"claude-sonnet": "claude-sonnet-4-20250514",
		"claude-haiku":  "claude-haiku-4-5-20251001",
	},
	"openai": {
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
	},
	"gemini": {
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	},
}

// ResolveModel returns the vendor model ID for name under provider.
func ResolveModel(provider, name string) string {
	if id, ok := modelAliases[provider][name]; ok {
		return id
	}
	return name
}
