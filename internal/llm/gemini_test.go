package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiSchema_RankingShape(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concept_ids": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"action":    map[string]any{"type": "string", "enum": []any{"next", "repeat"}},
			"reasoning": map[string]any{"type": "string", "description": "one sentence"},
			"score":     map[string]any{"type": "number"},
		},
		"required": []string{"concept_ids", "action"},
	}

	s := geminiSchema(def)
	require.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 4)
	assert.Equal(t, genai.TypeArray, s.Properties["concept_ids"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["concept_ids"].Items.Type)
	assert.Equal(t, []string{"next", "repeat"}, s.Properties["action"].Enum)
	assert.Equal(t, "one sentence", s.Properties["reasoning"].Description)
	assert.Equal(t, genai.TypeNumber, s.Properties["score"].Type)
	assert.Equal(t, []string{"concept_ids", "action"}, s.Required)
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, stringList([]any{"a", 3, "b"}))
	assert.Equal(t, []string{"x"}, stringList([]string{"x"}))
	assert.Nil(t, stringList(nil))
	assert.Nil(t, stringList("nope"))
}

func TestGeminiContents_Roles(t *testing.T) {
	out := geminiContents([]Message{
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, Content: "a"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "user", out[0].Role)
	assert.Equal(t, "model", out[1].Role)
	assert.Equal(t, "a", out[1].Parts[0].Text)
}

func TestGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	assert.True(t, errors.As(geminiError(genai.APIError{Code: 429}), &rl))

	var rej *ErrRequestRejected
	assert.True(t, errors.As(geminiError(fmt.Errorf("call: %w", genai.APIError{Code: 400})), &rej))

	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(geminiError(genai.APIError{Code: 503}), &unavail))
	assert.True(t, errors.As(geminiError(errors.New("dial tcp: refused")), &unavail))
}
