package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"claude-sonnet-4-20250514", &ModelCost{3, 15}},
		{"gpt-4o-2024-08-06", &ModelCost{2.5, 10}},
		{"openai/gpt-4.1-mini", &ModelCost{0.4, 1.6}},
		{"mock", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupCost(tt.model))
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := LookupCost("claude-haiku-4-5")
	require.NotNil(t, c)
	assert.InDelta(t, 0.001+0.0025, c.Cost(1000, 500), 1e-12)
}
