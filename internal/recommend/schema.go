package recommend

import "github.com/abhisek/masteryforge/internal/llm"

// RankSchema defines the JSON schema for concept ranking responses.
var RankSchema = &llm.Schema{
	Name:        "rank-concepts",
	Description: "Candidate concept IDs ordered from most to least recommended",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concept_ids": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concept IDs taken from the candidate list, best first",
			},
		},
		"required":             []any{"concept_ids"},
		"additionalProperties": false,
	},
}

// NextSchema defines the JSON schema for post-quiz suggestions.
var NextSchema = &llm.Schema{
	Name:        "next-concept",
	Description: "The concept the learner should study next",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"next_concept_id": map[string]any{
				"type":        "string",
				"description": "ID of a concept from the course list; may be empty when repeat is true",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the choice",
			},
			"repeat": map[string]any{
				"type":        "boolean",
				"description": "True when the learner should repeat the concept just quizzed",
			},
		},
		"required":             []any{"next_concept_id", "reason", "repeat"},
		"additionalProperties": false,
	},
}
