package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-suggestion",
		Description: "A next-concept suggestion",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"next_concept_id": map[string]any{"type": "string"},
				"attempts":        map[string]any{"type": "integer", "minimum": 0},
				"action":          map[string]any{"type": "string", "enum": []any{"advance", "repeat", "review"}},
			},
			"required": []any{"next_concept_id", "attempts"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"next_concept_id":"fractions","attempts":3,"action":"advance"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"next_concept_id":"decimals","attempts":0}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"next_concept_id":"fractions"}`},
		{"wrong type", `{"next_concept_id":"fractions","attempts":"three"}`},
		{"enum violation", `{"next_concept_id":"fractions","attempts":1,"action":"skip"}`},
		{"below minimum", `{"next_concept_id":"fractions","attempts":-1}`},
		{"not json", `{not json}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("error content = %s, want %s", inv.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_ArrayOfIDs(t *testing.T) {
	schema := &Schema{
		Name:        "test-ranking",
		Description: "Ranked concept IDs",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"concept_ids": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"concept_ids"},
		},
	}

	valid := json.RawMessage(`{"concept_ids":["fractions","decimals"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"concept_ids":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestFinish_TruncatedStructuredResponse(t *testing.T) {
	req := Request{Schema: testSchema()}
	_, err := finish(req, json.RawMessage(`{"next_concept_id":"frac`), Usage{}, "m", "max_tokens")
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
	if Retryable(err) {
		t.Error("truncated response should not be retryable")
	}
}

func TestFinish_UnstructuredKeepsStopReason(t *testing.T) {
	resp, err := finish(Request{}, json.RawMessage(`"partial`), Usage{InputTokens: 7, OutputTokens: 3}, "m", "max_tokens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop = %q", resp.StopReason)
	}
	if resp.Usage.TotalTokens != 10 {
		t.Errorf("total tokens = %d, want 10", resp.Usage.TotalTokens)
	}
}

func TestFinish_ValidatesSchema(t *testing.T) {
	_, err := finish(Request{Schema: testSchema()}, json.RawMessage(`{}`), Usage{}, "m", "end")
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}
