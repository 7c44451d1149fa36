// Package llm talks to hosted language models for concept ranking and
// post-quiz advice. Every vendor is reached through Provider; retries,
// timeouts and request logging are decorators around it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion.
type Provider interface {
	// Generate returns the model's answer. With req.Schema set the vendor's
	// structured output mode is used and Content is schema-valid JSON.
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Request is a single prompt. Recommender calls are single-turn.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil for free text
	MaxTokens   int
	Temperature float64 // 0 leaves the vendor default
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the answer must satisfy. Name is sent to vendors
// that require one and must be kebab-case, e.g. "rank-concepts".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a completed generation. StopReason is "end" or "max_tokens".
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
