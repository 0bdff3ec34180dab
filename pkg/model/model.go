package model

import "context"

// Client generates completions for judge-style metrics.
type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options controls generation behavior.
type Options struct {
	Temperature  float32  `json:"temperature"`
	MaxTokens    int      `json:"max_tokens"`
	TopP         float32  `json:"top_p"`
	Stop         []string `json:"stop"`
	SystemPrompt string   `json:"system_prompt,omitempty"`
}
