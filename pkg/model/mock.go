package model

import "context"

// Mock returns a fixed response or echoes the prompt.
type Mock struct {
	NameValue    string
	ResponseText string
}

func (m Mock) Name() string {
	if m.NameValue == "" {
		return "mock"
	}
	return m.NameValue
}

func (m Mock) Generate(_ context.Context, prompt string, _ Options) (string, error) {
	if m.ResponseText != "" {
		return m.ResponseText, nil
	}
	return prompt, nil
}
