package model

import "context"

// ResponseCache is satisfied by cache.Cache; declared here so the wrapper
// does not import the cache package it decorates.
type ResponseCache interface {
	Get(modelName, prompt string, opts Options) (string, bool)
	Set(modelName, prompt string, opts Options, content string) error
}

// Cached wraps a client with a read-through response cache.
type Cached struct {
	Client Client
	Cache  ResponseCache
}

func (c Cached) Name() string {
	if c.Client == nil {
		return ""
	}
	return c.Client.Name()
}

func (c Cached) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if c.Client == nil {
		return "", nil
	}
	if c.Cache != nil {
		if content, ok := c.Cache.Get(c.Name(), prompt, opts); ok {
			return content, nil
		}
	}
	content, err := c.Client.Generate(ctx, prompt, opts)
	if err != nil {
		return "", err
	}
	if c.Cache != nil {
		_ = c.Cache.Set(c.Name(), prompt, opts, content)
	}
	return content, nil
}
