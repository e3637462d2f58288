package client

import (
	"context"
	"fmt"

	ai "github.com/unifiedllm/unified"
	"github.com/unifiedllm/unified/internal/provider/openai"
	"github.com/unifiedllm/unified/internal/retry"
)

// adapter is the full capability contract a backend must satisfy.
type adapter interface {
	ai.ChatProvider
	ai.EmbeddingProvider
}

// adapters is the closed registry mapping each implemented identity to its
// adapter constructor. Azure OpenAI shares the OpenAI adapter; only the
// base URL differs.
var adapters = map[ai.Provider]func(cfg ai.Config) adapter{
	ai.ProviderOpenAI:      func(cfg ai.Config) adapter { return openai.New(cfg) },
	ai.ProviderAzureOpenAI: func(cfg ai.Config) adapter { return openai.New(cfg) },
}

// Client is the unified entry point for chat and embedding calls. It holds
// no mutable state beyond its immutable configuration and adapter, so a
// single instance is safe for concurrent use.
type Client struct {
	cfg     ai.Config
	adapter adapter
	retry   retry.Config
}

// New resolves a configuration to a backend adapter and returns a ready
// client. It fails with a *unified.ConfigurationError when the
// configuration is invalid or the identity has no registered adapter;
// no partially usable client is ever returned.
func New(cfg ai.Config) (*Client, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factory, ok := adapters[cfg.Provider]
	if !ok {
		return nil, &ai.ConfigurationError{
			Provider: cfg.Provider,
			Msg:      fmt.Sprintf("provider %q is not implemented; use %q or %q", cfg.Provider, ai.ProviderOpenAI, ai.ProviderAzureOpenAI),
		}
	}

	return &Client{
		cfg:     cfg,
		adapter: factory(cfg),
		retry:   retry.FromBudget(cfg.MaxRetries),
	}, nil
}

// FromEnv builds a client from the UNIFIED_* environment variables.
func FromEnv() (*Client, error) {
	cfg, err := ai.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Config returns the configuration the client was built from.
func (c *Client) Config() ai.Config { return c.cfg }

// Chat sends a conversation and blocks until the backend responds.
// Transient failures are retried up to the configured budget.
func (c *Client) Chat(ctx context.Context, req *ai.ChatRequest) (*ai.ChatResponse, error) {
	return retry.Do(ctx, c.retry, func() (*ai.ChatResponse, error) {
		return c.adapter.Chat(ctx, req)
	})
}

// ChatAsync sends a conversation without blocking. It delivers exactly one
// result on the returned channel and then closes it. The outcome is
// identical to Chat given the same request and backend behavior.
func (c *Client) ChatAsync(ctx context.Context, req *ai.ChatRequest) <-chan ai.ChatResult {
	ch := make(chan ai.ChatResult, 1)
	go func() {
		defer close(ch)
		resp, err := c.Chat(ctx, req)
		ch <- ai.ChatResult{Response: resp, Err: err}
	}()
	return ch
}

// Embed generates embeddings and blocks until the backend responds.
// Transient failures are retried up to the configured budget.
func (c *Client) Embed(ctx context.Context, req *ai.EmbeddingRequest) (*ai.EmbeddingResponse, error) {
	return retry.Do(ctx, c.retry, func() (*ai.EmbeddingResponse, error) {
		return c.adapter.Embed(ctx, req)
	})
}

// EmbedAsync generates embeddings without blocking. It delivers exactly one
// result on the returned channel and then closes it.
func (c *Client) EmbedAsync(ctx context.Context, req *ai.EmbeddingRequest) <-chan ai.EmbeddingResult {
	ch := make(chan ai.EmbeddingResult, 1)
	go func() {
		defer close(ch)
		resp, err := c.Embed(ctx, req)
		ch <- ai.EmbeddingResult{Response: resp, Err: err}
	}()
	return ch
}
