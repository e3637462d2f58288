package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ai "github.com/unifiedllm/unified"
	"github.com/unifiedllm/unified/internal/retry"
)

// fakeAdapter simulates a backend with a scripted outcome sequence.
type fakeAdapter struct {
	mu           sync.Mutex
	chatCalls    int
	embedCalls   int
	chatOutcomes []ai.ChatResult
	embedResp    *ai.EmbeddingResponse
	embedErr     error
}

func (f *fakeAdapter) Chat(ctx context.Context, req *ai.ChatRequest) (*ai.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	outcome := f.chatOutcomes[min(f.chatCalls, len(f.chatOutcomes)-1)]
	f.chatCalls++
	return outcome.Response, outcome.Err
}

func (f *fakeAdapter) Embed(ctx context.Context, req *ai.EmbeddingRequest) (*ai.EmbeddingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embedCalls++
	return f.embedResp, f.embedErr
}

func fakeClient(fake *fakeAdapter, budget int) *Client {
	cfg := retry.FromBudget(budget)
	cfg.InitialDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return &Client{
		cfg:     ai.Config{Provider: ai.ProviderOpenAI, APIKey: "sk-test"},
		adapter: fake,
		retry:   cfg,
	}
}

func chatRequest(t *testing.T) *ai.ChatRequest {
	t.Helper()
	req, err := ai.NewChatRequest([]ai.ChatMessage{ai.UserMessage("hello")})
	require.NoError(t, err)
	return req
}

func TestNew(t *testing.T) {
	t.Run("resolves openai adapter", func(t *testing.T) {
		c, err := New(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "sk-test"})
		require.NoError(t, err)
		assert.NotNil(t, c)
		assert.Equal(t, "gpt-4o", c.Config().DefaultChatModel)
	})

	t.Run("azure reuses the openai adapter", func(t *testing.T) {
		c, err := New(ai.Config{
			Provider: ai.ProviderAzureOpenAI,
			APIKey:   "sk-test",
			BaseURL:  "https://example.azure.com/v1",
		})
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("missing credential fails", func(t *testing.T) {
		_, err := New(ai.Config{Provider: ai.ProviderOpenAI})

		var ce *ai.ConfigurationError
		require.ErrorAs(t, err, &ce)
	})

	t.Run("reserved identities fail fast", func(t *testing.T) {
		for _, p := range []ai.Provider{ai.ProviderGoogle, ai.ProviderTogether, ai.ProviderAnyscale} {
			_, err := New(ai.Config{Provider: p, APIKey: "sk-test"})

			var ce *ai.ConfigurationError
			require.ErrorAs(t, err, &ce, "provider %s", p)
			assert.Equal(t, p, ce.Provider)
		}
	})

	t.Run("unknown identity fails", func(t *testing.T) {
		_, err := New(ai.Config{Provider: "replicate", APIKey: "sk-test"})

		var ce *ai.ConfigurationError
		require.ErrorAs(t, err, &ce)
	})
}

func TestChatRetriesTransientFailures(t *testing.T) {
	success := &ai.ChatResponse{ID: "chatcmpl-1", Model: "gpt-4o", Content: "hi", Role: ai.RoleAssistant}

	t.Run("transient failure within budget returns success", func(t *testing.T) {
		fake := &fakeAdapter{chatOutcomes: []ai.ChatResult{
			{Err: &ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 503}},
			{Err: &ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 503}},
			{Response: success},
		}}
		c := fakeClient(fake, 3)

		resp, err := c.Chat(context.Background(), chatRequest(t))
		require.NoError(t, err)
		assert.Equal(t, 3, fake.chatCalls)
		// Retried success is indistinguishable from first-attempt success.
		assert.Equal(t, success, resp)
	})

	t.Run("non-transient failure is not retried", func(t *testing.T) {
		fake := &fakeAdapter{chatOutcomes: []ai.ChatResult{
			{Err: &ai.AuthenticationError{APIError: ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 401}}},
		}}
		c := fakeClient(fake, 3)

		_, err := c.Chat(context.Background(), chatRequest(t))
		require.Error(t, err)
		assert.Equal(t, 1, fake.chatCalls)
	})

	t.Run("exhausted budget surfaces the last error", func(t *testing.T) {
		last := &ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 500, Msg: "still down"}
		fake := &fakeAdapter{chatOutcomes: []ai.ChatResult{{Err: last}}}
		c := fakeClient(fake, 2)

		_, err := c.Chat(context.Background(), chatRequest(t))
		assert.Same(t, error(last), err)
		assert.Equal(t, 3, fake.chatCalls)
	})
}

func TestChatAndChatAsyncAgree(t *testing.T) {
	req := chatRequest(t)

	tests := []struct {
		name    string
		outcome ai.ChatResult
	}{
		{
			"success",
			ai.ChatResult{Response: &ai.ChatResponse{ID: "chatcmpl-1", Model: "gpt-4o", Content: "hi", Role: ai.RoleAssistant}},
		},
		{
			"authentication failure",
			ai.ChatResult{Err: &ai.AuthenticationError{APIError: ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 401}}},
		},
		{
			"server failure",
			ai.ChatResult{Err: &ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 500}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocking := fakeClient(&fakeAdapter{chatOutcomes: []ai.ChatResult{tt.outcome}}, 0)
			async := fakeClient(&fakeAdapter{chatOutcomes: []ai.ChatResult{tt.outcome}}, 0)

			resp, err := blocking.Chat(context.Background(), req)
			result := <-async.ChatAsync(context.Background(), req)

			assert.Equal(t, resp, result.Response)
			assert.Equal(t, err, result.Err)
		})
	}
}

func TestChatAsyncChannelCloses(t *testing.T) {
	fake := &fakeAdapter{chatOutcomes: []ai.ChatResult{
		{Response: &ai.ChatResponse{Content: "hi"}},
	}}
	c := fakeClient(fake, 0)

	ch := c.ChatAsync(context.Background(), chatRequest(t))

	first, ok := <-ch
	assert.True(t, ok)
	assert.NotNil(t, first.Response)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after the single result")
}

func TestEmbed(t *testing.T) {
	req, err := ai.NewTextEmbeddingRequest("hello")
	require.NoError(t, err)

	t.Run("delegates to the adapter", func(t *testing.T) {
		want := &ai.EmbeddingResponse{
			Embeddings: [][]float64{{0.1, 0.2}},
			Model:      "text-embedding-3-small",
		}
		c := fakeClient(&fakeAdapter{embedResp: want}, 0)

		resp, err := c.Embed(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.Len(t, resp.Embeddings, len(req.Input))
	})

	t.Run("async agrees with blocking", func(t *testing.T) {
		failure := &ai.RateLimitError{APIError: ai.APIError{Provider: ai.ProviderOpenAI, StatusCode: 429}}
		blocking := fakeClient(&fakeAdapter{embedErr: failure}, 0)
		async := fakeClient(&fakeAdapter{embedErr: failure}, 0)

		_, blockingErr := blocking.Embed(context.Background(), req)
		result := <-async.EmbedAsync(context.Background(), req)

		assert.Equal(t, blockingErr, result.Err)
		assert.Nil(t, result.Response)
	})
}

func TestConcurrentUse(t *testing.T) {
	fake := &fakeAdapter{embedResp: &ai.EmbeddingResponse{
		Embeddings: [][]float64{{0.1}},
		Model:      "text-embedding-3-small",
	}}
	// Fan out many async calls on one shared client; the adapter itself is
	// scripted and stateless apart from its counter.
	c := fakeClient(fake, 0)

	req, err := ai.NewTextEmbeddingRequest("hello")
	require.NoError(t, err)

	channels := make([]<-chan ai.EmbeddingResult, 8)
	for i := range channels {
		channels[i] = c.EmbedAsync(context.Background(), req)
	}
	for _, ch := range channels {
		result := <-ch
		require.NoError(t, result.Err)
		assert.Len(t, result.Response.Embeddings, 1)
	}
}
