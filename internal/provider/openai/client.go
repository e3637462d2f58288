// Package openai is the reference backend adapter. It translates the
// canonical request model to the OpenAI wire format, performs the exchange,
// and maps every failure onto the provider error taxonomy. Azure OpenAI
// deployments reuse this adapter with a different base URL.
package openai

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/unifiedllm/unified"
)

// Client wraps the OpenAI SDK to implement ai.ChatProvider and
// ai.EmbeddingProvider. It is read-only after construction and safe for
// concurrent use.
type Client struct {
	client         *openai.Client
	provider       ai.Provider
	chatModel      string
	embeddingModel string
	configExtra    map[string]any
}

// New creates an adapter from a validated configuration. The SDK's own
// retry loop is disabled; the retry budget is owned by the caller so that
// classification follows the taxonomy.
func New(cfg ai.Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client:         &client,
		provider:       cfg.Provider,
		chatModel:      cfg.DefaultChatModel,
		embeddingModel: cfg.DefaultEmbeddingModel,
		configExtra:    cfg.Extra,
	}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, req *ai.ChatRequest) (*ai.ChatResponse, error) {
	model := c.chatModel
	if req.Model != "" {
		model = req.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    convertMessages(req.Messages),
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.FrequencyPenalty != 0 {
		params.FrequencyPenalty = openai.Float(req.FrequencyPenalty)
	}
	if req.PresencePenalty != 0 {
		params.PresencePenalty = openai.Float(req.PresencePenalty)
	}
	if len(req.Stop) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: req.Stop,
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, c.extraOptions(req.Extra)...)
	if err != nil {
		return nil, wrapError(c.provider, model, err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ai.APIError{
			Provider:   c.provider,
			Msg:        "malformed response: no choices",
			StatusCode: 200,
			Body:       resp.RawJSON(),
		}
	}

	choice := resp.Choices[0]
	return &ai.ChatResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      choice.Message.Content,
		Role:         ai.Role(choice.Message.Role),
		FinishReason: string(choice.FinishReason),
		Usage: &ai.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		Raw: json.RawMessage(resp.RawJSON()),
	}, nil
}

// extraOptions turns config-level and request-level extension parameters
// into request options. Request-level values win.
func (c *Client) extraOptions(reqExtra map[string]any) []option.RequestOption {
	if len(c.configExtra) == 0 && len(reqExtra) == 0 {
		return nil
	}
	opts := make([]option.RequestOption, 0, len(c.configExtra)+len(reqExtra))
	for key, value := range c.configExtra {
		opts = append(opts, option.WithJSONSet(key, value))
	}
	for key, value := range reqExtra {
		opts = append(opts, option.WithJSONSet(key, value))
	}
	return opts
}

var _ ai.ChatProvider = (*Client)(nil)
var _ ai.EmbeddingProvider = (*Client)(nil)
