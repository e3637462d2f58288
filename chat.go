package unified

import (
	"context"
	"encoding/json"
)

// Sampling parameter defaults and bounds, matching the OpenAI dialect.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 1.0

	maxTemperature = 2.0
	maxPenalty     = 2.0
)

// ChatRequest is a validated, vendor-neutral chat completion request.
// Construct it with NewChatRequest; fields are never re-validated or
// mutated after construction.
type ChatRequest struct {
	Messages         []ChatMessage
	Model            string // empty means the configured default
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	MaxTokens        int // 0 means backend default
	Stop             []string
	Stream           bool
	// Extra carries provider-specific request parameters passed through
	// to the wire payload untouched.
	Extra map[string]any
}

// NewChatRequest builds a chat request from a non-empty conversation.
// It returns a *ValidationError when the conversation is empty or any
// sampling parameter is out of range.
func NewChatRequest(messages []ChatMessage, opts ...ChatOption) (*ChatRequest, error) {
	req := &ChatRequest{
		Messages:    messages,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	}
	for _, opt := range opts {
		opt(req)
	}

	if len(req.Messages) == 0 {
		return nil, &ValidationError{Field: "messages", Msg: "at least one message is required"}
	}
	if req.Temperature < 0 || req.Temperature > maxTemperature {
		return nil, &ValidationError{Field: "temperature", Msg: "must be between 0 and 2"}
	}
	if req.TopP < 0 || req.TopP > 1 {
		return nil, &ValidationError{Field: "top_p", Msg: "must be between 0 and 1"}
	}
	if req.FrequencyPenalty < -maxPenalty || req.FrequencyPenalty > maxPenalty {
		return nil, &ValidationError{Field: "frequency_penalty", Msg: "must be between -2 and 2"}
	}
	if req.PresencePenalty < -maxPenalty || req.PresencePenalty > maxPenalty {
		return nil, &ValidationError{Field: "presence_penalty", Msg: "must be between -2 and 2"}
	}
	if req.MaxTokens < 0 {
		return nil, &ValidationError{Field: "max_tokens", Msg: "must be positive"}
	}
	return req, nil
}

// Usage contains token usage information for a request.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// ChatResponse represents a complete response from a chat backend.
type ChatResponse struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Content      string `json:"content"`
	Role         Role   `json:"role"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
	// Raw holds the unparsed backend payload for diagnostics.
	Raw json.RawMessage `json:"-"`
}

// ChatResult delivers the outcome of a non-blocking chat call.
type ChatResult struct {
	Response *ChatResponse
	Err      error
}

// ChatProvider is the chat capability any backend adapter must implement.
// The context-aware call is the single execution core; the non-blocking
// convention is derived from it by the client façade.
type ChatProvider interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
