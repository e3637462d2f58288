package unified

import (
	"context"
	"encoding/json"
)

// EncodingFormat selects the wire encoding for embedding vectors.
type EncodingFormat string

const (
	EncodingFloat  EncodingFormat = "float"
	EncodingBase64 EncodingFormat = "base64"
)

// EmbeddingRequest is a validated, vendor-neutral embedding request. Input
// is always a non-empty ordered sequence of strings; use
// NewTextEmbeddingRequest to embed a single string.
type EmbeddingRequest struct {
	Input          []string
	Model          string // empty means the configured default
	EncodingFormat EncodingFormat
	Dimensions     int // 0 means model default
	// Extra carries provider-specific request parameters passed through
	// to the wire payload untouched.
	Extra map[string]any
}

// NewEmbeddingRequest builds an embedding request from a non-empty sequence
// of texts. It returns a *ValidationError when texts is empty or an option
// value is out of range.
func NewEmbeddingRequest(texts []string, opts ...EmbeddingOption) (*EmbeddingRequest, error) {
	req := &EmbeddingRequest{
		Input:          texts,
		EncodingFormat: EncodingFloat,
	}
	for _, opt := range opts {
		opt(req)
	}

	if len(req.Input) == 0 {
		return nil, &ValidationError{Field: "input", Msg: "at least one text is required"}
	}
	switch req.EncodingFormat {
	case EncodingFloat, EncodingBase64:
	default:
		return nil, &ValidationError{Field: "encoding_format", Msg: `must be "float" or "base64"`}
	}
	if req.Dimensions < 0 {
		return nil, &ValidationError{Field: "dimensions", Msg: "must be positive"}
	}
	return req, nil
}

// NewTextEmbeddingRequest builds an embedding request for a single string.
// The input is normalized to a one-element sequence.
func NewTextEmbeddingRequest(text string, opts ...EmbeddingOption) (*EmbeddingRequest, error) {
	return NewEmbeddingRequest([]string{text}, opts...)
}

// EmbeddingResponse represents a complete response from an embedding
// backend. Embeddings holds one vector per input text, in input order.
type EmbeddingResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
	Model      string      `json:"model"`
	Usage      *Usage      `json:"usage,omitempty"`
	// Raw holds the unparsed backend payload for diagnostics.
	Raw json.RawMessage `json:"-"`
}

// EmbeddingResult delivers the outcome of a non-blocking embedding call.
type EmbeddingResult struct {
	Response *EmbeddingResponse
	Err      error
}

// EmbeddingProvider is the embedding capability any backend adapter must
// implement.
type EmbeddingProvider interface {
	// Embed generates one embedding vector per input text.
	Embed(ctx context.Context, req *EmbeddingRequest) (*EmbeddingResponse, error)
}
