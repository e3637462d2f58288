package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	ai "github.com/unifiedllm/unified"
)

// Embed generates one embedding vector per input text, in input order.
// Vectors are always requested in float encoding; the canonical response
// carries numeric vectors regardless of the request's wire preference.
func (c *Client) Embed(ctx context.Context, req *ai.EmbeddingRequest) (*ai.EmbeddingResponse, error) {
	model := c.embeddingModel
	if req.Model != "" {
		model = req.Model
	}

	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: req.Input,
		},
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	}
	if req.Dimensions > 0 {
		params.Dimensions = openai.Int(int64(req.Dimensions))
	}

	resp, err := c.client.Embeddings.New(ctx, params, c.extraOptions(req.Extra)...)
	if err != nil {
		return nil, wrapError(c.provider, model, err)
	}
	if len(resp.Data) != len(req.Input) {
		return nil, &ai.APIError{
			Provider:   c.provider,
			Msg:        fmt.Sprintf("malformed response: %d embeddings for %d inputs", len(resp.Data), len(req.Input)),
			StatusCode: 200,
			Body:       resp.RawJSON(),
		}
	}

	embeddings := make([][]float64, len(resp.Data))
	for i, data := range resp.Data {
		embeddings[i] = data.Embedding
	}

	return &ai.EmbeddingResponse{
		Embeddings: embeddings,
		Model:      resp.Model,
		Usage: &ai.Usage{
			PromptTokens: int(resp.Usage.PromptTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
		Raw: json.RawMessage(resp.RawJSON()),
	}, nil
}
