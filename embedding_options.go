package unified

// EmbeddingOption is a functional option for configuring embedding requests.
type EmbeddingOption func(*EmbeddingRequest)

// WithEmbeddingModel overrides the configured default embedding model.
func WithEmbeddingModel(model string) EmbeddingOption {
	return func(r *EmbeddingRequest) {
		r.Model = model
	}
}

// WithEncodingFormat sets the wire encoding for embedding vectors.
func WithEncodingFormat(format EncodingFormat) EmbeddingOption {
	return func(r *EmbeddingRequest) {
		r.EncodingFormat = format
	}
}

// WithDimensions sets the output dimensions for models that support
// shortened vectors (e.g. text-embedding-3-*).
func WithDimensions(dims int) EmbeddingOption {
	return func(r *EmbeddingRequest) {
		r.Dimensions = dims
	}
}

// WithEmbeddingExtra attaches a provider-specific request parameter.
func WithEmbeddingExtra(key string, value any) EmbeddingOption {
	return func(r *EmbeddingRequest) {
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[key] = value
	}
}
