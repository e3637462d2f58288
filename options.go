package unified

// ChatOption is a functional option for configuring chat requests.
type ChatOption func(*ChatRequest)

// WithModel overrides the configured default model for this request.
func WithModel(model string) ChatOption {
	return func(r *ChatRequest) {
		r.Model = model
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) ChatOption {
	return func(r *ChatRequest) {
		r.Temperature = t
	}
}

// WithTopP sets the nucleus sampling parameter (0.0 to 1.0).
func WithTopP(p float64) ChatOption {
	return func(r *ChatRequest) {
		r.TopP = p
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) ChatOption {
	return func(r *ChatRequest) {
		r.MaxTokens = n
	}
}

// WithFrequencyPenalty sets the frequency penalty (-2.0 to 2.0).
func WithFrequencyPenalty(p float64) ChatOption {
	return func(r *ChatRequest) {
		r.FrequencyPenalty = p
	}
}

// WithPresencePenalty sets the presence penalty (-2.0 to 2.0).
func WithPresencePenalty(p float64) ChatOption {
	return func(r *ChatRequest) {
		r.PresencePenalty = p
	}
}

// WithStop sets sequences at which the backend stops generating.
func WithStop(sequences ...string) ChatOption {
	return func(r *ChatRequest) {
		r.Stop = sequences
	}
}

// WithStream marks the request for streaming delivery. The canonical model
// carries the flag; the reference adapter performs the exchange
// non-streaming.
func WithStream(stream bool) ChatOption {
	return func(r *ChatRequest) {
		r.Stream = stream
	}
}

// WithExtra attaches a provider-specific request parameter.
func WithExtra(key string, value any) ChatOption {
	return func(r *ChatRequest) {
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[key] = value
	}
}
