package unified

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Configuration defaults.
const (
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 3
)

// Environment variable names read by ConfigFromEnv.
const (
	EnvAPIKey         = "UNIFIED_API_KEY"
	EnvProvider       = "UNIFIED_PROVIDER"
	EnvChatModel      = "UNIFIED_LLM_MODEL"
	EnvEmbeddingModel = "UNIFIED_EMBEDDING_MODEL"
	EnvBaseURL        = "UNIFIED_BASE_URL"
	EnvTimeout        = "UNIFIED_TIMEOUT"
	EnvMaxRetries     = "UNIFIED_MAX_RETRIES"
)

// defaultChatModels maps each identity to its default chat model.
var defaultChatModels = map[Provider]string{
	ProviderOpenAI:      "gpt-4o",
	ProviderAzureOpenAI: "gpt-4",
	ProviderGoogle:      "gemini-pro",
	ProviderTogether:    "mistralai/Mixtral-8x7B-Instruct-v0.1",
	ProviderAnyscale:    "mistralai/Mixtral-8x7B-Instruct-v0.1",
}

// defaultEmbeddingModels maps each identity to its default embedding model.
var defaultEmbeddingModels = map[Provider]string{
	ProviderOpenAI:      "text-embedding-3-small",
	ProviderAzureOpenAI: "text-embedding-3-small",
	ProviderGoogle:      "text-embedding-004",
	ProviderTogether:    "togethercomputer/m2-bert-80M-8k-retrieval",
	ProviderAnyscale:    "thenlper/gte-large",
}

// Config describes which provider to use and how to reach it. It is a value
// object: build it once, validate it, and never mutate it afterwards. The
// zero value of every optional field selects an identity-specific default.
type Config struct {
	// Provider selects the backend adapter.
	Provider Provider
	// APIKey is the backend credential. Required.
	APIKey string
	// BaseURL overrides the backend endpoint, e.g. for Azure deployments
	// or OpenAI-compatible gateways.
	BaseURL string
	// DefaultChatModel is used when a chat request omits a model.
	DefaultChatModel string
	// DefaultEmbeddingModel is used when an embedding request omits a model.
	DefaultEmbeddingModel string
	// Timeout is the per-call deadline for the backend exchange.
	Timeout time.Duration
	// MaxRetries is the transient-failure retry budget. Zero disables
	// retries; the initial attempt is not counted.
	MaxRetries int
	// Extra carries provider-specific configuration parameters.
	Extra map[string]any
}

// WithDefaults returns a copy of c with identity-specific defaults filled in
// for every unset optional field.
func (c Config) WithDefaults() Config {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.DefaultChatModel == "" {
		c.DefaultChatModel = defaultChatModels[c.Provider]
	}
	if c.DefaultEmbeddingModel == "" {
		c.DefaultEmbeddingModel = defaultEmbeddingModels[c.Provider]
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Validate checks the configuration and returns a *ConfigurationError
// describing the first problem found.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return &ConfigurationError{Provider: c.Provider, Msg: "API key is required"}
	}
	if !c.Provider.Known() {
		return &ConfigurationError{Provider: c.Provider, Msg: fmt.Sprintf("unknown provider %q", c.Provider)}
	}
	if c.Timeout <= 0 {
		return &ConfigurationError{Provider: c.Provider, Msg: "timeout must be positive"}
	}
	if c.MaxRetries < 0 {
		return &ConfigurationError{Provider: c.Provider, Msg: "max retries cannot be negative"}
	}
	return nil
}

// ConfigFromEnv builds a configuration from the UNIFIED_* environment
// variables, honoring a .env file in the working directory when present.
// Every variable except UNIFIED_API_KEY has a documented default; the
// result is equivalent to constructing the same Config literally.
func ConfigFromEnv() (Config, error) {
	// A missing .env file is not an error; explicit env vars still apply.
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return Config{}, &ConfigurationError{Msg: fmt.Sprintf("environment variable %s not set", EnvAPIKey)}
	}

	provider := ProviderOpenAI
	if v := os.Getenv(EnvProvider); v != "" {
		provider = Provider(v)
		if !provider.Known() {
			return Config{}, &ConfigurationError{Provider: provider, Msg: fmt.Sprintf("invalid provider type %q", v)}
		}
	}

	timeout := DefaultTimeout
	if v := os.Getenv(EnvTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, &ConfigurationError{Provider: provider, Msg: fmt.Sprintf("invalid %s value %q", EnvTimeout, v), Cause: err}
		}
		timeout = time.Duration(seconds) * time.Second
	}

	maxRetries := DefaultMaxRetries
	if v := os.Getenv(EnvMaxRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, &ConfigurationError{Provider: provider, Msg: fmt.Sprintf("invalid %s value %q", EnvMaxRetries, v), Cause: err}
		}
		maxRetries = n
	}

	cfg := Config{
		Provider:              provider,
		APIKey:                apiKey,
		BaseURL:               os.Getenv(EnvBaseURL),
		DefaultChatModel:      os.Getenv(EnvChatModel),
		DefaultEmbeddingModel: os.Getenv(EnvEmbeddingModel),
		Timeout:               timeout,
		MaxRetries:            maxRetries,
	}.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
