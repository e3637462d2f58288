package unified

// Provider identifies an AI backend.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported and reserved providers. Only the OpenAI-compatible identities
// have an adapter today; the remaining identities are reserved and fail at
// client construction.
const (
	ProviderOpenAI      Provider = "openai"
	ProviderAzureOpenAI Provider = "azure_openai"
	ProviderGoogle      Provider = "google"
	ProviderTogether    Provider = "together"
	ProviderAnyscale    Provider = "anyscale"
)

// Known reports whether p is one of the enumerated provider identities.
func (p Provider) Known() bool {
	switch p {
	case ProviderOpenAI, ProviderAzureOpenAI, ProviderGoogle, ProviderTogether, ProviderAnyscale:
		return true
	}
	return false
}
