// Package client provides the unified entry point for provider access.
//
// A client is built once from a [unified.Config] (or the UNIFIED_*
// environment via [FromEnv]) and reused for the lifetime of the program:
//
//	c, err := client.New(unified.Config{
//	    Provider: unified.ProviderOpenAI,
//	    APIKey:   key,
//	})
//
// Construction resolves the configured identity through a closed registry;
// reserved identities (google, together, anyscale) fail with a
// *unified.ConfigurationError.
//
// Chat and Embed block for the full exchange; ChatAsync and EmbedAsync run
// the same core on a goroutine and deliver one result on a channel. All
// four share the same validation, error mapping, and retry behavior.
package client
