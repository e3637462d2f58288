// Package unified provides a single configuration and call surface for chat
// completion and text embedding across LLM backends.
//
// The package defines a vendor-neutral request/response model, a closed
// error taxonomy, and the capability contracts ([ChatProvider],
// [EmbeddingProvider]) that backend adapters implement. The
// [github.com/unifiedllm/unified/client] package is the entry point: it
// resolves a [Config] to an adapter and exposes chat and embedding in both
// blocking and non-blocking form.
//
// # Basic Usage
//
//	c, err := client.New(unified.Config{
//	    Provider: unified.ProviderOpenAI,
//	    APIKey:   os.Getenv("UNIFIED_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req, err := unified.NewChatRequest([]unified.ChatMessage{
//	    unified.UserMessage("What is the capital of France?"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Chat(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Content)
//
// # Embeddings
//
//	req, err := unified.NewTextEmbeddingRequest("Hello world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := c.Embed(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(resp.Embeddings[0]))
//
// # Non-blocking calls
//
// ChatAsync and EmbedAsync run the same core on a goroutine and deliver a
// single result:
//
//	result := <-c.ChatAsync(ctx, req)
//	if result.Err != nil {
//	    log.Fatal(result.Err)
//	}
//
// # Error handling
//
// Every failure is one of the taxonomy types; branch with errors.As:
//
//	var rl *unified.RateLimitError
//	if errors.As(err, &rl) && rl.RetryAfter != nil {
//	    time.Sleep(*rl.RetryAfter)
//	}
package unified
