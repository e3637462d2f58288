package openai

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/openai/openai-go"
	ai "github.com/unifiedllm/unified"
)

// wrapError maps an SDK error onto the provider taxonomy. No SDK or
// transport error type crosses this boundary unmapped.
func wrapError(provider ai.Provider, model string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		// No HTTP response was received: network failure or timeout.
		msg := "request failed"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "request timed out"
		}
		return &ai.APIError{Provider: provider, Msg: msg, Cause: err}
	}

	code := apiErr.StatusCode
	body := apiErr.RawJSON()

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &ai.AuthenticationError{APIError: ai.APIError{
			Provider:   provider,
			Msg:        "authentication failed",
			StatusCode: code,
			Body:       body,
			Cause:      err,
		}}
	case code == http.StatusTooManyRequests:
		rl := &ai.RateLimitError{APIError: ai.APIError{
			Provider:   provider,
			Msg:        "rate limit exceeded",
			StatusCode: code,
			Body:       body,
			Cause:      err,
		}}
		if delay := parseRetryAfter(apiErr.Response); delay > 0 {
			rl.RetryAfter = &delay
		}
		return rl
	case code == http.StatusNotFound:
		return &ai.ModelNotFoundError{
			Provider: provider,
			Model:    model,
			Msg:      apiErr.Error(),
		}
	default:
		return &ai.APIError{
			Provider:   provider,
			Msg:        "API request failed",
			StatusCode: code,
			Body:       body,
			Cause:      err,
		}
	}
}

// parseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	// Seconds form is the common case.
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// HTTP-date form (RFC 7231).
	if t, err := http.ParseTime(header); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}

	return 0
}
