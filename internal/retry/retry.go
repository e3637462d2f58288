package retry

import (
	"context"
	"time"

	"github.com/unifiedllm/unified"
)

// effectiveDelay returns the delay to use, honoring the server's
// Retry-After if larger than the configured backoff.
func effectiveDelay(configuredDelay time.Duration, err error) time.Duration {
	if serverDelay := unified.RetryAfterOf(err); serverDelay > configuredDelay {
		return serverDelay
	}
	return configuredDelay
}

// Do executes fn with retry logic. Only errors classified as transient by
// the taxonomy are retried; everything else surfaces immediately. Backoff
// waits respect context cancellation. When all attempts fail, the last
// mapped error is returned unchanged.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !unified.IsTransient(err) {
			return zero, err
		}

		// Don't sleep after the last attempt.
		if attempt < cfg.MaxAttempts-1 {
			delay := effectiveDelay(cfg.Delay(attempt), err)

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}
