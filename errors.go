package unified

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies errors in the provider taxonomy.
type ErrorKind string

const (
	KindConfiguration  ErrorKind = "configuration"
	KindValidation     ErrorKind = "validation"
	KindModelNotFound  ErrorKind = "model_not_found"
	KindAPI            ErrorKind = "api"
	KindAuthentication ErrorKind = "authentication"
	KindRateLimit      ErrorKind = "rate_limit"
)

// ProviderError is implemented by every error in the taxonomy. Callers
// should branch on the concrete types with errors.As rather than on
// messages.
type ProviderError interface {
	error
	Kind() ErrorKind
}

// ConfigurationError indicates an invalid or unusable configuration.
// It is only raised at construction time, never from a request.
type ConfigurationError struct {
	Provider Provider // identity involved, empty when not applicable
	Msg      string
	Cause    error
}

// Error returns the error message.
func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Msg, e.Cause)
	}
	return "configuration: " + e.Msg
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error { return e.Cause }

// Kind returns KindConfiguration.
func (e *ConfigurationError) Kind() ErrorKind { return KindConfiguration }

// ValidationError indicates invalid request input. It is raised at request
// construction, before any adapter or network activity.
type ValidationError struct {
	Field string
	Msg   string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Msg)
	}
	return "validation: " + e.Msg
}

// Kind returns KindValidation.
func (e *ValidationError) Kind() ErrorKind { return KindValidation }

// ModelNotFoundError indicates the requested model is not available on the
// backend.
type ModelNotFoundError struct {
	Provider Provider
	Model    string
	Msg      string
}

// Error returns the error message.
func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("%s: model %q not found: %s", e.Provider, e.Model, e.Msg)
}

// Kind returns KindModelNotFound.
func (e *ModelNotFoundError) Kind() ErrorKind { return KindModelNotFound }

// APIError indicates a failed exchange with the backend. StatusCode is zero
// when no HTTP response was received (network failure, timeout); Body holds
// the raw response body when one was available.
type APIError struct {
	Provider   Provider
	Msg        string
	StatusCode int
	Body       string
	Cause      error
}

// Error returns the error message.
func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Msg)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error { return e.Cause }

// Kind returns KindAPI.
func (e *APIError) Kind() ErrorKind { return KindAPI }

// Transient reports whether the failure is likely to succeed on retry:
// a 5xx response or no response at all.
func (e *APIError) Transient() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// AuthenticationError indicates the backend rejected the credential
// (HTTP 401/403).
type AuthenticationError struct {
	APIError
}

// Unwrap returns the embedded APIError so errors.As can match either type.
func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// Kind returns KindAuthentication.
func (e *AuthenticationError) Kind() ErrorKind { return KindAuthentication }

// RateLimitError indicates the backend throttled the request (HTTP 429).
// RetryAfter is nil when the backend supplied no Retry-After value.
type RateLimitError struct {
	APIError
	RetryAfter *time.Duration
}

// Unwrap returns the embedded APIError so errors.As can match either type.
func (e *RateLimitError) Unwrap() error { return &e.APIError }

// Kind returns KindRateLimit.
func (e *RateLimitError) Kind() ErrorKind { return KindRateLimit }

// KindOf returns the taxonomy kind of err, or the empty string when err is
// not a ProviderError.
func KindOf(err error) ErrorKind {
	var pe ProviderError
	if errors.As(err, &pe) {
		return pe.Kind()
	}
	return ""
}

// IsTransient reports whether err should be retried: rate limits, and API
// errors carrying a 5xx status or no status at all. Validation,
// configuration, authentication and other 4xx failures are never transient.
func IsTransient(err error) bool {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return true
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Transient()
	}
	return false
}

// RetryAfterOf returns the server-suggested retry delay from a rate limit
// error, or zero when none was supplied.
func RetryAfterOf(err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter != nil {
		return *rl.RetryAfter
	}
	return 0
}
