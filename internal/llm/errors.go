package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError reports a 429 from the backend. RetryAfter, when the
// backend supplied one, overrides the normal backoff wait.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// InvalidResponseError reports content that failed schema validation
// or could not be parsed. Content carries the offending payload.
type InvalidResponseError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// UnavailableError reports a backend that is down, unreachable or
// answering with server errors.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model backend unavailable: %v", e.Err)
	}
	return "model backend unavailable"
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError reports a response cut off at the MaxTokens cap. The
// cap is a request configuration problem, so it is never retried.
type TruncatedError struct{}

func (e *TruncatedError) Error() string {
	return "model response truncated at the token cap"
}
