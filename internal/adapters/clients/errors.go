// Package clients provides the resilient HTTP client used to reach the
// identity provider: retries with jittered backoff behind a circuit breaker.
package clients

import "errors"

// Client errors represent infrastructure failures in the HTTP client layer.
// The anti-corruption layer translates them to domain errors; they never
// reach handlers directly.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open.
	// This indicates the downstream service is unhealthy and requests are being blocked.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded is returned after all retry attempts have been exhausted.
	// The original error is wrapped for context.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
