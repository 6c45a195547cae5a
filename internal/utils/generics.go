package utils

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

type RetryConfig struct {
	MaxRetries int
	MaxJitter  time.Duration
	Delay      time.Duration
	MaxDelay   time.Duration // Upper bound for a server requested delay, zero means no bound
}

// RetryAfterError is implemented by errors that carry
// a server requested delay, e.g. from a Retry-After header.
type RetryAfterError interface {
	error
	RetryAfter() (time.Duration, bool)
}

// Extract retry delay from an error in the chain
func extractRetryDelay(err error) (time.Duration, bool) {
	var ra RetryAfterError
	if !errors.As(err, &ra) {
		return 0, false
	}
	return ra.RetryAfter()
}

// Retry a function
func Retry[T any](
	ctx context.Context,
	rc *RetryConfig,
	callable func() (T, error),
) (T, error) {

	var (
		zero      T
		lastError error
	)

	// Avoid zero or negative maxRetries
	maxRetries := max(rc.MaxRetries, 1)

	// Perform retries
	for i := range maxRetries {

		// Call the function
		data, err := callable()
		if err == nil {
			return data, nil
		}

		// If this is the last iteration break the loop
		lastError = err
		if i+1 == maxRetries {
			break
		}

		// Calculate the backoff (2^i) + jitter
		jitter := time.Duration(rand.Float64() * float64(rc.MaxJitter)) // #nosec G404
		sleepTime := rc.Delay*time.Duration(math.Pow(2, float64(i))) + jitter

		// Try to extract a delay value from the error
		if retryDelay, ok := extractRetryDelay(lastError); ok {
			if rc.MaxDelay > 0 && retryDelay > rc.MaxDelay {
				return zero, fmt.Errorf(
					"server requested excessive wait: %v; %w",
					retryDelay, lastError,
				)
			}
			sleepTime = retryDelay
		}

		// Wait for either the sleep time or context to end
		select {
		case <-ctx.Done():
			return zero, errors.Join(ctx.Err(), lastError)
		case <-time.After(sleepTime):
		}
	}

	if maxRetries == 1 {
		return zero, lastError
	}

	return zero, fmt.Errorf("%d max retries error; %w", maxRetries, lastError)
}
