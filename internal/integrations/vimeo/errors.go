package vimeo

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

var (
	// ErrNoRecords means the response decoded into an empty list
	ErrNoRecords = errors.New("vimeo returned no metadata records")
	// ErrUnknownFormat means the configured response format is not supported
	ErrUnknownFormat = errors.New("unknown vimeo response format")
)

// StatusError is returned for a non-200 response
type StatusError struct {
	StatusCode int
	retryAfter time.Duration
	hasDelay   bool
}

func newStatusError(resp *http.Response) *StatusError {
	se := &StatusError{StatusCode: resp.StatusCode}
	se.retryAfter, se.hasDelay = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
	return se
}

// Implement error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// RetryAfter returns the delay requested by the server, if any
func (e *StatusError) RetryAfter() (time.Duration, bool) {
	return e.retryAfter, e.hasDelay
}

// parseRetryAfter reads a Retry-After header in seconds or as an HTTP date
func parseRetryAfter(value string, now time.Time) (time.Duration, bool) {

	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}

	if date, err := http.ParseTime(value); err == nil {
		return max(date.Sub(now), 0), true
	}

	return 0, false
}
