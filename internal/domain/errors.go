// Package domain holds errors shared across the recommendation layers.
package domain

import "errors"

var (
	// ErrStoreUnavailable signals that the document store could not be reached
	// or a fetch failed or timed out. The whole request fails; it is not retried.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInvalidRequest signals a malformed transport request (not a query problem:
	// any query text is valid).
	ErrInvalidRequest = errors.New("invalid request")
)
