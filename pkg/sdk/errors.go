package collabup

import "github.com/0Anshu1/collabup-be/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrStoreUnavailable = domain.ErrStoreUnavailable
	ErrInvalidRequest   = domain.ErrInvalidRequest
)
