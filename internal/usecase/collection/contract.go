package collection

import (
	"context"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// Repository defines the storage contract for collection metadata and seeding.
type Repository interface {
	Count(ctx context.Context, collection string) (int, error)
	Put(ctx context.Context, collection string, rec domrec.Record) error
}
