package recommend

import (
	"context"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// Repository reads candidate records from the document store.
type Repository interface {
	Candidates(ctx context.Context, t domrec.Type) ([]domrec.Record, error)
	Sample(ctx context.Context, collection string) (domrec.Record, bool, error)
}
