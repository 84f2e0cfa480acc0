package health

import (
	"context"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// Prober checks store reachability, globally and per collection.
type Prober interface {
	Ping(ctx context.Context) error
	Sample(ctx context.Context, collection string) (domrec.Record, bool, error)
}
