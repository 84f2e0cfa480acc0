package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0Anshu1/collabup-be/internal/db"
	"github.com/0Anshu1/collabup-be/internal/domain"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// DefaultFetchTimeout bounds a single collection fetch.
const DefaultFetchTimeout = 10 * time.Second

// store is the consumer interface for record reads and seeding (ISP).
type store interface {
	Ping(ctx context.Context) error
	Stream(ctx context.Context, q db.Query) ([]db.Document, error)
	Count(ctx context.Context, collection string) (int, error)
	Put(ctx context.Context, collection string, doc db.Document) error
}

// Repo implements usecase/recommend.Repository, usecase/health.Prober
// and usecase/collection.Repository.
type Repo struct {
	store        store
	fetchTimeout time.Duration
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s, fetchTimeout: DefaultFetchTimeout}
}

// WithFetchTimeout overrides the per-fetch timeout.
func (r *Repo) WithFetchTimeout(d time.Duration) *Repo {
	if d > 0 {
		r.fetchTimeout = d
	}
	return r
}

// Candidates streams every record of type t from its collection.
func (r *Repo) Candidates(ctx context.Context, t domrec.Type) ([]domrec.Record, error) {
	src, ok := domrec.SourceOf(t)
	if !ok {
		return nil, fmt.Errorf("%w: unknown record type %q", domain.ErrInvalidRequest, t)
	}

	docs, err := r.stream(ctx, sourceQuery(src))
	if err != nil {
		return nil, err
	}

	out := make([]domrec.Record, 0, len(docs))
	for _, d := range docs {
		rec := toRecord(d)
		if !src.Admits(&rec) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// Sample returns the first record of a collection, unfiltered.
func (r *Repo) Sample(ctx context.Context, collection string) (domrec.Record, bool, error) {
	docs, err := r.stream(ctx, db.Query{Collection: collection, Limit: 1})
	if err != nil {
		return domrec.Record{}, false, err
	}
	if len(docs) == 0 {
		return domrec.Record{}, false, nil
	}
	return toRecord(docs[0]), true, nil
}

// Count returns the number of records stored in a collection.
func (r *Repo) Count(ctx context.Context, collection string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	n, err := r.store.Count(ctx, collection)
	if err != nil {
		return 0, classify("count "+collection, err)
	}
	return n, nil
}

// Ping checks that the store is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	if err := r.store.Ping(ctx); err != nil {
		return classify("ping", err)
	}
	return nil
}

// Put writes one record into a collection.
func (r *Repo) Put(ctx context.Context, collection string, rec domrec.Record) error {
	if err := r.store.Put(ctx, collection, toDocument(rec)); err != nil {
		return classify("put "+collection+"/"+rec.ID(), err)
	}
	return nil
}

func (r *Repo) stream(ctx context.Context, q db.Query) ([]db.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	docs, err := r.store.Stream(ctx, q)
	if err != nil {
		return nil, classify("stream "+q.Collection, err)
	}
	return docs, nil
}

func sourceQuery(src domrec.Source) db.Query {
	q := db.Query{Collection: src.Collection}
	if src.FilterField != "" {
		q.Filter = &db.Equality{Field: src.FilterField, Value: src.FilterValue}
	}
	return q
}

// classify maps validation failures to ErrInvalidRequest and everything
// else, timeouts included, to ErrStoreUnavailable.
func classify(op string, err error) error {
	if errors.Is(err, db.ErrInvalidCollection) || errors.Is(err, db.ErrMissingID) {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidRequest, op, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}
