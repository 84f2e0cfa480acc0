package collection

import (
	"context"
	"fmt"

	"github.com/0Anshu1/collabup-be/internal/domain"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// Info describes one store collection.
type Info struct {
	Name        string
	Count       int
	Description string
}

// Service reports collection metadata and loads records into collections.
type Service struct {
	repo Repository
}

// New creates a collection service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Info returns the record count and description of every collection,
// in response order. Any count failure fails the call.
func (s *Service) Info(ctx context.Context) ([]Info, error) {
	names := domrec.Collections()
	out := make([]Info, 0, len(names))
	for _, name := range names {
		n, err := s.repo.Count(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		out = append(out, Info{Name: name, Count: n, Description: domrec.Describe(name)})
	}
	return out, nil
}

// Seed writes records into a known collection and returns how many were stored.
// It stops at the first failure.
func (s *Service) Seed(ctx context.Context, collection string, recs []domrec.Record) (int, error) {
	if _, ok := domrec.TypeOfCollection(collection); !ok {
		return 0, fmt.Errorf("%w: unknown collection %q", domain.ErrInvalidRequest, collection)
	}

	for i := range recs {
		if recs[i].ID() == "" {
			return i, fmt.Errorf("%w: record %d in %s has no id", domain.ErrInvalidRequest, i, collection)
		}
		if err := s.repo.Put(ctx, collection, recs[i]); err != nil {
			return i, fmt.Errorf("seed %s: %w", collection, err)
		}
	}
	return len(recs), nil
}
