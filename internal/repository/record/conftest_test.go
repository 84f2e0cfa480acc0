package record

import (
	"context"
	"testing"

	"github.com/0Anshu1/collabup-be/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	pingFn   func(ctx context.Context) error
	streamFn func(ctx context.Context, q db.Query) ([]db.Document, error)
	countFn  func(ctx context.Context, collection string) (int, error)
	putFn    func(ctx context.Context, collection string, doc db.Document) error
}

func (m *mockStore) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func (m *mockStore) Stream(ctx context.Context, q db.Query) ([]db.Document, error) {
	if m.streamFn != nil {
		return m.streamFn(ctx, q)
	}
	return nil, nil
}

func (m *mockStore) Count(ctx context.Context, collection string) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, collection)
	}
	return 0, nil
}

func (m *mockStore) Put(ctx context.Context, collection string, doc db.Document) error {
	if m.putFn != nil {
		return m.putFn(ctx, collection, doc)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
