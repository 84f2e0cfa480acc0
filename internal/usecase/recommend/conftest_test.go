package recommend

import (
	"context"
	"sync"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	candidatesFn func(ctx context.Context, t domrec.Type) ([]domrec.Record, error)
	sampleFn     func(ctx context.Context, collection string) (domrec.Record, bool, error)

	mu    sync.Mutex
	calls int
}

func (m *mockRepo) Candidates(ctx context.Context, t domrec.Type) ([]domrec.Record, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.candidatesFn != nil {
		return m.candidatesFn(ctx, t)
	}
	return nil, nil
}

func (m *mockRepo) Sample(ctx context.Context, collection string) (domrec.Record, bool, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.sampleFn != nil {
		return m.sampleFn(ctx, collection)
	}
	return domrec.Record{}, false, nil
}

func (m *mockRepo) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// byType serves fixed candidate sets per record type.
func byType(sets map[domrec.Type][]domrec.Record) func(context.Context, domrec.Type) ([]domrec.Record, error) {
	return func(_ context.Context, t domrec.Type) ([]domrec.Record, error) {
		return sets[t], nil
	}
}
