package health

import (
	"context"
	"errors"
	"testing"
	"time"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// --- Mocks ---

type mockProber struct {
	pingErr   error
	sampleErr map[string]error
	empty     map[string]bool
}

func (m *mockProber) Ping(_ context.Context) error { return m.pingErr }

func (m *mockProber) Sample(_ context.Context, collection string) (domrec.Record, bool, error) {
	if err := m.sampleErr[collection]; err != nil {
		return domrec.Record{}, false, err
	}
	if m.empty[collection] {
		return domrec.Record{}, false, nil
	}
	return domrec.New("x", nil), true, nil
}

func newTestService(p Prober) *Service {
	s := New(p)
	s.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	r := newTestService(&mockProber{
		empty: map[string]bool{domrec.CollectionResearchProjects: true},
	}).Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Store != StoreConnected {
		t.Errorf("expected %q, got %q", StoreConnected, r.Store)
	}
	if len(r.Collections) != 4 {
		t.Fatalf("expected 4 collections, got %d", len(r.Collections))
	}
	if c := r.Collections[domrec.CollectionUsers]; c.Status != CheckOK || c.SampleCount != 1 {
		t.Errorf("unexpected users check: %+v", c)
	}
	if c := r.Collections[domrec.CollectionResearchProjects]; c.Status != CheckOK || c.SampleCount != 0 {
		t.Errorf("unexpected empty collection check: %+v", c)
	}
	if !r.Timestamp.Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("unexpected timestamp %v", r.Timestamp)
	}
}

func TestCheck_PartialFailure(t *testing.T) {
	r := newTestService(&mockProber{
		sampleErr: map[string]error{domrec.CollectionUsers: errors.New("timeout")},
	}).Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Store != StorePartial {
		t.Errorf("expected %q, got %q", StorePartial, r.Store)
	}
	c := r.Collections[domrec.CollectionUsers]
	if c.Status != CheckError || c.Error != "timeout" {
		t.Errorf("unexpected users check: %+v", c)
	}
}

func TestCheck_AllCollectionsFail(t *testing.T) {
	errs := make(map[string]error)
	for _, c := range domrec.Collections() {
		errs[c] = errors.New("boom")
	}
	r := newTestService(&mockProber{sampleErr: errs}).Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
}

func TestCheck_PingFails(t *testing.T) {
	r := newTestService(&mockProber{pingErr: errors.New("conn refused")}).Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Store != StoreDisconnected {
		t.Errorf("expected %q, got %q", StoreDisconnected, r.Store)
	}
	if len(r.Collections) != 0 {
		t.Errorf("expected no collection probes, got %d", len(r.Collections))
	}
}
