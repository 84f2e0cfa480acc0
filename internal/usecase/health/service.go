package health

import (
	"context"
	"time"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates every collection is reachable.
	Healthy Status = "healthy"
	// Degraded indicates some collections failed.
	Degraded Status = "degraded"
	// Unhealthy indicates the store cannot be used.
	Unhealthy Status = "unhealthy"
)

// StoreStatus summarizes store connectivity.
type StoreStatus string

const (
	// StoreConnected means every probe succeeded.
	StoreConnected StoreStatus = "connected"
	// StorePartial means some collection probes failed.
	StorePartial StoreStatus = "partial"
	// StoreDisconnected means the store did not answer a ping.
	StoreDisconnected StoreStatus = "not connected"
)

// CheckResult represents an individual collection probe outcome.
type CheckResult string

const (
	// CheckOK indicates the collection could be read.
	CheckOK CheckResult = "accessible"
	// CheckError indicates the collection read failed.
	CheckError CheckResult = "error"
)

// CollectionCheck is the probe result for one collection.
type CollectionCheck struct {
	Status      CheckResult
	SampleCount int // 0 or 1
	Error       string
}

// Report aggregates health check results.
type Report struct {
	Status      Status
	Store       StoreStatus
	Collections map[string]CollectionCheck
	Timestamp   time.Time
}

// Service coordinates health checks.
type Service struct {
	prober Prober
	now    func() time.Time
}

// New creates a Service.
func New(prober Prober) *Service {
	return &Service{prober: prober, now: time.Now}
}

// Check pings the store and then reads one record from every collection.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{
		Collections: make(map[string]CollectionCheck),
		Timestamp:   s.now().UTC(),
	}

	if err := s.prober.Ping(ctx); err != nil {
		r.Status = Unhealthy
		r.Store = StoreDisconnected
		return r
	}

	failed := 0
	for _, coll := range domrec.Collections() {
		_, ok, err := s.prober.Sample(ctx, coll)
		if err != nil {
			failed++
			r.Collections[coll] = CollectionCheck{Status: CheckError, Error: err.Error()}
			continue
		}
		c := CollectionCheck{Status: CheckOK}
		if ok {
			c.SampleCount = 1
		}
		r.Collections[coll] = c
	}

	switch {
	case failed == 0:
		r.Status, r.Store = Healthy, StoreConnected
	case failed == len(r.Collections):
		r.Status, r.Store = Unhealthy, StorePartial
	default:
		r.Status, r.Store = Degraded, StorePartial
	}
	return r
}
