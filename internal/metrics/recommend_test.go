package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObservePass(t *testing.T) {
	RegisterRecommendMetrics()
	RegisterRecommendMetrics() // idempotent

	before := testutil.ToFloat64(CandidatesScored.WithLabelValues("research_project"))
	keptBefore := testutil.ToFloat64(MatchesKept.WithLabelValues("research_project"))

	ObservePass("research_project", 20*time.Millisecond, 7, 2)

	if got := testutil.ToFloat64(CandidatesScored.WithLabelValues("research_project")) - before; got != 7 {
		t.Errorf("candidates scored delta = %f, want 7", got)
	}
	if got := testutil.ToFloat64(MatchesKept.WithLabelValues("research_project")) - keptBefore; got != 2 {
		t.Errorf("matches kept delta = %f, want 2", got)
	}
	if n := testutil.CollectAndCount(PassDuration); n == 0 {
		t.Error("expected pass duration observations")
	}
}

func TestStoreErrors(t *testing.T) {
	before := testutil.ToFloat64(StoreErrors.WithLabelValues("mentor_profile"))
	StoreErrors.WithLabelValues("mentor_profile").Inc()
	if got := testutil.ToFloat64(StoreErrors.WithLabelValues("mentor_profile")) - before; got != 1 {
		t.Errorf("store errors delta = %f, want 1", got)
	}
}
