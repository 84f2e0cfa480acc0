package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/domain/query"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	"github.com/0Anshu1/collabup-be/internal/domain/score"
	"github.com/0Anshu1/collabup-be/internal/logger"
)

// DebugReport shows how a query is categorized and how the first record of
// each collection scores against it.
type DebugReport struct {
	Query   string
	Tokens  query.Categorized
	Samples map[string]domrec.Record   // by collection
	Scores  map[string]float64         // by response key
	Details map[string]score.Breakdown // by response key
}

// Debug builds a DebugReport for raw. Collections that fail to load are
// logged and left out.
func (s *Service) Debug(ctx context.Context, raw string) DebugReport {
	log := logger.FromContext(ctx)
	q := query.Parse(raw)

	rep := DebugReport{
		Query:   raw,
		Tokens:  q,
		Samples: make(map[string]domrec.Record),
		Scores:  make(map[string]float64),
		Details: make(map[string]score.Breakdown),
	}

	for _, coll := range domrec.Collections() {
		rec, ok, err := s.repo.Sample(ctx, coll)
		if err != nil {
			log.Warn("sample fetch failed", zap.String("collection", coll), zap.Error(err))
			continue
		}
		if !ok {
			continue
		}
		rep.Samples[coll] = rec

		t, ok := domrec.TypeOfCollection(coll)
		if !ok {
			continue
		}
		src, _ := domrec.SourceOf(t)
		if !src.Admits(&rec) {
			continue
		}
		b := score.Explain(q, domrec.Extract(&rec, t), t)
		rep.Scores[src.ResponseKey] = b.Total
		rep.Details[src.ResponseKey] = b
	}

	return rep
}
