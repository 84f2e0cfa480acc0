package recommend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/0Anshu1/collabup-be/internal/domain/query"
	"github.com/0Anshu1/collabup-be/internal/domain/recommendation"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	"github.com/0Anshu1/collabup-be/internal/domain/score"
	"github.com/0Anshu1/collabup-be/internal/logger"
	"github.com/0Anshu1/collabup-be/internal/metrics"
)

// Defaults for result size and score threshold.
const (
	DefaultTopN     = 5
	DefaultMaxTopN  = 100
	DefaultMinScore = 0.1
)

// Service ranks stored records against free-text queries.
type Service struct {
	repo        Repository
	defaultTopN int
	maxTopN     int
	minScore    float64
}

// New creates a recommendation service.
func New(repo Repository) *Service {
	return &Service{
		repo:        repo,
		defaultTopN: DefaultTopN,
		maxTopN:     DefaultMaxTopN,
		minScore:    DefaultMinScore,
	}
}

// WithLimits overrides the default and maximum result size per type.
func (s *Service) WithLimits(defaultTopN, maxTopN int) *Service {
	if defaultTopN > 0 {
		s.defaultTopN = defaultTopN
	}
	if maxTopN > 0 {
		s.maxTopN = maxTopN
	}
	return s
}

// WithMinScore overrides the exclusive score threshold.
func (s *Service) WithMinScore(v float64) *Service {
	if v >= 0 {
		s.minScore = v
	}
	return s
}

// TopN resolves a requested result size: non-positive means the default,
// anything above the maximum is capped.
func (s *Service) TopN(requested int) int {
	if requested <= 0 {
		return s.defaultTopN
	}
	if requested > s.maxTopN {
		return s.maxTopN
	}
	return requested
}

// Recommend scores every record of every type against raw and returns the
// ranked top-N per type. Any store failure fails the whole call.
func (s *Service) Recommend(ctx context.Context, raw string, topN int) (recommendation.Result, error) {
	log := logger.FromContext(ctx)
	q := query.Parse(raw)
	observeTokens(q)

	if q.IsEmpty() {
		log.Debug("query has no tokens", zap.String("query", raw))
		return recommendation.Empty(), nil
	}
	log.Debug("query categorized", zap.Any("tokens", q.Map()))

	limit := s.TopN(topN)
	types := domrec.Types()
	ranked := make([][]recommendation.ScoredRecord, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			items, err := s.pass(gctx, q, t, limit)
			if err != nil {
				return err
			}
			ranked[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return recommendation.Result{}, err
	}

	res := recommendation.Empty()
	fields := make([]zap.Field, 0, len(types))
	for i, t := range types {
		res.Set(t, ranked[i])
		fields = append(fields, zap.Int(string(t), len(ranked[i])))
	}
	log.Info("recommendations ranked", append(fields, zap.Int("top_n", limit))...)

	return res, nil
}

func (s *Service) pass(
	ctx context.Context, q query.Categorized, t domrec.Type, topN int,
) ([]recommendation.ScoredRecord, error) {
	start := time.Now()

	records, err := s.repo.Candidates(ctx, t)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(string(t)).Inc()
		return nil, fmt.Errorf("fetch %s: %w", t, err)
	}

	scored := make([]recommendation.ScoredRecord, 0, len(records))
	for i := range records {
		scored = append(scored, recommendation.NewScored(records[i], score.Record(q, &records[i], t)))
	}
	kept := recommendation.Rank(scored, s.minScore, topN)

	metrics.ObservePass(string(t), time.Since(start), len(scored), len(kept))
	return kept, nil
}

func observeTokens(q query.Categorized) {
	for _, c := range query.Categories() {
		if n := len(q.Tokens(c)); n > 0 {
			metrics.QueryTokens.WithLabelValues(string(c)).Add(float64(n))
		}
	}
}
