package collabup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/db"
	dbBadger "github.com/0Anshu1/collabup-be/internal/db/badger"
	dbRedis "github.com/0Anshu1/collabup-be/internal/db/redis"
	dbSQLite "github.com/0Anshu1/collabup-be/internal/db/sqlite"
	dbValkey "github.com/0Anshu1/collabup-be/internal/db/valkey"
	"github.com/0Anshu1/collabup-be/internal/domain/recommendation"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	recordrepo "github.com/0Anshu1/collabup-be/internal/repository/record"
	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
	healthuc "github.com/0Anshu1/collabup-be/internal/usecase/health"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	memoryPath              = ":memory:"
)

// Internal interfaces, swapped for mocks in tests.
type recommendUseCase interface {
	Recommend(ctx context.Context, raw string, topN int) (recommendation.Result, error)
	Debug(ctx context.Context, raw string) recommenduc.DebugReport
}

type collectionUseCase interface {
	Info(ctx context.Context) ([]collectionuc.Info, error)
	Seed(ctx context.Context, collection string, recs []domrec.Record) (int, error)
}

// Client is the collabup SDK entry point.
type Client struct {
	store     db.Store
	recSvc    recommendUseCase
	collSvc   collectionUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and connects to the configured store.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.driver == "" {
		return nil, errors.New("collabup: no store configured (use WithRedis, WithValkey, WithBadger or WithSQLite)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("collabup: database not ready: %w", err)
	}

	return wireClient(store, cfg, obs), nil
}

func createStore(ctx context.Context, cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.addrs,
			Password:  cfg.password,
			KeyPrefix: cfg.keyPrefix,
			TagFields: []string{"role"},
		})
		if err != nil {
			return nil, fmt.Errorf("collabup: create redis store: %w", err)
		}
		return s, nil
	case "valkey":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:     cfg.addrs,
			Password:  cfg.password,
			KeyPrefix: cfg.keyPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("collabup: create valkey store: %w", err)
		}
		return s, nil
	case "badger":
		s, err := dbBadger.Open(dbBadger.Config{Path: cfg.path, InMemory: cfg.path == memoryPath}, zap.NewNop())
		if err != nil {
			return nil, fmt.Errorf("collabup: open badger store: %w", err)
		}
		return s, nil
	case "sqlite":
		s, err := dbSQLite.Open(ctx, cfg.path)
		if err != nil {
			return nil, fmt.Errorf("collabup: open sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("collabup: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	repo := recordrepo.New(store).WithFetchTimeout(cfg.fetchTimeout)

	recSvc := recommenduc.New(repo).WithLimits(cfg.defaultTopN, cfg.maxTopN)
	if cfg.hasMinScore {
		recSvc = recSvc.WithMinScore(cfg.minScore)
	}

	return &Client{
		store:     store,
		recSvc:    recSvc,
		collSvc:   collectionuc.New(repo),
		healthSvc: healthuc.New(repo),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe(ctx, "ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Recommend ranks every stored record against query and returns at most
// topN matches per record type. topN <= 0 uses the configured default.
func (c *Client) Recommend(ctx context.Context, query string, topN int) (_ Recommendations, err error) {
	start := time.Now()
	var total int
	defer func() {
		c.obs.observe(ctx, "recommend", start, err, slog.Int("matches", total))
		if err == nil {
			c.obs.observeMatches(total)
		}
	}()

	res, err := c.recSvc.Recommend(ctx, query, topN)
	if err != nil {
		return Recommendations{}, fmt.Errorf("recommend: %w", err)
	}
	total = res.Total()

	return Recommendations{
		StudentProjects:  toMatches(res.For(domrec.StudentProject)),
		StartupProjects:  toMatches(res.For(domrec.StartupProject)),
		MentorProfiles:   toMatches(res.For(domrec.MentorProfile)),
		ResearchProjects: toMatches(res.For(domrec.ResearchProject)),
	}, nil
}

// Explain categorizes query and scores one sample record per collection.
func (c *Client) Explain(ctx context.Context, query string) Explanation {
	start := time.Now()
	defer c.obs.observe(ctx, "explain", start, nil)

	rep := c.recSvc.Debug(ctx, query)
	ids := make(map[string]string, len(rep.Samples))
	for coll, rec := range rep.Samples {
		ids[coll] = rec.ID()
	}
	return Explanation{
		Query:        rep.Query,
		Tokens:       rep.Tokens.Map(),
		SampleScores: rep.Scores,
		SampleIDs:    ids,
	}
}

// Collections returns the record count and description of every collection.
func (c *Client) Collections(ctx context.Context) (_ []CollectionInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe(ctx, "collections", start, err) }()

	infos, err := c.collSvc.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("collections: %w", err)
	}
	out := make([]CollectionInfo, 0, len(infos))
	for _, in := range infos {
		out = append(out, CollectionInfo{Name: in.Name, Count: in.Count, Description: in.Description})
	}
	return out, nil
}

// Put stores one record, replacing any record with the same id.
func (c *Client) Put(ctx context.Context, collection, id string, fields map[string]any) (err error) {
	start := time.Now()
	defer func() { c.obs.observe(ctx, "put", start, err, slog.String("collection", collection)) }()

	if _, err = c.collSvc.Seed(ctx, collection, []domrec.Record{domrec.New(id, fields)}); err != nil {
		return fmt.Errorf("put: %w", err)
	}
	return nil
}

func toMatches(items []recommendation.ScoredRecord) []Match {
	out := make([]Match, 0, len(items))
	for i := range items {
		rec := items[i].Record()
		out = append(out, Match{ID: rec.ID(), Score: items[i].Score(), Fields: rec.Fields()})
	}
	return out
}
