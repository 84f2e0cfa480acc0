package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/config"
	"github.com/0Anshu1/collabup-be/internal/db"
	dbBadger "github.com/0Anshu1/collabup-be/internal/db/badger"
	dbRedis "github.com/0Anshu1/collabup-be/internal/db/redis"
	dbSQLite "github.com/0Anshu1/collabup-be/internal/db/sqlite"
	dbValkey "github.com/0Anshu1/collabup-be/internal/db/valkey"
	logpkg "github.com/0Anshu1/collabup-be/internal/logger"
	"github.com/0Anshu1/collabup-be/internal/metrics"
	recordrepo "github.com/0Anshu1/collabup-be/internal/repository/record"
	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
	healthuc "github.com/0Anshu1/collabup-be/internal/usecase/health"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
	"github.com/0Anshu1/collabup-be/internal/version"
)

// memoryPath selects an in-memory database for the embedded drivers.
const memoryPath = ":memory:"

// app is the composition root shared by every command.
type app struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
	store  db.Store

	recommend   *recommenduc.Service
	health      *healthuc.Service
	collections *collectionuc.Service
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFile(opts.configPath)
	}
	return config.Load(opts.env)
}

// newApp loads configuration, connects the store and builds the services.
func newApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(opts.env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Starting collabup",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", opts.env),
		zap.String("db_driver", cfg.Database.Driver),
	)

	a, err := newAppWithConfig(ctx, opts.env, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return a, nil
}

func newAppWithConfig(ctx context.Context, env string, cfg config.Config, logger *zap.Logger) (*app, error) {
	store, err := buildStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database store: %w", err)
	}

	if err := store.WaitForReady(ctx, cfg.Database.ReadinessTimeoutDuration()); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")

	metrics.RegisterRecommendMetrics()

	repo := recordrepo.New(store).WithFetchTimeout(cfg.Database.FetchTimeoutDuration())

	return &app{
		env:    env,
		cfg:    cfg,
		logger: logger,
		store:  store,
		recommend: recommenduc.New(repo).
			WithLimits(cfg.Recommend.DefaultTopN, cfg.Recommend.MaxTopN).
			WithMinScore(cfg.Recommend.MinScore),
		health:      healthuc.New(repo),
		collections: collectionuc.New(repo),
	}, nil
}

// Close releases the store and flushes the logger.
func (a *app) Close() {
	a.store.Close()
	_ = a.logger.Sync()
}

// buildStore creates the document store for the configured driver.
func buildStore(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:     cfg.Addrs,
			Username:  cfg.Username,
			Password:  cfg.Password,
			DB:        cfg.DB,
			KeyPrefix: cfg.KeyPrefix,
			PageSize:  cfg.PageSize,
			TagFields: cfg.TagFields,
		})
	case config.DriverValkey:
		return dbValkey.NewStore(dbValkey.Config{
			Addrs:     cfg.Addrs,
			Username:  cfg.Username,
			Password:  cfg.Password,
			DB:        cfg.DB,
			KeyPrefix: cfg.KeyPrefix,
			PageSize:  cfg.PageSize,
		})
	case config.DriverBadger:
		return dbBadger.Open(dbBadger.Config{
			Path:     cfg.Path,
			InMemory: cfg.Path == memoryPath,
		}, logger)
	case config.DriverSQLite:
		return dbSQLite.Open(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
