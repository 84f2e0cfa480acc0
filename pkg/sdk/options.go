package collabup

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "redis", "valkey", "badger" or "sqlite"
	addrs    []string
	password string
	path     string

	keyPrefix    string
	fetchTimeout time.Duration

	defaultTopN int
	maxTopN     int
	minScore    float64
	hasMinScore bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis connects to a Redis instance with the RedisJSON and search modules.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithValkey connects to a Valkey instance with the JSON module.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithBadger opens an embedded Badger database in dir.
func WithBadger(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "badger"
		c.path = dir
	})
}

// WithSQLite opens an embedded SQLite database file.
func WithSQLite(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "sqlite"
		c.path = path
	})
}

// WithInMemory uses a private in-memory SQLite database. Handy for tests.
func WithInMemory() Option {
	return WithSQLite(memoryPath)
}

// WithKeyPrefix sets the Redis/Valkey key namespace. Default: "collabup:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithFetchTimeout bounds every collection read. Default: 10s.
func WithFetchTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.fetchTimeout = d
	})
}

// WithTopN sets the default and maximum matches per record type.
// Defaults: 5 and 100.
func WithTopN(defaultTopN, maxTopN int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultTopN = defaultTopN
		c.maxTopN = maxTopN
	})
}

// WithMinScore sets the exclusive score threshold. Default: 0.1.
func WithMinScore(v float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.minScore = v
		c.hasMinScore = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
