package badger

import "go.uber.org/zap"

// NewMemoryStore opens an in-memory store for tests and local runs.
func NewMemoryStore() (*Store, error) {
	return Open(Config{InMemory: true}, zap.NewNop())
}
