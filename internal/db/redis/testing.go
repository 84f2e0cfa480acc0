package redis

import "github.com/redis/rueidis"

// NewStoreForTest creates a Store with an injected client for unit tests.
// The role attribute is indexed as a TAG, matching the default config.
func NewStoreForTest(c rueidis.Client) *Store {
	return newStore(c, Config{TagFields: []string{"role"}})
}
