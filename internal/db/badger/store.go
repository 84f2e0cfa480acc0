package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"

	"github.com/0Anshu1/collabup-be/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

var errClosed = errors.New("badger: database is closed")

// Config selects an on-disk directory or an in-memory database.
type Config struct {
	Path     string
	InMemory bool
}

// Store is an embedded document store. Documents are JSON values keyed
// c:<collection>:<id>, so a collection is one key-prefix range.
type Store struct {
	db  *badger.DB
	log *zap.Logger
}

// zapAdapter adapts zap to the badger.Logger interface.
type zapAdapter struct {
	s *zap.SugaredLogger
}

var _ badger.Logger = (*zapAdapter)(nil)

func (a *zapAdapter) Errorf(msg string, items ...any)   { a.s.Errorf(msg, items...) }
func (a *zapAdapter) Warningf(msg string, items ...any) { a.s.Warnf(msg, items...) }
func (a *zapAdapter) Infof(msg string, items ...any)    { a.s.Debugf(msg, items...) }
func (a *zapAdapter) Debugf(msg string, items ...any)   { a.s.Debugf(msg, items...) }

// Open opens a badger database, creating the directory if needed.
func Open(cfg Config, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("path is required")
		}
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = &zapAdapter{s: log.Named("badger").Sugar()}
	opts.Compression = options.None

	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: bdb, log: log}, nil
}

// Ping reports whether the database is open.
func (s *Store) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return &db.Error{Op: db.OpPing, Err: errClosed}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		s.log.Warn("badger close failed", zap.Error(err))
	}
}

// WaitForReady returns immediately: an opened embedded database is ready.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// Stream iterates a collection prefix in key order.
func (s *Store) Stream(ctx context.Context, q db.Query) ([]db.Document, error) {
	if !db.IsValidIdentifier(q.Collection) {
		return nil, db.ErrInvalidCollection
	}

	prefix := collectionPrefix(q.Collection)
	var docs []db.Document

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			doc := db.Document{ID: string(item.Key()[len(prefix):])}
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &doc.Fields)
			})
			if err != nil {
				s.log.Warn("skipping undecodable document",
					zap.String("collection", q.Collection),
					zap.String("id", doc.ID),
					zap.Error(err))
				continue
			}
			if doc.Fields == nil {
				doc.Fields = map[string]any{}
			}
			if !q.Filter.Matches(doc.Fields) {
				continue
			}
			docs = append(docs, doc)
			if q.Limit > 0 && len(docs) >= q.Limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpIterate, Err: err}
	}
	return docs, nil
}

// Count returns the number of keys under a collection prefix.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if !db.IsValidIdentifier(collection) {
		return 0, db.ErrInvalidCollection
	}

	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = collectionPrefix(collection)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, &db.Error{Op: db.OpIterate, Err: err}
	}
	return n, nil
}

// Put stores doc, replacing any previous version.
func (s *Store) Put(_ context.Context, collection string, doc db.Document) error {
	if err := db.ValidateDocument(collection, doc); err != nil {
		return err
	}
	fields := doc.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return &db.Error{Op: db.OpEncode, Err: err}
	}

	key := append(collectionPrefix(collection), doc.ID...)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	return nil
}

func collectionPrefix(collection string) []byte {
	return []byte("c:" + collection + ":")
}
