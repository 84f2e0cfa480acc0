package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, registers "sqlite"

	"github.com/0Anshu1/collabup-be/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

const driverName = "sqlite"

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       TEXT NOT NULL,
	UNIQUE (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection, seq);
`

// Store keeps every collection in one documents table with JSON bodies.
// Rows are read back in insertion order.
type Store struct {
	db *sql.DB
}

// Open opens the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	sdb, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: a second one would see a different :memory: database,
	// and SQLite allows a single writer anyway.
	sdb.SetMaxOpenConns(1)
	sdb.SetMaxIdleConns(1)
	sdb.SetConnMaxLifetime(0)

	if path != MemoryPath {
		if _, err := sdb.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = sdb.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := sdb.ExecContext(ctx, schema); err != nil {
		_ = sdb.Close()
		return nil, &db.Error{Op: db.OpMigrate, Err: err}
	}

	return &Store{db: sdb}, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() {
	_ = s.db.Close()
}

// WaitForReady pings once; a local file has nothing to wait for.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.Ping(ctx)
}

// Stream selects a collection in insertion order. Equality filters are
// evaluated by SQLite over the JSON body.
func (s *Store) Stream(ctx context.Context, q db.Query) ([]db.Document, error) {
	if !db.IsValidIdentifier(q.Collection) {
		return nil, db.ErrInvalidCollection
	}

	query := `SELECT id, data FROM documents WHERE collection = ?`
	args := []any{q.Collection}
	if q.Filter != nil {
		if !db.IsValidIdentifier(q.Filter.Field) {
			return nil, fmt.Errorf("invalid filter field %q", q.Filter.Field)
		}
		query += ` AND json_extract(data, ?) = ?`
		args = append(args, jsonPath(q.Filter.Field), q.Filter.Value)
	}
	query += ` ORDER BY seq LIMIT ?`
	limit := -1
	if q.Limit > 0 {
		limit = q.Limit
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer rows.Close()

	var docs []db.Document
	for rows.Next() {
		var (
			id   string
			data string
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, &db.Error{Op: db.OpSelect, Err: err}
		}
		doc := db.Document{ID: id}
		if err := json.Unmarshal([]byte(data), &doc.Fields); err != nil || doc.Fields == nil {
			doc.Fields = map[string]any{}
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	return docs, nil
}

// Count returns the number of rows in a collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if !db.IsValidIdentifier(collection) {
		return 0, db.ErrInvalidCollection
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, collection).Scan(&n)
	if err != nil {
		return 0, &db.Error{Op: db.OpSelect, Err: err}
	}
	return n, nil
}

// Put upserts doc. A replaced document keeps its original position.
func (s *Store) Put(ctx context.Context, collection string, doc db.Document) error {
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

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data
	`, collection, doc.ID, string(data))
	if err != nil {
		return &db.Error{Op: db.OpUpsert, Err: err}
	}
	return nil
}

func jsonPath(field string) string {
	return `$."` + field + `"`
}
