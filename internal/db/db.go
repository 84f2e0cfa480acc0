package db

import (
	"context"
	"time"
)

// Store is the document store facade combining all sub-interfaces.
type Store interface {
	Pinger
	DocumentReader
	DocumentWriter
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Document is one schema-flexible record in a collection.
type Document struct {
	ID     string
	Fields map[string]any
}

// Equality restricts a stream to documents whose Field equals Value.
type Equality struct {
	Field string
	Value string
}

// Matches reports whether fields satisfy the filter. A nil filter matches everything.
func (e *Equality) Matches(fields map[string]any) bool {
	if e == nil {
		return true
	}
	v, ok := fields[e.Field].(string)
	return ok && v == e.Value
}

// Query selects documents from a single collection.
type Query struct {
	Collection string
	Filter     *Equality // optional
	Limit      int       // 0 = no limit
}

// DocumentReader streams documents by collection.
type DocumentReader interface {
	// Stream returns matching documents. A collection that was never written is empty, not an error.
	Stream(ctx context.Context, q Query) ([]Document, error)
	Count(ctx context.Context, collection string) (int, error)
}

// DocumentWriter stores documents, replacing any existing document with the same ID.
type DocumentWriter interface {
	Put(ctx context.Context, collection string, doc Document) error
}
