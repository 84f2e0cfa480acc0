package redis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/0Anshu1/collabup-be/internal/db"
)

// Stream pages through a collection index and decodes each RedisJSON document.
func (s *Store) Stream(ctx context.Context, q db.Query) ([]db.Document, error) {
	if !db.IsValidIdentifier(q.Collection) {
		return nil, db.ErrInvalidCollection
	}
	if err := s.ensureIndex(ctx, q.Collection); err != nil {
		return nil, err
	}

	index := s.indexName(q.Collection)
	query := s.buildQuery(q.Filter)
	prefix := s.docPrefix(q.Collection)

	var docs []db.Document
	for offset := 0; ; offset += s.pageSize {
		res, err := s.searchList(ctx, index, query, offset, s.pageSize, []string{"$"})
		if err != nil {
			if isMissingIndex(err) {
				s.indexed.Delete(q.Collection)
				return docs, nil
			}
			return nil, &db.Error{Op: db.OpSearch, Err: err}
		}

		for _, e := range res.Entries {
			doc := decodeEntry(e, prefix)
			if !q.Filter.Matches(doc.Fields) {
				continue
			}
			docs = append(docs, doc)
			if q.Limit > 0 && len(docs) >= q.Limit {
				return docs, nil
			}
		}

		if len(res.Entries) == 0 || offset+s.pageSize >= res.Total {
			return docs, nil
		}
	}
}

// Count returns the number of documents indexed for a collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if !db.IsValidIdentifier(collection) {
		return 0, db.ErrInvalidCollection
	}
	if err := s.ensureIndex(ctx, collection); err != nil {
		return 0, err
	}
	n, err := s.searchCount(ctx, s.indexName(collection), "*")
	if err != nil {
		if isMissingIndex(err) {
			s.indexed.Delete(collection)
			return 0, nil
		}
		return 0, &db.Error{Op: db.OpSearch, Err: err}
	}
	return n, nil
}

// Put stores doc as a RedisJSON document, replacing any previous version.
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

	if err := s.ensureIndex(ctx, collection); err != nil {
		return err
	}

	key := s.docPrefix(collection) + doc.ID
	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args("$", string(data)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return nil
}

func decodeEntry(e searchEntry, prefix string) db.Document {
	doc := db.Document{
		ID:     strings.TrimPrefix(e.Key, prefix),
		Fields: map[string]any{},
	}

	raw, ok := e.Fields["$"]
	if !ok {
		return doc
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		// Dialect 3 wraps the root path in an array.
		var wrapped []map[string]any
		if err := json.Unmarshal([]byte(raw), &wrapped); err != nil || len(wrapped) == 0 {
			return doc
		}
		fields = wrapped[0]
	}
	if fields != nil {
		doc.Fields = fields
	}
	return doc
}
