package valkey

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/redis/rueidis"

	"github.com/0Anshu1/collabup-be/internal/db"
)

// Stream lists collection keys in sorted order and fetches them in batches.
func (s *Store) Stream(ctx context.Context, q db.Query) ([]db.Document, error) {
	if !db.IsValidIdentifier(q.Collection) {
		return nil, db.ErrInvalidCollection
	}

	prefix := s.docPrefix(q.Collection)
	keys, err := s.scan(ctx, prefix+"*")
	if err != nil {
		return nil, err
	}
	sort.Strings(keys) // deterministic ordering

	var docs []db.Document
	for start := 0; start < len(keys); start += s.pageSize {
		end := min(start+s.pageSize, len(keys))
		page, err := s.jsonGetMulti(ctx, keys[start:end])
		if err != nil {
			return nil, err
		}
		for i, raw := range page {
			if raw == "" {
				continue // key may have been deleted between SCAN and GET
			}
			doc := decode(strings.TrimPrefix(keys[start+i], prefix), raw)
			if !q.Filter.Matches(doc.Fields) {
				continue
			}
			docs = append(docs, doc)
			if q.Limit > 0 && len(docs) >= q.Limit {
				return docs, nil
			}
		}
	}
	return docs, nil
}

// Count returns the number of keys stored for a collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if !db.IsValidIdentifier(collection) {
		return 0, db.ErrInvalidCollection
	}
	keys, err := s.scan(ctx, s.docPrefix(collection)+"*")
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Put stores doc as a JSON value, replacing any previous version.
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

	key := s.docPrefix(collection) + doc.ID
	cmd := s.b().Arbitrary("JSON.SET").Keys(key).Args("$", string(data)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpJSONSet, Err: err}
	}
	return nil
}

func (s *Store) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.b().Scan().Cursor(cursor).Match(pattern).Count(int64(s.pageSize)).Build()
		res, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		keys = append(keys, res.Elements...)
		cursor = res.Cursor
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// jsonGetMulti pipelines JSON.GET for keys. Missing keys yield "".
func (s *Store) jsonGetMulti(ctx context.Context, keys []string) ([]string, error) {
	cmds := make(rueidis.Commands, 0, len(keys))
	for _, k := range keys {
		cmds = append(cmds, s.b().Arbitrary("JSON.GET").Keys(k).Args("$").Build())
	}

	out := make([]string, len(keys))
	for i, res := range s.client.DoMulti(ctx, cmds...) {
		raw, err := res.ToString()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, &db.Error{Op: db.OpJSONGet, Err: err}
		}
		out[i] = raw
	}
	return out, nil
}

// decode parses a JSON.GET $ reply, which wraps the document in an array.
func decode(id, raw string) db.Document {
	doc := db.Document{ID: id, Fields: map[string]any{}}

	var wrapped []map[string]any
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil {
		if len(wrapped) > 0 && wrapped[0] != nil {
			doc.Fields = wrapped[0]
		}
		return doc
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err == nil && fields != nil {
		doc.Fields = fields
	}
	return doc
}
