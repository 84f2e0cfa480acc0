package redis

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/0Anshu1/collabup-be/internal/db"
)

// CreateIndex creates an FT index from the given definition.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	args, err := buildCreateArgs(def)
	if err != nil {
		return err
	}

	cmd := s.b().Arbitrary("FT.CREATE").Args(args...).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return db.ErrIndexExists
		}
		return &db.Error{Op: db.OpCreateIndex, Err: err}
	}
	return nil
}

// IndexExists probes index existence via FT.INFO.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	cmd := s.b().Arbitrary("FT.INFO").Args(name).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isMissingIndex(err) {
			return false, nil
		}
		return false, &db.Error{Op: db.OpIndexInfo, Err: err}
	}
	return true, nil
}

// ensureIndex creates the collection index once per process.
// FT.CREATE also indexes documents already stored under the prefix.
func (s *Store) ensureIndex(ctx context.Context, collection string) error {
	if _, ok := s.indexed.Load(collection); ok {
		return nil
	}

	exists, err := s.IndexExists(ctx, s.indexName(collection))
	if err != nil {
		return err
	}
	if !exists {
		def, err := s.collectionIndex(collection)
		if err != nil {
			return err
		}
		if err := s.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return err
		}
	}

	s.indexed.Store(collection, struct{}{})
	return nil
}

func (s *Store) collectionIndex(collection string) (*db.IndexDefinition, error) {
	b := db.NewIndex(s.indexName(collection)).Prefix(s.docPrefix(collection))
	for _, f := range s.sortedTagFields() {
		b = b.TagField(f)
	}
	if len(s.tagFields) == 0 {
		// FT.CREATE needs at least one attribute.
		b = b.TagField("id")
	}
	return b.Build()
}

func (s *Store) sortedTagFields() []string {
	out := make([]string, 0, len(s.tagFields))
	for f := range s.tagFields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func isMissingIndex(err error) bool {
	return isRedisErr(err, "unknown index name") ||
		isRedisErr(err, "no such index") ||
		isRedisErr(err, "not found")
}

func buildCreateArgs(idx *db.IndexDefinition) ([]string, error) {
	if idx.Name == "" {
		return nil, errors.New("index name is required")
	}
	if len(idx.Fields) == 0 {
		return nil, errors.New("at least one field is required")
	}

	args := []string{idx.Name}

	storage := idx.StorageType
	if storage == "" {
		storage = db.StorageJSON
	}
	args = append(args, "ON", string(storage))

	if len(idx.Prefixes) > 0 {
		args = append(args, "PREFIX", strconv.Itoa(len(idx.Prefixes)))
		args = append(args, idx.Prefixes...)
	}

	args = append(args, "SCHEMA")

	for i := range idx.Fields {
		fieldArgs, err := buildFieldArgs(&idx.Fields[i])
		if err != nil {
			return nil, err
		}
		args = append(args, fieldArgs...)
	}

	return args, nil
}

func buildFieldArgs(f *db.IndexField) ([]string, error) {
	if f.Name == "" {
		return nil, errors.New("field name is required")
	}

	args := []string{f.Name}

	if f.Alias != "" {
		args = append(args, "AS", f.Alias)
	}

	switch f.Type {
	case db.IndexFieldNumeric:
		args = append(args, "NUMERIC")

	case db.IndexFieldText:
		args = append(args, "TEXT")

	case db.IndexFieldTag:
		args = append(args, "TAG")
		if f.TagSeparator != "" {
			args = append(args, "SEPARATOR", f.TagSeparator)
		}
		if f.TagCaseSensitive {
			args = append(args, "CASESENSITIVE")
		}

	default:
		return nil, errors.New("unknown field type")
	}

	return args, nil
}
