package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Load records from a JSON file into the store",
		Long: `Read a JSON object mapping collection names to arrays of records and
write every record into the configured store. Records without an "id"
get a generated UUID. Existing records with the same id are replaced.`,
		Example: `  collabup seed testdata/sample.json
  collabup --env prod seed dump.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			batches, err := readSeedFile(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return runSeed(ctx, a.collections, batches, cmd.OutOrStdout(), a.logger)
		},
	}
}

// seedBatch is the records destined for one collection.
type seedBatch struct {
	collection string
	records    []domrec.Record
}

func readSeedFile(path string) ([]seedBatch, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return decodeSeed(f)
}

// decodeSeed parses {collection: [{id, ...fields}]}. Collections come back sorted by name.
func decodeSeed(r io.Reader) ([]seedBatch, error) {
	var raw map[string][]map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	batches := make([]seedBatch, 0, len(names))
	for _, name := range names {
		recs := make([]domrec.Record, 0, len(raw[name]))
		for _, fields := range raw[name] {
			normalizeNumbers(fields)
			recs = append(recs, domrec.New(seedID(fields), fields))
		}
		batches = append(batches, seedBatch{collection: name, records: recs})
	}
	return batches, nil
}

func seedID(fields map[string]any) string {
	switch v := fields["id"].(type) {
	case string:
		if v != "" {
			return v
		}
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return uuid.NewString()
}

// normalizeNumbers turns json.Number values into int64 or float64 so that
// records round-trip through every store driver unchanged.
func normalizeNumbers(m map[string]any) {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		normalizeNumbers(t)
		return t
	case []any:
		for i := range t {
			t[i] = normalizeValue(t[i])
		}
		return t
	default:
		return v
	}
}

func runSeed(
	ctx context.Context, svc *collectionuc.Service, batches []seedBatch, out io.Writer, logger *zap.Logger,
) error {
	total := 0
	for _, b := range batches {
		n, err := svc.Seed(ctx, b.collection, b.records)
		total += n
		if err != nil {
			return fmt.Errorf("seeded %d records before failure: %w", total, err)
		}
		logger.Info("collection seeded", zap.String("collection", b.collection), zap.Int("records", n))
		_, _ = fmt.Fprintf(out, "%-20s %d\n", b.collection, n)
	}
	_, _ = fmt.Fprintf(out, "%-20s %d\n", "total", total)
	return nil
}
