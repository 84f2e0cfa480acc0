// Package recommendation holds ranked per-type results.
package recommendation

import (
	"sort"

	"github.com/0Anshu1/collabup-be/internal/domain/record"
)

// ScoredRecord is a record with its similarity score.
type ScoredRecord struct {
	record record.Record
	score  float64
}

// NewScored pairs a record with its score.
func NewScored(r record.Record, score float64) ScoredRecord {
	return ScoredRecord{record: r, score: score}
}

// Record returns the underlying record.
func (s *ScoredRecord) Record() *record.Record { return &s.record }

// ID returns the record identifier.
func (s *ScoredRecord) ID() string { return s.record.ID() }

// Score returns the similarity score.
func (s *ScoredRecord) Score() float64 { return s.score }

// Result is the ranked top-N for every record type.
type Result struct {
	byType map[record.Type][]ScoredRecord
}

// Empty returns a result with an empty, non-nil list for every type.
func Empty() Result {
	r := Result{byType: make(map[record.Type][]ScoredRecord, 4)}
	for _, t := range record.Types() {
		r.byType[t] = []ScoredRecord{}
	}
	return r
}

// Set stores the ranked list for t.
func (r *Result) Set(t record.Type, items []ScoredRecord) {
	if r.byType == nil {
		*r = Empty()
	}
	if items == nil {
		items = []ScoredRecord{}
	}
	r.byType[t] = items
}

// For returns the ranked list for t.
func (r *Result) For(t record.Type) []ScoredRecord {
	if items, ok := r.byType[t]; ok {
		return items
	}
	return []ScoredRecord{}
}

// Total returns the number of records across all types.
func (r *Result) Total() int {
	n := 0
	for _, items := range r.byType {
		n += len(items)
	}
	return n
}

// Rank keeps records scoring strictly above minScore, orders them by
// descending score and truncates to topN. Equal scores keep input order.
func Rank(items []ScoredRecord, minScore float64, topN int) []ScoredRecord {
	kept := make([]ScoredRecord, 0, len(items))
	for _, it := range items {
		if it.score > minScore {
			kept = append(kept, it)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if topN >= 0 && len(kept) > topN {
		kept = kept[:topN]
	}
	return kept
}
