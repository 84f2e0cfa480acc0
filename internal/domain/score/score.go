// Package score computes a record's relevance to a categorized query.
package score

import (
	"github.com/0Anshu1/collabup-be/internal/domain/match"
	"github.com/0Anshu1/collabup-be/internal/domain/query"
	"github.com/0Anshu1/collabup-be/internal/domain/record"
)

const (
	// AffinityBonus multiplies a token score when its category suits the record type.
	AffinityBonus = 1.2
	// MultiTokenBonus multiplies the total when the query has more than one token.
	MultiTokenBonus = 1.1
)

// affinities pairs each category with the record types it favors.
var affinities = map[query.Category]map[record.Type]bool{
	query.Skills:     {record.StudentProject: true, record.MentorProfile: true},
	query.Domains:    {record.StudentProject: true, record.StartupProject: true},
	query.Companies:  {record.MentorProfile: true},
	query.Institutes: {record.ResearchProject: true},
	query.Locations:  {record.StartupProject: true},
}

// TokenScore is one token's contribution to a record score.
type TokenScore struct {
	Category   query.Category `json:"category"`
	Token      string         `json:"token"`
	Field      string         `json:"field,omitempty"` // best matching field label
	Raw        float64        `json:"raw"`
	Multiplier float64        `json:"multiplier"`
}

// Contribution returns the token's score after the affinity multiplier.
func (ts TokenScore) Contribution() float64 { return ts.Raw * ts.Multiplier }

// Breakdown explains how a total was reached.
type Breakdown struct {
	Total      float64      `json:"total"`
	Tokens     []TokenScore `json:"tokens"`
	MultiBonus bool         `json:"multi_token_bonus"`
}

// Score returns the relevance of the extracted fields to the query. Never negative.
func Score(q query.Categorized, fields []record.Field, t record.Type) float64 {
	return compute(q, fields, t, nil)
}

// Explain is Score with a per-token breakdown.
func Explain(q query.Categorized, fields []record.Field, t record.Type) Breakdown {
	var b Breakdown
	b.Tokens = make([]TokenScore, 0, q.Total())
	b.Total = compute(q, fields, t, func(ts TokenScore) {
		b.Tokens = append(b.Tokens, ts)
	})
	b.MultiBonus = q.Total() > 1 && b.Total > 0
	return b
}

// Record extracts fields from r and scores them.
func Record(q query.Categorized, r *record.Record, t record.Type) float64 {
	return Score(q, record.Extract(r, t), t)
}

func compute(q query.Categorized, fields []record.Field, t record.Type, visit func(TokenScore)) float64 {
	total := 0.0
	for _, cat := range query.Categories() {
		mult := 1.0
		if affinities[cat][t] {
			mult = AffinityBonus
		}
		for _, tok := range q.Tokens(cat) {
			raw, label := best(tok, fields)
			total += raw * mult
			if visit != nil {
				visit(TokenScore{Category: cat, Token: tok, Field: label, Raw: raw, Multiplier: mult})
			}
		}
	}

	if q.Total() > 1 && total > 0 {
		total *= MultiTokenBonus
	}
	return total
}

// best returns the highest weighted similarity of tok across fields.
func best(tok string, fields []record.Field) (float64, string) {
	top := 0.0
	label := ""
	for _, f := range fields {
		if f.Text == "" {
			continue
		}
		if s := match.Similarity(tok, f.Text) * f.Weight; s > top {
			top = s
			label = f.Label
		}
	}
	return top, label
}
