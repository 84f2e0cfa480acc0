// Package response holds the JSON shapes shared by the HTTP and MCP transports.
package response

import (
	"time"

	"github.com/0Anshu1/collabup-be/internal/domain/recommendation"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
	"github.com/0Anshu1/collabup-be/internal/domain/score"
	collectionuc "github.com/0Anshu1/collabup-be/internal/usecase/collection"
	healthuc "github.com/0Anshu1/collabup-be/internal/usecase/health"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
)

// Entry is a stored record's fields plus its id and score.
type Entry map[string]any

// Recommend holds the ranked records per type.
type Recommend struct {
	StudentProjects  []Entry `json:"student_projects"`
	StartupProjects  []Entry `json:"startup_projects"`
	MentorProfiles   []Entry `json:"mentor_profiles"`
	ResearchProjects []Entry `json:"research_projects"`
}

// CollectionHealth is the probe result for one collection.
type CollectionHealth struct {
	Status      string `json:"status"`
	SampleCount *int   `json:"sample_count,omitempty"`
	Error       string `json:"error,omitempty"`
}

// HealthReport is the serialized health probe.
type HealthReport struct {
	Status      string                      `json:"status"`
	StoreStatus string                      `json:"store_status"`
	Collections map[string]CollectionHealth `json:"collections"`
	Timestamp   string                      `json:"timestamp"`
}

// DebugReport is the serialized query explanation.
type DebugReport struct {
	Query             string                     `json:"query"`
	CategorizedTokens map[string][]string        `json:"categorized_tokens"`
	SampleScores      map[string]float64         `json:"sample_scores"`
	SampleData        map[string]Entry           `json:"sample_data"`
	ScoreBreakdown    map[string]score.Breakdown `json:"score_breakdown"`
}

// CollectionInfo is the count and description of one collection.
type CollectionInfo struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// Recommendation converts a ranked result into its wire form.
func Recommendation(res *recommendation.Result) Recommend {
	return Recommend{
		StudentProjects:  entries(res.For(domrec.StudentProject)),
		StartupProjects:  entries(res.For(domrec.StartupProject)),
		MentorProfiles:   entries(res.For(domrec.MentorProfile)),
		ResearchProjects: entries(res.For(domrec.ResearchProject)),
	}
}

func entries(items []recommendation.ScoredRecord) []Entry {
	out := make([]Entry, 0, len(items))
	for i := range items {
		e := recordToEntry(items[i].Record())
		e["similarity_score"] = items[i].Score()
		out = append(out, e)
	}
	return out
}

func recordToEntry(r *domrec.Record) Entry {
	fields := r.Fields()
	e := make(Entry, len(fields)+2)
	for k, v := range fields {
		e[k] = v
	}
	e["id"] = r.ID()
	return e
}

// Health converts a health report into its wire form.
func Health(r *healthuc.Report) HealthReport {
	colls := make(map[string]CollectionHealth, len(r.Collections))
	for name, c := range r.Collections {
		h := CollectionHealth{Status: string(c.Status), Error: c.Error}
		if c.Status == healthuc.CheckOK {
			n := c.SampleCount
			h.SampleCount = &n
		}
		colls[name] = h
	}
	return HealthReport{
		Status:      string(r.Status),
		StoreStatus: string(r.Store),
		Collections: colls,
		Timestamp:   r.Timestamp.Format(time.RFC3339Nano),
	}
}

// Debug converts a debug report into its wire form.
func Debug(r *recommenduc.DebugReport) DebugReport {
	data := make(map[string]Entry, len(r.Samples))
	for coll, rec := range r.Samples {
		data[coll] = recordToEntry(&rec)
	}
	return DebugReport{
		Query:             r.Query,
		CategorizedTokens: r.Tokens.Map(),
		SampleScores:      r.Scores,
		SampleData:        data,
		ScoreBreakdown:    r.Details,
	}
}

// Collections keys collection metadata by name.
func Collections(infos []collectionuc.Info) map[string]CollectionInfo {
	out := make(map[string]CollectionInfo, len(infos))
	for _, in := range infos {
		out[in.Name] = CollectionInfo{Count: in.Count, Description: in.Description}
	}
	return out
}
