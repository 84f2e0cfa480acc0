package collabup

import "time"

// Match is one ranked record.
type Match struct {
	ID     string
	Score  float64
	Fields map[string]any
}

// Recommendations holds the ranked matches per record type, best first.
type Recommendations struct {
	StudentProjects  []Match
	StartupProjects  []Match
	MentorProfiles   []Match
	ResearchProjects []Match
}

// Total returns the number of matches across all record types.
func (r Recommendations) Total() int {
	return len(r.StudentProjects) + len(r.StartupProjects) + len(r.MentorProfiles) + len(r.ResearchProjects)
}

// Explanation shows how a query was categorized and how the first record
// of each collection scored.
type Explanation struct {
	Query        string
	Tokens       map[string][]string // category -> tokens
	SampleScores map[string]float64  // response key -> score
	SampleIDs    map[string]string   // collection -> record id
}

// CollectionInfo describes one store collection.
type CollectionInfo struct {
	Name        string
	Count       int
	Description string
}

// HealthStatus represents the aggregated store health.
type HealthStatus struct {
	Status      string            // "healthy", "degraded", "unhealthy"
	Store       string            // "connected", "partial", "not connected"
	Collections map[string]string // collection -> "accessible"/"error"
	CheckedAt   time.Time
}
