// Package record models schema-flexible store records and their per-type text schemas.
package record

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Type discriminates the four indexed entity kinds.
type Type string

const (
	// StudentProject is a student-created project looking for collaborators.
	StudentProject Type = "student_project"
	// StartupProject is a startup opportunity.
	StartupProject Type = "startup_project"
	// MentorProfile is a user profile with role "mentor".
	MentorProfile Type = "mentor_profile"
	// ResearchProject is a faculty research project.
	ResearchProject Type = "research_project"
)

// Types returns all record types in response order.
func Types() []Type {
	return []Type{StudentProject, StartupProject, MentorProfile, ResearchProject}
}

// Valid reports whether t is a known record type.
func (t Type) Valid() bool {
	switch t {
	case StudentProject, StartupProject, MentorProfile, ResearchProject:
		return true
	}
	return false
}

// ParseType converts a string into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown record type %q", s)
	}
	return t, nil
}

// Record is a read-only store document with a stable identifier.
type Record struct {
	id     string
	fields map[string]any
}

// New creates a record. fields is not copied; callers must not mutate it afterwards.
func New(id string, fields map[string]any) Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return Record{id: id, fields: fields}
}

// ID returns the store identifier.
func (r *Record) ID() string { return r.id }

// Fields returns the raw field mapping.
func (r *Record) Fields() map[string]any { return r.fields }

// Text returns the first non-empty textual value among the given field names.
func (r *Record) Text(names ...string) string {
	for _, name := range names {
		if s := toText(r.fields[name]); s != "" {
			return s
		}
	}
	return ""
}

// List returns the first non-empty list among the given field names.
// A plain string value counts as a one-element list.
func (r *Record) List(names ...string) []string {
	for _, name := range names {
		if items := toList(r.fields[name]); len(items) > 0 {
			return items
		}
	}
	return nil
}

// toText renders scalars as text. Nested values are not searchable and render empty.
func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func toList(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return x
	case []any:
		out := make([]string, len(x))
		for i, item := range x {
			out[i] = toText(item)
		}
		return out
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	default:
		return nil
	}
}
