package record

// Source describes where records of one type live in the store.
type Source struct {
	Type        Type
	Collection  string
	FilterField string // empty = no filter
	FilterValue string
	ResponseKey string
}

// Collection names in the document store.
const (
	CollectionStudentProjects  = "studentProjects"
	CollectionStartupProjects  = "startupProjects"
	CollectionUsers            = "users"
	CollectionResearchProjects = "researchProjects"
)

var sources = map[Type]Source{
	StudentProject: {
		Type: StudentProject, Collection: CollectionStudentProjects, ResponseKey: "student_projects",
	},
	StartupProject: {
		Type: StartupProject, Collection: CollectionStartupProjects, ResponseKey: "startup_projects",
	},
	MentorProfile: {
		Type: MentorProfile, Collection: CollectionUsers, ResponseKey: "mentor_profiles",
		FilterField: "role", FilterValue: "mentor",
	},
	ResearchProject: {
		Type: ResearchProject, Collection: CollectionResearchProjects, ResponseKey: "research_projects",
	},
}

var descriptions = map[string]string{
	CollectionStudentProjects:  "Student-created projects looking for collaborators",
	CollectionStartupProjects:  "Startup projects and opportunities",
	CollectionUsers:            "User profiles (including mentors)",
	CollectionResearchProjects: "Academic faculty and research projects",
}

// SourceOf returns the store location for a record type.
func SourceOf(t Type) (Source, bool) {
	s, ok := sources[t]
	return s, ok
}

// Collections returns the distinct store collections in response order.
func Collections() []string {
	return []string{
		CollectionStudentProjects,
		CollectionStartupProjects,
		CollectionUsers,
		CollectionResearchProjects,
	}
}

// TypeOfCollection returns the record type scored from a collection.
func TypeOfCollection(name string) (Type, bool) {
	for _, t := range Types() {
		if sources[t].Collection == name {
			return t, true
		}
	}
	return "", false
}

// Describe returns a human-readable collection description.
func Describe(collection string) string {
	if d, ok := descriptions[collection]; ok {
		return d
	}
	return "Unknown collection"
}

// Admits reports whether r passes the source's equality filter.
func (s Source) Admits(r *Record) bool {
	if s.FilterField == "" {
		return true
	}
	v, ok := r.fields[s.FilterField].(string)
	return ok && v == s.FilterValue
}
