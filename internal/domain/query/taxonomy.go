package query

// Category is a semantic bucket for query tokens.
type Category string

const (
	// Skills groups technology and skill words.
	Skills Category = "skills"
	// Domains groups industry and field words.
	Domains Category = "domains"
	// Locations groups places and work modes.
	Locations Category = "locations"
	// Companies groups organizations and employers.
	Companies Category = "companies"
	// Institutes groups colleges and universities.
	Institutes Category = "institutes"
	// Roles groups job titles and positions.
	Roles Category = "roles"
	// Experience groups seniority words.
	Experience Category = "experience"
	// Projects groups project and activity words.
	Projects Category = "projects"
	// General is the catch-all for tokens no keyword matched.
	General Category = "general"
)

// keywordSet binds a category to the keywords that select it.
type keywordSet struct {
	category Category
	keywords []string
}

// taxonomy is checked top to bottom; the first matching category wins,
// so reordering entries changes categorization of ambiguous tokens.
var taxonomy = []keywordSet{
	{Skills, []string{
		"skill", "technology", "tech", "programming", "language", "framework",
		"tool", "expertise", "proficient", "know", "learn", "master",
	}},
	{Domains, []string{
		"domain", "field", "area", "industry", "sector", "vertical", "category", "type", "kind",
	}},
	{Locations, []string{
		"location", "place", "city", "remote", "onsite", "hybrid",
		"bangalore", "mumbai", "delhi", "hyderabad", "chennai", "pune",
	}},
	{Companies, []string{
		"company", "startup", "organization", "firm", "enterprise", "corporate",
		"google", "microsoft", "amazon", "meta", "apple",
	}},
	{Institutes, []string{
		"college", "university", "institute", "iit", "nit", "bits", "school", "academy",
	}},
	{Roles, []string{
		"role", "position", "job", "title", "designation", "professor",
		"mentor", "student", "developer", "engineer",
	}},
	{Experience, []string{
		"experience", "years", "senior", "junior", "fresher", "expert",
		"beginner", "intermediate", "advanced",
	}},
	{Projects, []string{
		"project", "work", "build", "develop", "create", "implement", "design", "research", "study",
	}},
}

// Categories returns every category in scoring order, General last.
func Categories() []Category {
	out := make([]Category, 0, len(taxonomy)+1)
	for _, ks := range taxonomy {
		out = append(out, ks.category)
	}
	return append(out, General)
}

// Keywords returns a copy of the keyword list for a category.
// General has no keywords.
func Keywords(c Category) []string {
	for _, ks := range taxonomy {
		if ks.category == c {
			out := make([]string, len(ks.keywords))
			copy(out, ks.keywords)
			return out
		}
	}
	return nil
}
