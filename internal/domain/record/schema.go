package record

// Field is one weighted text value extracted from a record.
type Field struct {
	Label  string
	Text   string
	Weight float64
}

// fieldSpec declares one schema entry. names is the synonym chain checked in order.
type fieldSpec struct {
	label  string
	weight float64
	names  []string
}

// schema lists scalar fields first, then the list field expanded per element.
type schema struct {
	scalars []fieldSpec
	list    fieldSpec
}

var schemas = map[Type]schema{
	StudentProject: {
		scalars: []fieldSpec{
			{"title", 3.0, []string{"title"}},
			{"description", 1.5, []string{"description"}},
			{"domain", 2.5, []string{"domain"}},
			{"level", 1.0, []string{"level"}},
		},
		list: fieldSpec{"skill", 2.0, []string{"skills", "technologies"}},
	},
	StartupProject: {
		scalars: []fieldSpec{
			{"title", 3.0, []string{"title"}},
			{"startupName", 2.0, []string{"startupName", "company"}},
			{"description", 1.5, []string{"description"}},
			{"domain", 2.5, []string{"domain"}},
			{"location", 1.5, []string{"location"}},
			{"founder", 1.0, []string{"founderName", "founder"}},
		},
		list: fieldSpec{"skill", 2.0, []string{"skills"}},
	},
	MentorProfile: {
		scalars: []fieldSpec{
			{"name", 2.0, []string{"name", "fullName"}},
			{"bio", 1.5, []string{"bio"}},
			{"currentCompany", 2.0, []string{"currentCompany"}},
			{"designation", 1.5, []string{"designation"}},
			{"experience", 1.0, []string{"experience", "yearsOfExperience"}},
		},
		list: fieldSpec{"expertise", 3.0, []string{"expertise", "expertiseAreas"}},
	},
	ResearchProject: {
		scalars: []fieldSpec{
			{"title", 3.0, []string{"title"}},
			{"description", 1.5, []string{"description"}},
			{"domain", 2.5, []string{"domain"}},
			{"location", 1.0, []string{"location"}},
			{"level", 1.0, []string{"level"}},
			{"facultyName", 2.0, []string{"facultyName"}},
			{"instituteName", 2.0, []string{"instituteName"}},
		},
		list: fieldSpec{"skill", 2.0, []string{"skills"}},
	},
}

// Extract returns the weighted text fields of r under the schema for t.
// Missing scalars are kept with empty text; unknown types yield nil.
func Extract(r *Record, t Type) []Field {
	sc, ok := schemas[t]
	if !ok {
		return nil
	}

	items := r.List(sc.list.names...)
	out := make([]Field, 0, len(sc.scalars)+len(items))
	for _, spec := range sc.scalars {
		out = append(out, Field{Label: spec.label, Text: r.Text(spec.names...), Weight: spec.weight})
	}
	for _, item := range items {
		out = append(out, Field{Label: sc.list.label, Text: item, Weight: sc.list.weight})
	}
	return out
}
