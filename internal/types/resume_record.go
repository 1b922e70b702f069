// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured form of a résumé. Sequence fields are never nil
// after Normalize, so consumers can range over them without checks.
type ResumeRecord struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone,omitempty"`
	Email      string            `json:"email,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     []string          `json:"skills"`
}

// EducationEntry is one line of the education section
type EducationEntry struct {
	School string `json:"school"`
	Major  string `json:"major"`
	Degree string `json:"degree"`
	Time   string `json:"time"`
}

// ExperienceEntry is one employer with its achievement bullets
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Time         string   `json:"time"`
	Achievements []string `json:"achievements"`
}

// ProjectEntry is one project with a free-form description
type ProjectEntry struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// NewResumeRecord returns an empty record with all sequences allocated.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		Projects:   []ProjectEntry{},
		Skills:     []string{},
	}
}

// Normalize replaces nil sequences with empty ones, including nested achievements.
func (r *ResumeRecord) Normalize() {
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		if r.Experience[i].Achievements == nil {
			r.Experience[i].Achievements = []string{}
		}
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
}

// Clone returns a deep copy of the record.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Education = append([]EducationEntry{}, r.Education...)
	out.Projects = append([]ProjectEntry{}, r.Projects...)
	out.Skills = append([]string{}, r.Skills...)
	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Achievements = append([]string{}, exp.Achievements...)
		out.Experience[i] = exp
	}
	return out
}

// HasContact reports whether any identifying scalar (name, phone, email) is set.
func (r ResumeRecord) HasContact() bool {
	return r.Name != "" || r.Phone != "" || r.Email != ""
}

// IsComplete reports whether every education, experience and project entry has all
// of its scalar fields populated. Only complete records survive a text round trip.
func (r ResumeRecord) IsComplete() bool {
	for _, e := range r.Education {
		if e.School == "" || e.Major == "" || e.Degree == "" || e.Time == "" {
			return false
		}
	}
	for _, e := range r.Experience {
		if e.Company == "" || e.Position == "" || e.Time == "" {
			return false
		}
	}
	for _, p := range r.Projects {
		if p.Name == "" || p.Role == "" || p.Time == "" {
			return false
		}
	}
	return true
}

// DedupeStrings returns items with duplicates removed, keeping first-seen order.
func DedupeStrings(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
