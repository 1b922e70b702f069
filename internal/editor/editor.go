// Package editor applies user edits to a ResumeRecord. Every function takes a
// record by value and returns an edited copy; the input is never modified.
package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// IndexError reports an index outside a section's bounds
type IndexError struct {
	Section string
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (have %d)", e.Section, e.Index, e.Len)
}

func checkIndex(section string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Section: section, Index: i, Len: n}
	}
	return nil
}

func edit(rec types.ResumeRecord) types.ResumeRecord {
	out := rec.Clone()
	out.Normalize()
	return out
}

// SetName replaces the name.
func SetName(rec types.ResumeRecord, name string) types.ResumeRecord {
	out := edit(rec)
	out.Name = strings.TrimSpace(name)
	return out
}

// SetPhone replaces the phone number.
func SetPhone(rec types.ResumeRecord, phone string) types.ResumeRecord {
	out := edit(rec)
	out.Phone = strings.TrimSpace(phone)
	return out
}

// SetEmail replaces the email address.
func SetEmail(rec types.ResumeRecord, email string) types.ResumeRecord {
	out := edit(rec)
	out.Email = strings.TrimSpace(email)
	return out
}

// SetSummary replaces the summary.
func SetSummary(rec types.ResumeRecord, summary string) types.ResumeRecord {
	out := edit(rec)
	out.Summary = strings.TrimSpace(summary)
	return out
}

// AddEducation appends an entry.
func AddEducation(rec types.ResumeRecord, entry types.EducationEntry) types.ResumeRecord {
	out := edit(rec)
	out.Education = append(out.Education, entry)
	return out
}

// UpdateEducation replaces entry i.
func UpdateEducation(rec types.ResumeRecord, i int, entry types.EducationEntry) (types.ResumeRecord, error) {
	if err := checkIndex(SectionEducation, i, len(rec.Education)); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Education[i] = entry
	return out, nil
}

// RemoveEducation deletes entry i.
func RemoveEducation(rec types.ResumeRecord, i int) (types.ResumeRecord, error) {
	if err := checkIndex(SectionEducation, i, len(rec.Education)); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Education = slices.Delete(out.Education, i, i+1)
	return out, nil
}

// AddExperience appends an entry. A nil achievement list becomes empty.
func AddExperience(rec types.ResumeRecord, entry types.ExperienceEntry) types.ResumeRecord {
	out := edit(rec)
	entry.Achievements = append([]string{}, entry.Achievements...)
	out.Experience = append(out.Experience, entry)
	return out
}

// UpdateExperience replaces entry i, including its achievements.
func UpdateExperience(rec types.ResumeRecord, i int, entry types.ExperienceEntry) (types.ResumeRecord, error) {
	if err := checkIndex(SectionExperience, i, len(rec.Experience)); err != nil {
		return rec, err
	}
	out := edit(rec)
	entry.Achievements = append([]string{}, entry.Achievements...)
	out.Experience[i] = entry
	return out, nil
}

// RemoveExperience deletes entry i.
func RemoveExperience(rec types.ResumeRecord, i int) (types.ResumeRecord, error) {
	if err := checkIndex(SectionExperience, i, len(rec.Experience)); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Experience = slices.Delete(out.Experience, i, i+1)
	return out, nil
}

// AddProject appends an entry.
func AddProject(rec types.ResumeRecord, entry types.ProjectEntry) types.ResumeRecord {
	out := edit(rec)
	out.Projects = append(out.Projects, entry)
	return out
}

// UpdateProject replaces entry i.
func UpdateProject(rec types.ResumeRecord, i int, entry types.ProjectEntry) (types.ResumeRecord, error) {
	if err := checkIndex(SectionProjects, i, len(rec.Projects)); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Projects[i] = entry
	return out, nil
}

// RemoveProject deletes entry i.
func RemoveProject(rec types.ResumeRecord, i int) (types.ResumeRecord, error) {
	if err := checkIndex(SectionProjects, i, len(rec.Projects)); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Projects = slices.Delete(out.Projects, i, i+1)
	return out, nil
}

// AddAchievement appends text to experience entry exp.
func AddAchievement(rec types.ResumeRecord, exp int, text string) (types.ResumeRecord, error) {
	if err := checkIndex(SectionExperience, exp, len(rec.Experience)); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Experience[exp].Achievements = append(out.Experience[exp].Achievements, strings.TrimSpace(text))
	return out, nil
}

// UpdateAchievement replaces achievement ach of experience entry exp.
func UpdateAchievement(rec types.ResumeRecord, exp, ach int, text string) (types.ResumeRecord, error) {
	if err := checkAchievement(rec, exp, ach); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Experience[exp].Achievements[ach] = strings.TrimSpace(text)
	return out, nil
}

// RemoveAchievement deletes achievement ach of experience entry exp.
func RemoveAchievement(rec types.ResumeRecord, exp, ach int) (types.ResumeRecord, error) {
	if err := checkAchievement(rec, exp, ach); err != nil {
		return rec, err
	}
	out := edit(rec)
	out.Experience[exp].Achievements = slices.Delete(out.Experience[exp].Achievements, ach, ach+1)
	return out, nil
}

func checkAchievement(rec types.ResumeRecord, exp, ach int) error {
	if err := checkIndex(SectionExperience, exp, len(rec.Experience)); err != nil {
		return err
	}
	return checkIndex(SectionAchievements, ach, len(rec.Experience[exp].Achievements))
}

// SetSkills replaces the skill list, trimming and dropping blanks and duplicates.
func SetSkills(rec types.ResumeRecord, skills []string) types.ResumeRecord {
	out := edit(rec)
	out.Skills = cleanSkills(skills)
	return out
}

// AddSkill appends a skill unless it is blank or already listed.
func AddSkill(rec types.ResumeRecord, skill string) types.ResumeRecord {
	out := edit(rec)
	out.Skills = cleanSkills(append(out.Skills, skill))
	return out
}

// RemoveSkill drops every occurrence of skill. A skill not listed is a no-op.
func RemoveSkill(rec types.ResumeRecord, skill string) types.ResumeRecord {
	out := edit(rec)
	skill = strings.TrimSpace(skill)
	out.Skills = slices.DeleteFunc(out.Skills, func(s string) bool { return s == skill })
	return out
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return types.DedupeStrings(out)
}
