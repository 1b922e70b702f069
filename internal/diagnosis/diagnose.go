package diagnosis

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// minSummaryRunes is the shortest summary that is not flagged as too short
	minSummaryRunes = 30
	// minAchievementRunes is the least achievement text one experience entry should carry
	minAchievementRunes = 20
	// maxSkills is the longest skill list that is not flagged as unfocused
	maxSkills = 15
	// maxResumeRunes approximates two printed pages of serialized text
	maxResumeRunes = 3000
)

// vagueWords mark passive descriptions
var vagueWords = []string{"负责", "参与"}

// Diagnose runs the content rules over rec and returns issues in a stable order.
// Per-entry issues carry a location and an ID suffixed with the entry number.
func Diagnose(rec types.ResumeRecord) []types.ResumeIssue {
	var issues []types.ResumeIssue
	add := func(id, location string, n int) {
		issue, _ := Issue(id)
		issue.Location = location
		if n > 0 {
			issue.ID = fmt.Sprintf("%s-%d", id, n)
		}
		issues = append(issues, issue)
	}

	if strings.TrimSpace(rec.Name) == "" {
		add(MissingName, "", 0)
	}
	if strings.TrimSpace(rec.Phone) == "" && strings.TrimSpace(rec.Email) == "" {
		add(MissingContact, "", 0)
	}

	summary := strings.TrimSpace(rec.Summary)
	switch {
	case summary == "":
		add(MissingSummary, "", 0)
	case utf8.RuneCountInString(summary) < minSummaryRunes:
		add(ShortSummary, CategorySummary, 0)
	}

	if len(rec.Education) == 0 {
		add(MissingEducation, "", 0)
	}
	for i, edu := range rec.Education {
		if edu.Major == "" || edu.Degree == "" {
			add(IncompleteEducation, entryLocation(CategoryEducation, i, edu.School), i+1)
		}
	}

	if len(rec.Experience) == 0 {
		add(MissingExperience, "", 0)
	}
	for i, exp := range rec.Experience {
		if achievementRunes(exp.Achievements) < minAchievementRunes {
			add(ShortExperience, entryLocation(CategoryExperience, i, exp.Company), i+1)
		}
	}
	if hasAchievements(rec.Experience) && !hasNumbers(rec.Experience) {
		add(NoQuantifiedResults, CategoryExperience, 0)
	}
	if location, ok := findVague(rec); ok {
		add(VagueDescription, location, 0)
	}

	switch {
	case len(rec.Skills) == 0:
		add(MissingSkills, "", 0)
	case len(rec.Skills) > maxSkills:
		add(TooManySkills, CategorySkills, 0)
	}

	if len(rec.Projects) == 0 {
		add(MissingProjects, "", 0)
	}

	if utf8.RuneCountInString(resumetext.Serialize(rec)) > maxResumeRunes {
		add(LongResume, "", 0)
	}

	if issues == nil {
		return []types.ResumeIssue{}
	}
	return issues
}

func entryLocation(category string, i int, name string) string {
	if name == "" {
		return fmt.Sprintf("%s 第%d条", category, i+1)
	}
	return fmt.Sprintf("%s 第%d条（%s）", category, i+1, name)
}

func achievementRunes(achievements []string) int {
	n := 0
	for _, a := range achievements {
		n += utf8.RuneCountInString(strings.TrimSpace(a))
	}
	return n
}

func hasAchievements(experience []types.ExperienceEntry) bool {
	for _, exp := range experience {
		if len(exp.Achievements) > 0 {
			return true
		}
	}
	return false
}

func hasNumbers(experience []types.ExperienceEntry) bool {
	for _, exp := range experience {
		for _, a := range exp.Achievements {
			if strings.ContainsFunc(a, unicode.IsDigit) || strings.Contains(a, "%") {
				return true
			}
		}
	}
	return false
}

// findVague returns the location of the first achievement or project
// description using a vague word.
func findVague(rec types.ResumeRecord) (string, bool) {
	for i, exp := range rec.Experience {
		for _, a := range exp.Achievements {
			if containsAny(a, vagueWords) {
				return entryLocation(CategoryExperience, i, exp.Company), true
			}
		}
	}
	for i, p := range rec.Projects {
		if containsAny(p.Description, vagueWords) {
			return entryLocation(CategoryProjects, i, p.Name), true
		}
	}
	return "", false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
