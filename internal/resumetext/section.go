// Package resumetext converts between the canonical delimited résumé text and types.ResumeRecord.
//
// The text format is line oriented: an optional name line, contact lines, and sections
// introduced by 【Title】 headers whose entries use | separated fields and - bullets.
package resumetext

import "strings"

// Section is the parser's current position in the document
type Section int

// Sections recognized by header titles
const (
	SectionNone Section = iota
	SectionSummary
	SectionEducation
	SectionExperience
	SectionProjects
	SectionSkills
)

// Canonical headers written by Serialize
const (
	HeaderSummary    = "【个人简介】"
	HeaderEducation  = "【教育背景】"
	HeaderExperience = "【工作经历】"
	HeaderProjects   = "【项目经验】"
	HeaderSkills     = "【专业技能】"
)

// String returns the lowercase section name
func (s Section) String() string {
	switch s {
	case SectionSummary:
		return "summary"
	case SectionEducation:
		return "education"
	case SectionExperience:
		return "experience"
	case SectionProjects:
		return "projects"
	case SectionSkills:
		return "skills"
	default:
		return "none"
	}
}

// sectionKeywords is checked in order; the first rule with a contained keyword wins.
var sectionKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionEducation, []string{"教育"}},
	{SectionExperience, []string{"工作", "经历"}},
	{SectionProjects, []string{"项目"}},
	{SectionSkills, []string{"技能", "能力"}},
	{SectionSummary, []string{"简介", "介绍", "评价"}},
}

// SectionForTitle maps a header title (without brackets) to a section by keyword
// containment. Matching is case-sensitive; unknown titles map to SectionNone.
func SectionForTitle(title string) Section {
	for _, rule := range sectionKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) {
				return rule.section
			}
		}
	}
	return SectionNone
}

// headerTitle returns the title of a 【Title】 line.
func headerTitle(line string) (string, bool) {
	if !strings.HasPrefix(line, "【") || !strings.HasSuffix(line, "】") {
		return "", false
	}
	title := strings.ReplaceAll(line, "【", "")
	title = strings.ReplaceAll(title, "】", "")
	return strings.TrimSpace(title), true
}

func isDivider(line string) bool {
	return strings.HasPrefix(line, "---") || strings.HasPrefix(line, "===")
}
