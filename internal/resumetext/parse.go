package resumetext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	minNameRunes  = 2
	maxNameRunes  = 19
	maxSkillRunes = 29
)

var (
	phonePattern = regexp.MustCompile(`[\d\-+\s]{7,}`)
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	phoneKeywords = []string{"电话", "手机", "联系方式"}
	emailKeywords = []string{"邮箱", "email", "Email"}
)

// parseState is threaded through the fold over lines. Each step returns a new
// state; pending entries live here until a header, a new entry, or the end of input.
type parseState struct {
	rec     types.ResumeRecord
	current Section
	summary []string

	exp    types.ExperienceEntry
	hasExp bool

	proj     types.ProjectEntry
	projDesc []string
	hasProj  bool
}

// Parse converts delimited résumé text into a record. It never fails: lines it
// cannot place are dropped, and empty input yields an empty record.
func Parse(text string) types.ResumeRecord {
	st := parseState{rec: types.NewResumeRecord()}
	for _, line := range splitLines(text) {
		st = st.step(line)
	}
	st = st.flush()

	rec := st.rec
	rec.Summary = strings.Join(st.summary, " ")
	rec.Skills = types.DedupeStrings(rec.Skills)
	return rec
}

// splitLines normalizes line endings, trims every line and drops empty ones.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (st parseState) step(line string) parseState {
	if isDivider(line) {
		return st
	}

	if title, ok := headerTitle(line); ok {
		st = st.flush()
		st.current = SectionForTitle(title)
		return st
	}

	if st.rec.Name == "" && isNameLine(line) {
		st.rec.Name = line
		return st
	}

	if next, ok := st.contact(line); ok {
		return next
	}

	switch st.current {
	case SectionSummary:
		st.summary = append(st.summary, line)
	case SectionEducation:
		st = st.education(line)
	case SectionExperience:
		st = st.experience(line)
	case SectionProjects:
		st = st.project(line)
	case SectionSkills:
		st.rec.Skills = append(st.rec.Skills, splitSkills(line)...)
	}
	return st
}

// flush commits pending entries. A pending entry is dropped when its key field is empty.
func (st parseState) flush() parseState {
	if st.hasExp && st.exp.Company != "" {
		st.rec.Experience = append(st.rec.Experience, st.exp)
	}
	if st.hasProj && st.proj.Name != "" {
		st.proj.Description = strings.Join(st.projDesc, " ")
		st.rec.Projects = append(st.rec.Projects, st.proj)
	}
	st.exp, st.hasExp = types.ExperienceEntry{}, false
	st.proj, st.projDesc, st.hasProj = types.ProjectEntry{}, nil, false
	return st
}

func isNameLine(line string) bool {
	if strings.ContainsAny(line, "：:") || strings.HasPrefix(line, "-") {
		return false
	}
	if strings.ContainsAny(line, "0123456789") {
		return false
	}
	n := utf8.RuneCountInString(line)
	return n >= minNameRunes && n <= maxNameRunes
}

// contact handles phone and email lines. A line written as
// "电话：... | 邮箱：..." carries both, so each | segment is checked on its own.
func (st parseState) contact(line string) (parseState, bool) {
	if !containsAny(line, phoneKeywords) && !containsAny(line, emailKeywords) {
		return st, false
	}

	for _, segment := range splitFields(line) {
		switch {
		case containsAny(segment, phoneKeywords):
			if phone := contactValue(segment, phonePattern); phone != "" {
				st.rec.Phone = phone
			}
		case containsAny(segment, emailKeywords):
			if email := contactValue(segment, emailPattern); email != "" {
				st.rec.Email = email
			}
		}
	}
	return st, true
}

// contactValue returns the pattern match in segment, falling back to the text
// after the first colon.
func contactValue(segment string, pattern *regexp.Regexp) string {
	if match := pattern.FindString(segment); match != "" {
		return strings.TrimSpace(match)
	}
	parts := strings.FieldsFunc(segment, func(r rune) bool { return r == '：' || r == ':' })
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (st parseState) education(line string) parseState {
	if strings.HasPrefix(line, "-") {
		return st
	}
	parts := splitFields(line)
	if len(parts) < 2 {
		return st
	}
	st.rec.Education = append(st.rec.Education, types.EducationEntry{
		School: field(parts, 0),
		Major:  field(parts, 1),
		Degree: field(parts, 2),
		Time:   field(parts, 3),
	})
	return st
}

func (st parseState) experience(line string) parseState {
	if strings.HasPrefix(line, "-") {
		if item := bulletText(line); st.hasExp && item != "" {
			st.exp.Achievements = append(st.exp.Achievements, item)
		}
		return st
	}

	st = st.flush()
	parts := splitFields(line)
	if len(parts) < 2 {
		return st
	}
	st.exp = types.ExperienceEntry{
		Company:      field(parts, 0),
		Position:     field(parts, 1),
		Time:         field(parts, 2),
		Achievements: []string{},
	}
	st.hasExp = true
	return st
}

func (st parseState) project(line string) parseState {
	if strings.HasPrefix(line, "-") {
		if desc := bulletText(line); st.hasProj && desc != "" {
			st.projDesc = append(st.projDesc, desc)
		}
		return st
	}

	st = st.flush()
	parts := splitFields(line)
	if len(parts) < 2 {
		return st
	}
	st.proj = types.ProjectEntry{
		Name: field(parts, 0),
		Role: field(parts, 1),
		Time: field(parts, 2),
	}
	st.hasProj = true
	return st
}

// splitFields splits on ASCII or fullwidth pipes, trimming and dropping empty parts.
func splitFields(line string) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool { return r == '|' || r == '｜' })
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func splitSkills(line string) []string {
	raw := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case '、', ',', '，', '/', '\n':
			return true
		}
		return false
	})
	skills := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" || utf8.RuneCountInString(s) > maxSkillRunes {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

func bulletText(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "-"))
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
