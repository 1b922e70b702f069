package resumetext

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Serialize renders a record in the canonical text format. Empty sections are
// omitted. Parse(Serialize(r)) reproduces r when every entry is complete.
func Serialize(rec types.ResumeRecord) string {
	var b strings.Builder
	b.WriteString(rec.Name)
	b.WriteString("\n")

	switch {
	case rec.Phone != "" && rec.Email != "":
		b.WriteString("电话：" + rec.Phone + " | 邮箱：" + rec.Email + "\n")
	case rec.Phone != "":
		b.WriteString("电话：" + rec.Phone + "\n")
	case rec.Email != "":
		b.WriteString("邮箱：" + rec.Email + "\n")
	}

	if rec.Summary != "" {
		writeHeader(&b, HeaderSummary)
		b.WriteString(rec.Summary + "\n")
	}

	if len(rec.Education) > 0 {
		writeHeader(&b, HeaderEducation)
		for _, edu := range rec.Education {
			b.WriteString(joinFields(edu.School, edu.Major, edu.Degree, edu.Time) + "\n")
		}
	}

	if len(rec.Experience) > 0 {
		writeHeader(&b, HeaderExperience)
		for _, exp := range rec.Experience {
			b.WriteString(joinFields(exp.Company, exp.Position, exp.Time) + "\n")
			for _, a := range exp.Achievements {
				b.WriteString("- " + a + "\n")
			}
		}
	}

	if len(rec.Projects) > 0 {
		writeHeader(&b, HeaderProjects)
		for _, p := range rec.Projects {
			b.WriteString(joinFields(p.Name, p.Role, p.Time) + "\n")
			b.WriteString("- " + p.Description + "\n")
		}
	}

	if len(rec.Skills) > 0 {
		writeHeader(&b, HeaderSkills)
		b.WriteString(strings.Join(rec.Skills, "、") + "\n")
	}

	return b.String()
}

func writeHeader(b *strings.Builder, header string) {
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")
}

func joinFields(fields ...string) string {
	return strings.Join(fields, " | ")
}
