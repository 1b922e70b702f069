package resumetext

import "strings"

var englishHeaders = map[Section]string{
	SectionSummary:    "[Summary]",
	SectionEducation:  "[Education]",
	SectionExperience: "[Work Experience]",
	SectionProjects:   "[Projects]",
	SectionSkills:     "[Skills]",
}

var englishLabels = map[string]string{
	"姓名": "Name",
	"电话": "Phone",
	"邮箱": "Email",
	"学校": "University",
	"专业": "Major",
	"学历": "Degree",
	"时间": "Period",
	"公司": "Company",
	"职位": "Position",
	"项目": "Project",
	"角色": "Role",
	"描述": "Description",
}

// ToEnglish swaps the structural labels of delimited résumé text for English
// ones. Recognized 【Title】 headers become [Title] and a known label opening a
// | segment, as in 电话：..., becomes "Phone: ...". Entry values and free text are
// left untouched.
func ToEnglish(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if title, ok := headerTitle(strings.TrimSpace(line)); ok {
			if title == "姓名" {
				lines[i] = "[Name]"
			} else if en, known := englishHeaders[SectionForTitle(title)]; known {
				lines[i] = en
			}
			continue
		}
		lines[i] = translateLabels(line)
	}
	return strings.Join(lines, "\n")
}

func translateLabels(line string) string {
	segments := strings.Split(line, "|")
	for i, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		sep := strings.IndexAny(trimmed, "：:")
		if sep <= 0 {
			continue
		}
		en, ok := englishLabels[strings.TrimSpace(trimmed[:sep])]
		if !ok {
			continue
		}
		rest := trimmed[sep+colonWidth(trimmed[sep]):]
		lead := seg[:strings.Index(seg, trimmed)]
		trail := seg[len(lead)+len(trimmed):]
		segments[i] = lead + en + ": " + strings.TrimSpace(rest) + trail
	}
	return strings.Join(segments, "|")
}

// colonWidth is the byte length of the colon starting with b.
func colonWidth(b byte) int {
	if b == ':' {
		return 1
	}
	return len("：")
}
