package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"go":         "Go",
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
}

// NormalizeSkillName normalizes a skill name to its canonical form. Names
// without letter case (such as Chinese) and all-caps acronyms are kept as written.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Single lowercase word: capitalize the first letter
	if normalized == lower && !strings.Contains(normalized, " ") {
		first, size := utf8.DecodeRuneInString(normalized)
		if unicode.IsLower(first) {
			return string(unicode.ToUpper(first)) + normalized[size:]
		}
	}

	return normalized
}

// NormalizeSkills normalizes each skill, drops empty ones and removes duplicates
// that normalize to the same name.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		if name := NormalizeSkillName(skill); name != "" {
			normalized = append(normalized, name)
		}
	}
	return types.DedupeStrings(normalized)
}
