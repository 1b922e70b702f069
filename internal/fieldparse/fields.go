// Package fieldparse builds a ResumeRecord one field at a time. Each step asks
// an Extractor for a single field, and the user accepts, edits or skips the
// proposal before moving on. Sessions can be cancelled at any step.
package fieldparse

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/jsonrepair"
	"github.com/jonathan/resume-builder/internal/types"
)

// Kind selects how a field's answer is decoded and edited
type Kind string

// Field kinds
const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindList     Kind = "list"
	KindSkills   Kind = "skills"
)

// Field is one step of a session
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  Kind   `json:"kind"`
}

// IsArray reports whether answers for the field are JSON arrays.
func (f Field) IsArray() bool {
	return f.Kind == KindList || f.Kind == KindSkills
}

// Fields is the fixed step order
var Fields = []Field{
	{Key: "name", Label: "姓名", Kind: KindText},
	{Key: "phone", Label: "电话", Kind: KindText},
	{Key: "email", Label: "邮箱", Kind: KindText},
	{Key: "summary", Label: "个人简介", Kind: KindTextarea},
	{Key: "education", Label: "教育背景", Kind: KindList},
	{Key: "experience", Label: "工作经历", Kind: KindList},
	{Key: "projects", Label: "项目经验", Kind: KindList},
	{Key: "skills", Label: "专业技能", Kind: KindSkills},
}

// FieldByKey looks up a step by key.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Decode merges a collaborator answer for field into a copy of rec. Text answers
// are trimmed and unquoted; array answers are salvaged from the first '[' to the
// last ']'. On error rec is returned unchanged.
func Decode(rec types.ResumeRecord, field Field, raw string) (types.ResumeRecord, error) {
	out := rec.Clone()

	if !field.IsArray() {
		return out, setText(&out, field, unquote(strings.TrimSpace(raw)))
	}

	var err error
	switch field.Key {
	case "education":
		out.Education, _, err = jsonrepair.DecodeArray[types.EducationEntry](raw)
	case "experience":
		out.Experience, _, err = jsonrepair.DecodeArray[types.ExperienceEntry](raw)
	case "projects":
		out.Projects, _, err = jsonrepair.DecodeArray[types.ProjectEntry](raw)
	case "skills":
		var skills []string
		skills, _, err = jsonrepair.DecodeArray[string](raw)
		out.Skills = cleanSkills(skills)
	default:
		return rec, fmt.Errorf("unknown field %q", field.Key)
	}
	if err != nil {
		return rec, err
	}
	out.Normalize()
	return out, nil
}

// decodeEdit is Decode for user-typed values. Skills may also be typed as a
// delimited list instead of a JSON array.
func decodeEdit(rec types.ResumeRecord, field Field, value string) (types.ResumeRecord, error) {
	if field.Kind == KindSkills && !strings.Contains(value, "[") {
		out := rec.Clone()
		out.Skills = cleanSkills(strings.FieldsFunc(value, func(r rune) bool {
			switch r {
			case '、', ',', '，', '/', '\n':
				return true
			}
			return false
		}))
		return out, nil
	}
	if !field.IsArray() {
		out := rec.Clone()
		return out, setText(&out, field, strings.TrimSpace(value))
	}
	return Decode(rec, field, value)
}

func setText(rec *types.ResumeRecord, field Field, value string) error {
	switch field.Key {
	case "name":
		rec.Name = value
	case "phone":
		rec.Phone = value
	case "email":
		rec.Email = value
	case "summary":
		rec.Summary = value
	default:
		return fmt.Errorf("unknown field %q", field.Key)
	}
	return nil
}

// Value returns the record's current value for a field.
func Value(rec types.ResumeRecord, field Field) any {
	switch field.Key {
	case "name":
		return rec.Name
	case "phone":
		return rec.Phone
	case "email":
		return rec.Email
	case "summary":
		return rec.Summary
	case "education":
		return rec.Education
	case "experience":
		return rec.Experience
	case "projects":
		return rec.Projects
	case "skills":
		return rec.Skills
	default:
		return nil
	}
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
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
