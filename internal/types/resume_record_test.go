package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeRecord_EmptySequences(t *testing.T) {
	rec := NewResumeRecord()

	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Projects)
	assert.NotNil(t, rec.Skills)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"","education":[],"experience":[],"projects":[],"skills":[]}`, string(data))
}

func TestNormalize_FillsNilSlices(t *testing.T) {
	var rec ResumeRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Li","experience":[{"company":"Acme"}]}`), &rec))

	rec.Normalize()

	assert.Equal(t, []EducationEntry{}, rec.Education)
	assert.Equal(t, []ProjectEntry{}, rec.Projects)
	assert.Equal(t, []string{}, rec.Skills)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, []string{}, rec.Experience[0].Achievements)
}

func TestClone_IsDeep(t *testing.T) {
	rec := NewResumeRecord()
	rec.Experience = append(rec.Experience, ExperienceEntry{Company: "Acme", Achievements: []string{"a"}})
	rec.Skills = append(rec.Skills, "Go")

	clone := rec.Clone()
	clone.Experience[0].Achievements[0] = "changed"
	clone.Skills[0] = "Rust"

	assert.Equal(t, "a", rec.Experience[0].Achievements[0])
	assert.Equal(t, "Go", rec.Skills[0])
}

func TestIsComplete(t *testing.T) {
	rec := NewResumeRecord()
	assert.True(t, rec.IsComplete())

	rec.Education = []EducationEntry{{School: "清华大学", Major: "计算机", Degree: "本科", Time: "2016-2020"}}
	assert.True(t, rec.IsComplete())

	rec.Projects = []ProjectEntry{{Name: "网关", Role: "负责人"}}
	assert.False(t, rec.IsComplete())
}

func TestHasContact(t *testing.T) {
	assert.False(t, NewResumeRecord().HasContact())
	assert.True(t, ResumeRecord{Email: "a@b.com"}.HasContact())
}

func TestDedupeStrings(t *testing.T) {
	assert.Equal(t, []string{"React", "Vue"}, DedupeStrings([]string{"React", "Vue", "React"}))
	assert.Equal(t, []string{}, DedupeStrings(nil))
}

func TestDraft_IsEmpty(t *testing.T) {
	assert.True(t, Draft{}.IsEmpty())
	assert.True(t, Draft{Messages: []ChatMessage{{Role: RoleAssistant, Content: "你好"}}}.IsEmpty())
	assert.False(t, Draft{Resume: "张三"}.IsEmpty())
}
