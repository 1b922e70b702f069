package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Description: "提取信息。",
		Fields: []SchemaField{
			{Name: "name", Type: `"姓名"`, Required: true},
			{Name: "skills", Type: `["技能"]`, Description: "技能列表"},
		},
		Rules: []string{"只返回JSON"},
	}

	prompt := BuildExtractionPrompt(schema, "张三\nGo")

	assert.True(t, strings.HasPrefix(prompt, "提取信息。\n\n"))
	assert.Contains(t, prompt, `  "name": "姓名", // （必填）`)
	assert.Contains(t, prompt, `  "skills": ["技能"] // 技能列表`)
	assert.Contains(t, prompt, "1. 只返回JSON\n")
	assert.True(t, strings.HasSuffix(prompt, "\"\"\"\n张三\nGo\n\"\"\"\n"))
}

func TestResumeSchema_CoversRecordFields(t *testing.T) {
	schema := ResumeSchema()

	var names []string
	for _, f := range schema.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "phone", "email", "summary", "education", "experience", "projects", "skills"}, names)
	assert.NotEmpty(t, schema.Rules)
}
