package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(FieldsFile, "name")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "提取姓名")
	assert.Contains(t, prompt, "{{.Text}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(ParsingFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet(ChatFile, "system")
		assert.NotEmpty(t, prompt)
	})
}

func TestFormat(t *testing.T) {
	template := "你好 {{.Name}}，目标岗位：{{.TargetJob}}"
	data := map[string]string{
		"Name":      "张三",
		"TargetJob": "后端工程师",
	}

	result := Format(template, data)
	assert.Equal(t, "你好 张三，目标岗位：后端工程师", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(FieldsFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"education", "email", "experience", "name", "phone", "projects", "skills", "summary", "system"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	// First call loads from file
	prompt1, err := Get(ParsingFile, "system")
	require.NoError(t, err)

	// Second call should use cache
	prompt2, err := Get(ParsingFile, "system")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}

func TestRender(t *testing.T) {
	ClearCache()

	prompt, err := Render(ChatFile, "resume-context", map[string]string{"Resume": "张三\n【专业技能】\nGo"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "张三\n【专业技能】\nGo")
	assert.NotContains(t, prompt, "{{.Resume}}")

	_, err = Render(ChatFile, "missing", nil)
	assert.Error(t, err)
}

func TestFieldPromptsHaveTextPlaceholder(t *testing.T) {
	ClearCache()

	for _, key := range []string{"name", "phone", "email", "summary", "education", "experience", "projects", "skills"} {
		prompt, err := Get(FieldsFile, key)
		require.NoError(t, err, key)
		assert.Contains(t, prompt, "{{.Text}}", key)
	}
}
