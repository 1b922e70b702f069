// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeRecord")
	Description string        // Preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
	Rules       []string      // Numbered rules appended after the structure
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Example value rendered in the prompt
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("请严格按照以下JSON格式返回结果：\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `""`
		}
		requiredHint := ""
		if field.Required {
			requiredHint = "（必填）"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s", field.Name, typeHint))
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		if field.Description != "" || requiredHint != "" {
			sb.WriteString(fmt.Sprintf(" // %s%s", field.Description, requiredHint))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("重要规则：\n")
	for i, rule := range schema.Rules {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rule))
	}
	sb.WriteString("\n")

	sb.WriteString("简历文本：\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeSchema returns the extraction schema for a whole résumé. Field names
// match the JSON tags of types.ResumeRecord.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "ResumeRecord",
		Description: "你是一个简历解析专家。请从以下简历文本中提取结构化信息。",
		Fields: []SchemaField{
			{Name: "name", Type: `"姓名"`, Required: true},
			{Name: "phone", Type: `"手机号码"`},
			{Name: "email", Type: `"邮箱地址"`},
			{Name: "summary", Type: `"个人简介"`},
			{
				Name: "education",
				Type: `[{"school": "学校", "major": "专业", "degree": "学历", "time": "时间"}]`,
			},
			{
				Name: "experience",
				Type: `[{"company": "公司", "position": "职位", "time": "时间", "achievements": ["成就1", "成就2"]}]`,
			},
			{
				Name: "projects",
				Type: `[{"name": "项目名", "role": "角色", "time": "时间", "description": "描述"}]`,
			},
			{Name: "skills", Type: `["技能1", "技能2"]`},
		},
		Rules: []string{
			"只返回JSON，不要有任何其他文字",
			"确保所有字符串都用双引号",
			"数组元素之间用逗号分隔",
			"如果某个字段无法识别，使用空字符串或空数组",
			"电话只保留数字",
			"工作成就要简短，每条不超过50字",
			`技能要具体，如"Python"、"项目管理"等`,
		},
	}
}
