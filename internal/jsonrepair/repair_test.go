package jsonrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"preamble and trailer", "好的，结果如下：\n{\"a\":1}\n希望有帮助", `{"a":1}`},
		{"greedy across objects", `{"a":1} text {"b":2}`, `{"a":1} text {"b":2}`},
		{"code fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"no braces", "  not json  ", "not json"},
		{"closing before opening", "} {", "} {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractObject(tt.input))
		})
	}
}

func TestExtractArray(t *testing.T) {
	assert.Equal(t, `["Go","Rust"]`, ExtractArray("技能如下：[\"Go\",\"Rust\"]。"))
	assert.Equal(t, "none", ExtractArray("none"))
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trailing comma in object",
			input:    `{"a": 1,}`,
			expected: `{"a": 1}`,
		},
		{
			name:     "trailing comma in array",
			input:    `{"a": [1, 2, ]}`,
			expected: `{"a": [1, 2]}`,
		},
		{
			name:     "adjacent objects",
			input:    `[{"a": 1} {"b": 2}]`,
			expected: `[{"a": 1},{"b": 2}]`,
		},
		{
			name:     "scalar achievements",
			input:    `{"achievements": "shipped"}`,
			expected: `{"achievements":["shipped"]}`,
		},
		{
			name:     "newline inside string",
			input:    "{\"summary\": \"line one\nline two\"}",
			expected: `{"summary": "line one\nline two"}`,
		},
		{
			name:     "tab inside string",
			input:    "{\"summary\": \"a\tb\"}",
			expected: `{"summary": "a\tb"}`,
		},
		{
			name:     "whitespace between tokens untouched",
			input:    "{\n\t\"a\": \"b\"\n}",
			expected: "{\n\t\"a\": \"b\"\n}",
		},
		{
			name:     "escaped quote keeps string open",
			input:    "{\"a\": \"say \\\"hi\\\"\nnow\"}",
			expected: `{"a": "say \"hi\"\nnow"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Repair(tt.input))
		})
	}
}
