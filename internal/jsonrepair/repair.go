// Package jsonrepair recovers JSON emitted by language models with formatting defects.
//
// Recovery is a ladder: a strict parse of the candidate object, then a parse of the
// textually repaired candidate, then independent per-field regex extraction against
// the original content. Each rung is tried only when the previous one fails.
package jsonrepair

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnparseable is returned when no rung of the ladder recovers anything usable.
var ErrUnparseable = errors.New("unparseable model output")

var (
	trailingCommaObject = regexp.MustCompile(`,\s*}`)
	trailingCommaArray  = regexp.MustCompile(`,\s*]`)
	adjacentObjects     = regexp.MustCompile(`}\s*{`)
	scalarAchievements  = regexp.MustCompile(`"achievements":\s*"([^"]*)"`)
)

// ExtractObject returns the substring from the first '{' to the last '}'. When no
// such span exists the trimmed input is returned unchanged.
func ExtractObject(content string) string {
	return span(content, '{', '}')
}

// ExtractArray is ExtractObject for arrays: first '[' to last ']'.
func ExtractArray(content string) string {
	return span(content, '[', ']')
}

func span(content string, open, closing byte) string {
	start := strings.IndexByte(content, open)
	end := strings.LastIndexByte(content, closing)
	if start < 0 || end < start {
		return strings.TrimSpace(content)
	}
	return content[start : end+1]
}

// Repair applies the fixed sequence of textual repairs: trailing commas before
// closing braces and brackets are removed, adjacent objects get a separating
// comma, a scalar achievements value is wrapped in an array, and raw newlines
// and tabs inside string literals are escaped.
func Repair(s string) string {
	s = trailingCommaObject.ReplaceAllString(s, "}")
	s = trailingCommaArray.ReplaceAllString(s, "]")
	s = adjacentObjects.ReplaceAllString(s, "},{")
	s = scalarAchievements.ReplaceAllString(s, `"achievements":["$1"]`)
	return escapeControlInStrings(s)
}

// escapeControlInStrings escapes raw control characters that appear inside
// string literals. Whitespace between tokens is left alone.
func escapeControlInStrings(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString, escaped := false, false
	for _, r := range s {
		if !inString {
			if r == '"' {
				inString = true
			}
			b.WriteRune(r)
			continue
		}

		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			b.WriteRune(r)
		case r == '"':
			inString = false
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
