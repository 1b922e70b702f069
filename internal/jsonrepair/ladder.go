package jsonrepair

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Strategy names the rung of the ladder that produced a result.
type Strategy int

// Ladder rungs, in the order they are attempted
const (
	StrategyStrict Strategy = iota + 1
	StrategyRepaired
	StrategyPartial
)

func (s Strategy) String() string {
	switch s {
	case StrategyStrict:
		return "strict"
	case StrategyRepaired:
		return "repaired"
	case StrategyPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// MarshalText lets Strategy appear by name in JSON responses and logs.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is a recovered résumé and how it was obtained.
type Result struct {
	Record   types.ResumeRecord `json:"record"`
	Strategy Strategy           `json:"strategy"`
	// Complete is false when only scalar fields were salvaged.
	Complete bool `json:"complete"`
}

// Rung is one recovery attempt. Recover receives the raw model output.
type Rung struct {
	Strategy Strategy
	Complete bool
	Recover  func(content string) (types.ResumeRecord, bool)
}

// Ladder is an ordered list of rungs; the first one that recovers wins.
type Ladder []Rung

// ResumeLadder is strict parse, then repaired parse, then scalar salvage.
var ResumeLadder = Ladder{
	{Strategy: StrategyStrict, Complete: true, Recover: strictRecord},
	{Strategy: StrategyRepaired, Complete: true, Recover: repairedRecord},
	{Strategy: StrategyPartial, Complete: false, Recover: partialRecord},
}

// Run tries each rung in order and returns ErrUnparseable when all fail.
func (l Ladder) Run(content string) (Result, error) {
	for _, rung := range l {
		if rec, ok := rung.Recover(content); ok {
			return Result{Record: rec, Strategy: rung.Strategy, Complete: rung.Complete}, nil
		}
	}
	return Result{}, ErrUnparseable
}

// ParseResume runs ResumeLadder over model output believed to hold a résumé object.
func ParseResume(content string) (Result, error) {
	return ResumeLadder.Run(content)
}

func strictRecord(content string) (types.ResumeRecord, bool) {
	return unmarshalRecord(ExtractObject(content))
}

func repairedRecord(content string) (types.ResumeRecord, bool) {
	return unmarshalRecord(Repair(ExtractObject(content)))
}

func unmarshalRecord(candidate string) (types.ResumeRecord, bool) {
	if !strings.HasPrefix(candidate, "{") {
		return types.ResumeRecord{}, false
	}
	var tree any
	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	if err := dec.Decode(&tree); err != nil {
		return types.ResumeRecord{}, false
	}
	data, err := json.Marshal(stringifyScalars(tree))
	if err != nil {
		return types.ResumeRecord{}, false
	}
	var rec types.ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return types.ResumeRecord{}, false
	}
	rec.Normalize()
	return rec, true
}

// stringifyScalars turns numbers and booleans into their literal text. Every
// leaf of a résumé record is a string, and models often emit phones or years bare.
func stringifyScalars(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = stringifyScalars(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = stringifyScalars(child)
		}
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return v
	}
}

// partialRecord succeeds only when at least one of name, phone or email was found.
func partialRecord(content string) (types.ResumeRecord, bool) {
	rec := ExtractPartial(content)
	return rec, rec.HasContact()
}

var partialFields = map[string]*regexp.Regexp{
	"name":    fieldPattern("name"),
	"phone":   fieldPattern("phone"),
	"email":   fieldPattern("email"),
	"summary": fieldPattern("summary"),
}

func fieldPattern(field string) *regexp.Regexp {
	return regexp.MustCompile(`"` + field + `"\s*:\s*"([^"]*)"`)
}

// ExtractPartial salvages the scalar fields by independent regex matches. Sequences
// are left empty.
func ExtractPartial(content string) types.ResumeRecord {
	rec := types.NewResumeRecord()
	rec.Name = firstGroup(partialFields["name"], content)
	rec.Phone = firstGroup(partialFields["phone"], content)
	rec.Email = firstGroup(partialFields["email"], content)
	rec.Summary = firstGroup(partialFields["summary"], content)
	return rec
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}

// Decode runs the strict and repaired rungs for an arbitrary object shape, such
// as scores, diagnoses or interview feedback. There is no partial rung.
func Decode[T any](content string) (T, Strategy, error) {
	candidate := ExtractObject(content)
	if !strings.HasPrefix(candidate, "{") {
		var zero T
		return zero, 0, fmt.Errorf("%w: no object found", ErrUnparseable)
	}
	return decode[T](candidate)
}

// DecodeArray is Decode for top-level JSON arrays.
func DecodeArray[T any](content string) ([]T, Strategy, error) {
	candidate := ExtractArray(content)
	if !strings.HasPrefix(candidate, "[") {
		return nil, 0, fmt.Errorf("%w: no array found", ErrUnparseable)
	}
	out, strategy, err := decode[[]T](candidate)
	if err == nil && out == nil {
		out = []T{}
	}
	return out, strategy, err
}

func decode[T any](candidate string) (T, Strategy, error) {
	var out T
	if err := json.Unmarshal([]byte(candidate), &out); err == nil {
		return out, StrategyStrict, nil
	}

	var repaired T
	err := json.Unmarshal([]byte(Repair(candidate)), &repaired)
	if err != nil {
		var zero T
		return zero, 0, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return repaired, StrategyRepaired, nil
}
