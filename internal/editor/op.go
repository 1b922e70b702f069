package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/types"
)

// Op names
const (
	OpSet    = "set"
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"
)

// Sections an Op can address
const (
	SectionName         = "name"
	SectionPhone        = "phone"
	SectionEmail        = "email"
	SectionSummary      = "summary"
	SectionEducation    = "education"
	SectionExperience   = "experience"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
	SectionSkills       = "skills"
)

// ErrInvalidOp is returned for an op that does not apply to its section
var ErrInvalidOp = errors.New("invalid edit op")

var validate = validator.New()

// Op is one JSON-described edit. For achievements Index selects the experience
// entry and SubIndex the achievement. Value holds the JSON value to write.
type Op struct {
	Op       string          `json:"op" validate:"required,oneof=set add update remove"`
	Section  string          `json:"section" validate:"required,oneof=name phone email summary education experience projects achievements skills"`
	Index    int             `json:"index,omitempty" validate:"gte=0"`
	SubIndex int             `json:"sub_index,omitempty" validate:"gte=0"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// Apply performs op on a copy of rec. On error rec is returned unchanged.
func Apply(rec types.ResumeRecord, op Op) (types.ResumeRecord, error) {
	if err := validate.Struct(op); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}

	switch op.Section {
	case SectionName, SectionPhone, SectionEmail, SectionSummary:
		return applyScalar(rec, op)
	case SectionEducation:
		return applyEntry(rec, op, AddEducation, UpdateEducation, RemoveEducation)
	case SectionExperience:
		return applyEntry(rec, op, AddExperience, UpdateExperience, RemoveExperience)
	case SectionProjects:
		return applyEntry(rec, op, AddProject, UpdateProject, RemoveProject)
	case SectionAchievements:
		return applyAchievement(rec, op)
	default:
		return applySkills(rec, op)
	}
}

// ApplyAll applies ops in order and stops at the first failure, returning rec
// unchanged with an error naming the failing op.
func ApplyAll(rec types.ResumeRecord, ops []Op) (types.ResumeRecord, error) {
	out := rec
	for i, op := range ops {
		var err error
		if out, err = Apply(out, op); err != nil {
			return rec, fmt.Errorf("op %d (%s %s): %w", i, op.Op, op.Section, err)
		}
	}
	return out, nil
}

func applyScalar(rec types.ResumeRecord, op Op) (types.ResumeRecord, error) {
	if op.Op != OpSet {
		return rec, unsupported(op)
	}
	value, err := decodeValue[string](op)
	if err != nil {
		return rec, err
	}
	switch op.Section {
	case SectionName:
		return SetName(rec, value), nil
	case SectionPhone:
		return SetPhone(rec, value), nil
	case SectionEmail:
		return SetEmail(rec, value), nil
	default:
		return SetSummary(rec, value), nil
	}
}

func applyEntry[T any](
	rec types.ResumeRecord,
	op Op,
	add func(types.ResumeRecord, T) types.ResumeRecord,
	update func(types.ResumeRecord, int, T) (types.ResumeRecord, error),
	remove func(types.ResumeRecord, int) (types.ResumeRecord, error),
) (types.ResumeRecord, error) {
	switch op.Op {
	case OpAdd:
		entry, err := decodeValue[T](op)
		if err != nil {
			return rec, err
		}
		return add(rec, entry), nil
	case OpUpdate:
		entry, err := decodeValue[T](op)
		if err != nil {
			return rec, err
		}
		return update(rec, op.Index, entry)
	case OpRemove:
		return remove(rec, op.Index)
	default:
		return rec, unsupported(op)
	}
}

func applyAchievement(rec types.ResumeRecord, op Op) (types.ResumeRecord, error) {
	switch op.Op {
	case OpAdd:
		text, err := decodeValue[string](op)
		if err != nil {
			return rec, err
		}
		return AddAchievement(rec, op.Index, text)
	case OpUpdate:
		text, err := decodeValue[string](op)
		if err != nil {
			return rec, err
		}
		return UpdateAchievement(rec, op.Index, op.SubIndex, text)
	case OpRemove:
		return RemoveAchievement(rec, op.Index, op.SubIndex)
	default:
		return rec, unsupported(op)
	}
}

func applySkills(rec types.ResumeRecord, op Op) (types.ResumeRecord, error) {
	switch op.Op {
	case OpSet:
		skills, err := decodeValue[[]string](op)
		if err != nil {
			return rec, err
		}
		return SetSkills(rec, skills), nil
	case OpAdd, OpRemove:
		skill, err := decodeValue[string](op)
		if err != nil {
			return rec, err
		}
		if op.Op == OpAdd {
			return AddSkill(rec, skill), nil
		}
		return RemoveSkill(rec, skill), nil
	default:
		return rec, unsupported(op)
	}
}

func decodeValue[T any](op Op) (T, error) {
	var v T
	if len(strings.TrimSpace(string(op.Value))) == 0 {
		return v, fmt.Errorf("%w: %s %s needs a value", ErrInvalidOp, op.Op, op.Section)
	}
	if err := json.Unmarshal(op.Value, &v); err != nil {
		return v, fmt.Errorf("%w: decode %s value: %v", ErrInvalidOp, op.Section, err)
	}
	return v, nil
}

func unsupported(op Op) error {
	return fmt.Errorf("%w: %s does not support %s", ErrInvalidOp, op.Section, op.Op)
}
