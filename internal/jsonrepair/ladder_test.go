package jsonrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestParseResume_Strict(t *testing.T) {
	content := `{"name":"张三","phone":"13800000000","skills":["Go"],"experience":[{"company":"Acme","position":"工程师","time":"2020","achievements":["做了X"]}]}`

	res, err := ParseResume(content)
	require.NoError(t, err)

	assert.Equal(t, StrategyStrict, res.Strategy)
	assert.True(t, res.Complete)
	assert.Equal(t, "张三", res.Record.Name)
	assert.Equal(t, []string{"Go"}, res.Record.Skills)
	require.Len(t, res.Record.Experience, 1)
	assert.Equal(t, []string{"做了X"}, res.Record.Experience[0].Achievements)
	assert.NotNil(t, res.Record.Education)
	assert.NotNil(t, res.Record.Projects)
}

func TestParseResume_StrictWithEmptyFieldsStillSucceeds(t *testing.T) {
	res, err := ParseResume(`{}`)
	require.NoError(t, err)
	assert.Equal(t, StrategyStrict, res.Strategy)
	assert.Equal(t, types.NewResumeRecord(), res.Record)
}

func TestParseResume_BareScalarsBecomeText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		strategy Strategy
	}{
		{
			name:     "well formed",
			content:  `{"name":"张三","phone":13800000000,"education":[{"school":"清华","time":2020}],"skills":["Go",true]}`,
			strategy: StrategyStrict,
		},
		{
			name:     "trailing comma",
			content:  `{"name":"张三","phone":13800000000,"education":[{"school":"清华","time":2020},],"skills":["Go",true],}`,
			strategy: StrategyRepaired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseResume(tt.content)
			require.NoError(t, err)

			assert.Equal(t, tt.strategy, res.Strategy)
			assert.True(t, res.Complete)
			assert.Equal(t, "13800000000", res.Record.Phone)
			assert.Equal(t, []types.EducationEntry{{School: "清华", Time: "2020"}}, res.Record.Education)
			assert.Equal(t, []string{"Go", "true"}, res.Record.Skills)
		})
	}
}

func TestParseResume_TrailingCommaAndScalarAchievements(t *testing.T) {
	content := `{"name": "Li", "achievements": "shipped feature",}`

	repaired := Repair(ExtractObject(content))
	assert.Contains(t, repaired, `"achievements":["shipped feature"]`)

	generic, strategy, err := Decode[map[string]any](content)
	require.NoError(t, err)
	assert.Equal(t, StrategyRepaired, strategy)
	assert.Equal(t, []any{"shipped feature"}, generic["achievements"])

	res, err := ParseResume(content)
	require.NoError(t, err)
	assert.Equal(t, StrategyRepaired, res.Strategy)
	assert.Equal(t, "Li", res.Record.Name)
}

func TestParseResume_NestedScalarAchievements(t *testing.T) {
	content := "```json\n{\"name\":\"王五\",\"experience\":[{\"company\":\"Acme\",\"position\":\"PM\",\"time\":\"2021\",\"achievements\":\"带队交付\"},]}\n```"

	res, err := ParseResume(content)
	require.NoError(t, err)
	assert.Equal(t, StrategyRepaired, res.Strategy)
	require.Len(t, res.Record.Experience, 1)
	assert.Equal(t, []string{"带队交付"}, res.Record.Experience[0].Achievements)
}

func TestParseResume_PartialFallback(t *testing.T) {
	content := `{"name": "赵六", "phone": "139", "email": "z@x.com", "summary": "简介", "education": [{"school": "北大" "major"}]`

	res, err := ParseResume(content)
	require.NoError(t, err)

	assert.Equal(t, StrategyPartial, res.Strategy)
	assert.False(t, res.Complete)
	assert.Equal(t, "赵六", res.Record.Name)
	assert.Equal(t, "139", res.Record.Phone)
	assert.Equal(t, "z@x.com", res.Record.Email)
	assert.Equal(t, "简介", res.Record.Summary)
	assert.Empty(t, res.Record.Education)
	assert.NotNil(t, res.Record.Skills)
}

func TestParseResume_PartialNeedsContact(t *testing.T) {
	_, err := ParseResume(`{"summary": "only a summary", "skills": [`)
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestParseResume_Unparseable(t *testing.T) {
	for _, in := range []string{"", "抱歉，我无法解析这份简历。", "null", "[1,2,3]", "\x00\xff"} {
		_, err := ParseResume(in)
		assert.ErrorIs(t, err, ErrUnparseable, "input %q", in)
	}
}

func TestParseResume_MonotonicWhenStrictSucceeds(t *testing.T) {
	content := `{"name":"张三","phone":"1","email":"a@b.c","summary":"s","skills":["Go"]}`

	res, err := ParseResume(content)
	require.NoError(t, err)
	partial := ExtractPartial(content)

	assert.Equal(t, partial.Name, res.Record.Name)
	assert.Equal(t, partial.Phone, res.Record.Phone)
	assert.Equal(t, partial.Email, res.Record.Email)
	assert.Equal(t, partial.Summary, res.Record.Summary)
	assert.Equal(t, []string{"Go"}, res.Record.Skills)
}

func TestDecode_UnparseableWrapsCause(t *testing.T) {
	_, _, err := Decode[types.ResumeScore](`{"totalScore": oops}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestDecodeArray(t *testing.T) {
	skills, strategy, err := DecodeArray[string]("技能：[\"Go\", \"Rust\",]")
	require.NoError(t, err)
	assert.Equal(t, StrategyRepaired, strategy)
	assert.Equal(t, []string{"Go", "Rust"}, skills)

	empty, _, err := DecodeArray[string]("null")
	require.Error(t, err)
	assert.Nil(t, empty)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "strict", StrategyStrict.String())
	assert.Equal(t, "repaired", StrategyRepaired.String())
	assert.Equal(t, "partial", StrategyPartial.String())
	assert.Equal(t, "unknown", Strategy(0).String())
}

func TestLadder_FirstSuccessWins(t *testing.T) {
	var tried []Strategy
	rung := func(s Strategy, ok bool) Rung {
		return Rung{Strategy: s, Complete: s != StrategyPartial, Recover: func(string) (types.ResumeRecord, bool) {
			tried = append(tried, s)
			rec := types.NewResumeRecord()
			rec.Name = s.String()
			return rec, ok
		}}
	}

	ladder := Ladder{rung(StrategyStrict, false), rung(StrategyRepaired, true), rung(StrategyPartial, true)}
	res, err := ladder.Run("ignored")
	require.NoError(t, err)

	assert.Equal(t, []Strategy{StrategyStrict, StrategyRepaired}, tried)
	assert.Equal(t, StrategyRepaired, res.Strategy)
	assert.Equal(t, "repaired", res.Record.Name)
	assert.True(t, res.Complete)
}

func TestLadder_Empty(t *testing.T) {
	_, err := Ladder{}.Run(`{"name":"x"}`)
	assert.ErrorIs(t, err, ErrUnparseable)
}
