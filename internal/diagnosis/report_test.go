package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestReport_StrongRecord(t *testing.T) {
	result := Report(strongRecord(), Options{})

	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, GradeA, result.Grade)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.QuickWins)
	assert.Len(t, result.Dimensions, len(Categories)-1)
	for _, dim := range result.Dimensions {
		assert.Equal(t, StatusExcellent, dim.Status, dim.Name)
	}
}

func TestReport_EmptyRecord(t *testing.T) {
	result := Report(types.NewResumeRecord(), Options{})

	// 3 critical, 3 warnings, 1 suggestion
	assert.Equal(t, 100-3*15-3*8-3, result.OverallScore)
	assert.Equal(t, GradeF, result.Grade)
	assert.Equal(t, "共发现7个问题：严重3个，警告3个，建议1个。", result.DetailedAnalysis)
	assert.Equal(t, []string{AddSummary}, quickWinIDs(result.QuickWins))

	basics := result.Dimensions[0]
	assert.Equal(t, CategoryBasics, basics.Name)
	assert.Equal(t, 0, basics.Score)
	assert.Equal(t, StatusCritical, basics.Status)
	assert.Equal(t, []string{"缺少姓名", "缺少联系方式"}, basics.Issues)
}

func TestReport_Keywords(t *testing.T) {
	result := Report(strongRecord(), Options{Keywords: []string{"go", "Kubernetes"}})

	require.Len(t, result.Issues, 1)
	assert.Equal(t, MissingKeywords, result.Issues[0].ID)
	assert.Contains(t, result.Issues[0].Description, "Kubernetes")
	assert.Equal(t, 92, result.OverallScore)
	assert.Equal(t, []string{TailorKeywords}, quickWinIDs(result.QuickWins))
	assert.Equal(t, CategoryKeywords, result.Dimensions[len(result.Dimensions)-1].Name)
}

func TestQuickWins_DedupedAcrossEntries(t *testing.T) {
	issues := []types.ResumeIssue{
		{ID: ShortExperience + "-1"},
		{ID: ShortExperience + "-2"},
		{ID: MissingSummary},
		{ID: ShortSummary},
		{ID: MissingName},
	}
	assert.Equal(t, []string{HighlightAchievements, AddSummary}, quickWinIDs(QuickWins(issues)))
}

func TestAnalyzeKeywords(t *testing.T) {
	analysis := AnalyzeKeywords(strongRecord(), []string{"kafka", "字节跳动", "Rust", " ", "Rust"})

	assert.Equal(t, []string{"kafka", "字节跳动"}, analysis.Present)
	assert.Equal(t, []string{"Rust"}, analysis.Missing)
	assert.Equal(t, []string{"Rust"}, analysis.Recommended)
}

func quickWinIDs(wins []types.QuickWin) []string {
	out := make([]string, 0, len(wins))
	for _, w := range wins {
		out = append(out, w.ID)
	}
	return out
}
