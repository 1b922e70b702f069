package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestScore_StrongRecord(t *testing.T) {
	score := Score(strongRecord(), Options{})

	assert.Equal(t, 100, score.Overall)
	require.Len(t, score.Dimensions, len(Categories)-1)
	assert.Equal(t, CategoryBasics, score.Dimensions[0].Name)
	assert.Equal(t, dimensionMax, score.Dimensions[0].Score)
	assert.Len(t, score.Strengths, len(Categories)-1)
	assert.Empty(t, score.Suggestions)
}

func TestScore_EmptyRecord(t *testing.T) {
	report := Report(types.NewResumeRecord(), Options{})
	score := Score(types.NewResumeRecord(), Options{})

	assert.Equal(t, report.OverallScore, score.Overall)
	assert.NotContains(t, score.Strengths, CategoryBasics)
	assert.Len(t, score.Suggestions, len(report.QuickWins))
	assert.Equal(t, 0, score.Dimensions[0].Score)
	assert.NotEmpty(t, score.Dimensions[0].Tips)
}

func TestMatchJob(t *testing.T) {
	result := MatchJob(strongRecord(), []string{"go", "Kafka", "Kubernetes", "订单"})

	assert.Equal(t, 75, result.MatchScore)
	assert.Equal(t, []string{"go", "Kafka", "订单"}, result.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes"}, result.MissingSkills)
	assert.Equal(t, []string{"在技能或经历中补充「Kubernetes」相关内容"}, result.Suggestions)
	assert.Equal(t, []string{
		"字节跳动：主导订单系统重构，接口延迟降低40%",
		"订单平台：主导高并发订单服务的设计与落地",
	}, result.Highlights)
	assert.Equal(t, []string{"Kubernetes"}, result.KeywordAnalysis.Recommended)
}

func TestMatchJob_NoKeywords(t *testing.T) {
	result := MatchJob(strongRecord(), nil)

	assert.Zero(t, result.MatchScore)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.Highlights)
}
