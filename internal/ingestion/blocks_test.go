package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/jsonrepair"
)

func TestExtractResumeBlock(t *testing.T) {
	tests := []struct {
		name   string
		chat   string
		want   string
		wantOK bool
	}{
		{
			name:   "block present",
			chat:   "好的，这是你的简历：\n---简历开始---\n张三\n【专业技能】\nGo\n---简历结束---\n还需要调整吗？",
			want:   "张三\n【专业技能】\nGo",
			wantOK: true,
		},
		{
			name:   "first block wins",
			chat:   "---简历开始---\nA\n---简历结束---\n---简历开始---\nB\n---简历结束---",
			want:   "A",
			wantOK: true,
		},
		{
			name: "no markers",
			chat: "请告诉我你的教育背景。",
		},
		{
			name: "unterminated block",
			chat: "---简历开始---\n张三",
		},
		{
			name: "end before start",
			chat: "---简历结束---\n张三\n---简历开始---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractResumeBlock(tt.chat)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFeedbackBlock(t *testing.T) {
	chat := "面试结束，感谢参与。\n---面试反馈开始---\n{\"overallScore\": 82, \"strengths\": [\"表达清晰\"], \"improvements\": [\"多用数据\",], \"detailedFeedback\": \"整体不错\"}\n---面试反馈结束---"

	feedback, ok, err := ExtractFeedbackBlock(chat)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 82, feedback.OverallScore)
	assert.Equal(t, []string{"表达清晰"}, feedback.Strengths)
	assert.Equal(t, []string{"多用数据"}, feedback.Improvements)
	assert.Equal(t, "整体不错", feedback.DetailedFeedback)
}

func TestExtractFeedbackBlock_Missing(t *testing.T) {
	feedback, ok, err := ExtractFeedbackBlock("下一个问题：请介绍一个项目。")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, feedback)
}

func TestExtractFeedbackBlock_Garbled(t *testing.T) {
	_, ok, err := ExtractFeedbackBlock("---面试反馈开始---\n评分：八十分\n---面试反馈结束---")
	assert.True(t, ok)
	assert.ErrorIs(t, err, jsonrepair.ErrUnparseable)
}

func TestWrapResume(t *testing.T) {
	wrapped := WrapResume("\n张三\n")
	got, ok := ExtractResumeBlock(wrapped)
	require.True(t, ok)
	assert.Equal(t, "张三", got)
}
