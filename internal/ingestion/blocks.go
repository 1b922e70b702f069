package ingestion

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/jsonrepair"
	"github.com/jonathan/resume-builder/internal/types"
)

// Markers framing structured blocks in chat replies
const (
	ResumeStart   = "---简历开始---"
	ResumeEnd     = "---简历结束---"
	FeedbackStart = "---面试反馈开始---"
	FeedbackEnd   = "---面试反馈结束---"
)

// ExtractResumeBlock returns the trimmed text of the first résumé block in a
// chat reply.
func ExtractResumeBlock(chat string) (string, bool) {
	return between(chat, ResumeStart, ResumeEnd)
}

// ExtractFeedbackBlock decodes the first interview-feedback block in a chat reply.
func ExtractFeedbackBlock(chat string) (*types.InterviewFeedback, bool, error) {
	block, ok := between(chat, FeedbackStart, FeedbackEnd)
	if !ok {
		return nil, false, nil
	}
	feedback, _, err := jsonrepair.Decode[types.InterviewFeedback](block)
	if err != nil {
		return nil, true, err
	}
	return &feedback, true, nil
}

// WrapResume frames résumé text with the block markers.
func WrapResume(text string) string {
	return ResumeStart + "\n" + strings.TrimSpace(text) + "\n" + ResumeEnd
}

func between(s, start, end string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:j]), true
}
