package diagnosis

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const maxHighlights = 5

// Score condenses a report into the scoring shape. Dimensions without issues
// are listed as strengths and quick win titles become suggestions.
func Score(rec types.ResumeRecord, opts Options) types.ResumeScore {
	report := Report(rec, opts)

	score := types.ResumeScore{
		Overall:     report.OverallScore,
		Dimensions:  make([]types.ScoreDimension, 0, len(report.Dimensions)),
		Suggestions: []string{},
		Strengths:   []string{},
	}
	for _, dim := range report.Dimensions {
		score.Dimensions = append(score.Dimensions, types.ScoreDimension{
			Name:        dim.Name,
			Score:       dim.Score,
			MaxScore:    dim.MaxScore,
			Description: dim.Analysis,
			Tips:        dim.Suggestions,
		})
		if len(dim.Issues) == 0 {
			score.Strengths = append(score.Strengths, dim.Name)
		}
	}
	for _, win := range report.QuickWins {
		score.Suggestions = append(score.Suggestions, win.Title)
	}
	return score
}

// MatchJob compares a record with target job keywords. The match score is the
// percentage of keywords found anywhere in the résumé, rounded down. Highlights
// are achievements and project descriptions mentioning a matched keyword.
func MatchJob(rec types.ResumeRecord, keywords []string) types.JobMatchResult {
	analysis := AnalyzeKeywords(rec, keywords)

	result := types.JobMatchResult{
		MatchedSkills:   analysis.Present,
		MissingSkills:   analysis.Missing,
		Suggestions:     []string{},
		Highlights:      []string{},
		KeywordAnalysis: analysis,
	}
	if total := len(analysis.Present) + len(analysis.Missing); total > 0 {
		result.MatchScore = len(analysis.Present) * 100 / total
	}
	for _, kw := range analysis.Missing {
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("在技能或经历中补充「%s」相关内容", kw))
	}

	mentions := func(s string) bool {
		lower := strings.ToLower(s)
		for _, kw := range analysis.Present {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return true
			}
		}
		return false
	}
	add := func(owner, line string) {
		if len(result.Highlights) < maxHighlights && mentions(line) {
			result.Highlights = append(result.Highlights, owner+"："+line)
		}
	}
	for _, exp := range rec.Experience {
		for _, a := range exp.Achievements {
			add(exp.Company, a)
		}
	}
	for _, p := range rec.Projects {
		add(p.Name, p.Description)
	}
	return result
}
