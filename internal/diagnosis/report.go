package diagnosis

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/resumetext"
	"github.com/jonathan/resume-builder/internal/types"
)

// dimensionMax is the score each category dimension starts from
const dimensionMax = 10

// overall and per-dimension deductions by issue type
var (
	overallPenalty   = map[string]int{types.IssueCritical: 15, types.IssueWarning: 8, types.IssueSuggestion: 3}
	dimensionPenalty = map[string]int{types.IssueCritical: 10, types.IssueWarning: 5, types.IssueSuggestion: 2}
)

// Options adjusts a report
type Options struct {
	// Keywords from the target job. When set, missing keywords raise an issue
	// and the keyword dimension is included.
	Keywords []string
}

// Report builds a full rule-based diagnosis in the same shape the model
// returns, so callers can render either.
func Report(rec types.ResumeRecord, opts Options) types.DiagnosisResult {
	issues := Diagnose(rec)

	var keywords types.KeywordAnalysis
	if len(opts.Keywords) > 0 {
		keywords = AnalyzeKeywords(rec, opts.Keywords)
		if len(keywords.Missing) > 0 {
			issue, _ := Issue(MissingKeywords)
			issue.Description = fmt.Sprintf("%s：%s", issue.Description, strings.Join(keywords.Missing, "、"))
			issues = append(issues, issue)
		}
	}

	score := 100
	counts := map[string]int{}
	for _, issue := range issues {
		score -= overallPenalty[issue.Type]
		counts[issue.Type]++
	}
	score = max(score, 0)

	return types.DiagnosisResult{
		OverallScore:     score,
		Grade:            Grade(score),
		Dimensions:       dimensions(issues, len(opts.Keywords) > 0),
		Issues:           issues,
		QuickWins:        QuickWins(issues),
		DetailedAnalysis: summarize(len(issues), counts),
	}
}

func dimensions(issues []types.ResumeIssue, withKeywords bool) []types.DimensionDiagnosis {
	byCategory := make(map[string][]types.ResumeIssue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	dims := make([]types.DimensionDiagnosis, 0, len(Categories))
	for _, category := range Categories {
		if category == CategoryKeywords && !withKeywords {
			continue
		}
		dim := types.DimensionDiagnosis{
			Name:        category,
			Score:       dimensionMax,
			MaxScore:    dimensionMax,
			Issues:      []string{},
			Suggestions: []string{},
		}
		for _, issue := range byCategory[category] {
			dim.Score -= dimensionPenalty[issue.Type]
			dim.Issues = append(dim.Issues, issue.Title)
			dim.Suggestions = append(dim.Suggestions, issue.FixSuggestion)
		}
		dim.Score = max(dim.Score, 0)
		dim.Status = Status(dim.Score, dim.MaxScore)
		dim.Suggestions = types.DedupeStrings(dim.Suggestions)
		if len(dim.Issues) == 0 {
			dim.Analysis = "未发现问题"
		} else {
			dim.Analysis = fmt.Sprintf("发现%d个问题", len(dim.Issues))
		}
		dims = append(dims, dim)
	}
	return dims
}

func summarize(total int, counts map[string]int) string {
	if total == 0 {
		return "未发现明显问题，简历结构完整。"
	}
	return fmt.Sprintf("共发现%d个问题：严重%d个，警告%d个，建议%d个。",
		total, counts[types.IssueCritical], counts[types.IssueWarning], counts[types.IssueSuggestion])
}

// QuickWins returns the quick wins addressing issues, once each, in issue order.
func QuickWins(issues []types.ResumeIssue) []types.QuickWin {
	wins := []types.QuickWin{}
	seen := make(map[string]bool)
	for _, issue := range issues {
		id, ok := quickWinFor[baseID(issue.ID)]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		win := quickWinTemplates[id]
		win.ID = id
		wins = append(wins, win)
	}
	return wins
}

// baseID strips the entry suffix Diagnose adds to per-entry issues.
func baseID(id string) string {
	if i := strings.LastIndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// AnalyzeKeywords splits keywords into those present in the serialized record
// and those missing, matching case-insensitively. Missing keywords are also
// returned as recommendations.
func AnalyzeKeywords(rec types.ResumeRecord, keywords []string) types.KeywordAnalysis {
	text := strings.ToLower(resumetext.Serialize(rec))
	analysis := types.KeywordAnalysis{
		Present:     []string{},
		Missing:     []string{},
		Recommended: []string{},
	}
	for _, kw := range types.DedupeStrings(keywords) {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			analysis.Present = append(analysis.Present, kw)
		} else {
			analysis.Missing = append(analysis.Missing, kw)
		}
	}
	analysis.Recommended = append(analysis.Recommended, analysis.Missing...)
	return analysis
}
