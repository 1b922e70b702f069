package types

// ResumeScore is the scoring shape returned by the scoring model call
type ResumeScore struct {
	Overall     int              `json:"overall" validate:"gte=0,lte=100"`
	Dimensions  []ScoreDimension `json:"dimensions"`
	Suggestions []string         `json:"suggestions"`
	Strengths   []string         `json:"strengths"`
}

// ScoreDimension is one scored axis (completeness, relevance, clarity, impact, keywords)
type ScoreDimension struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
}

// DiagnosisResult is the diagnosis shape returned by the diagnosis model call
type DiagnosisResult struct {
	OverallScore     int                  `json:"overallScore" validate:"gte=0,lte=100"`
	Grade            string               `json:"grade" validate:"omitempty,oneof=A B C D F"`
	Dimensions       []DimensionDiagnosis `json:"dimensions"`
	Issues           []ResumeIssue        `json:"issues"`
	QuickWins        []QuickWin           `json:"quickWins"`
	DetailedAnalysis string               `json:"detailedAnalysis"`
}

// DimensionDiagnosis is the per-dimension part of a diagnosis
type DimensionDiagnosis struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Status      string   `json:"status"` // excellent, good, needs_work, critical
	Analysis    string   `json:"analysis"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Issue severities
const (
	IssueCritical   = "critical"
	IssueWarning    = "warning"
	IssueSuggestion = "suggestion"
)

// Impact levels shared by issues and quick wins
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// ResumeIssue is a single problem found in a résumé
type ResumeIssue struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location,omitempty"`
	FixSuggestion string `json:"fixSuggestion"`
	Impact        string `json:"impact"`
}

// QuickWin is a low-effort improvement suggestion
type QuickWin struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Effort        string `json:"effort"`
	Impact        string `json:"impact"`
	BeforeExample string `json:"beforeExample,omitempty"`
	AfterExample  string `json:"afterExample,omitempty"`
}

// JobMatchResult is the job-match shape returned by the matching model call
type JobMatchResult struct {
	MatchScore      int             `json:"matchScore" validate:"gte=0,lte=100"`
	MatchedSkills   []string        `json:"matchedSkills"`
	MissingSkills   []string        `json:"missingSkills"`
	Suggestions     []string        `json:"suggestions"`
	Highlights      []string        `json:"highlights"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
}

// KeywordAnalysis groups keywords by presence in the résumé
type KeywordAnalysis struct {
	Present     []string `json:"present"`
	Missing     []string `json:"missing"`
	Recommended []string `json:"recommended"`
}

// InterviewFeedback is the JSON framed by the interview-feedback markers in chat output
type InterviewFeedback struct {
	OverallScore     int      `json:"overallScore" validate:"gte=0,lte=100"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	DetailedFeedback string   `json:"detailedFeedback"`
}
