// Package diagnosis checks a ResumeRecord against content rules and grades the
// result. Issue and quick-win wording is shared with the model-driven diagnosis
// so both sources render the same way.
package diagnosis

import "github.com/jonathan/resume-builder/internal/types"

// Issue IDs
const (
	MissingName         = "missingName"
	MissingContact      = "missingContact"
	MissingSummary      = "missingSummary"
	ShortSummary        = "shortSummary"
	MissingEducation    = "missingEducation"
	IncompleteEducation = "incompleteEducation"
	MissingExperience   = "missingExperience"
	ShortExperience     = "shortExperience"
	NoQuantifiedResults = "noQuantifiedResults"
	VagueDescription    = "vagueDescription"
	MissingSkills       = "missingSkills"
	TooManySkills       = "tooManySkills"
	MissingProjects     = "missingProjects"
	LongResume          = "longResume"
	MissingKeywords     = "missingKeywords"
)

// Categories, in report order
const (
	CategoryBasics     = "基本信息"
	CategorySummary    = "个人简介"
	CategoryEducation  = "教育背景"
	CategoryExperience = "工作经历"
	CategoryResults    = "成就量化"
	CategoryWording    = "表达方式"
	CategorySkills     = "专业技能"
	CategoryProjects   = "项目经验"
	CategoryLength     = "简历长度"
	CategoryKeywords   = "关键词优化"
)

// Categories lists every category in report order.
var Categories = []string{
	CategoryBasics, CategorySummary, CategoryEducation, CategoryExperience, CategoryResults,
	CategoryWording, CategorySkills, CategoryProjects, CategoryLength, CategoryKeywords,
}

var issueTemplates = map[string]types.ResumeIssue{
	MissingName: {
		Type: types.IssueCritical, Category: CategoryBasics,
		Title:         "缺少姓名",
		Description:   "简历中没有找到姓名信息",
		FixSuggestion: "在简历顶部添加您的真实姓名",
		Impact:        types.ImpactHigh,
	},
	MissingContact: {
		Type: types.IssueCritical, Category: CategoryBasics,
		Title:         "缺少联系方式",
		Description:   "简历中没有找到电话或邮箱等联系方式",
		FixSuggestion: "添加手机号码和邮箱地址，确保HR能联系到您",
		Impact:        types.ImpactHigh,
	},
	MissingSummary: {
		Type: types.IssueWarning, Category: CategorySummary,
		Title:         "缺少个人简介",
		Description:   "简历中没有个人简介或自我评价",
		FixSuggestion: "添加2-3句话的个人简介，突出您的核心优势和求职意向",
		Impact:        types.ImpactMedium,
	},
	ShortSummary: {
		Type: types.IssueSuggestion, Category: CategorySummary,
		Title:         "个人简介过于简短",
		Description:   "个人简介内容太少，无法有效展示您的优势",
		FixSuggestion: "扩展个人简介，包含：您的专业背景、核心技能、求职意向",
		Impact:        types.ImpactMedium,
	},
	MissingEducation: {
		Type: types.IssueCritical, Category: CategoryEducation,
		Title:         "缺少教育背景",
		Description:   "简历中没有教育背景信息",
		FixSuggestion: "添加教育经历，包括学校、专业、学历和时间",
		Impact:        types.ImpactHigh,
	},
	IncompleteEducation: {
		Type: types.IssueWarning, Category: CategoryEducation,
		Title:         "教育信息不完整",
		Description:   "教育背景缺少专业或学历信息",
		FixSuggestion: "补充完整的教育信息：学校名称、专业、学历、毕业时间",
		Impact:        types.ImpactMedium,
	},
	MissingExperience: {
		Type: types.IssueWarning, Category: CategoryExperience,
		Title:         "缺少工作经历",
		Description:   "简历中没有工作经历信息",
		FixSuggestion: "添加工作经历，包括公司、职位、时间和主要职责/成就",
		Impact:        types.ImpactHigh,
	},
	ShortExperience: {
		Type: types.IssueSuggestion, Category: CategoryExperience,
		Title:         "工作经历描述过短",
		Description:   "工作经历描述过于简单，缺少具体内容",
		FixSuggestion: "使用STAR法则扩展工作经历：情境、任务、行动、结果",
		Impact:        types.ImpactMedium,
	},
	NoQuantifiedResults: {
		Type: types.IssueWarning, Category: CategoryResults,
		Title:         "缺少量化成果",
		Description:   "工作经历中没有使用数字来量化成果",
		FixSuggestion: "添加具体数据，如：提升了X%、节省了Y万、管理了Z人",
		Impact:        types.ImpactHigh,
	},
	VagueDescription: {
		Type: types.IssueSuggestion, Category: CategoryWording,
		Title:         "描述过于笼统",
		Description:   `使用了"负责"、"参与"等模糊词汇`,
		FixSuggestion: "使用具体动词：主导、开发、优化、提升、创建等",
		Impact:        types.ImpactMedium,
	},
	MissingSkills: {
		Type: types.IssueWarning, Category: CategorySkills,
		Title:         "缺少技能列表",
		Description:   "简历中没有专业技能部分",
		FixSuggestion: "添加与目标岗位相关的技能关键词",
		Impact:        types.ImpactMedium,
	},
	TooManySkills: {
		Type: types.IssueSuggestion, Category: CategorySkills,
		Title:         "技能列表过多",
		Description:   "列出了过多技能，可能显得不够聚焦",
		FixSuggestion: "精选8-12个与目标岗位最相关的技能",
		Impact:        types.ImpactLow,
	},
	MissingProjects: {
		Type: types.IssueSuggestion, Category: CategoryProjects,
		Title:         "缺少项目经验",
		Description:   "简历中没有项目经验部分",
		FixSuggestion: "添加代表性项目，展示您的实际能力和成果",
		Impact:        types.ImpactMedium,
	},
	LongResume: {
		Type: types.IssueSuggestion, Category: CategoryLength,
		Title:         "简历内容过长",
		Description:   "简历内容超过2页，可能导致HR阅读疲劳",
		FixSuggestion: "精简内容，突出重点，控制在1-2页内",
		Impact:        types.ImpactLow,
	},
	MissingKeywords: {
		Type: types.IssueWarning, Category: CategoryKeywords,
		Title:         "缺少岗位关键词",
		Description:   "简历中缺少与目标岗位匹配的关键词",
		FixSuggestion: "研究目标岗位JD，添加相关技能和行业术语",
		Impact:        types.ImpactHigh,
	},
}

// Quick win IDs
const (
	AddNumbers            = "addNumbers"
	UseActionVerbs        = "useActionVerbs"
	AddSummary            = "addSummary"
	HighlightAchievements = "highlightAchievements"
	TailorKeywords        = "tailorKeywords"
)

var quickWinTemplates = map[string]types.QuickWin{
	AddNumbers: {
		Title:         "添加量化数据",
		Description:   "在工作经历中添加具体的数字和百分比",
		Effort:        "easy",
		Impact:        types.ImpactHigh,
		BeforeExample: "负责用户增长工作",
		AfterExample:  "主导用户增长项目，3个月内用户数从1万增长到5万，增长400%",
	},
	UseActionVerbs: {
		Title:         "使用行动动词开头",
		Description:   "将被动描述改为主动的行动动词",
		Effort:        "easy",
		Impact:        types.ImpactMedium,
		BeforeExample: "负责项目的开发工作",
		AfterExample:  "主导开发XX项目，按时交付并节省30%开发成本",
	},
	AddSummary: {
		Title:        "添加个人简介",
		Description:  "在简历顶部添加简短的个人介绍",
		Effort:       "easy",
		Impact:       types.ImpactMedium,
		AfterExample: "5年前端开发经验，精通React/Vue技术栈，曾主导多个大型项目，追求代码质量与用户体验",
	},
	HighlightAchievements: {
		Title:         "突出核心成就",
		Description:   "将最重要的成就放在显眼位置",
		Effort:        "medium",
		Impact:        types.ImpactHigh,
		BeforeExample: "参与了公司的项目开发",
		AfterExample:  "主导公司核心项目开发，服务100万+用户，系统可用性达99.9%",
	},
	TailorKeywords: {
		Title:       "针对岗位优化关键词",
		Description: "根据目标岗位JD调整技能关键词",
		Effort:      "medium",
		Impact:      types.ImpactHigh,
	},
}

// quickWinFor maps an issue to the quick win that addresses it
var quickWinFor = map[string]string{
	NoQuantifiedResults: AddNumbers,
	VagueDescription:    UseActionVerbs,
	MissingSummary:      AddSummary,
	ShortSummary:        AddSummary,
	ShortExperience:     HighlightAchievements,
	MissingKeywords:     TailorKeywords,
}

// Issue returns the template for id with ID set, and false for an unknown id.
func Issue(id string) (types.ResumeIssue, bool) {
	issue, ok := issueTemplates[id]
	if !ok {
		return types.ResumeIssue{}, false
	}
	issue.ID = id
	return issue, true
}
