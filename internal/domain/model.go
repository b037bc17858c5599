package domain

import (
	"fmt"
	"math"
	"time"
)

// Commit 一条提交记录 (只保留分析需要的字段)
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// RepoInfo 一次分析抓取到的仓库快照
// 每次请求新建，抓取完成后不再修改，分析结束即丢弃 (不做持久化)
type RepoInfo struct {
	Owner       string         `json:"owner"`
	Repo        string         `json:"repo"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Stars       int            `json:"stars"`
	Forks       int            `json:"forks"`
	Language    string         `json:"language"`  // 主语言，例如 "Go"
	Languages   map[string]int `json:"languages"` // 语言 -> 字节数
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Commits     []Commit       `json:"commits"` // 最多保留最近 20 条
	Readme      string         `json:"readme"`  // 最多保留前 5000 字符
}

// HTMLURL 拼出仓库主页地址
func (r *RepoInfo) HTMLURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Repo)
}

// CommitAnalysis 本地提交模式分析的结果，只依赖 RepoInfo.Commits
type CommitAnalysis struct {
	TotalCommits   int      `json:"total_commits"`
	RedFlags       []string `json:"red_flags"`
	CommitMessages []string `json:"commit_messages"` // 前 10 条，用于展示
	PatternScore   int      `json:"pattern_score"`   // 扣分值
}

// AIAssessment 是 AI 返回的 JSON 评估结果
// AI 的输出不可信：任何字段都可能缺失，数值项读取时必须走带默认值的方法
type AIAssessment struct {
	AIGeneratedScore      float64  `json:"ai_generated_score"`
	AIIndicators          []string `json:"ai_indicators"`
	ResumePaddingScore    float64  `json:"resume_padding_score"`
	PaddingIndicators     []string `json:"padding_indicators"`
	TechnicalComplexity   *float64 `json:"technical_complexity"`
	ComplexityReasoning   string   `json:"complexity_reasoning"`
	AuthenticityScore     *float64 `json:"authenticity_score"`
	AuthenticityReasoning string   `json:"authenticity_reasoning"`
	OverallAssessment     string   `json:"overall_assessment"`
	RedFlags              []string `json:"red_flags"`
	HiringRecommendation  string   `json:"hiring_recommendation"`
}

// AuthenticityOrDefault AI 没给真实性评分时默认 50 (中立)
func (a *AIAssessment) AuthenticityOrDefault() float64 {
	if a == nil || a.AuthenticityScore == nil {
		return 50
	}
	return *a.AuthenticityScore
}

// ComplexityOrDefault AI 没给复杂度评分时默认 5 (1-10 的中间值)
// 数值字段统一用 float64：AI 返回的 JSON 数字可能带小数，不能因此解析失败
func (a *AIAssessment) ComplexityOrDefault() float64 {
	if a == nil || a.TechnicalComplexity == nil {
		return 5
	}
	return *a.TechnicalComplexity
}

// FinalAnalysis 融合 AI 评估和本地提交分析后的最终结论
type FinalAnalysis struct {
	AuthenticityScore    float64  `json:"authenticity_score"` // 0-100，保留一位小数
	Category             string   `json:"category"`           // AUTHENTIC / SUSPICIOUS / LIKELY PADDED / FAKE/COPIED
	RiskLevel            string   `json:"risk_level"`
	Color                string   `json:"color"`
	AIGeneratedScore     float64  `json:"ai_generated_score"`
	TechnicalComplexity  float64  `json:"technical_complexity"`
	RedFlags             []string `json:"red_flags"` // 合并后截断到前 10 条
	HiringRecommendation string   `json:"hiring_recommendation"`

	// 保留原始输入，供报告和展示层查看细节
	AI      *AIAssessment   `json:"ai_assessment"`
	Commits *CommitAnalysis `json:"commit_analysis"`
}

// 最终红旗列表的上限
const maxRedFlags = 10

// Fuse 计算最终真实性评分：AI 基础分减去本地提交扣分，压回 [0,100]
// 注意这里是直接相减而不是加权平均，这是有意保留的原始算法
func Fuse(ai *AIAssessment, commits *CommitAnalysis) *FinalAnalysis {
	base := ai.AuthenticityOrDefault()

	penalty := 0
	if commits != nil {
		penalty = commits.PatternScore
	}

	final := base - float64(penalty)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	final = math.Round(final*10) / 10

	category, color, risk := scoreBand(final)

	// 红旗优先级：AI red_flags > AI ai_indicators > 本地提交红旗
	var flags []string
	if ai != nil {
		flags = append(flags, ai.RedFlags...)
		flags = append(flags, ai.AIIndicators...)
	}
	if commits != nil {
		flags = append(flags, commits.RedFlags...)
	}
	if len(flags) > maxRedFlags {
		flags = flags[:maxRedFlags]
	}

	result := &FinalAnalysis{
		AuthenticityScore:   final,
		Category:            category,
		RiskLevel:           risk,
		Color:               color,
		TechnicalComplexity: ai.ComplexityOrDefault(),
		RedFlags:            flags,
		AI:                  ai,
		Commits:             commits,
	}
	if ai != nil {
		result.AIGeneratedScore = ai.AIGeneratedScore
		result.HiringRecommendation = ai.HiringRecommendation
	}
	return result
}

// scoreBand 四档分区，从高到低判断，下界包含
// 四个区间严格不重叠，覆盖整个 [0,100]
func scoreBand(score float64) (category, color, risk string) {
	switch {
	case score >= 75:
		return "AUTHENTIC", "green", "Low"
	case score >= 50:
		return "SUSPICIOUS", "yellow", "Medium"
	case score >= 25:
		return "LIKELY PADDED", "orange", "High"
	default:
		return "FAKE/COPIED", "red", "Critical"
	}
}

// AnalysisResult 整条流水线的复合输出
type AnalysisResult struct {
	Repo   *RepoInfo      `json:"repo_data"`
	Final  *FinalAnalysis `json:"final_analysis"`
	Report string         `json:"report"`
}
