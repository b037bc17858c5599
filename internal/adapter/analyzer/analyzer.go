package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github-repo-scanner/internal/domain"
)

const (
	// 没有任何提交数据时的固定扣分
	noCommitPenalty = 20

	// 每命中一条检查的扣分
	perFlagPenalty = 15

	// "完美语法"检查：消息长度阈值和命中比例阈值
	perfectMessageMinLen = 50
	perfectRatio         = 0.8

	// "提交太少"检查的下限
	minCommitCount = 5

	// "通用消息"检查的命中比例阈值 (严格大于)
	genericRatio = 0.6

	// 展示用的消息条数上限
	maxDisplayMessages = 10
)

// genericWords 典型的套话提交消息关键词，大小写不敏感的子串匹配
var genericWords = []string{"update", "fix", "initial commit", "first commit", "changes"}

// CommitAnalyzer 实现了 port.Analyzer 接口
// 全部是本地计算，不发网络请求
type CommitAnalyzer struct{}

// NewCommitAnalyzer 创建新的分析器实例
func NewCommitAnalyzer() *CommitAnalyzer {
	return &CommitAnalyzer{}
}

// AnalyzeCommitPatterns 对提交消息做三条独立的模式检查
// 没有提交数据时直接短路：固定红旗 + 固定扣分，不再走三条检查
func (a *CommitAnalyzer) AnalyzeCommitPatterns(commits []domain.Commit) *domain.CommitAnalysis {
	if len(commits) == 0 {
		return &domain.CommitAnalysis{
			TotalCommits:   0,
			RedFlags:       []string{"No commit data available"},
			CommitMessages: []string{},
			PatternScore:   noCommitPenalty,
		}
	}

	messages := make([]string, 0, len(commits))
	for _, c := range commits {
		messages = append(messages, c.Message)
	}

	var redFlags []string

	// 检查1：绝大多数消息都是"完美语法" (够长 + 大写开头 + 带句号)
	// 长度按字符数算，多字节字符不能一个顶三个
	perfectCount := 0
	for _, msg := range messages {
		if utf8.RuneCountInString(msg) > perfectMessageMinLen && startsWithUpper(msg) && strings.Contains(msg, ".") {
			perfectCount++
		}
	}
	if float64(perfectCount)/float64(len(messages)) > perfectRatio {
		redFlags = append(redFlags, "Most commits have perfect grammar (AI-generated?)")
	}

	// 检查2：提交总数太少
	if len(commits) < minCommitCount {
		redFlags = append(redFlags, "Very few commits (< 5)")
	}

	// 检查3：通用套话消息占比过高 (0.6 恰好不算超过)
	genericCount := 0
	for _, msg := range messages {
		if containsGenericWord(msg) {
			genericCount++
		}
	}
	if float64(genericCount)/float64(len(messages)) > genericRatio {
		redFlags = append(redFlags, "Over 60% generic commit messages")
	}

	display := messages
	if len(display) > maxDisplayMessages {
		display = display[:maxDisplayMessages]
	}

	return &domain.CommitAnalysis{
		TotalCommits:   len(commits),
		RedFlags:       redFlags,
		CommitMessages: display,
		PatternScore:   len(redFlags) * perFlagPenalty,
	}
}

// CalculateFinalScore 融合 AI 评估和本地提交分析
// 具体算法在 domain.Fuse，这里只是 port.Analyzer 的入口
func (a *CommitAnalyzer) CalculateFinalScore(ai *domain.AIAssessment, commits *domain.CommitAnalysis) *domain.FinalAnalysis {
	return domain.Fuse(ai, commits)
}

// startsWithUpper 判断消息首字符是否大写字母
func startsWithUpper(msg string) bool {
	r, _ := utf8.DecodeRuneInString(msg)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// containsGenericWord 判断消息是否命中任意通用关键词
func containsGenericWord(msg string) bool {
	lower := strings.ToLower(msg)
	for _, word := range genericWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
