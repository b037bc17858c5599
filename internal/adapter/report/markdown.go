package report

import (
	"fmt"
	"strings"

	"github-repo-scanner/internal/domain"
)

// MarkdownRenderer 实现了 port.Renderer 接口
// 纯字符串模板：没有任何副作用，同样的输入永远产出字节级相同的报告
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// categoryEmoji 报告里分类标签前的表情，按颜色档位取
func categoryEmoji(color string) string {
	switch color {
	case "green":
		return "✅"
	case "yellow":
		return "⚠️"
	case "orange":
		return "🚨"
	default:
		return "💀"
	}
}

// orNA 空串时显示 N/A
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Render 生成 Markdown 格式的分析报告
func (r *MarkdownRenderer) Render(repo *domain.RepoInfo, final *domain.FinalAnalysis) string {
	var b strings.Builder

	paddingScore := 0.0
	complexityReasoning := ""
	authenticityReasoning := ""
	if final.AI != nil {
		paddingScore = final.AI.ResumePaddingScore
		complexityReasoning = final.AI.ComplexityReasoning
		authenticityReasoning = final.AI.AuthenticityReasoning
	}

	fmt.Fprintf(&b, `# 🔍 GITHUB REPOSITORY ANALYSIS

## Repository: %s
**URL:** %s
**Stars:** ⭐ %d

---

## 🎯 AUTHENTICITY SCORE: %.1f/100

**Category:** %s %s
**Risk Level:** %s

---

## 📊 KEY METRICS

| Metric | Score |
|--------|-------|
| **AI-Generated Code** | %.0f/100 |
| **Technical Complexity** | %.0f/10 |
| **Resume Padding Risk** | %.0f/100 |

---

## 🚩 RED FLAGS (%d)

`,
		repo.Name,
		repo.HTMLURL(),
		repo.Stars,
		final.AuthenticityScore,
		categoryEmoji(final.Color), final.Category,
		final.RiskLevel,
		final.AIGeneratedScore,
		final.TechnicalComplexity,
		paddingScore,
		len(final.RedFlags),
	)

	if len(final.RedFlags) > 0 {
		for i, flag := range final.RedFlags {
			fmt.Fprintf(&b, "%d. %s\n", i+1, flag)
		}
	} else {
		b.WriteString("*No major red flags detected*\n")
	}

	fmt.Fprintf(&b, `
---

## 💡 HIRING RECOMMENDATION

%s

---

## 🔬 DETAILED ANALYSIS

### Technical Complexity
%s

### Authenticity Assessment
%s

---

*Generated by GitHub Repo Scanner • Powered by Gemini*
`,
		orNA(final.HiringRecommendation),
		orNA(complexityReasoning),
		orNA(authenticityReasoning),
	)

	return b.String()
}
