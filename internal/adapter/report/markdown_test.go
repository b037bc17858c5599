package report

import (
	"testing"

	"github-repo-scanner/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sampleInputs() (*domain.RepoInfo, *domain.FinalAnalysis) {
	score := 65.0
	complexity := 7.0

	repo := &domain.RepoInfo{
		Owner: "octocat",
		Repo:  "Hello-World",
		Name:  "Hello-World",
		Stars: 1000,
	}

	ai := &domain.AIAssessment{
		AIGeneratedScore:      40,
		ResumePaddingScore:    25,
		TechnicalComplexity:   &complexity,
		ComplexityReasoning:   "Layered design with real tests",
		AuthenticityScore:     &score,
		AuthenticityReasoning: "Commit history looks organic",
		HiringRecommendation:  "Proceed with a technical interview",
		RedFlags:              []string{"README oversells features"},
	}
	commits := &domain.CommitAnalysis{
		TotalCommits: 12,
		RedFlags:     []string{"Very few commits (< 5)"},
		PatternScore: 15,
	}

	return repo, domain.Fuse(ai, commits)
}

func TestRender_FullReport(t *testing.T) {
	renderer := NewMarkdownRenderer()
	repo, final := sampleInputs()

	md := renderer.Render(repo, final)

	assert.Contains(t, md, "# 🔍 GITHUB REPOSITORY ANALYSIS")
	assert.Contains(t, md, "## Repository: Hello-World")
	assert.Contains(t, md, "**URL:** https://github.com/octocat/Hello-World")
	assert.Contains(t, md, "**Stars:** ⭐ 1000")
	assert.Contains(t, md, "## 🎯 AUTHENTICITY SCORE: 50.0/100")
	assert.Contains(t, md, "**Category:** ⚠️ SUSPICIOUS")
	assert.Contains(t, md, "**Risk Level:** Medium")
	assert.Contains(t, md, "| **AI-Generated Code** | 40/100 |")
	assert.Contains(t, md, "| **Technical Complexity** | 7/10 |")
	assert.Contains(t, md, "| **Resume Padding Risk** | 25/100 |")
	assert.Contains(t, md, "## 🚩 RED FLAGS (2)")
	assert.Contains(t, md, "1. README oversells features")
	assert.Contains(t, md, "2. Very few commits (< 5)")
	assert.Contains(t, md, "Proceed with a technical interview")
	assert.Contains(t, md, "Layered design with real tests")
	assert.Contains(t, md, "Commit history looks organic")
}

func TestRender_EmptyFlagsAndDefaults(t *testing.T) {
	renderer := NewMarkdownRenderer()

	repo := &domain.RepoInfo{Owner: "o", Repo: "r", Name: "r"}
	final := domain.Fuse(&domain.AIAssessment{}, &domain.CommitAnalysis{})

	md := renderer.Render(repo, final)

	assert.Contains(t, md, "## 🚩 RED FLAGS (0)")
	assert.Contains(t, md, "*No major red flags detected*")
	// 推荐语和两段推理缺失时都落在 N/A
	assert.Contains(t, md, "## 💡 HIRING RECOMMENDATION\n\nN/A")
	assert.Contains(t, md, "### Technical Complexity\nN/A")
	assert.Contains(t, md, "### Authenticity Assessment\nN/A")
}

func TestRender_FractionalScoresRounded(t *testing.T) {
	renderer := NewMarkdownRenderer()

	score := 65.5
	complexity := 6.7
	repo := &domain.RepoInfo{Owner: "o", Repo: "r", Name: "r"}
	final := domain.Fuse(&domain.AIAssessment{
		AIGeneratedScore:    45.4,
		ResumePaddingScore:  25.2,
		TechnicalComplexity: &complexity,
		AuthenticityScore:   &score,
	}, &domain.CommitAnalysis{})

	md := renderer.Render(repo, final)

	// 带小数的子评分在报告里取整展示
	assert.Contains(t, md, "| **AI-Generated Code** | 45/100 |")
	assert.Contains(t, md, "| **Technical Complexity** | 7/10 |")
	assert.Contains(t, md, "| **Resume Padding Risk** | 25/100 |")
	assert.Contains(t, md, "## 🎯 AUTHENTICITY SCORE: 65.5/100")
}

func TestRender_CategoryEmoji(t *testing.T) {
	tests := []struct {
		color string
		emoji string
	}{
		{"green", "✅"},
		{"yellow", "⚠️"},
		{"orange", "🚨"},
		{"red", "💀"},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.emoji, categoryEmoji(tt.color))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	renderer := NewMarkdownRenderer()
	repo, final := sampleInputs()

	first := renderer.Render(repo, final)
	second := renderer.Render(repo, final)
	assert.Equal(t, first, second)
}
