package port

import (
	"context"

	"github-repo-scanner/internal/domain"
)

// Fetcher (采集员): 负责从 GitHub API 抓取仓库快照
// 主仓库信息失败即整体失败；提交/语言/README 失败时降级为空值
type Fetcher interface {
	FetchRepoData(ctx context.Context, repoURL string) (*domain.RepoInfo, error)
}

// Analyzer (分析员): 本地提交模式检查 + 最终评分融合，纯本地计算
type Analyzer interface {
	AnalyzeCommitPatterns(commits []domain.Commit) *domain.CommitAnalysis
	CalculateFinalScore(ai *domain.AIAssessment, commits *domain.CommitAnalysis) *domain.FinalAnalysis
}

// Appraiser (鉴定师): 负责调用 LLM 对仓库做结构化评估
type Appraiser interface {
	Appraise(ctx context.Context, repo *domain.RepoInfo) (*domain.AIAssessment, error)
}

// Renderer (报告员): 把分析结论渲染成 Markdown 报告
// 必须是纯函数：同样的输入永远产出字节级相同的报告
type Renderer interface {
	Render(repo *domain.RepoInfo, final *domain.FinalAnalysis) string
}

// Notifier (信使): 分析完成后把结论推送出去 (飞书 Webhook)
// 可选组件，推送失败不影响分析结果
type Notifier interface {
	Notify(ctx context.Context, repo *domain.RepoInfo, final *domain.FinalAnalysis) error
}
