package service

import (
	"context"
	"fmt"
	"log"

	"github-repo-scanner/internal/domain"
	"github-repo-scanner/internal/port"
)

// ScanService 串起整条分析流水线：
// 抓取 -> 本地提交分析 -> AI 评估 -> 评分融合 -> 报告渲染
// 严格线性，抓取或 AI 失败就立刻带错误退出，其余环节必定跑到底
type ScanService struct {
	fetcher   port.Fetcher
	analyzer  port.Analyzer
	appraiser port.Appraiser
	renderer  port.Renderer
	notifier  port.Notifier // 可以为 nil，表示不推送
}

// NewScanService 创建新的扫描服务
func NewScanService(
	fetcher port.Fetcher,
	analyzer port.Analyzer,
	appraiser port.Appraiser,
	renderer port.Renderer,
	notifier port.Notifier,
) *ScanService {
	return &ScanService{
		fetcher:   fetcher,
		analyzer:  analyzer,
		appraiser: appraiser,
		renderer:  renderer,
		notifier:  notifier,
	}
}

// AnalyzeRepository 执行一次完整分析
func (s *ScanService) AnalyzeRepository(ctx context.Context, repoURL string) (*domain.AnalysisResult, error) {
	fmt.Printf("🔍 开始分析: %s\n", repoURL)

	// 1. 抓取仓库快照 (失败即终止)
	fmt.Println("📥 正在抓取仓库数据...")
	repo, err := s.fetcher.FetchRepoData(ctx, repoURL)
	if err != nil {
		return nil, err
	}
	fmt.Printf("✅ 抓取完成: %s (⭐ %d, %d 条提交)\n", repo.Name, repo.Stars, len(repo.Commits))

	// 2. 本地提交模式分析 (纯本地，不会失败)
	fmt.Println("📊 正在分析提交模式...")
	commitAnalysis := s.analyzer.AnalyzeCommitPatterns(repo.Commits)
	fmt.Printf("✅ 提交分析完成: %d 条红旗, 扣 %d 分\n", len(commitAnalysis.RedFlags), commitAnalysis.PatternScore)

	// 3. AI 评估 (失败即终止)
	fmt.Println("🤖 正在进行 AI 分析...")
	assessment, err := s.appraiser.Appraise(ctx, repo)
	if err != nil {
		return nil, err
	}
	fmt.Println("✅ AI 分析完成")

	// 4. 评分融合 (纯计算，永远成功)
	fmt.Println("🎯 正在计算最终评分...")
	final := s.analyzer.CalculateFinalScore(assessment, commitAnalysis)
	fmt.Printf("✅ 最终评分: %.1f/100 (%s)\n", final.AuthenticityScore, final.Category)

	// 5. 报告渲染
	fmt.Println("📄 正在生成报告...")
	reportText := s.renderer.Render(repo, final)

	// 6. 可选推送，失败只记日志，不影响分析结果
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, repo, final); err != nil {
			log.Printf("⚠️ 推送分析结果失败: %v", err)
		} else {
			fmt.Println("📲 已推送分析结果")
		}
	}

	return &domain.AnalysisResult{
		Repo:   repo,
		Final:  final,
		Report: reportText,
	}, nil
}
