package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github-repo-scanner/internal/adapter/analyzer"
	"github-repo-scanner/internal/adapter/github"
	"github-repo-scanner/internal/config"
)

// 调试入口：只跑抓取和本地提交分析，不需要 Gemini 凭证
func main() {
	if len(os.Args) < 2 {
		fmt.Println("用法: debug <仓库地址>")
		fmt.Println("例如: debug https://github.com/octocat/Hello-World")
		os.Exit(1)
	}
	repoURL := os.Args[1]

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ScanTimeoutSeconds)*time.Second)
	defer cancel()

	fetcher := github.NewFetcher(cfg.GitHubToken)
	commitAnalyzer := analyzer.NewCommitAnalyzer()

	fmt.Println("🔍 调试模式：只抓取数据并跑本地分析")

	// 1. 抓取仓库快照
	fmt.Printf("📥 正在抓取 %s ...\n", repoURL)
	repo, err := fetcher.FetchRepoData(ctx, repoURL)
	if err != nil {
		log.Fatalf("❌ 抓取失败: %v", err)
	}

	fmt.Printf("✅ 仓库: %s\n", repo.Name)
	fmt.Printf("   描述: %s\n", repo.Description)
	fmt.Printf("   ⭐ Stars: %d  |  Forks: %d  |  语言: %s\n", repo.Stars, repo.Forks, repo.Language)
	fmt.Printf("   提交: %d 条  |  README: %d 字符\n", len(repo.Commits), len([]rune(repo.Readme)))
	if len(repo.Languages) > 0 {
		fmt.Println("   语言分布:")
		for lang, bytes := range repo.Languages {
			fmt.Printf("     %s: %d bytes\n", lang, bytes)
		}
	}

	// 2. 本地提交模式分析
	fmt.Println("📊 正在分析提交模式...")
	result := commitAnalyzer.AnalyzeCommitPatterns(repo.Commits)

	fmt.Printf("   提交总数: %d\n", result.TotalCommits)
	fmt.Printf("   扣分: %d\n", result.PatternScore)
	if len(result.RedFlags) > 0 {
		fmt.Println("   红旗:")
		for _, redFlag := range result.RedFlags {
			fmt.Printf("     🚩 %s\n", redFlag)
		}
	} else {
		fmt.Println("   没有发现红旗")
	}
}
