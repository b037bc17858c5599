package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github-repo-scanner/internal/adapter/analyzer"
	"github-repo-scanner/internal/adapter/feishu"
	"github-repo-scanner/internal/adapter/gemini"
	"github-repo-scanner/internal/adapter/github"
	"github-repo-scanner/internal/adapter/report"
	"github-repo-scanner/internal/common"
	"github-repo-scanner/internal/config"
	"github-repo-scanner/internal/port"
	"github-repo-scanner/internal/service"
)

func main() {
	// 1. 定义命令行参数
	repoURL := flag.String("url", "", "要分析的 GitHub 仓库地址，例如 https://github.com/octocat/Hello-World")
	apiKey := flag.String("key", "", "Gemini API Key (留空则使用 GEMINI_API_KEY 环境变量)")
	outPath := flag.String("out", "", "报告输出路径 (留空则默认 <repo>_report.md，传 - 表示不落盘)")
	timeout := flag.Int("timeout", 0, "单次分析超时秒数 (0 表示使用配置默认值)")
	flag.Parse()

	// 2. 加载配置 (.env + 环境变量)
	cfg := config.Load()

	if *repoURL == "" {
		fmt.Println("❌ 请用 -url 指定要分析的仓库地址")
		fmt.Println("例如: -url https://github.com/octocat/Hello-World")
		os.Exit(1)
	}

	// 凭证可以在调用时传入，也可以回落到配置
	// 两边都没有就属于前置条件失败，不会发起任何网络请求
	key := *apiKey
	if key == "" {
		key = cfg.GeminiAPIKey
	}
	if key == "" {
		fatalAppError(common.NewError(common.ErrCodeMissingCredential, "Gemini API Key 未配置 (用 -key 或 GEMINI_API_KEY)"))
	}

	timeoutSeconds := cfg.ScanTimeoutSeconds
	if *timeout > 0 {
		timeoutSeconds = *timeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	defer cancel()

	// 3. 初始化各个组件
	appraiser, err := gemini.NewGeminiAppraiser(ctx, key)
	if err != nil {
		log.Fatalf("❌ AI 初始化失败: %v", err)
	}

	fetcher := github.NewFetcher(cfg.GitHubToken)
	commitAnalyzer := analyzer.NewCommitAnalyzer()
	renderer := report.NewMarkdownRenderer()

	var notifier port.Notifier
	if cfg.FeishuWebhook != "" {
		notifier = feishu.NewNotifier(cfg.FeishuWebhook)
	}

	// 4. 执行分析
	scanService := service.NewScanService(fetcher, commitAnalyzer, appraiser, renderer, notifier)
	result, err := scanService.AnalyzeRepository(ctx, *repoURL)
	if err != nil {
		fatalAppError(err)
	}

	// 5. 输出结论
	fmt.Println("\n================ [ 分析结论 ] ================")
	fmt.Printf("🎯 真实性评分: %.1f/100\n", result.Final.AuthenticityScore)
	fmt.Printf("📌 分类: %s  |  风险: %s\n", result.Final.Category, result.Final.RiskLevel)
	if len(result.Final.RedFlags) > 0 {
		fmt.Printf("🚩 红旗 %d 条:\n", len(result.Final.RedFlags))
		for i, redFlag := range result.Final.RedFlags {
			fmt.Printf("   %d. %s\n", i+1, redFlag)
		}
	} else {
		fmt.Println("🚩 没有发现明显红旗")
	}
	fmt.Println("==============================================")

	// 6. 报告落盘
	path := reportPath(*outPath, result.Repo.Repo)
	if path != "" {
		if err := os.WriteFile(path, []byte(result.Report), 0644); err != nil {
			log.Fatalf("❌ 写报告文件失败: %v", err)
		}
		abs, _ := filepath.Abs(path)
		fmt.Printf("📄 报告已保存: %s\n", abs)
	}
}

// reportPath 决定报告文件名："-" 表示不落盘，空串走默认命名
func reportPath(outFlag, repoName string) string {
	switch outFlag {
	case "-":
		return ""
	case "":
		return fmt.Sprintf("%s_report.md", repoName)
	default:
		return outFlag
	}
}

// fatalAppError 把统一错误结构打印成一行描述后退出
func fatalAppError(err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		fmt.Printf("❌ [%s] %s\n", appErr.Code, appErr.Message)
	} else {
		fmt.Printf("❌ %v\n", err)
	}
	os.Exit(1)
}
