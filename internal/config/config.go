package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 运行期配置，全部来自环境变量
type Config struct {
	// Gemini API Key，分析流水线的前置条件
	GeminiAPIKey string

	// GitHub Personal Access Token (可选，空串就匿名访问，限制 60次/小时)
	GitHubToken string

	// 飞书 Webhook 地址 (可选，配置了才会推送结果卡片)
	FeishuWebhook string

	// 单次分析的整体超时时间 (秒)
	ScanTimeoutSeconds int
}

// Load 读取配置：先尝试加载 .env，再读环境变量
// .env 不存在不算错误，保持和直接 export 环境变量一致的体验
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GitHubToken:        os.Getenv("GITHUB_TOKEN"),
		FeishuWebhook:      os.Getenv("FEISHU_WEBHOOK"),
		ScanTimeoutSeconds: 120,
	}

	if v := os.Getenv("SCAN_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ScanTimeoutSeconds = n
		}
	}

	return cfg
}
