package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("FEISHU_WEBHOOK", "")
	t.Setenv("SCAN_TIMEOUT_SECONDS", "")

	cfg := Load()
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.GitHubToken)
	assert.Empty(t, cfg.FeishuWebhook)
	assert.Equal(t, 120, cfg.ScanTimeoutSeconds)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("GITHUB_TOKEN", "test-github-token")
	t.Setenv("FEISHU_WEBHOOK", "https://open.feishu.cn/hook/xxx")
	t.Setenv("SCAN_TIMEOUT_SECONDS", "60")

	cfg := Load()
	assert.Equal(t, "test-gemini-key", cfg.GeminiAPIKey)
	assert.Equal(t, "test-github-token", cfg.GitHubToken)
	assert.Equal(t, "https://open.feishu.cn/hook/xxx", cfg.FeishuWebhook)
	assert.Equal(t, 60, cfg.ScanTimeoutSeconds)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"非数字", "abc"},
		{"零值", "0"},
		{"负数", "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCAN_TIMEOUT_SECONDS", tt.value)
			cfg := Load()
			// 非法值回落到默认的 120 秒
			assert.Equal(t, 120, cfg.ScanTimeoutSeconds)
		})
	}
}
