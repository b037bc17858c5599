package feishu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github-repo-scanner/internal/common"
	"github-repo-scanner/internal/domain"
)

// cardTemplate 按风险颜色选卡片头的配色
var cardTemplate = map[string]string{
	"green":  "green",
	"yellow": "yellow",
	"orange": "orange",
	"red":    "red",
}

type Notifier struct {
	webhookURL string
}

func NewNotifier(webhook string) *Notifier {
	if webhook == "" {
		log.Println("⚠️ 警告: 飞书 Webhook 为空，推送功能将无法工作！")
	}
	return &Notifier{webhookURL: webhook}
}

// Notify 把分析结论做成飞书卡片消息推送出去 (Schema 2.0)
// 属于分析流水线之外的附加步骤，失败由调用方决定是否忽略
func (n *Notifier) Notify(ctx context.Context, repo *domain.RepoInfo, final *domain.FinalAnalysis) error {
	if n.webhookURL == "" {
		return common.NewError(common.ErrCodeNotification, "Webhook URL 为空")
	}

	// 1. 准备标题
	title := fmt.Sprintf("🔍 仓库真实性分析: %s/%s", repo.Owner, repo.Repo)

	// 2. 构造 Markdown 内容
	flagBlock := "无"
	if len(final.RedFlags) > 0 {
		flagBlock = "- " + strings.Join(final.RedFlags, "\n- ")
	}

	mdContent := fmt.Sprintf(`**🎯 真实性评分:** %.1f/100  |  **分类:** %s  |  **风险:** %s
**⭐ Stars:** %d  |  **语言:** %s

**🚩 红旗 (%d):**
%s

**💡 招聘建议:**
%s
`,
		final.AuthenticityScore, final.Category, final.RiskLevel,
		repo.Stars, repo.Language,
		len(final.RedFlags),
		flagBlock,
		final.HiringRecommendation)

	// 3. 构造 Schema 2.0 JSON 结构
	payload := map[string]interface{}{
		"msg_type": "interactive",
		"card": map[string]interface{}{
			"schema": "2.0",
			"config": map[string]interface{}{
				"update_multi": true,
			},
			"header": map[string]interface{}{
				"title": map[string]interface{}{
					"tag":     "plain_text",
					"content": title,
				},
				"template": cardTemplate[final.Color],
			},
			"body": map[string]interface{}{
				"direction": "vertical",
				"elements": []map[string]interface{}{
					{
						"tag":       "markdown",
						"content":   mdContent,
						"text_size": "normal",
					},
					{
						"tag": "button",
						"text": map[string]interface{}{
							"tag":     "plain_text",
							"content": "🔗 查看仓库",
						},
						"type": "primary",
						"behaviors": []map[string]interface{}{
							{
								"type":        "open_url",
								"default_url": repo.HTMLURL(),
							},
						},
					},
				},
			},
		},
	}

	// 4. 发送请求 (带重试机制，这是整个系统里唯一会重试的外呼)
	body, _ := json.Marshal(payload)
	err := common.Do(ctx, func() error {
		resp, postErr := http.Post(n.webhookURL, "application/json", bytes.NewBuffer(body))
		if postErr != nil {
			return postErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return fmt.Errorf("飞书 API 报错: 状态码 %d", resp.StatusCode)
		}
		return nil
	},
		common.WithMaxRetries(3),
		common.WithInitialDelay(500*time.Millisecond),
	)
	if err != nil {
		return common.WrapError(common.ErrCodeNotification, "发送请求失败", err)
	}

	return nil
}
