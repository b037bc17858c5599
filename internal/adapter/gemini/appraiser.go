package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github-repo-scanner/internal/common"
	"github-repo-scanner/internal/domain"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	modelName       = "gemini-2.5-flash-lite"
	temperature     = 0.3 // 低温度，倾向确定性输出
	maxOutputTokens = 2000

	// 喂给 Prompt 的数据上限，节省 Token
	maxPromptCommits     = 10
	maxPromptReadmeChars = 2000
)

type GeminiAppraiser struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiAppraiser(ctx context.Context, apiKey string) (*GeminiAppraiser, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxOutputTokens)
	// 强制要求返回 JSON，降低解析错误的概率
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are a code analyst. Respond with valid JSON only.")},
	}

	return &GeminiAppraiser{
		client: client,
		model:  model,
	}, nil
}

// Appraise 把仓库快照喂给 AI，拿回结构化的真实性评估
func (g *GeminiAppraiser) Appraise(ctx context.Context, repo *domain.RepoInfo) (*domain.AIAssessment, error) {
	prompt := buildPrompt(repo)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, common.WrapError(common.ErrCodeAIProcessing, "AI analysis failed", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, common.NewError(common.ErrCodeAIProcessing, "AI returned empty response")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, common.NewError(common.ErrCodeAIProcessing, "AI returned unexpected content type")
	}

	return parseAIResponse(string(text))
}

// buildPrompt 渲染固定的分析 Prompt
// 模板是确定性的：同一个快照永远生成同一段 Prompt
func buildPrompt(repo *domain.RepoInfo) string {
	description := repo.Description
	if description == "" {
		description = "No description"
	}

	language := repo.Language
	if language == "" {
		language = "Unknown"
	}

	// 先取前 10 条提交再剔除空消息，空消息不会让后面的提交顶上来
	recent := repo.Commits
	if len(recent) > maxPromptCommits {
		recent = recent[:maxPromptCommits]
	}
	var commitMsgs []string
	for _, c := range recent {
		if c.Message != "" {
			commitMsgs = append(commitMsgs, c.Message)
		}
	}
	commitBlock := "No commits"
	if len(commitMsgs) > 0 {
		commitBlock = strings.Join(commitMsgs, "\n")
	}

	readme := repo.Readme
	if readme == "" {
		readme = "No README"
	}
	if runes := []rune(readme); len(runes) > maxPromptReadmeChars {
		readme = string(runes[:maxPromptReadmeChars])
	}

	return fmt.Sprintf(`Analyze this GitHub repository for authenticity and technical complexity.

Repository: %s
Description: %s
Language: %s
Stars: %d

Recent Commits:
%s

README:
%s

Analyze:
1. AI-Generated Code Score (0-100)
2. Resume Padding Score (0-100)
3. Technical Complexity (1-10)
4. Authenticity Score (0-100)

Respond with ONLY valid JSON:
{
    "ai_generated_score": 45,
    "ai_indicators": ["indicator1", "indicator2"],
    "resume_padding_score": 30,
    "padding_indicators": ["indicator1"],
    "technical_complexity": 5,
    "complexity_reasoning": "explanation",
    "authenticity_score": 65,
    "authenticity_reasoning": "explanation",
    "overall_assessment": "SUSPICIOUS",
    "red_flags": ["flag1", "flag2"],
    "hiring_recommendation": "recommendation"
}`, repo.Name, description, language, repo.Stars, commitBlock, readme)
}

// parseAIResponse 解析 AI 返回的文本
// 先去掉 Markdown 代码栅栏直接解析；失败再智能寻找 JSON 的起止位置
// 即使 AI 返回 "```json { ... } ```" 或者前后带闲聊，也能精准抠出中间的 { ... }
func parseAIResponse(raw string) (*domain.AIAssessment, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var assessment domain.AIAssessment
	if err := json.Unmarshal([]byte(cleaned), &assessment); err == nil {
		return &assessment, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, common.NewError(common.ErrCodeAIUnparsable, "Could not parse response")
	}

	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &assessment); err != nil {
		return nil, common.WrapError(common.ErrCodeAIUnparsable, "Could not parse response", err)
	}

	return &assessment, nil
}
