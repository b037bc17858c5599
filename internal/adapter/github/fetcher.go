package github

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github-repo-scanner/internal/common"
	"github-repo-scanner/internal/domain"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

const (
	// 每个 GitHub 请求的超时时间
	requestTimeout = 10 * time.Second

	// 提交列表和 README 的截断上限
	maxCommits     = 20
	maxReadmeChars = 5000
)

// Fetcher 实现了 port.Fetcher 接口
type Fetcher struct {
	client *github.Client
}

// NewFetcher 初始化 GitHub 客户端
// token: GitHub Personal Access Token (如果是空字符串，就是匿名访问，限制 60次/小时)
func NewFetcher(token string) *Fetcher {
	var httpClient *http.Client

	if token == "" {
		httpClient = &http.Client{Timeout: requestTimeout}
	} else {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = requestTimeout
	}

	return &Fetcher{client: github.NewClient(httpClient)}
}

// ParseRepoURL 从仓库 URL 中解析 owner 和 repo
// 规则：去掉尾部斜杠后按 "/" 切分，取最后两段
// 例如 "https://github.com/octocat/Hello-World" -> ("octocat", "Hello-World")
func ParseRepoURL(repoURL string) (owner, repo string, err error) {
	parts := strings.Split(strings.TrimRight(repoURL, "/"), "/")
	if len(parts) < 2 {
		return "", "", common.NewError(common.ErrCodeInvalidURL, "Invalid GitHub URL")
	}

	owner = parts[len(parts)-2]
	repo = parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", common.NewError(common.ErrCodeInvalidURL, "Invalid GitHub URL")
	}
	return owner, repo, nil
}

// FetchRepoData 抓取完整的仓库快照
// 主仓库信息是必须的，拿不到就整体失败；
// 提交列表、语言分布、README 都是尽力而为，失败时降级为空值
func (f *Fetcher) FetchRepoData(ctx context.Context, repoURL string) (*domain.RepoInfo, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	// 1. 仓库基础信息 (必须成功)
	repoData, _, err := f.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, mapGitHubError(err)
	}

	info := &domain.RepoInfo{
		Owner:       owner,
		Repo:        repo,
		Name:        repoData.GetName(),
		Description: repoData.GetDescription(),
		Stars:       repoData.GetStargazersCount(),
		Forks:       repoData.GetForksCount(),
		Language:    repoData.GetLanguage(),
		CreatedAt:   repoData.GetCreatedAt().Time,
		UpdatedAt:   repoData.GetUpdatedAt().Time,
		Languages:   map[string]int{},
	}

	// 2. 提交列表 (尽力而为)
	commits, _, err := f.client.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: maxCommits},
	})
	if err == nil {
		for _, c := range commits {
			info.Commits = append(info.Commits, domain.Commit{
				SHA:     c.GetSHA(),
				Message: c.GetCommit().GetMessage(),
			})
			if len(info.Commits) >= maxCommits {
				break
			}
		}
	}

	// 3. 语言分布 (尽力而为)
	languages, _, err := f.client.Repositories.ListLanguages(ctx, owner, repo)
	if err == nil && languages != nil {
		info.Languages = languages
	}

	// 4. README (尽力而为，go-github 已经做了 base64 解码)
	readme, _, err := f.client.Repositories.GetReadme(ctx, owner, repo, nil)
	if err == nil {
		if content, decodeErr := readme.GetContent(); decodeErr == nil {
			info.Readme = truncateRunes(content, maxReadmeChars)
		}
	}

	return info, nil
}

// mapGitHubError 把 go-github 的错误映射到统一的错误码
func mapGitHubError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return common.WrapError(common.ErrCodeRateLimited, "Rate limit exceeded. Wait 1 hour.", err)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return common.WrapError(common.ErrCodeRateLimited, "Rate limit exceeded. Wait 1 hour.", err)
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return common.WrapError(common.ErrCodeRepoNotFound, "Repository not found", err)
		case http.StatusForbidden:
			return common.WrapError(common.ErrCodeRateLimited, "Rate limit exceeded. Wait 1 hour.", err)
		}
	}

	return common.WrapError(common.ErrCodeGitHubAPI, "Failed to fetch repo", err)
}

// truncateRunes 按字符数截断，避免把多字节字符截成半个
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
