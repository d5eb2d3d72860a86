package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-startup-radar/internal/common"
	"ai-startup-radar/internal/domain"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

// 限流后固定冷却一分钟，只重试一次。搜索 API 的限流窗口按分钟重置，
// 等不到就让整次运行失败，交给下一次调度
const rateLimitCooldown = time.Minute

// 逐仓库二次查询之间的礼貌性停顿
const courtesyDelay = 200 * time.Millisecond

// IsRateLimit 判断是否为 GitHub 限流错误 (主限流 / 滥用检测都算)
func IsRateLimit(err error) bool {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &rateErr) || errors.As(err, &abuseErr)
}

// Fetcher 实现了 port.Scouter 接口
type Fetcher struct {
	client *github.Client

	// 测试注入点：当前时间 / 限流冷却 / 批次停顿
	nowFunc  func() time.Time
	cooldown time.Duration
	pace     time.Duration
}

// NewFetcher 初始化 GitHub 客户端
// token: GitHub Personal Access Token (如果是空字符串，就是匿名访问，限制 60次/小时)
func NewFetcher(token string) *Fetcher {
	var client *github.Client

	if token == "" {
		client = github.NewClient(nil)
	} else {
		ctx := context.Background()
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc := oauth2.NewClient(ctx, ts)
		client = github.NewClient(tc)
	}

	return &Fetcher{
		client:   client,
		nowFunc:  time.Now,
		cooldown: rateLimitCooldown,
		pace:     courtesyDelay,
	}
}

// buildQuery 拼出单个关键词的完整搜索串。
// topic 限定 + 关键词 + 一年时间窗 + star/fork 上限 + 非 fork 非归档
func (f *Fetcher) buildQuery(keyword string) string {
	since := f.nowFunc().UTC().AddDate(0, 0, -domain.WindowDays).Format("2006-01-02")
	return fmt.Sprintf("%s %s in:readme,description created:>=%s stars:<%d forks:<%d fork:false archived:false",
		domain.TopicQualifiers, keyword, since, domain.MaxStars, domain.MaxForks)
}

// SearchByKeyword 按单个关键词搜索候选仓库，自动翻页 (最多 MaxSearchPages 页)。
// star 升序：越没人发现的越靠前，正好符合"找早期项目"的目标
func (f *Fetcher) SearchByKeyword(ctx context.Context, keyword string) ([]*domain.Candidate, error) {
	query := f.buildQuery(keyword)
	opts := &github.SearchOptions{
		Sort:  "stars",
		Order: "asc",
		ListOptions: github.ListOptions{
			PerPage: domain.SearchPerPage,
		},
	}

	var cands []*domain.Candidate
	for page := 0; page < domain.MaxSearchPages; page++ {
		var result *github.RepositoriesSearchResult
		var resp *github.Response
		err := common.Do(ctx, func() error {
			var apiErr error
			result, resp, apiErr = f.client.Search.Repositories(ctx, query, opts)
			return apiErr
		},
			common.WithMaxRetries(1),
			common.WithInitialDelay(f.cooldown),
			// 默认的 maxDelay (30秒) 比冷却时间短，会把第一次重试
			// 提前到限流窗口还没重置的时候，必须一起抬高
			common.WithMaxDelay(f.cooldown),
			common.WithRetryIf(IsRateLimit),
		)
		if err != nil {
			return nil, common.WrapError(common.ErrCodeGitHubAPI, "GitHub API 调用失败", err)
		}

		for _, item := range result.Repositories {
			cands = append(cands, toCandidate(item))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return cands, nil
}

// toCandidate 将 GitHub 的数据结构转换为我们的 Domain 实体 (DTO 转换)
func toCandidate(item *github.Repository) *domain.Candidate {
	return &domain.Candidate{
		Name:        item.GetFullName(),
		URL:         item.GetHTMLURL(),
		Description: item.GetDescription(),
		Language:    item.GetLanguage(),
		Stars:       item.GetStargazersCount(),
		Forks:       item.GetForksCount(),
		CreatedAt:   item.GetCreatedAt().Time,
		Archived:    item.GetArchived(),
		Fork:        item.GetFork(),
		// 每条结果算命中一次关键词，跨关键词去重时再累加
		KeywordHits: 1,
	}
}
