package github

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-startup-radar/internal/domain"

	"github.com/google/go-github/v53/github"
)

// EstimateContributors 估算单个仓库的贡献者人数。
// 技巧：per_page=1 时响应 Link 头里 rel="last" 的页码恰好等于总人数
// (go-github 已经解析成 resp.LastPage)，不用真把列表拉回来。
// 没有 Link 头说明总共不到一页，直接数本页条数。
func (f *Fetcher) EstimateContributors(ctx context.Context, fullName string) (int, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok {
		return 0, fmt.Errorf("仓库全名格式不正确: %q", fullName)
	}

	opts := &github.ListContributorsOptions{
		Anon:        "true",
		ListOptions: github.ListOptions{PerPage: 1},
	}
	contribs, resp, err := f.client.Repositories.ListContributors(ctx, owner, repo, opts)
	if err != nil {
		return 0, fmt.Errorf("获取 %s 贡献者列表失败: %w", fullName, err)
	}

	if resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(contribs), nil
}

// FillContributorCounts 逐个估算贡献者人数并回填到候选上。
// 单个仓库查不到只记日志按 0 处理，不拖垮整个批次；
// 每次查询之间停顿一下，免得触发滥用检测。
func (f *Fetcher) FillContributorCounts(ctx context.Context, cands []*domain.Candidate) error {
	for i, cand := range cands {
		count, err := f.EstimateContributors(ctx, cand.Name)
		if err != nil {
			log.Printf("[Fetcher] ⚠️ 估算 %s 贡献者人数失败: %v (按 0 算)", cand.Name, err)
			count = 0
		}
		cand.Contributors = count

		if i == len(cands)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.pace):
		}
	}
	return nil
}
