package port

import (
	"context"

	"ai-startup-radar/internal/domain"
)

// Scouter (侦察兵): 负责调 GitHub 搜索 API 发现候选仓库，
// 顺带补上搜索结果里拿不到的贡献者人数
type Scouter interface {
	// 按单个关键词搜索，返回原始候选列表 (未去重)
	SearchByKeyword(ctx context.Context, keyword string) ([]*domain.Candidate, error)

	// 逐个估算贡献者人数并回填 (单个失败按 0 算，不中断批次)
	FillContributorCounts(ctx context.Context, cands []*domain.Candidate) error
}

// Enricher (情报员): 负责补齐 REST 搜索拿不到的信号，
// 目前只有一个：仓库是否开通了 GitHub Sponsors
type Enricher interface {
	EnrichSponsors(ctx context.Context, cands []*domain.Candidate) error
}

// Ranker (评委): 打分、淘汰、排序，产出最终榜单。
// 纯内存计算，不做任何网络调用
type Ranker interface {
	Rank(cands []*domain.Candidate) []*domain.Candidate
}

// Publisher (发布员): 把榜单整体发布出去。
// 目前的实现是 Google Sheets 整表覆盖
type Publisher interface {
	Publish(ctx context.Context, cands []*domain.Candidate) error
}
