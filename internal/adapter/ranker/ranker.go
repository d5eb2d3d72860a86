package ranker

import (
	"log"
	"sort"
	"time"

	"ai-startup-radar/internal/domain"
)

// RepoRanker 实现了 port.Ranker 接口。
// 纯内存计算：淘汰、打分、排序都不碰网络
type RepoRanker struct {
	nowFunc func() time.Time
}

// NewRepoRanker 创建新的排名器实例
func NewRepoRanker() *RepoRanker {
	return &RepoRanker{
		nowFunc: time.Now, // 便于测试注入当前时间
	}
}

func (r *RepoRanker) now() time.Time {
	if r != nil && r.nowFunc != nil {
		return r.nowFunc()
	}
	return time.Now()
}

// Score 计算单个候选的相关性评分。
// star 越少越早期，创建越晚越新鲜；开了 Sponsors 说明作者认真经营；
// 命中多个关键词说明描述高度相关。分数不会是负数。
func (r *RepoRanker) Score(c *domain.Candidate) int {
	return scoreAt(c, r.now())
}

func scoreAt(c *domain.Candidate, now time.Time) int {
	score := (domain.MaxStars - c.Stars) + (domain.WindowDays - c.AgeDays(now))
	if c.HasSponsors {
		score += domain.SponsorBonus
	}
	if c.KeywordHits > 1 {
		score += domain.KeywordHitBonus * (c.KeywordHits - 1)
	}
	if score < 0 {
		return 0
	}
	return score
}

// Disqualified 返回候选是否带有淘汰信号，以及信号名 (用于日志)。
// 搜索串里虽然带了同样的限定，这里还是本地再核对一遍：
// 搜索索引可能滞后于仓库的真实状态，贡献者人数搜索端也限定不了
func (r *RepoRanker) Disqualified(c *domain.Candidate) (bool, string) {
	return disqualifiedAt(c, r.now())
}

func disqualifiedAt(c *domain.Candidate, now time.Time) (bool, string) {
	switch {
	case c.Archived:
		return true, "已归档"
	case c.Fork:
		return true, "是 fork"
	case c.AgeDays(now) > domain.WindowDays:
		return true, "创建超过一年"
	case c.Contributors >= domain.MaxContributors:
		return true, "贡献者太多"
	case c.Stars >= domain.MaxStars:
		return true, "star 太多"
	case c.Forks >= domain.MaxForks:
		return true, "fork 太多"
	}
	return false, ""
}

// Rank 淘汰、打分、排序，返回前 ResultTarget 名。
// 输入切片不会被重排；同样的输入怎么跑结果都一样：
// 同分按创建时间新的在前，再同按名字排，保证全序
func (r *RepoRanker) Rank(cands []*domain.Candidate) []*domain.Candidate {
	now := r.now()

	qualified := make([]*domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if bad, reason := disqualifiedAt(c, now); bad {
			log.Printf("[Ranker] 淘汰 %s: %s", c.Name, reason)
			continue
		}
		c.Score = scoreAt(c, now)
		qualified = append(qualified, c)
	}

	sort.Slice(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Name < b.Name
	})

	if len(qualified) > domain.ResultTarget {
		qualified = qualified[:domain.ResultTarget]
	}
	return qualified
}
