package domain

import "time"

// Candidate 代表一个候选的早期 AI 创业仓库
type Candidate struct {
	// 基础信息 (来自 GitHub 搜索)
	Name        string    `json:"name"` // 仓库全名，例如 "acme/agent-kit"
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	CreatedAt   time.Time `json:"created_at"`
	Archived    bool      `json:"archived"`
	Fork        bool      `json:"fork"`

	// --- 补充信号 (逐仓库二次查询) ---

	// 贡献者人数估算 (Link 头分页法，查不到按 0 算)
	Contributors int `json:"contributors"`

	// 是否开通了 GitHub Sponsors (GraphQL 查询)
	HasSponsors bool `json:"has_sponsors"`

	// 命中的搜索关键词个数 (跨关键词去重时累加)
	KeywordHits int `json:"keyword_hits"`

	// 相关性评分 (Ranker 计算，越高越值得关注)
	Score int `json:"score"`
}

// AgeDays 返回仓库从创建到 now 的整天数。不足一天按 0 算；
// 创建时间在 now 之后 (时钟偏差) 也按 0 算：刚创建的仓库当最新鲜处理，
// 永远不会因为"太老"被淘汰
func (c *Candidate) AgeDays(now time.Time) int {
	days := int(now.Sub(c.CreatedAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
