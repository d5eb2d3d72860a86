package domain

// 搜索与评分用到的全部阈值。想调整"什么算早期项目"只需要改这里。
const (
	// 硬性上限：star/fork/贡献者太多说明已经不是早期阶段了
	MaxStars        = 200
	MaxForks        = 50
	MaxContributors = 20

	// 时间窗口：只看最近一年内创建的仓库
	WindowDays = 365

	// 榜单长度：写入表格的条数上限
	ResultTarget = 30

	// GitHub 搜索 API 的单页上限是 100，再多翻也没有意义：
	// 结果按 star 升序，后面的页离"早期"越来越远
	SearchPerPage  = 100
	MaxSearchPages = 3

	// 评分加成
	SponsorBonus    = 50 // 开通了 Sponsors：作者有认真经营的意思
	KeywordHitBonus = 25 // 每多命中一个关键词，加一档
)

// TopicQualifiers 限定搜索范围的 topic 组合，缺一个都会放进太多无关仓库
const TopicQualifiers = "topic:ai topic:machine-learning topic:deep-learning topic:generative-ai"

// SearchKeywords 早期创业公司在 README/描述里爱用的黑话。
// 带引号的是整词匹配，"YC W" 能扫到 YC 各届冬季批次 (W24/W25/...)
var SearchKeywords = []string{
	`"pre-seed"`,
	`"seed round"`,
	"MVP",
	`"early stage"`,
	`"YC W"`,
}
