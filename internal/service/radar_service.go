package service

import (
	"context"
	"fmt"
	"log"

	"ai-startup-radar/internal/common"
	"ai-startup-radar/internal/domain"
	"ai-startup-radar/internal/port"
)

// RadarService 串起一次完整的雷达周期：搜索 → 补查 → 排名 → 发布
type RadarService struct {
	scouter   port.Scouter
	enricher  port.Enricher
	ranker    port.Ranker
	publisher port.Publisher
}

// NewRadarService 创建新的雷达服务
func NewRadarService(
	scouter port.Scouter,
	enricher port.Enricher,
	ranker port.Ranker,
	publisher port.Publisher,
) *RadarService {
	return &RadarService{
		scouter:   scouter,
		enricher:  enricher,
		ranker:    ranker,
		publisher: publisher,
	}
}

// ExecuteRadarCycle 执行一次雷达周期。
// 单个关键词搜索失败只告警继续；全部搜不到、榜单为空、写表失败是致命错误
func (s *RadarService) ExecuteRadarCycle(ctx context.Context) error {
	fmt.Println("🚀 [雷达模式] 开始搜寻早期 AI 创业仓库...")

	// 1. 数据源 (Scouter)：逐关键词搜索，按仓库全名去重。
	// 保留首次出现的那份数据，重复命中只累加 KeywordHits
	seen := make(map[string]*domain.Candidate)
	var candidates []*domain.Candidate
	for _, keyword := range domain.SearchKeywords {
		fmt.Printf("📥 正在搜索关键词 %s ...\n", keyword)
		found, err := s.scouter.SearchByKeyword(ctx, keyword)
		if err != nil {
			log.Printf("⚠️ 关键词 %s 搜索失败: %v，继续下一个", keyword, err)
			continue
		}

		fresh := 0
		for _, cand := range found {
			if dup, ok := seen[cand.Name]; ok {
				dup.KeywordHits++
				continue
			}
			seen[cand.Name] = cand
			candidates = append(candidates, cand)
			fresh++
		}
		fmt.Printf("✅ 关键词 %s 返回 %d 个结果，新增 %d 个\n", keyword, len(found), fresh)
	}

	if len(candidates) == 0 {
		return common.NewError(common.ErrCodeEmptyResult, "一个候选仓库都没搜到，考虑放宽过滤条件")
	}
	fmt.Printf("📊 去重后共 %d 个候选仓库\n", len(candidates))

	// 2. 补查贡献者人数 (Link 头估算，单个失败按 0 算)
	fmt.Println("🔍 正在估算贡献者人数...")
	if err := s.scouter.FillContributorCounts(ctx, candidates); err != nil {
		log.Printf("⚠️ 贡献者估算中断: %v", err)
	}

	// 3. 补查 Sponsors 信号 (GraphQL)
	if s.enricher != nil {
		fmt.Println("💖 正在查询 Sponsors 状态...")
		if err := s.enricher.EnrichSponsors(ctx, candidates); err != nil {
			log.Printf("⚠️ Sponsors 查询中断: %v", err)
		}
	} else {
		log.Println("⚠️ 未配置 Enricher，跳过 Sponsors 查询")
	}

	// 4. 打分排名 (Ranker)
	fmt.Println("🧮 开始打分排名...")
	ranked := s.ranker.Rank(candidates)
	if len(ranked) == 0 {
		return common.NewError(common.ErrCodeEmptyResult, "所有候选都被淘汰，榜单为空，跳过写表")
	}
	fmt.Printf("✅ 榜单生成完毕，共 %d 名\n", len(ranked))

	// 5. 发布 (Publisher)：整表覆盖写入
	fmt.Println("📤 正在写入 Google Sheets...")
	if err := s.publisher.Publish(ctx, ranked); err != nil {
		return fmt.Errorf("发布榜单失败: %w", err)
	}

	fmt.Printf("🎉 本轮雷达完成，已推送 %d 行\n", len(ranked))
	return nil
}
