package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"ai-startup-radar/internal/adapter/github"
	"ai-startup-radar/internal/adapter/ranker"
	"ai-startup-radar/internal/domain"
)

func main() {
	// 调试模式只走只读链路：搜索 + 打分，绝不碰 Google Sheets
	query := flag.String("q", domain.SearchKeywords[0], "搜索关键词")
	flag.Parse()

	// GH_TOKEN 可以不给：匿名访问限制 60次/小时，调试够用
	token := os.Getenv("GH_TOKEN")
	if token == "" {
		fmt.Println("⚠️ 未设置 GH_TOKEN，使用匿名访问 (限制 60次/小时)")
	}

	ctx := context.Background()

	// 初始化组件
	fetcher := github.NewFetcher(token)
	repoRanker := ranker.NewRepoRanker()

	fmt.Println("🔍 调试模式：搜索并排名候选仓库")

	// 1. 搜索单个关键词
	fmt.Printf("📥 正在搜索关键词 %s ...\n", *query)
	found, err := fetcher.SearchByKeyword(ctx, *query)
	if err != nil {
		log.Fatalf("❌ 搜索失败: %v", err)
	}
	fmt.Printf("✅ 搜索返回 %d 个结果\n", len(found))

	if len(found) == 0 {
		fmt.Println("❌ 没有搜到任何仓库，试试换个关键词")
		return
	}

	// 2. 补查贡献者人数 (只查前几个，省配额)
	sample := found
	if len(sample) > 10 {
		sample = sample[:10]
	}
	fmt.Printf("🔍 正在估算前 %d 个仓库的贡献者人数...\n", len(sample))
	if err := fetcher.FillContributorCounts(ctx, sample); err != nil {
		log.Printf("⚠️ 贡献者估算中断: %v", err)
	}

	// 3. 打分排名并打印榜单
	fmt.Println("🧮 开始打分排名...")
	ranked := repoRanker.Rank(sample)
	if len(ranked) == 0 {
		fmt.Println("❌ 所有候选都被淘汰了")
		return
	}

	fmt.Println("\n================ [ 候选榜单 ] ================")
	for i, c := range ranked {
		fmt.Printf("#%d %s (评分 %d)\n", i+1, c.Name, c.Score)
		fmt.Printf("    ⭐ %d stars | 🍴 %d forks | 👥 %d 贡献者 | 创建于 %s\n",
			c.Stars, c.Forks, c.Contributors, c.CreatedAt.Format("2006-01-02"))
		if c.Description != "" {
			fmt.Printf("    %s\n", c.Description)
		}
		fmt.Println()
	}
	fmt.Println("==============================================")
}
