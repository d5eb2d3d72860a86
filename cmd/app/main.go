package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"ai-startup-radar/internal/adapter/github"
	"ai-startup-radar/internal/adapter/ranker"
	"ai-startup-radar/internal/adapter/sheets"
	"ai-startup-radar/internal/config"
	"ai-startup-radar/internal/service"
)

func main() {
	// 1. 定义命令行参数
	cronSpec := flag.String("cron", "", `定时表达式 (如 "0 8 * * *" 每天8点)，留空表示只执行一次`)
	timeout := flag.Int("timeout", 10, "单次周期的超时时间（分钟）")
	flag.Parse()

	// 2. 加载配置：四个环境变量缺一不可，在发出任何网络请求之前就失败
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ 配置加载失败: %v", err)
	}

	// 3. 组装流水线：搜索 → 补查 → 排名 → 写表
	fetcher := github.NewFetcher(cfg.GitHubToken)
	enricher := github.NewSponsorsEnricher(cfg.GitHubToken)
	repoRanker := ranker.NewRepoRanker()

	writer, err := sheets.NewWriter(context.Background(),
		[]byte(cfg.SheetsCredsJSON), cfg.SpreadsheetID, cfg.WorksheetTab)
	if err != nil {
		log.Fatalf("❌ Sheets 初始化失败: %v", err)
	}

	radar := service.NewRadarService(fetcher, enricher, repoRanker, writer)
	cycleTimeout := time.Duration(*timeout) * time.Minute

	// 4. 根据模式分流
	if *cronSpec != "" {
		// 定时执行模式
		runScheduledRadar(radar, *cronSpec, cycleTimeout)
		return
	}

	// 单次执行模式：失败就以非零状态退出，交给外部调度器的运行日志
	if err := executeRadarCycle(radar, cycleTimeout); err != nil {
		log.Fatalf("❌ 本轮雷达失败: %v", err)
	}
}

// executeRadarCycle 执行一次雷达周期，整个周期共用一个超时
func executeRadarCycle(radar *service.RadarService, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return radar.ExecuteRadarCycle(ctx)
}

// runScheduledRadar 运行定时雷达任务。
// 单次周期失败只记日志，调度照常继续；收到停止信号后优雅退出
func runScheduledRadar(radar *service.RadarService, spec string, timeout time.Duration) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := executeRadarCycle(radar, timeout); err != nil {
			log.Printf("❌ 本轮雷达失败: %v (等待下次调度)", err)
		}
	}); err != nil {
		log.Fatalf("❌ 定时表达式不合法 %q: %v", spec, err)
	}

	// 设置信号处理，优雅关闭
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	c.Start()
	fmt.Printf("⏰ 定时执行模式已启动: %s\n", spec)
	fmt.Println("按下 Ctrl+C 可以优雅停止程序")

	<-sigChan
	fmt.Println("\n👋 收到停止信号，正在退出...")
	<-c.Stop().Done()
}
