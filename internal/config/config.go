// Package config 集中管理环境变量。业务代码不直接读环境，
// 统一从这里拿到一份校验过的 Config。
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ai-startup-radar/internal/common"
)

// Config 保存一次运行需要的全部外部配置
type Config struct {
	// GitHub Personal Access Token (公开仓库只读权限即可)
	GitHubToken string

	// Google 服务账号凭证，原始 JSON 字符串 (直接塞在 Secret 里)
	SheetsCredsJSON string

	// 目标表格 ID 与工作表 (tab) 名
	SpreadsheetID string
	WorksheetTab  string
}

// Load 读取环境变量 (以及可选的 .env 文件) 并构建 Config。
// 四个变量缺一不可：在发出任何网络请求之前就报错。
func Load() (Config, error) {
	// .env 不存在时 Load 是空操作，生产环境不受影响
	_ = godotenv.Load()

	cfg := Config{
		GitHubToken:     os.Getenv("GH_TOKEN"),
		SheetsCredsJSON: os.Getenv("GS_CREDS_JSON"),
		SpreadsheetID:   os.Getenv("GSHEET_ID"),
		WorksheetTab:    os.Getenv("GSHEET_TAB"),
	}

	var missing []string
	if cfg.GitHubToken == "" {
		missing = append(missing, "GH_TOKEN")
	}
	if cfg.SheetsCredsJSON == "" {
		missing = append(missing, "GS_CREDS_JSON")
	}
	if cfg.SpreadsheetID == "" {
		missing = append(missing, "GSHEET_ID")
	}
	if cfg.WorksheetTab == "" {
		missing = append(missing, "GSHEET_TAB")
	}
	if len(missing) > 0 {
		return Config{}, common.NewError(common.ErrCodeConfig,
			fmt.Sprintf("缺少必须的环境变量: %s", strings.Join(missing, ", ")))
	}

	return cfg, nil
}
