package github

import (
	"context"
	"log"
	"strings"
	"time"

	"ai-startup-radar/internal/domain"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// GraphQLClient 抽象 githubv4 客户端的 Query 方法，测试时注入 mock
type GraphQLClient interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}) error
}

// sponsorsQuery 只查一个字段：仓库是否上架了 GitHub Sponsors
type sponsorsQuery struct {
	Repository struct {
		HasSponsorsListing githubv4.Boolean
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// SponsorsEnricher 实现了 port.Enricher 接口。
// REST 搜索结果里没有 Sponsors 字段，只能走 GraphQL 逐仓库补查
type SponsorsEnricher struct {
	client GraphQLClient
	pace   time.Duration
}

// NewSponsorsEnricher 初始化 GraphQL 客户端。
// GraphQL 接口不支持匿名访问，token 必须有效
func NewSponsorsEnricher(token string) *SponsorsEnricher {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &SponsorsEnricher{
		client: githubv4.NewClient(tc),
		pace:   courtesyDelay,
	}
}

// EnrichSponsors 逐个查询 hasSponsorsListing 并回填。
// 单个仓库查询失败只记日志 (不加成就是了)，不中断整个批次
func (e *SponsorsEnricher) EnrichSponsors(ctx context.Context, cands []*domain.Candidate) error {
	for i, cand := range cands {
		owner, name, ok := strings.Cut(cand.Name, "/")
		if !ok {
			log.Printf("[Enricher] ⚠️ 仓库全名格式不正确: %q", cand.Name)
			continue
		}

		var q sponsorsQuery
		variables := map[string]interface{}{
			"owner": githubv4.String(owner),
			"name":  githubv4.String(name),
		}
		if err := e.client.Query(ctx, &q, variables); err != nil {
			log.Printf("[Enricher] ⚠️ 查询 %s 的 Sponsors 状态失败: %v", cand.Name, err)
			continue
		}
		cand.HasSponsors = bool(q.Repository.HasSponsorsListing)

		if i == len(cands)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.pace):
		}
	}
	return nil
}
