package sheets

import (
	"context"
	"fmt"
	"strconv"

	"ai-startup-radar/internal/common"
	"ai-startup-radar/internal/domain"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// 表头行，列顺序是下游看板约定好的，别随手调
var headerRow = []interface{}{"name", "url", "created", "stars", "score", "description"}

// Writer 实现了 port.Publisher 接口。
// 每次运行整表覆盖：先清空工作表，再从 A1 写表头和榜单
type Writer struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

// NewWriter 用服务账号凭证 (原始 JSON) 初始化 Sheets 客户端
func NewWriter(ctx context.Context, credsJSON []byte, spreadsheetID, tab string) (*Writer, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, common.WrapError(common.ErrCodeSheetsAPI, "初始化 Sheets 客户端失败", err)
	}

	return &Writer{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}, nil
}

// Publish 把榜单写进工作表。
// 认证、配额、权限问题都直接报错返回：写表是整条流水线的最后一步，
// 这里失败就让本次运行整个失败，没有部分恢复
func (w *Writer) Publish(ctx context.Context, cands []*domain.Candidate) error {
	// 1. 清掉上一次的榜单 (行数可能比这次多，不清会留尾巴)
	clearRange := fmt.Sprintf("%s!A:Z", w.tab)
	_, err := w.svc.Spreadsheets.Values.Clear(w.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return common.WrapError(common.ErrCodeSheetsAPI, "清空工作表失败", err)
	}

	// 2. 表头 + 榜单一次写入，所有值都当字符串，避免表格自作聪明转格式
	values := make([][]interface{}, 0, len(cands)+1)
	values = append(values, headerRow)
	for _, c := range cands {
		values = append(values, []interface{}{
			c.Name,
			c.URL,
			c.CreatedAt.Format("2006-01-02"),
			strconv.Itoa(c.Stars),
			strconv.Itoa(c.Score),
			c.Description,
		})
	}

	body := &sheets.ValueRange{Values: values}
	_, err = w.svc.Spreadsheets.Values.Update(w.spreadsheetID, fmt.Sprintf("%s!A1", w.tab), body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return common.WrapError(common.ErrCodeSheetsAPI, "写入榜单失败", err)
	}

	return nil
}
