package common

import "fmt"

// AppError 应用级错误结构
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(code, message string, err error) error {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewError 创建新错误
func NewError(code, message string) error {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// 错误码常量
const (
	ErrCodeConfig      = "CONFIG_ERROR"       // 环境变量缺失或非法
	ErrCodeGitHubAPI   = "GITHUB_API_ERROR"   // GitHub REST/GraphQL 调用失败
	ErrCodeSheetsAPI   = "SHEETS_API_ERROR"   // Google Sheets 调用失败
	ErrCodeEmptyResult = "EMPTY_RESULT"       // 搜索/排名结果为空
)
