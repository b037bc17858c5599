package common

import "fmt"

// AppError 应用级错误结构
// 整条流水线的错误都走这一种形状，调用方只需要展示 Message
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

// WrapError 包装底层错误
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
// 前五个对应流水线的五类终止性错误，都不会自动重试
const (
	ErrCodeInvalidURL        = "INVALID_URL"
	ErrCodeMissingCredential = "MISSING_CREDENTIAL"
	ErrCodeRepoNotFound      = "REPO_NOT_FOUND"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeGitHubAPI         = "GITHUB_API_ERROR"
	ErrCodeAIProcessing      = "AI_PROCESSING_ERROR"
	ErrCodeAIUnparsable      = "AI_UNPARSABLE"
	ErrCodeNotification      = "NOTIFICATION_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)
