package errors

import (
	"errors"
	"fmt"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	// ErrTypeUnknown 未知错误
	ErrTypeUnknown ErrorType = iota
	// ErrTypeNotFound 项目不存在
	ErrTypeNotFound
	// ErrTypeAlreadyExists 项目已存在
	ErrTypeAlreadyExists
	// ErrTypeNoCurrentProject 未选择当前项目
	ErrTypeNoCurrentProject
	// ErrTypeCommandNotFound 当前项目中没有该命令
	ErrTypeCommandNotFound
	// ErrTypeMissingURL 命令未配置 URL
	ErrTypeMissingURL
	// ErrTypePromptUnavailable 当前环境无法渲染交互式提示
	ErrTypePromptUnavailable
	// ErrTypePromptCancelled 用户取消了交互式提示
	ErrTypePromptCancelled
	// ErrTypeConfig 配置文件读写错误
	ErrTypeConfig
	// ErrTypeLaunch 浏览器启动错误
	ErrTypeLaunch
	// ErrTypeValidation 验证错误
	ErrTypeValidation
)

// String returns a short lowercase name used in debug logs.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeNotFound:
		return "not_found"
	case ErrTypeAlreadyExists:
		return "already_exists"
	case ErrTypeNoCurrentProject:
		return "no_current_project"
	case ErrTypeCommandNotFound:
		return "command_not_found"
	case ErrTypeMissingURL:
		return "missing_url"
	case ErrTypePromptUnavailable:
		return "prompt_unavailable"
	case ErrTypePromptCancelled:
		return "prompt_cancelled"
	case ErrTypeConfig:
		return "config"
	case ErrTypeLaunch:
		return "launch"
	case ErrTypeValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// SwitchError 统一错误结构
type SwitchError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
}

// Error 实现 error 接口
func (e *SwitchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap 支持 errors.Is 和 errors.As
func (e *SwitchError) Unwrap() error {
	return e.Cause
}

// Is matches any SwitchError of the same type, so callers can test
// against the predefined sentinels below regardless of message.
func (e *SwitchError) Is(target error) bool {
	var t *SwitchError
	if !errors.As(target, &t) {
		return false
	}
	return t.Type == e.Type
}

// WithSuggestion 添加解决建议
func (e *SwitchError) WithSuggestion(suggestion string) *SwitchError {
	e.Suggestion = suggestion
	return e
}

// New 创建新的 SwitchError
func New(errType ErrorType, message string) *SwitchError {
	return &SwitchError{
		Type:    errType,
		Message: message,
	}
}

// Newf 使用格式化消息创建 SwitchError
func Newf(errType ErrorType, format string, args ...interface{}) *SwitchError {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap 包装已有错误
func Wrap(errType ErrorType, message string, cause error) *SwitchError {
	return &SwitchError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// 预定义的类型哨兵，仅用于 errors.Is 比较
var (
	ErrNotFound          = New(ErrTypeNotFound, "project not found")
	ErrAlreadyExists     = New(ErrTypeAlreadyExists, "project already exists")
	ErrNoCurrentProject  = New(ErrTypeNoCurrentProject, "no current project selected")
	ErrCommandNotFound   = New(ErrTypeCommandNotFound, "command not found")
	ErrMissingURL        = New(ErrTypeMissingURL, "command does not have a URL configured")
	ErrPromptUnavailable = New(ErrTypePromptUnavailable, "Prompt couldn't be rendered in the current environment")
	ErrPromptCancelled   = New(ErrTypePromptCancelled, "prompt cancelled")
)

// Is 检查是否为特定错误
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As 尝试转换为特定错误类型
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetType 获取错误类型
func GetType(err error) ErrorType {
	var switchErr *SwitchError
	if errors.As(err, &switchErr) {
		return switchErr.Type
	}
	return ErrTypeUnknown
}

// GetSuggestion 获取错误建议
func GetSuggestion(err error) string {
	var switchErr *SwitchError
	if errors.As(err, &switchErr) {
		return switchErr.Suggestion
	}
	return ""
}
