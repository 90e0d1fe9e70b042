package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorHandler 错误处理器
type ErrorHandler struct {
	// NoColor 禁用颜色输出（测试和非终端环境）
	NoColor bool
}

// NewErrorHandler 创建新的错误处理器
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Classify 将任意错误转换为面向用户的结构化信息
func (h *ErrorHandler) Classify(err error) UserError {
	if err == nil {
		return UserError{ExitCode: ExitCodeSuccess}
	}

	switch GetType(err) {
	case ErrTypePromptCancelled:
		return UserError{
			Message:  "Cancelled.",
			Severity: SeverityWarning,
			ExitCode: ExitCodeSuccess,
		}
	case ErrTypePromptUnavailable:
		return UserError{
			Message:    "Prompt couldn't be rendered in the current environment",
			Suggestion: "Run the command in an interactive terminal, or pass the value as an argument",
			ExitCode:   ExitCodeGenericError,
		}
	case ErrTypeNoCurrentProject:
		return UserError{
			Message:    "No current project selected",
			Suggestion: withDefault(GetSuggestion(err), `Use "project-switch switch" to select a project first`),
			ExitCode:   ExitCodeGenericError,
		}
	}

	return UserError{
		Message:    err.Error(),
		Suggestion: GetSuggestion(err),
		ExitCode:   ExitCodeGenericError,
	}
}

// FormatError 格式化错误信息为用户友好的输出
func (h *ErrorHandler) FormatError(userErr UserError) string {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if h.NoColor {
		red.DisableColor()
		yellow.DisableColor()
	}

	var sb strings.Builder

	if userErr.Severity == SeverityWarning {
		sb.WriteString(yellow.Sprintf("%s\n", userErr.Message))
	} else {
		sb.WriteString(red.Sprint("Error:"))
		sb.WriteString(fmt.Sprintf(" %s\n", userErr.Message))
	}

	if userErr.Details != "" {
		sb.WriteString(yellow.Sprintf("Details: %s\n", userErr.Details))
	}

	if userErr.Suggestion != "" {
		sb.WriteString(yellow.Sprintf("%s\n", userErr.Suggestion))
	}

	return sb.String()
}

// Handle 分类并格式化错误，返回输出文本和退出码
func (h *ErrorHandler) Handle(err error) (string, int) {
	userErr := h.Classify(err)
	if err == nil {
		return "", userErr.ExitCode
	}
	return h.FormatError(userErr), userErr.ExitCode
}

func withDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
