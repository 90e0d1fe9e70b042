package errors

// Exit codes returned by the CLI
const (
	ExitCodeSuccess      = 0
	ExitCodeGenericError = 1
)

// Severity 控制错误输出的颜色
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// UserError 包含面向用户的错误信息
type UserError struct {
	Message    string   // 用户友好的错误消息
	Details    string   // 详细的错误信息（可选）
	Suggestion string   // 建议的解决方案
	Severity   Severity // 输出颜色
	ExitCode   int      // 退出码
}
