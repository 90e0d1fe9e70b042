package launcher

import (
	"context"

	"github.com/penwyp/project-switch/internal/config"
)

// DefaultBrowserSentinel selects the OS URL handler instead of a named
// browser. Compared case-insensitively.
const DefaultBrowserSentinel = "default"

// Target 解析后的打开目标
type Target struct {
	Project string // 当前项目名
	Key     string // 命令键
	URL     string // 最终 URL（已拼接 args）
	Browser string // 生效的浏览器
}

// Lookup 解析所需的配置查询接口
type Lookup interface {
	CurrentProject() (string, bool)
	Project(name string) (config.Project, bool)
	ProjectCommand(projectName, key string) (config.ProjectCommand, bool)
	DefaultBrowser() string
}

// Runner 命令执行器接口
type Runner interface {
	Start(ctx context.Context, name string, args ...string) error
}
