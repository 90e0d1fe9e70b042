package launcher

import (
	"context"
	"runtime"

	"github.com/penwyp/project-switch/internal/errors"
	"go.uber.org/zap"
)

// Launcher opens resolved targets through a Runner.
type Launcher struct {
	runner Runner
	goos   string
	log    *zap.Logger
}

// NewLauncher 创建新的启动器，runner 为 nil 时使用 ExecRunner
func NewLauncher(runner Runner, log *zap.Logger) *Launcher {
	if runner == nil {
		runner = NewExecRunner()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{runner: runner, goos: runtime.GOOS, log: log}
}

// WithGOOS overrides the platform used to build commands.
func (l *Launcher) WithGOOS(goos string) *Launcher {
	l.goos = goos
	return l
}

// Command returns the argv that Open would run for t.
func (l *Launcher) Command(t Target) (string, []string) {
	return BuildCommand(l.goos, t.Browser, t.URL)
}

// Open launches t.URL in t.Browser.
func (l *Launcher) Open(ctx context.Context, t Target) error {
	name, args := l.Command(t)
	l.log.Debug("Opening URL",
		zap.String("project", t.Project),
		zap.String("key", t.Key),
		zap.String("goos", l.goos),
		zap.String("command", name),
		zap.Strings("args", args))

	if err := l.runner.Start(ctx, name, args...); err != nil {
		l.log.Debug("Launch failed", zap.Error(err))
		return errors.Wrap(errors.ErrTypeLaunch, "Error opening URL", err)
	}
	return nil
}
