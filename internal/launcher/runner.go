package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// defaultGrace is how long ExecRunner waits for a quick failure before
// assuming the browser is up.
const defaultGrace = 1500 * time.Millisecond

// ExecRunner starts commands with os/exec. Helpers such as open, xdg-open
// and start exit quickly, so their exit status is reported; a browser
// started directly keeps running and is left detached.
type ExecRunner struct {
	grace time.Duration
}

// NewExecRunner 创建默认命令执行器
func NewExecRunner() *ExecRunner {
	return &ExecRunner{grace: defaultGrace}
}

// Start runs name with args and waits up to the grace period for it to exit.
//
// The child's stderr goes to a temp file rather than a pipe: a browser
// outlives this process, and writing to a pipe whose reader has exited
// would kill it with SIGPIPE.
func (r *ExecRunner) Start(ctx context.Context, name string, args ...string) error {
	errLog, err := os.CreateTemp("", "project-switch-launch-*.log")
	if err != nil {
		return fmt.Errorf("create launch log: %w", err)
	}
	defer func() {
		_ = errLog.Close()
		_ = os.Remove(errLog.Name())
	}()

	cmd := exec.Command(name, args...)
	cmd.Stderr = errLog
	prepareCommand(cmd, name, args)

	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(r.grace)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			if msg := readLaunchLog(errLog.Name()); msg != "" {
				return fmt.Errorf("%s failed: %w: %s", name, err, msg)
			}
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return nil
	}
}

// readLaunchLog reads by name since the child shares the file offset.
func readLaunchLog(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
