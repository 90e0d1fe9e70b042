//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// prepareCommand starts the child in its own session so it is not tied to
// the terminal of the CLI that launched it.
func prepareCommand(cmd *exec.Cmd, _ string, _ []string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
