//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

// prepareCommand hands cmd.exe its command line verbatim, since os/exec
// quoting does not protect & ^ or a quoted program name from cmd.exe.
func prepareCommand(cmd *exec.Cmd, name string, args []string) {
	attr := &syscall.SysProcAttr{HideWindow: true}
	if line, ok := cmdExeLine(name, args); ok {
		attr.CmdLine = line
	}
	cmd.SysProcAttr = attr
}
