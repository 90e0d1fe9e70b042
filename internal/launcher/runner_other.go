//go:build !unix && !windows

package launcher

import "os/exec"

func prepareCommand(*exec.Cmd, string, []string) {}
