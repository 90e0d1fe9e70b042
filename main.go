package main

import (
	"os"

	"github.com/penwyp/project-switch/cmd"
)

// main 为 CLI 入口，调用 cmd.Execute 并以其返回码退出。
func main() {
	os.Exit(cmd.Execute())
}
