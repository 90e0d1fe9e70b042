// Command commit validates a commit message and hands it to git commit.
//
//	go run ./tools/commit "fix: handle empty config"
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/penwyp/project-switch/internal/commitmsg"
	"github.com/penwyp/project-switch/internal/errors"
)

// committer runs the commit and returns git's exit code.
type committer func(ctx context.Context, message string) (int, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, gitCommit))
}

func run(ctx context.Context, args []string, errOut io.Writer, commit committer) int {
	message := strings.Join(args, " ")
	if err := commitmsg.Validate(message); err != nil {
		msg, _ := errors.NewErrorHandler().Handle(err)
		_, _ = fmt.Fprint(errOut, msg)
		return errors.ExitCodeGenericError
	}

	code, err := commit(ctx, message)
	if err != nil {
		msg, _ := errors.NewErrorHandler().Handle(errors.Wrap(errors.ErrTypeUnknown, "git commit failed", err))
		_, _ = fmt.Fprint(errOut, msg)
		return errors.ExitCodeGenericError
	}
	return code
}

// gitCommit 使用 git commit -m 执行提交，继承标准输入输出。
func gitCommit(ctx context.Context, message string) (int, error) {
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
