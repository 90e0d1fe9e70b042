package cmd

import (
	"strings"

	"github.com/penwyp/project-switch/internal/launcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type openOptions struct {
	copy  bool
	print bool
}

func newOpenCommand(s *session) *cobra.Command {
	opts := &openOptions{}

	cmd := &cobra.Command{
		Use:   "open <key>",
		Short: "Open a command URL of the current project",
		Long: `Open the URL stored under <key> in the current project. The browser is
taken from the command, then the project, then defaultBrowser, then firefox.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := launcher.Resolve(s.reg, args[0])
			if err != nil {
				return err
			}
			return s.open(cmd, target, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the resolved URL to the clipboard")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the launch command instead of running it")
	return cmd
}

// open launches target, honouring --copy and --print.
func (s *session) open(cmd *cobra.Command, target launcher.Target, opts *openOptions) error {
	out := cmd.OutOrStdout()

	if opts.copy {
		if err := clipboardWriter(target.URL); err != nil {
			s.log.Warn("Could not copy URL to clipboard", zap.Error(err))
		} else {
			printInfo(out, "Copied %s to clipboard", target.URL)
		}
	}

	l := launcher.NewLauncher(runnerProvider(), s.log)
	if opts.print {
		name, argv := l.Command(target)
		_, _ = out.Write([]byte(strings.Join(append([]string{name}, argv...), " ") + "\n"))
		return nil
	}

	printSuccess(out, "Opening %s in %s...", target.URL, target.Browser)
	return l.Open(cmd.Context(), target)
}
