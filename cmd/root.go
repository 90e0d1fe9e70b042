package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/penwyp/project-switch/internal/config"
	"github.com/penwyp/project-switch/internal/errors"
	"github.com/penwyp/project-switch/internal/launcher"
	"github.com/penwyp/project-switch/internal/logger"
	"github.com/penwyp/project-switch/internal/registry"
	"github.com/penwyp/project-switch/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version holds the current version of project-switch
// This will be set at build time via ldflags
var version = "dev"

// GetVersionString returns a formatted version string
func GetVersionString() string {
	return fmt.Sprintf("project-switch version %s", version)
}

// 将关键依赖抽象为接口以便测试时注入 Mock。
// 若在运行时未被替换，则使用默认实现。
var (
	storeProvider    func(path string, log *zap.Logger) (configStore, error) = defaultStoreProvider
	prompterProvider func() prompter                                         = defaultPrompterProvider
	runnerProvider   func() launcher.Runner                                  = defaultRunnerProvider
	clipboardWriter  func(text string) error                                 = clipboard.WriteAll
	loggerProvider   func(debug bool) *zap.Logger                            = logger.New
)

type configStore interface {
	Load() *config.Config
	Save(cfg *config.Config) error
	Path() string
}

type prompter interface {
	ProjectName(validate func(string) error) (string, error)
	SelectProject(projects []config.Project, current string) (string, error)
	SelectCommand(projectName string, cmds []config.ProjectCommand) (config.ProjectCommand, error)
}

// ---------------- 默认实现 ------------------
func defaultStoreProvider(path string, log *zap.Logger) (configStore, error) {
	return config.NewStore(path, log)
}

func defaultPrompterProvider() prompter {
	return ui.NewTerminalPrompter()
}

func defaultRunnerProvider() launcher.Runner {
	return launcher.NewExecRunner()
}

// -------------------------------------------------

// session holds what one invocation loads before a subcommand runs.
type session struct {
	flagDebug  bool
	flagConfig string

	log *zap.Logger
	reg *registry.Registry
}

func (s *session) setup(*cobra.Command, []string) error {
	s.log = loggerProvider(s.flagDebug)

	path, err := config.ResolvePath(s.flagConfig)
	if err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "Could not determine config location", err)
	}

	store, err := storeProvider(path, s.log)
	if err != nil {
		return err
	}
	s.reg = registry.New(store.Load(), store)
	s.log.Debug("Session ready",
		zap.String("config", store.Path()),
		zap.Int("projects", len(s.reg.Projects())))
	return nil
}

func (s *session) teardown(*cobra.Command, []string) {
	if s.log != nil {
		_ = s.log.Sync()
	}
}

// NewRootCommand builds the command tree with fresh flag state.
func NewRootCommand() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "project-switch",
		Short: "Switch between projects and open their links",
		Long: `project-switch keeps a list of named projects in ~/.project-switch.yml.
One project is current at a time, and each project maps short keys to URLs
that "open" launches in the configured browser.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		PersistentPostRun: s.teardown,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		DisableAutoGenTag: true,
	}
	root.SetVersionTemplate(GetVersionString() + "\n")

	root.PersistentFlags().BoolVar(&s.flagDebug, "debug", false, "enable debug output for troubleshooting")
	root.PersistentFlags().StringVar(&s.flagConfig, "config", "",
		fmt.Sprintf("config file (default ~/%s, or $%s)", config.FileName, config.EnvConfigPath))

	root.AddCommand(
		newSwitchCommand(s),
		newAddCommand(s),
		newCurrentCommand(s),
		newOpenCommand(s),
		newListCommand(s),
	)
	return root
}

var rootCmd = NewRootCommand()

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return execute(rootCmd, os.Stderr)
}

func execute(root *cobra.Command, errOut io.Writer) int {
	err := root.Execute()
	if err == nil {
		return errors.ExitCodeSuccess
	}
	msg, code := errors.NewErrorHandler().Handle(err)
	_, _ = fmt.Fprint(errOut, msg)
	return code
}

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow)
)

func printSuccess(w io.Writer, format string, a ...interface{}) {
	_, _ = successColor.Fprintf(w, format+"\n", a...)
}

func printInfo(w io.Writer, format string, a ...interface{}) {
	_, _ = infoColor.Fprintf(w, format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...interface{}) {
	_, _ = warnColor.Fprintf(w, format+"\n", a...)
}
