package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSwitchCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "switch",
		Short: "Select the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			projects := s.reg.Projects()
			if len(projects) == 0 {
				printWarning(out, `No projects found. Use "add" command to add a project.`)
				return nil
			}

			current, _ := s.reg.CurrentProject()
			selected, err := prompterProvider().SelectProject(projects, current)
			if err != nil {
				return err
			}

			if selected == current {
				printInfo(out, "Already on project: %s", selected)
				return nil
			}

			if err := s.reg.SetCurrentProject(selected); err != nil {
				return err
			}
			s.log.Debug("Current project changed",
				zap.String("from", current),
				zap.String("to", selected))
			printSuccess(out, "Switched to project: %s", selected)
			return nil
		},
	}
}
