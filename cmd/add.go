package cmd

import (
	"fmt"
	"strings"

	"github.com/penwyp/project-switch/internal/config"
	"github.com/spf13/cobra"
)

func newAddCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new project",
		Long:  `Add a new project. Without a name argument you are prompted for one.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var name string
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			} else {
				var err error
				name, err = prompterProvider().ProjectName(func(candidate string) error {
					if s.reg.ProjectExists(candidate) {
						return fmt.Errorf("Project %q already exists", candidate)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			if err := s.reg.AddProject(config.Project{Name: name}); err != nil {
				return err
			}

			printSuccess(out, "Project %q added successfully!", name)
			if current, _ := s.reg.CurrentProject(); current == name {
				printInfo(out, "%q is now the current project.", name)
			}
			return nil
		},
	}
}
