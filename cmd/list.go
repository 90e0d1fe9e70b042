package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/penwyp/project-switch/internal/config"
	"github.com/penwyp/project-switch/internal/launcher"
	"github.com/spf13/cobra"
)

func newListCommand(s *session) *cobra.Command {
	var plain bool
	opts := &openOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Pick a command of the current project and open it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectName, err := launcher.RequireCurrent(s.reg)
			if err != nil {
				return err
			}

			cmds := s.reg.Commands(projectName)
			if len(cmds) == 0 {
				printWarning(cmd.OutOrStdout(), "No openable items found in project '%s'", projectName)
				return nil
			}

			if plain {
				return renderCommandTable(cmd, s, projectName, cmds)
			}

			selected, err := prompterProvider().SelectCommand(projectName, cmds)
			if err != nil {
				return err
			}
			target, err := launcher.Resolve(s.reg, selected.Key)
			if err != nil {
				return err
			}
			return s.open(cmd, target, opts)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the commands as a table instead of prompting")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the selected URL to the clipboard")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the launch command instead of running it")
	return cmd
}

// renderCommandTable prints key, URL and effective browser per command.
func renderCommandTable(cmd *cobra.Command, s *session, projectName string, cmds []config.ProjectCommand) error {
	project, _ := s.reg.Project(projectName)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Key", "URL", "Browser")
	for _, c := range cmds {
		browser := launcher.ResolveBrowser(c, project, s.reg.DefaultBrowser())
		if err := table.Append([]string{c.Key, launcher.ComposeURL(c), browser}); err != nil {
			return err
		}
	}
	return table.Render()
}
