package cmd

import "github.com/spf13/cobra"

func newCurrentCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name, ok := s.reg.CurrentProject(); ok {
				printSuccess(cmd.OutOrStdout(), "Current project: %s", name)
				return nil
			}
			printWarning(cmd.OutOrStdout(), "No current project selected")
			return nil
		},
	}
}
