package cmd

import "github.com/spf13/cobra"

var statusCmd = &cobra.Command{
	Use:          "status",
	Short:        "Show staged, removed, modified, and untracked files",
	SilenceUsage: true,
	Args:         exactArgs(0),
	RunE:         runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	report, err := r.Status()
	if err != nil {
		return err
	}
	printStatus(cmd.OutOrStdout(), report)
	return nil
}
