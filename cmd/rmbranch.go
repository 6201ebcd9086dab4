package cmd

import "github.com/spf13/cobra"

var rmBranchCmd = &cobra.Command{
	Use:          "rm-branch <name>",
	Short:        "Delete a branch",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runRmBranch,
}

func init() {
	rootCmd.AddCommand(rmBranchCmd)
}

func runRmBranch(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return r.RmBranch(args[0])
}
