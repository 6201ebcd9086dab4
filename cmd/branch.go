package cmd

import "github.com/spf13/cobra"

var branchCmd = &cobra.Command{
	Use:          "branch <name>",
	Short:        "Create a new branch pointing at the current head",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runBranch,
}

func init() {
	rootCmd.AddCommand(branchCmd)
}

func runBranch(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return r.Branch(args[0])
}
