package cmd

import "github.com/spf13/cobra"

var resetCmd = &cobra.Command{
	Use:          "reset <commit>",
	Short:        "Move the current branch and working directory to a commit",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return r.Reset(args[0])
}
