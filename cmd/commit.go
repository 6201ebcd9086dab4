package cmd

import "github.com/spf13/cobra"

var commitCmd = &cobra.Command{
	Use:          "commit <message>",
	Short:        "Record a new commit from the staging area",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	_, err = r.Commit(args[0], "")
	return err
}
