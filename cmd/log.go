package cmd

import "github.com/spf13/cobra"

var logCmd = &cobra.Command{
	Use:          "log",
	Short:        "Print the commit history reachable from HEAD",
	SilenceUsage: true,
	Args:         exactArgs(0),
	RunE:         runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	commits, err := r.Log()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, c := range commits {
		printCommitBlock(out, c)
	}
	return nil
}
