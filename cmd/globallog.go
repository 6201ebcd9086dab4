package cmd

import "github.com/spf13/cobra"

var globalLogCmd = &cobra.Command{
	Use:          "global-log",
	Short:        "Print every commit ever made, in no particular order",
	SilenceUsage: true,
	Args:         exactArgs(0),
	RunE:         runGlobalLog,
}

func init() {
	rootCmd.AddCommand(globalLogCmd)
}

func runGlobalLog(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	commits, err := r.GlobalLog()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, c := range commits {
		printCommitBlock(out, c)
	}
	return nil
}
