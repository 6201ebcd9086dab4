package cmd

import "github.com/spf13/cobra"

var rmCmd = &cobra.Command{
	Use:          "rm <path>",
	Short:        "Unstage a file, or stage it for removal from the next commit",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return r.Rm(args[0])
}
