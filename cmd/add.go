package cmd

import "github.com/spf13/cobra"

var addCmd = &cobra.Command{
	Use:          "add <path>",
	Short:        "Stage a file for the next commit",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	return r.Add(args[0])
}
