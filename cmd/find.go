package cmd

import "github.com/spf13/cobra"

var findCmd = &cobra.Command{
	Use:          "find <message>",
	Short:        "Print the ids of every commit with the given message",
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	r, err := currentRepo()
	if err != nil {
		return err
	}
	oids, err := r.Find(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, oid := range oids {
		out.Write([]byte(oid + "\n"))
	}
	return nil
}
